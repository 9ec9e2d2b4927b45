package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.TrimNewlines)
}
