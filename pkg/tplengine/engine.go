// Package tplengine is the host-facing façade: construct an Engine
// bound to a Language and a Format, register named templates, and
// render them against a plain Go context map. It is the thin
// composition root spec.md's "external glue" leaves to the host
// (grounded on the teacher's pkg/tplengine, generalized from a
// workflow-task-specific engine to a general-purpose Liquid façade).
package tplengine

import (
	"encoding/json"
	"fmt"

	"github.com/compozy/liquid/config"
	"github.com/compozy/liquid/engine/core"
	"github.com/compozy/liquid/language"
	"github.com/compozy/liquid/render"
	"github.com/compozy/liquid/value"
)

// Format selects how Render's output is packaged for the caller.
type Format string

const (
	// FormatText returns the rendered output verbatim.
	FormatText Format = "text"
	// FormatJSON returns the rendered output re-encoded as a JSON
	// string literal, for embedding inside a larger JSON document.
	FormatJSON Format = "json"
)

// Engine bundles a Language, a set of named compiled templates, and
// global bindings shared by every render.
type Engine struct {
	lang      *language.Language
	format    Format
	cfg       *config.Config
	templates map[string]*render.Template
	globals   map[string]value.Value
}

// NewEngine constructs an Engine with the default control-flow
// language (spec 4.H Default) and lenient (non-strict) evaluation. An
// empty format defaults to FormatText.
func NewEngine(format Format) *Engine {
	if format == "" {
		format = FormatText
	}
	return &Engine{
		lang:      language.Default(),
		format:    format,
		cfg:       config.Default(),
		templates: map[string]*render.Template{},
		globals:   map[string]value.Value{},
	}
}

// WithConfig replaces the engine's Config and returns the engine for
// chaining.
func (e *Engine) WithConfig(cfg *config.Config) *Engine {
	if cfg != nil {
		e.cfg = cfg
	}
	return e
}

// WithLanguage replaces the engine's registry bundle, for hosts that
// register their own tags/blocks/filters on top of (or instead of)
// the defaults.
func (e *Engine) WithLanguage(lang *language.Language) *Engine {
	if lang != nil {
		e.lang = lang
	}
	return e
}

// Language exposes the engine's registry bundle so a caller can add
// tags, blocks, or filters before parsing templates.
func (e *Engine) Language() *language.Language { return e.lang }

// AddGlobalValue binds name in every subsequent render, converting v
// via value.FromAny. Returns the engine for chaining.
func (e *Engine) AddGlobalValue(name string, v any) *Engine {
	e.globals[name] = value.FromAny(v)
	return e
}

// AddTemplate parses src under name, returning a *core.ParseError
// (wrapped) on failure. A template must be added before it can be
// rendered by name.
func (e *Engine) AddTemplate(name, src string) error {
	tmpl, err := e.lang.Parse(src)
	if err != nil {
		return fmt.Errorf("failed to parse template %q: %w", name, err)
	}
	e.templates[name] = tmpl
	return nil
}

// HasTemplate reports whether name was previously added via
// AddTemplate.
func (e *Engine) HasTemplate(name string) bool {
	_, ok := e.templates[name]
	return ok
}

// Render renders the named template against data. A name that was
// never added is a plain error; a render failure is returned wrapped,
// as a *core.RenderError for an undefined variable in strict mode or
// as a *filter.Error for a failing filter.
func (e *Engine) Render(name string, data map[string]any) (string, error) {
	tmpl, ok := e.templates[name]
	if !ok {
		return "", fmt.Errorf("tplengine: no template named %q", name)
	}
	return e.render(tmpl, data)
}

// RenderString parses and immediately renders src against data
// without registering it under a name.
func (e *Engine) RenderString(src string, data map[string]any) (string, error) {
	tmpl, err := e.lang.Parse(src)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}
	return e.render(tmpl, data)
}

func (e *Engine) render(tmpl *render.Template, data map[string]any) (string, error) {
	rt := render.NewRuntime()
	rt.Strict = e.cfg.Strict
	for k, v := range e.globals {
		rt.SetGlobal(k, v)
	}
	for k, v := range data {
		rt.SetGlobal(k, value.FromAny(v))
	}
	out, err := rt.Render(tmpl)
	if err != nil {
		return out, fmt.Errorf("failed to render template: %w", err)
	}
	return e.format.apply(out)
}

func (f Format) apply(rendered string) (string, error) {
	switch f {
	case FormatJSON:
		encoded, err := json.Marshal(rendered)
		if err != nil {
			return rendered, core.NewRenderError(err, "E_JSON_ENCODE", nil, nil, nil)
		}
		return string(encoded), nil
	default:
		return rendered, nil
	}
}
