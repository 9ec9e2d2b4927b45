package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/compozy/liquid/config"
	"github.com/compozy/liquid/pkg/logger"
	"github.com/compozy/liquid/pkg/tplengine"
	"github.com/spf13/cobra"
)

func newRenderCommand() *cobra.Command {
	var contextPath string
	var strict bool
	cmd := &cobra.Command{
		Use:   "render <template-file>",
		Short: "Render a Liquid template against a JSON context file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], contextPath, strict)
		},
	}
	cmd.Flags().StringVarP(&contextPath, "context", "c", "", "path to a JSON file supplying the render context")
	cmd.Flags().BoolVarP(&strict, "strict", "s", false, "fail on undefined variables instead of rendering them as empty")
	return cmd
}

func runRender(cmd *cobra.Command, templatePath, contextPath string, strict bool) error {
	log := logger.FromContext(cmd.Context())
	src, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read template %q: %w", templatePath, err)
	}
	data, err := loadContext(contextPath)
	if err != nil {
		return fmt.Errorf("failed to read context %q: %w", contextPath, err)
	}
	log.Debug("rendering template", "template", templatePath, "context", contextPath, "strict", strict)
	engine := tplengine.NewEngine(tplengine.FormatText).WithConfig(&config.Config{Strict: strict})
	out, err := engine.RenderString(string(src), data)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func loadContext(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("invalid JSON context: %w", err)
	}
	return data, nil
}
