// Package render provides the render sub-command.
package render

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chartkit-dev/chartkit/internal/cli"
	"github.com/chartkit-dev/chartkit/internal/logging"
	"github.com/chartkit-dev/chartkit/internal/render"
	"github.com/chartkit-dev/chartkit/internal/ui"
)

// New creates the render sub-command for the CLI.
func New() *cobra.Command {
	renderCommand := &cobra.Command{
		Use:   "render",
		Short: "Render manifest skeletons with the resolved names and labels",
		Long: `Render ServiceAccount, Service and Deployment skeletons carrying the
resolved names, labels and selectors as a multi-document YAML stream.
With --template, render a custom template instead: the resolver is
available as template functions (name, fullname, commonLabels, ...)
alongside the Sprig function set.`,
		Args: cobra.NoArgs,
		Example: `
# Render the skeleton objects for a release
chartkit render --chart ./mychart --release my-release

# Render a custom template
chartkit render --chart ./mychart --release my-release --template ./deploy.tpl`,
		RunE: runRender,
	}

	renderCommand.Flags().StringP("template", "t", "", "Path to a custom template to render instead of the skeletons")

	return renderCommand
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger(cmd)

	templatePath, err := cmd.Flags().GetString("template")
	if err != nil {
		return fmt.Errorf("failed to get template path: %w", err)
	}

	chartCtx, err := cli.GetChartContext(cmd.Context())
	if err != nil {
		return err
	}

	if templatePath != "" {
		text, err := os.ReadFile(templatePath)
		if err != nil {
			return fmt.Errorf("failed to read template: %w", err)
		}

		logger.Debug("Rendering custom template", "path", templatePath)

		out, err := render.Template(chartCtx, string(text))
		if err != nil {
			return err
		}

		fmt.Print(out)
		return nil
	}

	manifests, err := render.Manifests(chartCtx)
	if err != nil {
		return err
	}

	colorized, err := ui.Highlight(manifests, "yaml")
	if err != nil {
		fmt.Print(string(manifests))
		return nil
	}

	fmt.Print(colorized)
	return nil
}
