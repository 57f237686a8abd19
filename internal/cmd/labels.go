package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chartkit-dev/chartkit/internal/cli"
	"github.com/chartkit-dev/chartkit/internal/naming"
	"github.com/chartkit-dev/chartkit/internal/ui"
)

// NewLabelsCommand creates the labels sub-command for the CLI.
func NewLabelsCommand() *cobra.Command {
	labelsCommand := &cobra.Command{
		Use:   "labels",
		Short: "Print the resolved label sets",
		Long: `Print the common label set applied to managed objects, or with
--selector only the stable selector labels safe to use in immutable
selector fields.`,
		Args: cobra.NoArgs,
		Example: `
# Print the common labels as a table
chartkit labels --chart ./mychart --release my-release

# Print only the selector labels, as JSON
chartkit labels --chart ./mychart --release my-release --selector -o json`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := cmd.Flags().GetString("output")
			if err != nil {
				return fmt.Errorf("failed to get output format: %w", err)
			}

			if !slices.Contains(cli.OutputFormats, outputFormat) {
				return fmt.Errorf("invalid output format: '%s', must be one of: %s", outputFormat, strings.Join(cli.OutputFormats, ", "))
			}

			return nil
		},
		RunE: runLabels,
	}

	labelsCommand.Flags().Bool("selector", false, "Print only the selector labels")
	labelsCommand.Flags().StringP("output", "o", cli.OutputFormatTable, "Output format: table, json, yaml")

	return labelsCommand
}

func runLabels(cmd *cobra.Command, args []string) error {
	selectorOnly, err := cmd.Flags().GetBool("selector")
	if err != nil {
		return fmt.Errorf("failed to get selector flag: %w", err)
	}

	outputFormat, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output format: %w", err)
	}

	chartCtx, err := cli.GetChartContext(cmd.Context())
	if err != nil {
		return err
	}

	labels := naming.CommonLabels(chartCtx)
	if selectorOnly {
		labels = naming.SelectorLabels(chartCtx)
	}

	if outputFormat == cli.OutputFormatTable {
		ui.LabelTable(labels).Print()
		return nil
	}

	return cli.PrintOutput(labels, outputFormat)
}
