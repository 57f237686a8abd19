// Package verify provides the verify sub-command.
package verify

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/chartkit-dev/chartkit/internal/cli"
	"github.com/chartkit-dev/chartkit/internal/k8s"
	"github.com/chartkit-dev/chartkit/internal/logging"
	"github.com/chartkit-dev/chartkit/internal/runtime"
	"github.com/chartkit-dev/chartkit/internal/ui"
)

// New creates the verify sub-command for the CLI.
func New() *cobra.Command {
	verifyCommand := &cobra.Command{
		Use:   "verify",
		Short: "Compare live object labels against the resolved label set",
		Long: `List the Deployments, Services and ServiceAccounts the resolved selector
labels match in the cluster, and report every label that differs from the
computed common label set. Drift on a selector label is called out
separately: selectors are immutable once a workload exists.`,
		Args: cobra.NoArgs,
		Example: `
# Verify labels in the default namespace
chartkit verify --chart ./mychart --release my-release

# Verify in a specific namespace, as JSON
chartkit verify --chart ./mychart --release my-release -n prod -o json`,
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
		RunE: runVerify,
	}

	verifyCommand.Flags().StringP("output", "o", cli.OutputFormatTable, "Output format: table, json, yaml")

	return verifyCommand
}

func runVerify(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger(cmd)

	outputFormat, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output format: %w", err)
	}

	rt := runtime.FromRuntime(cmd.Context())
	if rt == nil {
		return fmt.Errorf("runtime not initialized")
	}

	chartCtx, err := rt.ChartContext()
	if err != nil {
		return err
	}

	k8sClient, err := rt.Kubernetes()
	if err != nil {
		return err
	}

	logger.Debug("Verifying labels", "chart", chartCtx.ChartName, "release", chartCtx.ReleaseName, "namespace", rt.Namespace())

	var reports []k8s.Report
	err = spinner.New().
		Title(fmt.Sprintf("Verifying labels in namespace '%s'...", rt.Namespace())).
		Context(cmd.Context()).
		ActionWithErr(func(ctx context.Context) error {
			reports, err = k8sClient.VerifyLabels(ctx, chartCtx)
			return err
		}).
		Run()
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}

	if len(reports) == 0 {
		logger.Info("No matching objects found", "namespace", rt.Namespace())
		return nil
	}

	views := make([]cli.ReportView, len(reports))
	drifted := 0
	for i, report := range reports {
		views[i] = cli.ReportToView(report)
		if !report.InSync() {
			drifted++
		}
	}

	if outputFormat == cli.OutputFormatTable {
		printTable(views)
	} else if err := cli.PrintOutput(views, outputFormat); err != nil {
		return err
	}

	if drifted > 0 {
		return fmt.Errorf("%d of %d object(s) drifted from the resolved labels", drifted, len(reports))
	}

	logger.Info("All objects in sync", "count", len(reports))
	return nil
}

// printTable prints the verification reports as a table.
func printTable(views []cli.ReportView) {
	table := ui.NewTable(cli.GetVerifyColumns()...)

	for _, view := range views {
		mismatches := make([]string, 0, len(view.Mismatches))
		for _, m := range view.Mismatches {
			mismatches = append(mismatches, m.Key)
		}

		table.AddRow(ui.Row{
			"kind":       view.Kind,
			"name":       view.Name,
			"status":     fmt.Sprintf("● %s", view.Status),
			"mismatches": strings.Join(mismatches, ","),
			"age":        view.Age,
			"namespace":  view.Namespace,
		})
	}

	table.Print()
}
