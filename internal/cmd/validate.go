package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chartkit-dev/chartkit/internal/cli"
	"github.com/chartkit-dev/chartkit/internal/k8s"
	"github.com/chartkit-dev/chartkit/internal/logging"
)

// NewValidateCommand creates the validate sub-command for the CLI.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the resolved names and labels against Kubernetes rules",
		Long: `Resolve every name and label from the chart context and check the
results against Kubernetes naming rules: DNS-1123 subdomains for object
names and valid label values for the common label set. The resolvers
themselves never fail; this command surfaces what a cluster would reject.`,
		Args: cobra.NoArgs,
		Example: `
# Validate the resolution for a chart directory
chartkit validate --chart ./mychart --release my-release`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger(cmd)

			chartCtx, err := cli.GetChartContext(cmd.Context())
			if err != nil {
				return err
			}

			warnings, errs := k8s.CheckContext(chartCtx)
			for _, warning := range warnings {
				logger.Warn(warning)
			}
			for _, msg := range errs {
				logger.Error(msg)
			}

			if len(errs) > 0 {
				return fmt.Errorf("validation failed with %d error(s)", len(errs))
			}

			logger.Info("Resolution is valid", "chart", chartCtx.ChartName, "release", chartCtx.ReleaseName)
			return nil
		},
	}
}
