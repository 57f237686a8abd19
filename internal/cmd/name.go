package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chartkit-dev/chartkit/internal/cli"
	"github.com/chartkit-dev/chartkit/internal/naming"
)

// NewNameCommand creates the name sub-command for the CLI.
func NewNameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "name",
		Short: "Print the resolved base name",
		Long: `Print the base name of the release: the name override when one is
configured, otherwise the chart name, truncated to 63 characters.`,
		Args: cobra.NoArgs,
		Example: `
# Resolve the base name from a chart directory
chartkit name --chart ./mychart

# Resolve with a name override set on the command line
chartkit name --chart ./mychart --set nameOverride=frontend`,
		RunE: func(cmd *cobra.Command, args []string) error {
			chartCtx, err := cli.GetChartContext(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(naming.Name(chartCtx))
			return nil
		},
	}
}

// NewFullNameCommand creates the fullname sub-command for the CLI.
func NewFullNameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fullname",
		Short: "Print the fully-qualified release name",
		Long: `Print the fully-qualified name objects of the release are named after.
The fullname override wins when configured; otherwise the release name is
combined with the base name, collapsing the two when the release name
already contains it.`,
		Args: cobra.NoArgs,
		Example: `
# Resolve the fullname for a release
chartkit fullname --chart ./mychart --release my-release

# A release name containing the chart name is used as-is
chartkit fullname --chart ./mychart --release my-release-mychart`,
		RunE: func(cmd *cobra.Command, args []string) error {
			chartCtx, err := cli.GetChartContext(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(naming.FullName(chartCtx))
			return nil
		},
	}
}

// NewServiceAccountCommand creates the service-account sub-command.
func NewServiceAccountCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "service-account",
		Aliases: []string{"sa"},
		Short:   "Print the resolved service account name",
		Long: `Print the service account name: the configured serviceAccount.name when
set, otherwise the fully-qualified release name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chartCtx, err := cli.GetChartContext(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(naming.ServiceAccountName(chartCtx))
			return nil
		},
	}
}
