// Copyright 2025 The Chartkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd provides the commands for the chartkit application.
package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chartkit-dev/chartkit/internal/chart"
	"github.com/chartkit-dev/chartkit/internal/cli"
	"github.com/chartkit-dev/chartkit/internal/cmd/render"
	"github.com/chartkit-dev/chartkit/internal/cmd/verify"
	"github.com/chartkit-dev/chartkit/internal/logging"
	"github.com/chartkit-dev/chartkit/internal/runtime"
)

// NewRootCommand creates the root command for the chartkit application. The
// root command is the main entry point for the application.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chartkit",
		Short: "Chartkit derives Kubernetes names and labels from chart metadata",
		Long: `Chartkit resolves the names, labels, and selectors a Helm release derives
from its chart metadata: release-qualified names, the stable selector label
set, and the recommended app.kubernetes.io labels. Point it at a chart
directory or a context file and it answers what the rendered objects will
be called and how they will be labeled.`,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logLevel, _ := cmd.Flags().GetString("log-level")
			noColor, _ := cmd.Flags().GetBool("no-color")
			quiet, _ := cmd.Flags().GetBool("quiet")

			// When quiet is set, SilenceErrors prevents showing usage when a
			// subcommand returns an error.
			cmd.SilenceErrors = quiet
			cmd.SilenceUsage = true

			if noColor {
				color.NoColor = true
			}

			if err := logging.Setup(cmd, logLevel, noColor, quiet); err != nil {
				return err
			}

			return setupRuntime(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if rt := runtime.FromRuntime(cmd.Context()); rt != nil {
				return rt.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("chart", "", "Path to a chart directory to read metadata and default values from")
	rootCmd.PersistentFlags().String("context-file", "", "Path to a chartkit context file (default \""+chart.DefaultContextPath+"\")")
	rootCmd.PersistentFlags().String("env-file", "", "Path to an env file used for ${VAR} substitution in the context file")
	rootCmd.PersistentFlags().StringArrayP("values", "f", nil, "Additional values files, later files override earlier ones")
	rootCmd.PersistentFlags().StringArray("set", nil, "Set values on the command line (key=value)")
	rootCmd.PersistentFlags().StringP("release", "r", "", "Release name used for name resolution")
	rootCmd.PersistentFlags().String("release-service", "", "Value for the app.kubernetes.io/managed-by label (default \""+chart.DefaultReleaseService+"\")")
	rootCmd.PersistentFlags().StringP("namespace", "n", "", "Kubernetes namespace for cluster operations")
	rootCmd.PersistentFlags().String("kubeconfig", "", "Path to the kubeconfig file")
	rootCmd.PersistentFlags().StringP("log-level", "l", log.InfoLevel.String(), "Set the logging level (debug|info|warn|error|fatal)")
	rootCmd.PersistentFlags().Bool("no-color", false, "If specified, output won't contain any color.")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Quiet or silent mode. Do not show logs or error messages.")

	return rootCmd
}

// setupRuntime collects the persistent flags into a Runtime and stores it in
// the command context for subcommands.
func setupRuntime(cmd *cobra.Command) error {
	flags := cmd.Flags()

	chartDir, _ := flags.GetString("chart")
	contextPath, _ := flags.GetString("context-file")
	envFile, _ := flags.GetString("env-file")
	valueFiles, _ := flags.GetStringArray("values")
	setValues, _ := flags.GetStringArray("set")
	releaseName, _ := flags.GetString("release")
	releaseService, _ := flags.GetString("release-service")
	namespace, _ := flags.GetString("namespace")
	kubeconfig, _ := flags.GetString("kubeconfig")

	rt := runtime.New(
		runtime.WithLoadOptions(chart.LoadOptions{
			ChartDir:       chartDir,
			ContextPath:    contextPath,
			EnvFile:        envFile,
			ValueFiles:     valueFiles,
			SetValues:      setValues,
			ReleaseName:    releaseName,
			ReleaseService: releaseService,
		}),
		runtime.WithNamespace(namespace),
		runtime.WithKubeconfig(kubeconfig),
	)

	cmd.SetContext(runtime.WithRuntime(cmd.Context(), rt))
	return nil
}

// Execute is the main entry point for the chartkit application.
func Execute() {
	rootCmd := NewRootCommand()
	rootCmd.AddCommand(
		NewNameCommand(),
		NewFullNameCommand(),
		NewServiceAccountCommand(),
		NewLabelsCommand(),
		NewValidateCommand(),
		NewInitCommand(),
		render.New(),
		verify.New(),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := fang.Execute(ctx, rootCmd); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			os.Exit(cli.ExitTimedOut)
		}

		os.Exit(cli.ExitError)
	}
}
