package cmd

import (
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/chartkit-dev/chartkit/internal/chart"
	"github.com/chartkit-dev/chartkit/internal/logging"
	"github.com/chartkit-dev/chartkit/internal/ui"
)

// nameRegex matches valid RFC 1123 style names for charts and releases.
var nameRegex = regexp.MustCompile("^[a-z0-9](?:[a-z0-9-]*[a-z0-9])?$")

// NewInitCommand creates the init sub-command for the CLI.
func NewInitCommand() *cobra.Command {
	initCommand := &cobra.Command{
		Use:   "init [flags]",
		Short: "Initialize a chartkit context file",
		Long:  `Interactively collect chart and release metadata and write a context file.`,
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}

	initCommand.Flags().StringP("output", "o", chart.DefaultContextPath, "The output file path.")
	initCommand.Flags().Bool("force", false, "Overwrite the output file if it already exists.")

	return initCommand
}

func runInit(cmd *cobra.Command, _ []string) error {
	logger := logging.GetLogger(cmd)

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output path: %w", err)
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get force flag: %w", err)
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", outputPath)
		}
	}

	validateName := func(s string) error {
		if !nameRegex.MatchString(s) {
			return fmt.Errorf("must be lowercase alphanumeric characters or dashes (-) separated and cannot start or end with a dash (-)")
		}
		return nil
	}

	var ctxFile chart.ContextFile
	var confirmed bool

	form := huh.NewForm(
		ui.CreateInputGroup(
			"Chart name?",
			"mychart",
			"The chart name resolved names derive from.",
			validateName,
			&ctxFile.ChartName,
		),
		ui.CreateInputGroup(
			"Chart version?",
			"0.1.0",
			"Used in the helm.sh/chart label.",
			nil,
			&ctxFile.ChartVersion,
		),
		ui.CreateInputGroup(
			"Release name?",
			"my-release",
			"The release name used for fullname resolution.",
			validateName,
			&ctxFile.ReleaseName,
		),
		ui.CreateInputGroup(
			"App version?",
			"",
			"Optional. Used in the app.kubernetes.io/version label.",
			nil,
			&ctxFile.AppVersion,
		),
		ui.CreateConfirmGroup(
			fmt.Sprintf("Write %s?", outputPath),
			"The context file can be edited by hand afterwards.",
			"Write",
			"Cancel",
			&confirmed,
		),
	)

	if err := ui.CollectWithForm(form, "failed to collect context"); err != nil {
		return err
	}

	if !confirmed {
		logger.Info("Aborted, nothing written")
		return nil
	}

	data, err := yaml.Marshal(ctxFile)
	if err != nil {
		return fmt.Errorf("failed to serialize context file: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	logger.Info("Context file written", "path", outputPath, "chart", ctxFile.ChartName)
	return nil
}
