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

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/chartkit-dev/chartkit/internal/k8s"
	"github.com/chartkit-dev/chartkit/internal/naming"
	"github.com/chartkit-dev/chartkit/internal/runtime"
	"github.com/chartkit-dev/chartkit/internal/ui"
)

// Sync status values shown in verify output.
const (
	StatusInSync        = "in-sync"
	StatusDrift         = "drift"
	StatusSelectorDrift = "selector-drift"
)

// ResolutionView is the curated output structure for json/yaml matching
// what the resolution commands display.
type ResolutionView struct {
	Name               string            `json:"name" yaml:"name"`
	FullName           string            `json:"fullname" yaml:"fullname"`
	ChartLabel         string            `json:"chartLabel" yaml:"chartLabel"`
	ServiceAccountName string            `json:"serviceAccountName" yaml:"serviceAccountName"`
	SelectorLabels     map[string]string `json:"selectorLabels" yaml:"selectorLabels"`
	CommonLabels       map[string]string `json:"commonLabels" yaml:"commonLabels"`
}

// Resolve runs every resolver over the chart context and collects the
// results into one view.
func Resolve(chartCtx naming.ChartContext) ResolutionView {
	return ResolutionView{
		Name:               naming.Name(chartCtx),
		FullName:           naming.FullName(chartCtx),
		ChartLabel:         naming.ChartLabel(chartCtx),
		ServiceAccountName: naming.ServiceAccountName(chartCtx),
		SelectorLabels:     naming.SelectorLabels(chartCtx),
		CommonLabels:       naming.CommonLabels(chartCtx),
	}
}

// ReportView is the curated output structure for one verified object.
type ReportView struct {
	Kind       string         `json:"kind" yaml:"kind"`
	Name       string         `json:"name" yaml:"name"`
	Namespace  string         `json:"namespace" yaml:"namespace"`
	Status     string         `json:"status" yaml:"status"`
	Age        string         `json:"age" yaml:"age"`
	Mismatches []k8s.Mismatch `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
}

// ReportToView converts a verification report to a view model for output.
func ReportToView(report k8s.Report) ReportView {
	return ReportView{
		Kind:       report.Kind,
		Name:       report.Name,
		Namespace:  report.Namespace,
		Status:     syncStatus(report),
		Age:        FormatAge(report.CreatedAt),
		Mismatches: report.Mismatches,
	}
}

// syncStatus classifies a report. Selector drift outranks plain drift
// because it cannot be corrected in place.
func syncStatus(report k8s.Report) string {
	if report.InSync() {
		return StatusInSync
	}
	for _, m := range report.Mismatches {
		if m.Selector {
			return StatusSelectorDrift
		}
	}
	return StatusDrift
}

// GetVerifyColumns returns the column configuration for the verify table.
func GetVerifyColumns() []ui.Column {
	return []ui.Column{
		{
			Title: "KIND",
			Key:   "kind",
			StyleFunc: func(value string) lipgloss.Style {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorBrightWhite))
			},
		},
		{
			Title: "NAME",
			Key:   "name",
			StyleFunc: func(value string) lipgloss.Style {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorBrightCyan))
			},
		},
		{
			Title: "STATUS",
			Key:   "status",
			StyleFunc: func(value string) lipgloss.Style {
				return ui.GetSyncStyle(value)
			},
		},
		{
			Title: "MISMATCHES",
			Key:   "mismatches",
			StyleFunc: func(value string) lipgloss.Style {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorYellow))
			},
		},
		{
			Title: "AGE",
			Key:   "age",
			StyleFunc: func(value string) lipgloss.Style {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorGray))
			},
		},
		{
			Title: "NAMESPACE",
			Key:   "namespace",
			StyleFunc: func(value string) lipgloss.Style {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorGray))
			},
		},
	}
}

// MarshalOutput serializes v as json or yaml.
func MarshalOutput(v any, format string) ([]byte, error) {
	switch format {
	case OutputFormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to serialize json: %w", err)
		}
		return out, nil
	case OutputFormatYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// PrintOutput serializes v in the given format and prints it with syntax
// highlighting when the output is a terminal.
func PrintOutput(v any, format string) error {
	out, err := MarshalOutput(v, format)
	if err != nil {
		return err
	}

	colorized, err := ui.Highlight(out, format)
	if err != nil {
		// Fallback to plain output if colorization fails
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(colorized)
	if format == OutputFormatJSON {
		fmt.Println()
	}
	return nil
}

// GetChartContext loads the chart context from the runtime carried in ctx.
// This is the common entry point used across the resolution commands.
func GetChartContext(ctx context.Context) (naming.ChartContext, error) {
	rt := runtime.FromRuntime(ctx)
	if rt == nil {
		return naming.ChartContext{}, fmt.Errorf("runtime not initialized")
	}
	return rt.ChartContext()
}

// FormatAge renders a timestamp as a human-readable age, or "-" when unset.
func FormatAge(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}
