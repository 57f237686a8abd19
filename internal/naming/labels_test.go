package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/maps"
)

func TestSelectorLabels(t *testing.T) {
	ctx := ChartContext{
		ChartName:      "cloudwatch-metrics",
		ChartVersion:   "0.2.1",
		AppVersion:     "1.4.0",
		ReleaseName:    "demo",
		ReleaseService: "Helm",
	}

	selector := SelectorLabels(ctx)

	// Exactly one key: the selector set must stay stable across upgrades.
	assert.Equal(t, []string{LabelName}, maps.Keys(selector))
	assert.Equal(t, "cloudwatch-metrics", selector[LabelName])

	// Stable across repeated calls with identical input.
	assert.Equal(t, selector, SelectorLabels(ctx))
}

func TestCommonLabels(t *testing.T) {
	tests := []struct {
		name     string
		ctx      ChartContext
		expected map[string]string
	}{
		{
			name: "full context",
			ctx: ChartContext{
				ChartName:      "cloudwatch-metrics",
				ChartVersion:   "0.2.1",
				AppVersion:     "1.4.0",
				ReleaseName:    "demo",
				ReleaseService: "Helm",
			},
			expected: map[string]string{
				LabelChart:     "cloudwatch-metrics-0.2.1",
				LabelName:      "cloudwatch-metrics",
				LabelVersion:   "1.4.0",
				LabelManagedBy: "Helm",
			},
		},
		{
			name: "version label omitted when appVersion is empty",
			ctx: ChartContext{
				ChartName:      "cloudwatch-metrics",
				ChartVersion:   "0.2.1",
				ReleaseName:    "demo",
				ReleaseService: "Helm",
			},
			expected: map[string]string{
				LabelChart:     "cloudwatch-metrics-0.2.1",
				LabelName:      "cloudwatch-metrics",
				LabelManagedBy: "Helm",
			},
		},
		{
			name: "name override flows into selector and chart labels independently",
			ctx: ChartContext{
				ChartName:      "cloudwatch-metrics",
				ChartVersion:   "0.2.1+build",
				ReleaseName:    "demo",
				ReleaseService: "Helm",
				Overrides:      Overrides{NameOverride: "metrics"},
			},
			expected: map[string]string{
				LabelChart:     "cloudwatch-metrics-0.2.1_build",
				LabelName:      "metrics",
				LabelManagedBy: "Helm",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CommonLabels(tt.ctx))
		})
	}
}

func TestMergeLabels(t *testing.T) {
	base := map[string]string{"a": "1", "b": "2"}
	extra := map[string]string{"b": "override", "c": "3"}

	merged := MergeLabels(base, extra)

	assert.Equal(t, map[string]string{"a": "1", "b": "override", "c": "3"}, merged)

	// Inputs must not be mutated.
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, base)
	assert.Equal(t, map[string]string{"b": "override", "c": "3"}, extra)
}
