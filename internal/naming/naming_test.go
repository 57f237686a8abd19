package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// NamingTestSuite covers name resolution and truncation behavior.
type NamingTestSuite struct {
	suite.Suite
}

func (s *NamingTestSuite) TestName() {
	tests := []struct {
		name     string
		ctx      ChartContext
		expected string
	}{
		{
			name:     "chart name when no override",
			ctx:      ChartContext{ChartName: "cloudwatch-metrics"},
			expected: "cloudwatch-metrics",
		},
		{
			name: "override wins over chart name",
			ctx: ChartContext{
				ChartName: "cloudwatch-metrics",
				Overrides: Overrides{NameOverride: "metrics"},
			},
			expected: "metrics",
		},
		{
			name:     "long chart name is truncated to 63",
			ctx:      ChartContext{ChartName: strings.Repeat("a", 80)},
			expected: strings.Repeat("a", 63),
		},
		{
			name:     "truncation strips trailing dash",
			ctx:      ChartContext{ChartName: strings.Repeat("a", 62) + "-b"},
			expected: strings.Repeat("a", 62),
		},
		{
			name:     "empty context degrades to empty string",
			ctx:      ChartContext{},
			expected: "",
		},
	}

	for _, tt := range tests {
		s.T().Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Name(tt.ctx))
		})
	}
}

func (s *NamingTestSuite) TestFullName() {
	tests := []struct {
		name     string
		ctx      ChartContext
		expected string
	}{
		{
			name: "release name qualifies the base name",
			ctx: ChartContext{
				ChartName:   "cloudzero-cloudwatch-metrics",
				ReleaseName: "demo",
			},
			expected: "demo-cloudzero-cloudwatch-metrics",
		},
		{
			name: "release name containing base is used as-is",
			ctx: ChartContext{
				ChartName:   "myapp",
				ReleaseName: "prod-myapp",
			},
			expected: "prod-myapp",
		},
		{
			name: "containment check uses the override as base",
			ctx: ChartContext{
				ChartName:   "some-chart",
				ReleaseName: "metrics-east",
				Overrides:   Overrides{NameOverride: "metrics"},
			},
			expected: "metrics-east",
		},
		{
			name: "fullname override wins outright",
			ctx: ChartContext{
				ChartName:   "some-chart",
				ReleaseName: "prod",
				Overrides:   Overrides{FullnameOverride: "pinned-name"},
			},
			expected: "pinned-name",
		},
		{
			name: "fullname override is still truncated",
			ctx: ChartContext{
				Overrides: Overrides{FullnameOverride: strings.Repeat("x", 70)},
			},
			expected: strings.Repeat("x", 63),
		},
		{
			name: "concatenation is truncated and trimmed",
			ctx: ChartContext{
				ChartName:   strings.Repeat("c", 60),
				ReleaseName: "rel",
			},
			// "rel-" + 60 chars cut at 63 leaves "rel-" + 59 chars.
			expected: "rel-" + strings.Repeat("c", 59),
		},
	}

	for _, tt := range tests {
		s.T().Run(tt.name, func(t *testing.T) {
			got := FullName(tt.ctx)
			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, len(got), MaxNameLength)
			assert.False(t, strings.HasSuffix(got, "-"))
		})
	}
}

// FullName must be deterministic: repeated resolution of the same context
// yields the same result.
func (s *NamingTestSuite) TestFullNameIsIdempotent() {
	ctx := ChartContext{
		ChartName:   "cloudzero-cloudwatch-metrics",
		ReleaseName: "demo",
		Overrides:   Overrides{NameOverride: "metrics"},
	}

	first := FullName(ctx)
	for range 10 {
		assert.Equal(s.T(), first, FullName(ctx))
	}
}

func (s *NamingTestSuite) TestChartLabel() {
	tests := []struct {
		name     string
		ctx      ChartContext
		expected string
	}{
		{
			name:     "name and version joined by dash",
			ctx:      ChartContext{ChartName: "foo", ChartVersion: "1.2.3"},
			expected: "foo-1.2.3",
		},
		{
			name:     "build metadata separator replaced by underscore",
			ctx:      ChartContext{ChartName: "foo", ChartVersion: "1.2.3+build"},
			expected: "foo-1.2.3_build",
		},
		{
			name:     "every plus is replaced",
			ctx:      ChartContext{ChartName: "a+b", ChartVersion: "1+2+3"},
			expected: "a_b-1_2_3",
		},
		{
			name:     "long value is truncated",
			ctx:      ChartContext{ChartName: strings.Repeat("n", 60), ChartVersion: "1.0.0"},
			expected: strings.Repeat("n", 60) + "-1.",
		},
	}

	for _, tt := range tests {
		s.T().Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ChartLabel(tt.ctx))
		})
	}
}

func (s *NamingTestSuite) TestServiceAccountName() {
	ctx := ChartContext{
		ChartName:   "metrics",
		ReleaseName: "demo",
	}

	s.Run("falls back to the fully-qualified name", func() {
		s.Equal(FullName(ctx), ServiceAccountName(ctx))
	})

	s.Run("override wins regardless of other fields", func() {
		withOverride := ctx
		withOverride.Overrides.ServiceAccountName = "custom-sa"
		s.Equal("custom-sa", ServiceAccountName(withOverride))
	})
}

func (s *NamingTestSuite) TestTruncate() {
	s.Equal("", Truncate(""))
	s.Equal("short", Truncate("short"))
	s.Equal(strings.Repeat("a", 63), Truncate(strings.Repeat("a", 64)))
	s.Equal("abc", Truncate("abc-"))
}

func TestNamingTestSuite(t *testing.T) {
	suite.Run(t, new(NamingTestSuite))
}
