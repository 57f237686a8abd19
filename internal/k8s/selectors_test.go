package k8s

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartkit-dev/chartkit/internal/naming"
)

func TestBuildSelector(t *testing.T) {
	chartCtx := naming.ChartContext{
		ChartName:   "cloudwatch-metrics",
		ReleaseName: "demo",
	}

	selector, err := BuildSelector(chartCtx)
	require.NoError(t, err)
	assert.Equal(t, "app.kubernetes.io/name=cloudwatch-metrics", selector)
}

func TestBuildSelectorWithOverride(t *testing.T) {
	chartCtx := naming.ChartContext{
		ChartName: "cloudwatch-metrics",
		Overrides: naming.Overrides{NameOverride: "metrics"},
	}

	selector, err := BuildSelector(chartCtx)
	require.NoError(t, err)
	assert.Equal(t, "app.kubernetes.io/name=metrics", selector)
}

func TestBuildSelectorRejectsInvalidValue(t *testing.T) {
	chartCtx := naming.ChartContext{
		ChartName: "Not_A/Valid Value!",
	}

	_, err := BuildSelector(chartCtx)
	assert.Error(t, err)
}

func TestCheckContext(t *testing.T) {
	t.Run("clean context", func(t *testing.T) {
		warnings, errs := CheckContext(naming.ChartContext{
			ChartName:      "cloudwatch-metrics",
			ChartVersion:   "0.2.1",
			ReleaseName:    "demo",
			ReleaseService: "Helm",
		})
		assert.Empty(t, warnings)
		assert.Empty(t, errs)
	})

	t.Run("empty chart name warns", func(t *testing.T) {
		warnings, errs := CheckContext(naming.ChartContext{
			ReleaseName:    "demo",
			ReleaseService: "Helm",
		})
		assert.NotEmpty(t, warnings)
		assert.Empty(t, errs)
	})

	t.Run("build metadata in version warns", func(t *testing.T) {
		warnings, _ := CheckContext(naming.ChartContext{
			ChartName:      "metrics",
			ChartVersion:   "1.2.3+build",
			ReleaseName:    "demo",
			ReleaseService: "Helm",
		})
		assert.NotEmpty(t, warnings)
	})

	t.Run("uppercase name is an error", func(t *testing.T) {
		_, errs := CheckContext(naming.ChartContext{
			ChartName:      "Metrics",
			ChartVersion:   "0.2.1",
			ReleaseName:    "demo",
			ReleaseService: "Helm",
		})
		assert.NotEmpty(t, errs)
	})
}
