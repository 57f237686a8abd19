package cli

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartkit-dev/chartkit/internal/k8s"
	"github.com/chartkit-dev/chartkit/internal/naming"
)

func TestResolve(t *testing.T) {
	chartCtx := naming.ChartContext{
		ChartName:      "mychart",
		ChartVersion:   "1.2.3",
		AppVersion:     "2.0.0",
		ReleaseName:    "my-release",
		ReleaseService: "Helm",
	}

	view := Resolve(chartCtx)

	assert.Equal(t, "mychart", view.Name)
	assert.Equal(t, "my-release-mychart", view.FullName)
	assert.Equal(t, "mychart-1.2.3", view.ChartLabel)
	assert.Equal(t, "my-release-mychart", view.ServiceAccountName)
	assert.Equal(t, map[string]string{"app.kubernetes.io/name": "mychart"}, view.SelectorLabels)
	assert.Equal(t, "Helm", view.CommonLabels["app.kubernetes.io/managed-by"])
}

func TestReportToView(t *testing.T) {
	tests := []struct {
		name       string
		report     k8s.Report
		wantStatus string
	}{
		{
			name:       "no mismatches is in sync",
			report:     k8s.Report{Kind: "Service", Name: "svc"},
			wantStatus: StatusInSync,
		},
		{
			name: "non-selector mismatch is drift",
			report: k8s.Report{
				Kind: "Service",
				Name: "svc",
				Mismatches: []k8s.Mismatch{
					{Key: "app.kubernetes.io/managed-by", Want: "Helm", Got: "kubectl"},
				},
			},
			wantStatus: StatusDrift,
		},
		{
			name: "any selector mismatch outranks drift",
			report: k8s.Report{
				Kind: "Deployment",
				Name: "deploy",
				Mismatches: []k8s.Mismatch{
					{Key: "helm.sh/chart", Want: "mychart-1.2.3", Got: "mychart-1.0.0"},
					{Key: "app.kubernetes.io/name", Want: "mychart", Got: "other", Selector: true},
				},
			},
			wantStatus: StatusSelectorDrift,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ReportToView(tt.report)
			assert.Equal(t, tt.wantStatus, view.Status)
			assert.Equal(t, tt.report.Kind, view.Kind)
			assert.Len(t, view.Mismatches, len(tt.report.Mismatches))
		})
	}
}

func TestReportToView_Age(t *testing.T) {
	report := k8s.Report{
		Kind:      "Service",
		Name:      "svc",
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	view := ReportToView(report)
	assert.Contains(t, view.Age, "hours ago")

	assert.Equal(t, "-", ReportToView(k8s.Report{}).Age)
}

func TestMarshalOutput(t *testing.T) {
	view := ResolutionView{Name: "mychart", FullName: "my-release-mychart"}

	out, err := MarshalOutput(view, OutputFormatJSON)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "my-release-mychart", decoded["fullname"])

	out, err = MarshalOutput(view, OutputFormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "fullname: my-release-mychart")

	_, err = MarshalOutput(view, OutputFormatTable)
	assert.Error(t, err)
}
