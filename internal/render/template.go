package render

import (
	"bytes"
	"fmt"
	"text/template"

	sprig "github.com/Masterminds/sprig/v3"
	"sigs.k8s.io/yaml"

	"github.com/chartkit-dev/chartkit/internal/naming"
)

// FuncMap exposes the resolver as template functions, so custom templates
// can write {{ fullname }} instead of re-deriving names by hand.
func FuncMap(ctx naming.ChartContext) template.FuncMap {
	return template.FuncMap{
		"name":               func() string { return naming.Name(ctx) },
		"fullname":           func() string { return naming.FullName(ctx) },
		"chartLabel":         func() string { return naming.ChartLabel(ctx) },
		"serviceAccountName": func() string { return naming.ServiceAccountName(ctx) },
		"commonLabels":       func() map[string]string { return naming.CommonLabels(ctx) },
		"selectorLabels":     func() map[string]string { return naming.SelectorLabels(ctx) },
		"toYaml":             toYAML,
	}
}

// Template renders a user-supplied template with the Sprig function set plus
// the resolver functions. The chart context is the template data, so fields
// like {{ .ReleaseName }} work too.
func Template(ctx naming.ChartContext, text string) (string, error) {
	tpl, err := template.New("chartkit").
		Funcs(sprig.TxtFuncMap()).
		Funcs(FuncMap(ctx)).
		Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

// toYAML marshals v for embedding in a rendered document, without a
// trailing newline so it composes with indent-style pipelines.
func toYAML(v any) string {
	data, err := yaml.Marshal(v)
	if err != nil {
		return ""
	}
	return string(bytes.TrimSuffix(data, []byte("\n")))
}
