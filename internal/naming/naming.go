package naming

import "strings"

// MaxNameLength is the longest name segment the orchestrator accepts
// (DNS label limit). Some resources allow longer names, but 63 is the
// limit shared by names and label values, so everything resolves to it.
const MaxNameLength = 63

// Truncate shortens s to MaxNameLength characters and strips a trailing
// dash left behind by the cut. Names differing only beyond the limit
// collapse to the same value; that is inherited chart behavior and
// deliberately not defended against here.
func Truncate(s string) string {
	if len(s) > MaxNameLength {
		s = s[:MaxNameLength]
	}
	return strings.TrimSuffix(s, "-")
}

// Name resolves the base component name: the name override when set,
// otherwise the chart name.
func Name(ctx ChartContext) string {
	name := ctx.ChartName
	if ctx.Overrides.NameOverride != "" {
		name = ctx.Overrides.NameOverride
	}
	return Truncate(name)
}

// FullName resolves the fully-qualified resource name. A fullname override
// wins outright. Otherwise the release name qualifies the base name, except
// when the release name already contains it, which avoids redundant results
// like "myapp-myapp" when a release is named after its chart.
func FullName(ctx ChartContext) string {
	if ctx.Overrides.FullnameOverride != "" {
		return Truncate(ctx.Overrides.FullnameOverride)
	}

	base := ctx.ChartName
	if ctx.Overrides.NameOverride != "" {
		base = ctx.Overrides.NameOverride
	}

	if strings.Contains(ctx.ReleaseName, base) {
		return Truncate(ctx.ReleaseName)
	}
	return Truncate(ctx.ReleaseName + "-" + base)
}

// ChartLabel resolves the chart identifier label value: name and version
// joined by a dash. Build metadata separators ("+") are not valid in label
// values and are replaced with underscores.
func ChartLabel(ctx ChartContext) string {
	label := ctx.ChartName + "-" + ctx.ChartVersion
	return Truncate(strings.ReplaceAll(label, "+", "_"))
}

// ServiceAccountName resolves the service account name: the override when
// set, otherwise the fully-qualified resource name.
func ServiceAccountName(ctx ChartContext) string {
	if ctx.Overrides.ServiceAccountName != "" {
		return ctx.Overrides.ServiceAccountName
	}
	return FullName(ctx)
}
