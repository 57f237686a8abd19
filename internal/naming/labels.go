package naming

// Well-known label keys stamped onto managed objects.
const (
	// LabelChart identifies the chart (name and version) that produced the object.
	LabelChart = "helm.sh/chart"

	// LabelName is the base component name. It is the only selector label.
	LabelName = "app.kubernetes.io/name"

	// LabelVersion is the version of the application being deployed.
	LabelVersion = "app.kubernetes.io/version"

	// LabelManagedBy identifies the tool managing the release.
	LabelManagedBy = "app.kubernetes.io/managed-by"
)

// SelectorLabels resolves the labels used to bind controllers to the objects
// they manage. The set is deliberately a single stable key: selectors are
// immutable once a workload exists, so nothing that can change between
// upgrades (versions, release metadata) may appear here.
func SelectorLabels(ctx ChartContext) map[string]string {
	return map[string]string{
		LabelName: Name(ctx),
	}
}

// CommonLabels resolves the full label set for managed objects: the chart
// identifier, the selector labels, the app version when known, and the
// managing service.
func CommonLabels(ctx ChartContext) map[string]string {
	labels := map[string]string{
		LabelChart: ChartLabel(ctx),
	}
	for k, v := range SelectorLabels(ctx) {
		labels[k] = v
	}
	if ctx.AppVersion != "" {
		labels[LabelVersion] = ctx.AppVersion
	}
	labels[LabelManagedBy] = ctx.ReleaseService
	return labels
}

// MergeLabels overlays extra labels onto base without mutating either.
// Extra wins on key conflicts.
func MergeLabels(base, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
