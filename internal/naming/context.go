// Package naming derives Kubernetes resource names and label sets from chart
// and release metadata. It implements, in plain Go, the conventions charts
// usually encode in their _helpers.tpl: override-aware base names,
// release-qualified full names, and the app.kubernetes.io label set.
package naming

// ChartContext carries everything a single resolution needs: chart metadata,
// release metadata, and user-supplied overrides. It is constructed by the
// caller, read-only for the duration of a call, and safe to share.
type ChartContext struct {
	// ChartName is the chart's name from its metadata file.
	ChartName string `json:"chartName" yaml:"chartName"`

	// ChartVersion is the chart's version from its metadata file.
	ChartVersion string `json:"chartVersion" yaml:"chartVersion"`

	// AppVersion is the version of the application the chart deploys.
	// May be empty; an empty AppVersion simply omits the version label.
	AppVersion string `json:"appVersion,omitempty" yaml:"appVersion,omitempty"`

	// ReleaseName is the name of the deployed release instance.
	ReleaseName string `json:"releaseName" yaml:"releaseName"`

	// ReleaseService identifies the tool managing the release,
	// e.g. "Helm". It becomes the managed-by label value.
	ReleaseService string `json:"releaseService" yaml:"releaseService"`

	// Overrides holds the user-supplied naming overrides.
	Overrides Overrides `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Overrides are the user-facing knobs that short-circuit name derivation.
// Empty fields mean "derive it"; they are never an error.
type Overrides struct {
	// NameOverride replaces the chart name as the base component name.
	NameOverride string `json:"nameOverride,omitempty" yaml:"nameOverride,omitempty"`

	// FullnameOverride replaces the entire fully-qualified resource name.
	FullnameOverride string `json:"fullnameOverride,omitempty" yaml:"fullnameOverride,omitempty"`

	// ServiceAccountName replaces the derived service account name.
	ServiceAccountName string `json:"serviceAccountName,omitempty" yaml:"serviceAccountName,omitempty"`
}
