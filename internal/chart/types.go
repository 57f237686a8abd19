package chart

// ContextFile is the on-disk representation of a chartkit context
// (.chartkit.yaml). It can stand in for a chart directory entirely, or
// supplement one with release metadata and inline values.
type ContextFile struct {
	ChartName      string         `json:"chartName,omitempty" yaml:"chartName,omitempty"`
	ChartVersion   string         `json:"chartVersion,omitempty" yaml:"chartVersion,omitempty"`
	AppVersion     string         `json:"appVersion,omitempty" yaml:"appVersion,omitempty"`
	ReleaseName    string         `json:"releaseName,omitempty" yaml:"releaseName,omitempty"`
	ReleaseService string         `json:"releaseService,omitempty" yaml:"releaseService,omitempty"`
	Values         map[string]any `json:"values,omitempty" yaml:"values,omitempty"`
}

// LoadOptions collects the inputs a single context resolution may draw from.
// Precedence, lowest to highest: chart defaults, context file, values files,
// --set pairs, explicit flags.
type LoadOptions struct {
	// ChartDir is a chart directory to read metadata and default values from.
	ChartDir string

	// ContextPath is the path to a context file. When empty,
	// DefaultContextPath is used if it exists.
	ContextPath string

	// EnvFile is an optional dotenv file used for ${VAR} substitution in the
	// context file.
	EnvFile string

	// ValueFiles are additional values files, highest-priority last.
	ValueFiles []string

	// SetValues are --set style key=value pairs.
	SetValues []string

	// ReleaseName and ReleaseService override anything from the context file.
	ReleaseName    string
	ReleaseService string
}
