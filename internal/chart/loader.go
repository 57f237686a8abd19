// Package chart assembles a naming.ChartContext from the places its inputs
// live: a chart directory, a chartkit context file, values files, and
// command-line overrides.
package chart

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"helm.sh/helm/v4/pkg/chart/v2/loader"
	"sigs.k8s.io/yaml"

	"github.com/chartkit-dev/chartkit/internal/naming"
)

const (
	// DefaultContextPath is where a context file is looked for when no path
	// is given.
	DefaultContextPath = ".chartkit.yaml"

	// DefaultReleaseService is the managed-by value used when none is
	// configured.
	DefaultReleaseService = "Helm"
)

// LoadContextFile reads and parses a context file, substituting ${VAR}
// references first. A missing file is only an error when the path was set
// explicitly; otherwise an empty context is returned.
func LoadContextFile(path, envFile string) (*ContextFile, error) {
	explicitlySet := path != ""
	if path == "" {
		path = DefaultContextPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicitlySet {
			return nil, fmt.Errorf("failed to read context file: %w", err)
		}
		return &ContextFile{}, nil
	}

	substituted, err := SubstituteVariables(data, envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to substitute variables in %s: %w", path, err)
	}

	var ctxFile ContextFile
	if err := yaml.Unmarshal(substituted, &ctxFile); err != nil {
		return nil, fmt.Errorf("failed to parse context file %s: %w", path, err)
	}

	log.Debugf("Loaded context file: %s", path)

	return &ctxFile, nil
}

// Load assembles the chart context for one resolution. Chart metadata and
// default values come from the chart directory when one is given; the
// context file fills in or replaces metadata and supplies inline values;
// values files and --set pairs are layered on top; explicit release flags
// win over everything.
func Load(opts LoadOptions) (naming.ChartContext, error) {
	ctxFile, err := LoadContextFile(opts.ContextPath, opts.EnvFile)
	if err != nil {
		return naming.ChartContext{}, err
	}

	resolved := naming.ChartContext{
		ChartName:      ctxFile.ChartName,
		ChartVersion:   ctxFile.ChartVersion,
		AppVersion:     ctxFile.AppVersion,
		ReleaseName:    ctxFile.ReleaseName,
		ReleaseService: ctxFile.ReleaseService,
	}

	var chartValues map[string]any
	if opts.ChartDir != "" {
		ch, err := loader.Load(opts.ChartDir)
		if err != nil {
			return naming.ChartContext{}, fmt.Errorf("failed to load chart from %s: %w", opts.ChartDir, err)
		}
		resolved.ChartName = ch.Metadata.Name
		resolved.ChartVersion = ch.Metadata.Version
		if ch.Metadata.AppVersion != "" {
			resolved.AppVersion = ch.Metadata.AppVersion
		}
		chartValues = ch.Values

		log.Infof("Loaded chart %q version %s", resolved.ChartName, resolved.ChartVersion)
	}

	values, err := MergeValues(chartValues, ctxFile.Values, opts.ValueFiles, opts.SetValues)
	if err != nil {
		return naming.ChartContext{}, err
	}

	overrides, err := DecodeOverrides(values)
	if err != nil {
		return naming.ChartContext{}, err
	}
	resolved.Overrides = overrides

	if resolved.AppVersion == "" {
		if v := appVersionFromImage(values); v != "" {
			log.Debugf("Derived app version %q from image tag", v)
			resolved.AppVersion = v
		}
	}

	if opts.ReleaseName != "" {
		resolved.ReleaseName = opts.ReleaseName
	}
	if opts.ReleaseService != "" {
		resolved.ReleaseService = opts.ReleaseService
	}
	if resolved.ReleaseService == "" {
		resolved.ReleaseService = DefaultReleaseService
	}

	if resolved.ChartName == "" && resolved.Overrides.NameOverride == "" {
		log.Warnf("No chart name or name override configured; resolved names will be empty")
	}

	return resolved, nil
}
