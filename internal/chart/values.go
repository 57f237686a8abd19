package chart

import (
	"fmt"

	"dario.cat/mergo"
	"helm.sh/helm/v4/pkg/cli/values"
	"helm.sh/helm/v4/pkg/getter"
)

// MergeValues produces the effective values map for a resolution.
// Layers, lowest to highest: chart default values, context-file inline
// values, then -f files and --set pairs merged the way the Helm CLI does.
func MergeValues(base, inline map[string]any, valueFiles, setValues []string) (map[string]any, error) {
	merged := make(map[string]any)

	if err := mergo.Merge(&merged, base, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge chart default values: %w", err)
	}

	if err := mergo.Merge(&merged, inline, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge context file values: %w", err)
	}

	if len(valueFiles) == 0 && len(setValues) == 0 {
		return merged, nil
	}

	opts := values.Options{
		ValueFiles: valueFiles,
		Values:     setValues,
	}
	// Only local value files are supported; no remote getters are wired in.
	user, err := opts.MergeValues(getter.Providers{})
	if err != nil {
		return nil, fmt.Errorf("failed to merge user-supplied values: %w", err)
	}

	if err := mergo.Merge(&merged, user, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge user-supplied values: %w", err)
	}

	return merged, nil
}
