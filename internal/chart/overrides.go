package chart

import (
	"bytes"
	"fmt"

	"github.com/chartkit-dev/chartkit/internal/chart/schema"
	"github.com/chartkit-dev/chartkit/internal/naming"
	"github.com/go-viper/mapstructure/v2"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/cast"
)

// rawOverrides is the loosely-typed shape of the override fields as they
// appear in a values document. Scalars may arrive as numbers (YAML users
// write nameOverride: 2 more often than one would hope), so the fields stay
// untyped until cast.
type rawOverrides struct {
	NameOverride     any `mapstructure:"nameOverride"`
	FullnameOverride any `mapstructure:"fullnameOverride"`
	ServiceAccount   struct {
		Name any `mapstructure:"name"`
	} `mapstructure:"serviceAccount"`
}

// ValidateOverrides validates the override fields of a values document
// against the embedded schema for the given version.
func ValidateOverrides(values map[string]any, version string) error {
	schemaBytes, err := schema.GetOverridesSchema(version)
	if err != nil {
		return fmt.Errorf("failed to get overrides schema version %q: %w", version, err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat()

	schemaID := version + "/overrides.json"
	jsonSchema, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return fmt.Errorf("invalid overrides schema JSON for version %q: %w", version, err)
	}

	if err := compiler.AddResource(schemaID, jsonSchema); err != nil {
		return fmt.Errorf("failed to load overrides schema version %q: %w", version, err)
	}

	compiled, err := compiler.Compile(schemaID)
	if err != nil {
		return fmt.Errorf("failed to compile overrides schema version %q: %w", version, err)
	}

	if err := compiled.Validate(values); err != nil {
		return fmt.Errorf("overrides validation failed for schema version %q: %w", version, err)
	}
	return nil
}

// DecodeOverrides extracts the naming overrides from a merged values map.
// The values document is validated first; loose scalar types are tolerated
// and cast to strings.
func DecodeOverrides(values map[string]any) (naming.Overrides, error) {
	if err := ValidateOverrides(values, schema.LatestVersion); err != nil {
		return naming.Overrides{}, err
	}

	var raw rawOverrides
	config := &mapstructure.DecoderConfig{
		Result: &raw,
	}
	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return naming.Overrides{}, fmt.Errorf("failed to create overrides decoder: %w", err)
	}
	if err := decoder.Decode(values); err != nil {
		return naming.Overrides{}, fmt.Errorf("failed to decode overrides: %w", err)
	}

	return naming.Overrides{
		NameOverride:       cast.ToString(raw.NameOverride),
		FullnameOverride:   cast.ToString(raw.FullnameOverride),
		ServiceAccountName: cast.ToString(raw.ServiceAccount.Name),
	}, nil
}
