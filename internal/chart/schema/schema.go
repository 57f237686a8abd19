// Package schema holds the embedded JSON schemas used to validate the
// override fields of a values document.
package schema

import (
	"embed"
	"fmt"
)

// FS is the embedded filesystem containing the schema files.
//
//go:embed **/*.json
var fs embed.FS

const (
	// LatestVersion is the newest schema version shipped with the binary.
	LatestVersion = "v1"
)

// GetOverridesSchema retrieves the JSON schema for validating naming
// overrides at a specific version. The schema file must be named
// "overrides.json" within the version directory.
func GetOverridesSchema(version string) ([]byte, error) {
	fileName := version + "/overrides.json"
	if _, err := fs.Open(fileName); err != nil {
		return nil, fmt.Errorf("overrides schema not found for version %s", version)
	}
	return fs.ReadFile(fileName)
}

// GetValidVersions returns the schema versions shipped with the binary.
func GetValidVersions() ([]string, error) {
	files, err := fs.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema directory: %w", err)
	}

	versions := make([]string, 0, len(files))
	for _, file := range files {
		if file.IsDir() {
			versions = append(versions, file.Name())
		}
	}
	return versions, nil
}
