package chart

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/fluxcd/pkg/envsubst"
	"github.com/joho/godotenv"
)

// parseEnvFile parses a dotenv file into a variable map.
//
// If explicitlySet is true, a missing file is an error.
// If explicitlySet is false, a missing file yields no variables.
func parseEnvFile(path string, explicitlySet bool) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if explicitlySet {
			return nil, fmt.Errorf("failed to read %s file: %w", path, err)
		}
		return nil, nil
	}

	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s file: %w", path, err)
	}

	return vars, nil
}

func parseOSVariables() (map[string]string, error) {
	env := os.Environ()
	buf := bytes.NewBufferString(strings.Join(env, "\n"))
	buf.WriteString("\n")

	vars, err := godotenv.Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OS environment variables: %w", err)
	}

	return vars, nil
}

// SubstituteVariables substitutes ${VAR} references in the context file data.
// Variables come from the dotenv file (lower priority) and the OS environment
// (higher priority). Unknown variables expand to the empty string.
func SubstituteVariables(data []byte, envFile string) ([]byte, error) {
	variables := make(map[string]string)

	fileVars, err := parseEnvFile(envFile, envFile != "")
	if err != nil {
		return nil, err
	}
	if err := mergo.Merge(&variables, fileVars); err != nil {
		return nil, fmt.Errorf("failed to merge env file variables: %w", err)
	}

	osVars, err := parseOSVariables()
	if err != nil {
		return nil, err
	}
	if err := mergo.Merge(&variables, osVars, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge OS environment variables: %w", err)
	}

	content, err := envsubst.Eval(string(data), func(s string) (string, bool) {
		return variables[s], true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to substitute variables: %w", err)
	}

	return []byte(content), nil
}
