package chart

import (
	"testing"

	"github.com/chartkit-dev/chartkit/internal/naming"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOverrides(t *testing.T) {
	tests := []struct {
		name      string
		values    map[string]any
		expected  naming.Overrides
		expectErr bool
	}{
		{
			name:     "empty values yield empty overrides",
			values:   map[string]any{},
			expected: naming.Overrides{},
		},
		{
			name: "all overrides set",
			values: map[string]any{
				"nameOverride":     "metrics",
				"fullnameOverride": "pinned",
				"serviceAccount": map[string]any{
					"name": "custom-sa",
				},
			},
			expected: naming.Overrides{
				NameOverride:       "metrics",
				FullnameOverride:   "pinned",
				ServiceAccountName: "custom-sa",
			},
		},
		{
			name: "numeric override is cast to string",
			values: map[string]any{
				"nameOverride": 42,
			},
			expected: naming.Overrides{NameOverride: "42"},
		},
		{
			name: "unrelated values are ignored",
			values: map[string]any{
				"replicaCount": 3,
				"image":        map[string]any{"repository": "nginx"},
			},
			expected: naming.Overrides{},
		},
		{
			name: "mapping where a string is expected fails validation",
			values: map[string]any{
				"nameOverride": map[string]any{"oops": true},
			},
			expectErr: true,
		},
		{
			name: "serviceAccount as scalar fails validation",
			values: map[string]any{
				"serviceAccount": "not-a-mapping",
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeOverrides(tt.values)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAppVersionFromImage(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]any
		expected string
	}{
		{
			name:     "no image",
			values:   map[string]any{},
			expected: "",
		},
		{
			name:     "simple tagged reference",
			values:   map[string]any{"image": "nginx:1.21"},
			expected: "1.21",
		},
		{
			name:     "registry with port and tag",
			values:   map[string]any{"image": "registry.example.com:5000/nginx:1.21"},
			expected: "1.21",
		},
		{
			name:     "digest reference is not a version",
			values:   map[string]any{"image": "nginx@sha256:aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
			expected: "",
		},
		{
			name:     "untagged reference is not a version",
			values:   map[string]any{"image": "nginx"},
			expected: "",
		},
		{
			name: "split repository and tag mapping",
			values: map[string]any{
				"image": map[string]any{"repository": "nginx", "tag": "1.21"},
			},
			expected: "1.21",
		},
		{
			name: "mapping without tag",
			values: map[string]any{
				"image": map[string]any{"repository": "nginx"},
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, appVersionFromImage(tt.values))
		})
	}
}
