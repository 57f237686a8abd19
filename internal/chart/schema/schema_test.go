package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOverridesSchema(t *testing.T) {
	data, err := GetOverridesSchema(LatestVersion)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	_, err = GetOverridesSchema("v999")
	assert.Error(t, err)
}

func TestGetValidVersions(t *testing.T) {
	versions, err := GetValidVersions()
	require.NoError(t, err)
	assert.Contains(t, versions, LatestVersion)
}
