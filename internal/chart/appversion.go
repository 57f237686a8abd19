package chart

import (
	"github.com/distribution/reference"
	"github.com/spf13/cast"
)

// appVersionFromImage derives an application version from the image
// reference in the values document, for charts whose metadata omits an
// appVersion. Only a tag qualifies as a version; digests and untagged
// references yield nothing.
//
// Handles the usual reference shapes: nginx:1.21,
// registry.example.com:5000/nginx:1.21, nginx@sha256:....
func appVersionFromImage(values map[string]any) string {
	img, ok := values["image"]
	if !ok {
		return ""
	}

	var ref string
	switch v := img.(type) {
	case map[string]any:
		// Split repository/tag convention.
		tag := cast.ToString(v["tag"])
		if tag != "" {
			return tag
		}
		ref = cast.ToString(v["repository"])
	default:
		ref = cast.ToString(v)
	}
	if ref == "" {
		return ""
	}

	parsed, err := reference.ParseNormalizedNamed(ref)
	if err != nil {
		return ""
	}
	if tagged, ok := parsed.(reference.Tagged); ok {
		return tagged.Tag()
	}
	return ""
}
