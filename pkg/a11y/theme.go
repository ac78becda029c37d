package a11y

import (
	theme "github.com/goliatone/go-theme"
)

// TransformManifest returns a copy of a theme manifest with every color token
// pushed through the contrast transform. Non-color tokens (anything that does
// not parse as #RRGGBB) pass through untouched, as do variant templates and
// assets. A disabled transform returns the manifest unchanged.
func (t *ContrastTransform) TransformManifest(manifest *theme.Manifest) *theme.Manifest {
	if manifest == nil || !t.Enabled() {
		return manifest
	}

	out := *manifest
	out.Tokens = t.transformTokens(manifest.Tokens)

	if len(manifest.Variants) > 0 {
		variants := make(map[string]theme.Variant, len(manifest.Variants))
		for name, variant := range manifest.Variants {
			v := variant
			v.Tokens = t.transformTokens(variant.Tokens)
			variants[name] = v
		}
		out.Variants = variants
	}

	return &out
}

func (t *ContrastTransform) transformTokens(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return tokens
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		out[key] = t.Transform(value)
	}
	return out
}
