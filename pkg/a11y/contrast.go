package a11y

import (
	"fmt"
	"strconv"
	"strings"
)

// ContrastLevel orders the high-contrast intensities.
type ContrastLevel string

const (
	ContrastNormal  ContrastLevel = "normal"
	ContrastHigh    ContrastLevel = "high"
	ContrastExtreme ContrastLevel = "extreme"
)

// ContrastTransform maps colors onto higher-contrast equivalents. Disabled
// transforms are the identity. The enabled levels are deterministic and
// pairwise distinguishable: for any color with a channel away from the 0/255
// poles, high differs from the input and extreme differs from high.
type ContrastTransform struct {
	enabled bool
	level   ContrastLevel
}

// NewContrastTransform builds a transform in the disabled state.
func NewContrastTransform() *ContrastTransform {
	return &ContrastTransform{level: ContrastNormal}
}

// SetEnabled toggles the transform.
func (t *ContrastTransform) SetEnabled(enabled bool) {
	if t == nil {
		return
	}
	t.enabled = enabled
}

// SetLevel selects the contrast intensity. Unknown levels degrade to normal.
func (t *ContrastTransform) SetLevel(level ContrastLevel) {
	if t == nil {
		return
	}
	switch level {
	case ContrastNormal, ContrastHigh, ContrastExtreme:
		t.level = level
	default:
		t.level = ContrastNormal
	}
}

// Enabled reports the toggle state.
func (t *ContrastTransform) Enabled() bool {
	return t != nil && t.enabled
}

// Level reports the configured intensity.
func (t *ContrastTransform) Level() ContrastLevel {
	if t == nil {
		return ContrastNormal
	}
	return t.level
}

// Transform maps a #RRGGBB color through the configured contrast curve.
// Disabled transforms and unparseable inputs return the input unchanged.
func (t *ContrastTransform) Transform(color string) string {
	if !t.Enabled() || t.level == ContrastNormal {
		return color
	}

	r, g, b, ok := parseHexColor(color)
	if !ok {
		return color
	}

	switch t.level {
	case ContrastHigh:
		return formatHexColor(stretchChannel(r), stretchChannel(g), stretchChannel(b))
	case ContrastExtreme:
		return formatHexColor(snapChannel(r), snapChannel(g), snapChannel(b))
	default:
		return color
	}
}

// stretchChannel pushes a channel toward its nearest pole while keeping 0 and
// 255 as the only fixed points.
func stretchChannel(c int) int {
	if c >= 128 {
		return 255 - (255-c)*3/5
	}
	return c * 3 / 5
}

// snapChannel collapses a channel onto its nearest pole.
func snapChannel(c int) int {
	if c >= 128 {
		return 255
	}
	return 0
}

func parseHexColor(raw string) (r, g, b int, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "#") || len(trimmed) != 7 {
		return 0, 0, 0, false
	}
	value, err := strconv.ParseUint(trimmed[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(value >> 16 & 0xff), int(value >> 8 & 0xff), int(value & 0xff), true
}

func formatHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
