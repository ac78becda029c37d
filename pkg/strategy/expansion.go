package strategy

import (
	"github.com/goliatone/go-adaptive/pkg/capability"
)

// ExpansionKind enumerates how an interactive card reveals more content.
type ExpansionKind string

const (
	ExpandNone          ExpansionKind = "none"
	ExpandHover         ExpansionKind = "hover"
	ExpandPress         ExpansionKind = "press"
	ExpandLongPress     ExpansionKind = "longPress"
	ExpandContentReveal ExpansionKind = "contentReveal"
)

// ExpansionStrategy describes the expansion behaviour a renderer should wire.
type ExpansionStrategy struct {
	Supported         []ExpansionKind `json:"supportedStrategies"`
	Primary           ExpansionKind   `json:"primaryStrategy"`
	ExpansionScale    float64         `json:"expansionScale"`
	AnimationDuration float64         `json:"animationDuration"`
}

// expansionRow is one row of the interaction-style decision table.
type expansionRow struct {
	supported []ExpansionKind
	primary   ExpansionKind
	duration  float64
}

var expansionTable = map[InteractionStyle]expansionRow{
	InteractionTouch: {
		supported: []ExpansionKind{ExpandPress, ExpandLongPress, ExpandContentReveal},
		primary:   ExpandPress,
		duration:  0.25,
	},
	InteractionPointer: {
		supported: []ExpansionKind{ExpandHover, ExpandPress, ExpandContentReveal},
		primary:   ExpandHover,
		duration:  0.2,
	},
	InteractionRemote: {
		supported: []ExpansionKind{ExpandContentReveal},
		primary:   ExpandContentReveal,
		duration:  0.3,
	},
}

// densityScale maps content density onto the expansion growth factor. Dense
// layouts expand less so neighbours stay visible.
var densityScale = map[ContentDensity]float64{
	DensityCompact:  1.05,
	DensityBalanced: 1.1,
	DensitySpacious: 1.15,
}

// staticExpansion is the forced result for non-interactive surfaces.
func staticExpansion() ExpansionStrategy {
	return ExpansionStrategy{
		Supported:         []ExpansionKind{ExpandNone},
		Primary:           ExpandNone,
		ExpansionScale:    1.0,
		AnimationDuration: 0.0,
	}
}

// SelectExpansion decides how cards expand. A static interaction style forces
// the no-expansion strategy regardless of every other input; this is an
// absolute invariant, not a heuristic. Unknown styles degrade the same way.
func SelectExpansion(itemCount int, availableWidth float64, device capability.DeviceType, style InteractionStyle, density ContentDensity) ExpansionStrategy {
	if style == InteractionStatic {
		return staticExpansion()
	}

	row, ok := expansionTable[style]
	if !ok {
		return staticExpansion()
	}

	scale, ok := densityScale[density]
	if !ok {
		scale = densityScale[DensityBalanced]
	}

	duration := row.duration
	// Watch-sized surfaces keep animations short.
	if device == capability.DeviceWatch {
		duration = duration / 2
	}
	// Crowded grids tone the zoom down one step.
	if itemCount > 20 && availableWidth > 0 {
		scale = densityScale[DensityCompact]
	}

	supported := make([]ExpansionKind, len(row.supported))
	copy(supported, row.supported)

	return ExpansionStrategy{
		Supported:         supported,
		Primary:           row.primary,
		ExpansionScale:    scale,
		AnimationDuration: duration,
	}
}
