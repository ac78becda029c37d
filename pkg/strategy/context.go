// Package strategy is the pure-function decision core. Every selector maps an
// explicit (content signal, capability signal, context signal) tuple onto a
// declarative strategy value; there is no I/O, no randomness, and no hidden
// state, so identical inputs always produce identical outputs.
package strategy

import (
	"sort"

	"github.com/goliatone/go-adaptive/pkg/analysis"
)

// DataTypeHint tells the selectors what kind of content is being presented
// when the caller knows more than the introspected shape reveals.
type DataTypeHint string

const (
	HintGeneric      DataTypeHint = "generic"
	HintText         DataTypeHint = "text"
	HintNumber       DataTypeHint = "number"
	HintDate         DataTypeHint = "date"
	HintImage        DataTypeHint = "image"
	HintMedia        DataTypeHint = "media"
	HintCollection   DataTypeHint = "collection"
	HintHierarchical DataTypeHint = "hierarchical"
)

// PresentationPreference is the caller's layout wish; automatic defers the
// whole decision to the selectors.
type PresentationPreference string

const (
	PreferenceAutomatic PresentationPreference = "automatic"
	PreferenceCompact   PresentationPreference = "compact"
	PreferenceCard      PresentationPreference = "card"
	PreferenceGrid      PresentationPreference = "grid"
	PreferenceList      PresentationPreference = "list"
	PreferenceDetail    PresentationPreference = "detail"
	PreferenceSummary   PresentationPreference = "summary"
)

// UsageContext names the surface a presentation lands on.
type UsageContext string

const (
	ContextDashboard UsageContext = "dashboard"
	ContextBrowse    UsageContext = "browse"
	ContextDetail    UsageContext = "detail"
	ContextEdit      UsageContext = "edit"
	ContextCreate    UsageContext = "create"
	ContextSearch    UsageContext = "search"
	ContextSettings  UsageContext = "settings"
	ContextModal     UsageContext = "modal"
)

// InteractionStyle describes how the user manipulates the surface.
type InteractionStyle string

const (
	InteractionStatic  InteractionStyle = "static"
	InteractionTouch   InteractionStyle = "touch"
	InteractionPointer InteractionStyle = "pointer"
	InteractionRemote  InteractionStyle = "remote"
)

// ContentDensity describes how tightly content is packed.
type ContentDensity string

const (
	DensityCompact  ContentDensity = "compact"
	DensityBalanced ContentDensity = "balanced"
	DensitySpacious ContentDensity = "spacious"
)

// CustomHint carries caller-supplied guidance consulted by the selectors.
// Hints bias a decision; selectors never require them and ignore hints they do
// not understand.
type CustomHint struct {
	Type             string            `json:"type"`
	Priority         int               `json:"priority"`
	OverridesDefault bool              `json:"overridesDefault"`
	Data             map[string]string `json:"data,omitempty"`
}

// PresentationContext bundles the per-call presentation inputs. It is an
// immutable value: the With* helpers return copies and never mutate the
// receiver.
type PresentationContext struct {
	DataType          DataTypeHint
	Preference        PresentationPreference
	Complexity        analysis.ComplexityTier
	Context           UsageContext
	CustomPreferences map[string]string
	hints             []CustomHint
}

// NewContext builds a context with defaulted enum values.
func NewContext(dataType DataTypeHint, preference PresentationPreference, complexity analysis.ComplexityTier, usage UsageContext) PresentationContext {
	if dataType == "" {
		dataType = HintGeneric
	}
	if preference == "" {
		preference = PreferenceAutomatic
	}
	if usage == "" {
		usage = ContextBrowse
	}
	return PresentationContext{
		DataType:   dataType,
		Preference: preference,
		Complexity: complexity,
		Context:    usage,
	}
}

// WithPreferences returns a copy carrying the supplied custom preferences.
func (c PresentationContext) WithPreferences(prefs map[string]string) PresentationContext {
	if len(prefs) == 0 {
		return c
	}
	cloned := make(map[string]string, len(prefs))
	for k, v := range prefs {
		cloned[k] = v
	}
	c.CustomPreferences = cloned
	return c
}

// WithHints returns a copy carrying the supplied hints appended after any
// existing ones. Hints keep their insertion order; ties in priority resolve by
// position.
func (c PresentationContext) WithHints(hints ...CustomHint) PresentationContext {
	if len(hints) == 0 {
		return c
	}
	merged := make([]CustomHint, 0, len(c.hints)+len(hints))
	merged = append(merged, c.hints...)
	merged = append(merged, hints...)
	c.hints = merged
	return c
}

// Hints returns the ordered hint list, highest priority first. The returned
// slice is a copy.
func (c PresentationContext) Hints() []CustomHint {
	if len(c.hints) == 0 {
		return nil
	}
	out := make([]CustomHint, len(c.hints))
	copy(out, c.hints)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

// hintValue finds the highest-priority hint of the given type carrying the
// requested data key. Only hints that override defaults are surfaced.
func (c PresentationContext) hintValue(hintType, key string) (string, bool) {
	for _, hint := range c.Hints() {
		if hint.Type != hintType || !hint.OverridesDefault {
			continue
		}
		if value, ok := hint.Data[key]; ok && value != "" {
			return value, true
		}
	}
	return "", false
}
