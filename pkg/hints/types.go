// Package hints loads presentation hint overlay documents. Overlays let an
// application bias the strategy selectors per data-type profile without
// touching the decision tables: each profile contributes an ordered CustomHint
// list merged into the presentation context by a decorator.
package hints

import (
	"sort"
	"strings"

	"github.com/goliatone/go-adaptive/pkg/strategy"
)

// Store keeps the parsed hint profiles. It is safe for concurrent readers when
// treated as immutable after construction.
type Store struct {
	profiles map[string]Profile
}

// Profile is the hint set registered for one data-type hint.
type Profile struct {
	DataType string
	Source   string
	Hints    []HintConfig
}

// HintConfig is one hint entry as declared in an overlay document.
type HintConfig struct {
	Type             string            `json:"type" yaml:"type"`
	Priority         int               `json:"priority" yaml:"priority"`
	OverridesDefault bool              `json:"overridesDefault" yaml:"overridesDefault"`
	Icon             string            `json:"icon,omitempty" yaml:"icon,omitempty"`
	Data             map[string]string `json:"data,omitempty" yaml:"data,omitempty"`
}

// Profile returns the configuration registered for a data type.
func (s *Store) Profile(dataType strategy.DataTypeHint) (Profile, bool) {
	if s == nil {
		return Profile{}, false
	}
	profile, ok := s.profiles[strings.TrimSpace(string(dataType))]
	return profile, ok
}

// HintsFor converts a profile into the ordered CustomHint list the selectors
// consume. Missing profiles yield nil.
func (s *Store) HintsFor(dataType strategy.DataTypeHint) []strategy.CustomHint {
	profile, ok := s.Profile(dataType)
	if !ok || len(profile.Hints) == 0 {
		return nil
	}

	out := make([]strategy.CustomHint, 0, len(profile.Hints))
	for _, cfg := range profile.Hints {
		hint := strategy.CustomHint{
			Type:             cfg.Type,
			Priority:         cfg.Priority,
			OverridesDefault: cfg.OverridesDefault,
		}
		if len(cfg.Data) > 0 || cfg.Icon != "" {
			hint.Data = make(map[string]string, len(cfg.Data)+1)
			for k, v := range cfg.Data {
				hint.Data[k] = v
			}
			if cfg.Icon != "" {
				hint.Data["icon"] = cfg.Icon
			}
		}
		out = append(out, hint)
	}
	return out
}

// DataTypes lists the registered profile keys in sorted order.
func (s *Store) DataTypes() []string {
	if s == nil || len(s.profiles) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.profiles))
	for key := range s.profiles {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Empty reports whether the store holds any profiles.
func (s *Store) Empty() bool {
	return s == nil || len(s.profiles) == 0
}
