package hints

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses JSON/YAML hint overlay
// files. When fsys is nil or no overlay files are present, the returned store
// is empty. Every document is validated against the embedded schema before
// being accepted.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{profiles: make(map[string]Profile)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isOverlayFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("hints: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}
		if err := validateDocument(data, path); err != nil {
			return err
		}

		for dataType, raw := range doc.Profiles {
			key := strings.TrimSpace(dataType)
			if key == "" {
				return fmt.Errorf("hints: file %s defines an empty data type key", path)
			}
			if _, exists := store.profiles[key]; exists {
				return fmt.Errorf("hints: duplicate profile %q (file %s)", key, path)
			}

			profile, err := normalizeProfile(raw, key, path)
			if err != nil {
				return err
			}
			store.profiles[key] = profile
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

type documentFile struct {
	Profiles map[string]profileFile `json:"profiles" yaml:"profiles"`
}

type profileFile struct {
	Hints []HintConfig `json:"hints" yaml:"hints"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("hints: file %s is empty", source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("hints: parse %s: invalid JSON or YAML", source)
}

func normalizeProfile(raw profileFile, dataType, source string) (Profile, error) {
	profile := Profile{
		DataType: dataType,
		Source:   source,
		Hints:    make([]HintConfig, 0, len(raw.Hints)),
	}

	for idx, hint := range raw.Hints {
		hint.Type = strings.TrimSpace(hint.Type)
		if hint.Type == "" {
			return Profile{}, fmt.Errorf("hints: profile %q (file %s) hint %d has no type", dataType, source, idx)
		}
		if hint.Icon != "" {
			hint.Icon = sanitizeIconMarkup(hint.Icon)
		}
		if len(hint.Data) > 0 {
			cloned := make(map[string]string, len(hint.Data))
			for k, v := range hint.Data {
				cloned[k] = v
			}
			hint.Data = cloned
		}
		profile.Hints = append(profile.Hints, hint)
	}

	return profile, nil
}

func isOverlayFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
