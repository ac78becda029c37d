// Package report renders human-readable explanations of presentation
// decisions. The output is diagnostic text for developers and CLIs, not a UI
// surface; the rendering layer proper is out of this module's scope.
package report

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-adaptive/pkg/presenter"
)

//go:embed templates/*
var embeddedTemplates embed.FS

const presentationTemplate = "presentation"

// Renderer formats presentations through a template engine.
type Renderer struct {
	engine *engine
}

// New constructs a renderer. With no options the embedded templates are used.
func New(options ...EngineOption) (*Renderer, error) {
	opts := options
	if len(opts) == 0 {
		sub, err := fs.Sub(embeddedTemplates, "templates")
		if err != nil {
			return nil, fmt.Errorf("report: embedded templates: %w", err)
		}
		opts = []EngineOption{WithFS(sub)}
	}

	eng, err := newEngine(opts...)
	if err != nil {
		return nil, err
	}
	return &Renderer{engine: eng}, nil
}

// Render produces the explanation text for a presentation.
func (r *Renderer) Render(p presenter.Presentation) (string, error) {
	if r == nil || r.engine == nil {
		return "", fmt.Errorf("report: renderer is not initialised")
	}

	return r.engine.render(presentationTemplate, map[string]any{
		"fieldCount":      len(p.Analysis.Fields),
		"fields":          p.Analysis.Fields,
		"complexity":      p.Analysis.Complexity.String(),
		"patterns":        p.Analysis.Patterns,
		"collection":      p.Collection,
		"recommendations": p.Recommendations,
		"layout":          p.Layout,
		"expansion":       p.Expansion,
		"device":          string(p.Capabilities.Device),
		"platform":        string(p.Capabilities.Platform),
	})
}
