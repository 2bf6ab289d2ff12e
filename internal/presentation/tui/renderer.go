package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// Plain palettes get the notty style so piped output carries no escapes.
func NewRenderer(p Palette) (func(string) (string, error), error) {
	opt := glamour.WithAutoStyle()
	if !p.Colored() {
		opt = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
