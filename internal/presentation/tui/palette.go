package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color modes accepted by the --color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Palette styles CLI output for one destination.
type Palette struct {
	profile termenv.Profile
}

// NewPalette picks a color profile for w. In auto mode colors are only used
// when w is a terminal.
func NewPalette(w io.Writer, mode string) (Palette, error) {
	switch mode {
	case ColorAlways:
		return Palette{profile: termenv.TrueColor}, nil
	case ColorNever:
		return Palette{profile: termenv.Ascii}, nil
	case ColorAuto, "":
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return Palette{profile: termenv.NewOutput(f).Profile}, nil
		}
		return Palette{profile: termenv.Ascii}, nil
	default:
		return Palette{}, fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
	}
}

// Colored reports whether the palette emits escape sequences.
func (p Palette) Colored() bool { return p.profile != termenv.Ascii }

// Type styles a type name.
func (p Palette) Type(s string) string {
	return p.profile.String(s).Foreground(p.profile.Color("#818cf8")).Bold().String()
}

// Field styles a field name.
func (p Palette) Field(s string) string {
	return p.profile.String(s).Foreground(p.profile.Color("#c084fc")).String()
}

// Value styles a rendered value.
func (p Palette) Value(s string) string {
	return p.profile.String(s).Foreground(p.profile.Color("#f472b6")).String()
}

// Error styles an error line.
func (p Palette) Error(s string) string {
	return p.profile.String(s).Foreground(p.profile.Color("#fb7185")).String()
}
