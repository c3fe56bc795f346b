package presentation

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// forcedVariant pins a theme to a single variant so the Dark Mode toggle
// wins over the desktop preference.
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func newForcedVariant(base fyne.Theme, variant fyne.ThemeVariant) fyne.Theme {
	return &forcedVariant{Theme: base, variant: variant}
}

func (f *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return f.Theme.Color(name, f.variant)
}
