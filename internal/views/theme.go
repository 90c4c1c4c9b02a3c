package views

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	backgroundColor = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	primaryColor    = color.NRGBA{R: 0x00, G: 0x7f, B: 0xc5, A: 0xff}
	hoverColor      = color.NRGBA{R: 0x00, G: 0x5a, B: 0x8c, A: 0xff}
	pressedColor    = color.NRGBA{R: 0x00, G: 0x3f, B: 0x63, A: 0xff}
)

// AppTheme is the dark palette with blue copy buttons.
type AppTheme struct{}

var _ fyne.Theme = AppTheme{}

func (AppTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return backgroundColor
	case theme.ColorNamePrimary:
		return primaryColor
	case theme.ColorNameHover:
		return hoverColor
	case theme.ColorNamePressed:
		return pressedColor
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (AppTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
