package components

import (
	"image/color"

	"address-copier/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const nameMinWidth = 150

var namePanelColor = color.NRGBA{R: 0xd2, G: 0xb4, B: 0x8c, A: 0xff} // tan

// Copier places a field value on the clipboard
type Copier interface {
	Copy(field, value string) error
}

// AddressRow displays one development: its name and a copy button per field.
type AddressRow struct {
	record    models.AddressRecord
	copier    Copier
	statusBar *StatusBar

	container *fyne.Container
	nameLabel *hoverLabel
	buttons   map[models.Field]*hoverButton
}

// NewAddressRow builds the row for record. statusBar may be nil.
func NewAddressRow(record models.AddressRecord, copier Copier, statusBar *StatusBar) *AddressRow {
	row := &AddressRow{
		record:    record,
		copier:    copier,
		statusBar: statusBar,
		buttons:   make(map[models.Field]*hoverButton, len(models.CopyableFields)),
	}
	row.createComponents()
	row.buildLayout()
	return row
}

func (r *AddressRow) createComponents() {
	name := r.record.PropertyName
	r.nameLabel = newHoverLabel(name, func(inside bool) {
		r.hint(inside, name)
	})

	for _, field := range models.CopyableFields {
		// each callback owns its own copy of the value
		column := field.Column()
		value := r.record.Value(field)

		r.buttons[field] = newHoverButton(field.Caption(),
			func() { r.copy(column, value) },
			func(inside bool) { r.hint(inside, "Copy: "+value) },
		)
	}
}

func (r *AddressRow) buildLayout() {
	background := canvas.NewRectangle(namePanelColor)
	background.CornerRadius = 3
	background.SetMinSize(fyne.NewSize(nameMinWidth, 0))

	namePanel := container.NewStack(
		background,
		container.NewThemeOverride(r.nameLabel, namePanelTheme{}),
	)

	buttons := container.NewHBox()
	for _, field := range models.CopyableFields {
		buttons.Add(r.buttons[field])
	}

	r.container = container.NewBorder(nil, nil, nil, buttons, namePanel)
}

func (r *AddressRow) copy(column, value string) {
	err := r.copier.Copy(column, value)
	if r.statusBar == nil {
		return
	}
	if err != nil {
		r.statusBar.SetStatus("Could not copy " + column + ": clipboard unavailable")
		return
	}
	r.statusBar.SetStatus("Copied: " + value)
}

func (r *AddressRow) hint(inside bool, text string) {
	if r.statusBar == nil {
		return
	}
	if inside {
		r.statusBar.ShowHint(text)
	} else {
		r.statusBar.ClearHint()
	}
}

// Record returns the record shown by this row
func (r *AddressRow) Record() models.AddressRecord {
	return r.record
}

// NameLabel exposes the property name label
func (r *AddressRow) NameLabel() *widget.Label {
	return &r.nameLabel.Label
}

// CopyButton returns the button copying field, or nil if the field has none
func (r *AddressRow) CopyButton(field models.Field) *widget.Button {
	b, ok := r.buttons[field]
	if !ok {
		return nil
	}
	return &b.Button
}

// GetContainer returns the row container
func (r *AddressRow) GetContainer() *fyne.Container {
	return r.container
}

// namePanelTheme renders dark text on the tan name panel.
type namePanelTheme struct{}

func (namePanelTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameForeground {
		return color.Black
	}
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

func (namePanelTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (namePanelTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (namePanelTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
