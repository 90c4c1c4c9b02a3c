package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const readyStatus = "Ready"

// StatusBar shows the last copy result. Hover hints temporarily replace it.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	status      string
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{status: readyStatus}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel(sb.status)
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewVBox(
		widget.NewSeparator(),
		sb.statusLabel,
	)
}

// SetStatus replaces the persistent status message.
// Must be called on the UI goroutine.
func (sb *StatusBar) SetStatus(status string) {
	sb.status = status
	sb.statusLabel.SetText(status)
}

// GetStatus returns the text currently displayed
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// ShowHint displays text until ClearHint is called
func (sb *StatusBar) ShowHint(hint string) {
	sb.statusLabel.SetText(hint)
}

// ClearHint restores the persistent status
func (sb *StatusBar) ClearHint() {
	sb.statusLabel.SetText(sb.status)
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.SetStatus(readyStatus)
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
