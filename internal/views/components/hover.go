package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// hoverLabel is a truncating label that reports pointer enter/leave, used to
// reveal the full property name when it does not fit.
type hoverLabel struct {
	widget.Label
	onHover func(inside bool)
}

var _ desktop.Hoverable = (*hoverLabel)(nil)

func newHoverLabel(text string, onHover func(bool)) *hoverLabel {
	l := &hoverLabel{onHover: onHover}
	l.Text = text
	l.Truncation = fyne.TextTruncateEllipsis
	l.ExtendBaseWidget(l)
	return l
}

func (l *hoverLabel) MouseIn(*desktop.MouseEvent) {
	if l.onHover != nil {
		l.onHover(true)
	}
}

func (l *hoverLabel) MouseMoved(*desktop.MouseEvent) {}

func (l *hoverLabel) MouseOut() {
	if l.onHover != nil {
		l.onHover(false)
	}
}

// hoverButton keeps the stock button hover highlight and adds a callback.
type hoverButton struct {
	widget.Button
	onHover func(inside bool)
}

var _ desktop.Hoverable = (*hoverButton)(nil)

func newHoverButton(text string, tapped func(), onHover func(bool)) *hoverButton {
	b := &hoverButton{onHover: onHover}
	b.Text = text
	b.OnTapped = tapped
	b.Importance = widget.HighImportance
	b.ExtendBaseWidget(b)
	return b
}

func (b *hoverButton) MouseIn(e *desktop.MouseEvent) {
	b.Button.MouseIn(e)
	if b.onHover != nil {
		b.onHover(true)
	}
}

func (b *hoverButton) MouseOut() {
	b.Button.MouseOut()
	if b.onHover != nil {
		b.onHover(false)
	}
}
