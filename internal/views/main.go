package views

import (
	"fmt"

	"address-copier/internal/models"
	"address-copier/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MainView lists one AddressRow per record, top to bottom in sheet order,
// inside a vertical scroll area with a status bar underneath.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	rowList       *fyne.Container
	scroll        *container.Scroll
	statusBar     *components.StatusBar
	rows          []*components.AddressRow
}

// NewMainView creates the view for records. Nothing is shown until Show.
func NewMainView(window fyne.Window, records []models.AddressRecord, copier components.Copier) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(records, copier)
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents(records []models.AddressRecord, copier components.Copier) {
	mv.statusBar = components.NewStatusBar()

	mv.rows = make([]*components.AddressRow, 0, len(records))
	for _, record := range records {
		mv.rows = append(mv.rows, components.NewAddressRow(record, copier, mv.statusBar))
	}
}

func (mv *MainView) buildLayout() {
	mv.rowList = container.NewVBox()
	for _, row := range mv.rows {
		mv.rowList.Add(row.GetContainer())
	}
	if len(mv.rows) == 0 {
		mv.rowList.Add(widget.NewLabel("No developments listed"))
	}

	mv.scroll = container.NewVScroll(container.NewPadded(mv.rowList))

	mv.mainContainer = container.NewBorder(
		nil,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.scroll,
	)

	mv.statusBar.SetStatus(fmt.Sprintf("%d developments loaded", len(mv.rows)))
}

// Show installs the content and shows the window
func (mv *MainView) Show() {
	mv.window.SetContent(mv.mainContainer)
	mv.window.Show()
}

// RowCount returns the number of rendered address rows
func (mv *MainView) RowCount() int {
	return len(mv.rows)
}

// Row returns the i-th row in display order
func (mv *MainView) Row(i int) *components.AddressRow {
	return mv.rows[i]
}

// StatusBar exposes the status bar
func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}

// Content returns the root container
func (mv *MainView) Content() fyne.CanvasObject {
	return mv.mainContainer
}
