package views

import (
	"testing"

	"address-copier/internal/models"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCopier struct {
	content string
}

func (m *memoryCopier) Copy(_, value string) error {
	m.content = value
	return nil
}

var developments = []models.AddressRecord{
	{PropertyName: "Oakview Commons", AddressLine: "100 Main St", City: "Springfield", Zip: "62701"},
	{PropertyName: "Maple Court", AddressLine: "200 Elm St", City: "Springfield", Zip: "62702"},
}

func TestMainView_RowsInSheetOrder(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	defer w.Close()

	view := NewMainView(w, developments, &memoryCopier{})

	require.Equal(t, 2, view.RowCount())
	assert.Equal(t, "Oakview Commons", view.Row(0).NameLabel().Text)
	assert.Equal(t, "Maple Court", view.Row(1).NameLabel().Text)
	assert.Equal(t, "2 developments loaded", view.StatusBar().GetStatus())
}

func TestMainView_CopyCityOnSecondRow(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	defer w.Close()

	copier := &memoryCopier{}
	view := NewMainView(w, developments, copier)
	view.Show()

	test.Tap(view.Row(1).CopyButton(models.FieldCity))
	assert.Equal(t, "Springfield", copier.content)

	test.Tap(view.Row(1).CopyButton(models.FieldZip))
	assert.Equal(t, "62702", copier.content)
	assert.Equal(t, "Copied: 62702", view.StatusBar().GetStatus())
}

func TestMainView_ManyRows(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	defer w.Close()

	records := make([]models.AddressRecord, 250)
	for i := range records {
		records[i] = models.AddressRecord{PropertyName: string(rune('A' + i%26)), Zip: "98201"}
	}

	view := NewMainView(w, records, &memoryCopier{})
	view.Show()

	require.Equal(t, len(records), view.RowCount())
	for i := range records {
		assert.Equal(t, records[i].PropertyName, view.Row(i).NameLabel().Text)
	}
	assert.Same(t, view.Content(), w.Content())
}

func TestMainView_Empty(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	defer w.Close()

	view := NewMainView(w, nil, &memoryCopier{})
	assert.Zero(t, view.RowCount())
	assert.Equal(t, "0 developments loaded", view.StatusBar().GetStatus())
}

func TestAppTheme_Palette(t *testing.T) {
	th := AppTheme{}
	assert.Equal(t, backgroundColor, th.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, primaryColor, th.Color(theme.ColorNamePrimary, theme.VariantDark))
	assert.NotNil(t, th.Color(theme.ColorNameForeground, theme.VariantLight))
}
