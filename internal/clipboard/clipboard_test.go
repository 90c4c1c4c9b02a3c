package clipboard

import (
	"bytes"
	"testing"

	"address-copier/internal/logger"

	"fyne.io/fyne/v2/test"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_CopyVerbatim(t *testing.T) {
	mem := &memoryClipboard{}
	d := NewDispatcher(mem, logger.NewNop())

	require.NoError(t, d.Copy("Line One", "  100 Main St "))
	assert.Equal(t, "  100 Main St ", mem.content)
	assert.Equal(t, "  100 Main St ", d.Last())
}

func TestDispatcher_CopyIdempotent(t *testing.T) {
	mem := &memoryClipboard{}
	d := NewDispatcher(mem, logger.NewNop())

	require.NoError(t, d.Copy("City", "Springfield"))
	first := mem.content
	require.NoError(t, d.Copy("City", "Springfield"))

	assert.Equal(t, first, mem.content)
	assert.Equal(t, 2, mem.writes)
}

func TestDispatcher_LogsSuccess(t *testing.T) {
	var buf bytes.Buffer
	d := NewDispatcher(&memoryClipboard{}, logger.NewZerolog(&buf, zerolog.InfoLevel))

	require.NoError(t, d.Copy("Zip", "62701"))
	assert.Contains(t, buf.String(), "Copied: 62701")
	assert.Contains(t, buf.String(), `"field":"Zip"`)
}

func TestDispatcher_FailureIsRecoverable(t *testing.T) {
	var buf bytes.Buffer
	mem := &memoryClipboard{}
	d := NewDispatcher(mem, logger.NewZerolog(&buf, zerolog.InfoLevel))

	require.NoError(t, d.Copy("City", "Springfield"))

	mem.fail = true
	err := d.Copy("Zip", "62702")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrUnavailable))
	assert.Equal(t, "Springfield", mem.content, "prior contents must survive a failed copy")
	assert.Equal(t, "Springfield", d.Last())
	assert.Contains(t, buf.String(), `"level":"error"`)

	mem.fail = false
	require.NoError(t, d.Copy("Line One", "200 Elm St"))
	assert.Equal(t, "200 Elm St", mem.content)
}

func TestFyne_WritesToAppClipboard(t *testing.T) {
	a := test.NewTempApp(t)
	cb := NewFyne(a.Clipboard())

	require.NoError(t, cb.WriteAll("Maple Court"))
	assert.Equal(t, "Maple Court", a.Clipboard().Content())
}

func TestFyne_Detached(t *testing.T) {
	err := NewFyne(nil).WriteAll("x")
	assert.True(t, eris.Is(err, ErrUnavailable))
}
