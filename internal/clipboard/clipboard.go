// Package clipboard writes address fields to the host clipboard and reports
// the outcome of every copy.
package clipboard

import (
	"sync"

	"address-copier/internal/logger"

	atotto "github.com/atotto/clipboard"
	"fyne.io/fyne/v2"
	"github.com/rotisserie/eris"
)

const component = "Clipboard"

// ErrUnavailable marks a copy that failed because no clipboard mechanism
// could be used on this host.
var ErrUnavailable = eris.New("clipboard unavailable")

// Writer places text on a clipboard
type Writer interface {
	WriteAll(text string) error
}

// System uses the host clipboard utilities (pbcopy, xclip/xsel, wl-copy, win32).
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (s *System) WriteAll(text string) error {
	if atotto.Unsupported {
		return eris.Wrap(ErrUnavailable, "no copy/paste mechanism installed (xclip, xsel or wl-clipboard)")
	}
	if err := atotto.WriteAll(text); err != nil {
		return eris.Wrapf(ErrUnavailable, "system clipboard: %v", err)
	}
	return nil
}

// Fyne writes through the toolkit clipboard of a running app.
type Fyne struct {
	clipboard fyne.Clipboard
}

func NewFyne(cb fyne.Clipboard) *Fyne {
	return &Fyne{clipboard: cb}
}

func (f *Fyne) WriteAll(text string) error {
	if f.clipboard == nil {
		return eris.Wrap(ErrUnavailable, "fyne clipboard not attached")
	}
	f.clipboard.SetContent(text)
	return nil
}

// Dispatcher performs copy actions and logs each result. A failed copy is
// reported and returned but never affects later copies.
type Dispatcher struct {
	writer Writer
	logger logger.Logger

	mu   sync.Mutex
	last string
}

func NewDispatcher(w Writer, log logger.Logger) *Dispatcher {
	return &Dispatcher{writer: w, logger: log}
}

// Copy writes value verbatim. field is only used for logging.
func (d *Dispatcher) Copy(field, value string) error {
	if err := d.writer.WriteAll(value); err != nil {
		if !eris.Is(err, ErrUnavailable) {
			err = eris.Wrapf(ErrUnavailable, "%v", err)
		}
		d.logger.Error(component, err, map[string]interface{}{
			"field": field,
		})
		return err
	}

	d.mu.Lock()
	d.last = value
	d.mu.Unlock()

	d.logger.Info(component, "Copied: "+value, map[string]interface{}{
		"field": field,
	})
	return nil
}

// Last returns the most recent successfully copied value.
func (d *Dispatcher) Last() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}
