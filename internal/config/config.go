package config

import (
	"strings"

	"address-copier/internal/loader"
	"address-copier/internal/logger"

	"github.com/rotisserie/eris"
)

const (
	ClipboardSystem = "system"
	ClipboardFyne   = "fyne"

	DefaultWindowWidth  = 500
	DefaultWindowHeight = 700
	MinWindowWidth      = 200
	MinWindowHeight     = 150
)

var ErrInvalid = eris.New("invalid configuration")

// Config holds every startup option
type Config struct {
	CSVFile      string
	MissingValue string
	Clipboard    string
	LogLevel     string
	JSONLogs     bool
	WindowWidth  float32
	WindowHeight float32
}

// Default reproduces the stock behaviour: fixed sheet name, host clipboard,
// 500x700 window.
func Default() Config {
	return Config{
		CSVFile:      loader.DefaultFileName,
		MissingValue: loader.DefaultMissingValue,
		Clipboard:    ClipboardSystem,
		LogLevel:     "info",
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.CSVFile) == "" {
		return eris.Wrap(ErrInvalid, "csv file name is empty")
	}

	switch c.Clipboard {
	case ClipboardSystem, ClipboardFyne:
	default:
		return eris.Wrapf(ErrInvalid, "unknown clipboard backend %q", c.Clipboard)
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return eris.Wrapf(ErrInvalid, "%v", err)
	}

	if c.WindowWidth < MinWindowWidth || c.WindowHeight < MinWindowHeight {
		return eris.Wrapf(ErrInvalid, "window size %.0fx%.0f below minimum %dx%d",
			c.WindowWidth, c.WindowHeight, MinWindowWidth, MinWindowHeight)
	}

	return nil
}

// LoaderOptions derives the sheet parsing options.
func (c Config) LoaderOptions() loader.Options {
	return loader.Options{MissingValue: c.MissingValue}
}
