package app

import (
	"address-copier/internal/clipboard"
	"address-copier/internal/config"
	"address-copier/internal/loader"
	"address-copier/internal/logger"
	"address-copier/internal/models"
	"address-copier/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rotisserie/eris"
)

const (
	AppName    = "Address Copier"
	AppID      = "org.housinghope.addresscopier"
	AppVersion = "1.0.0"
)

// Application owns the toolkit app, its single window and the loaded sheet.
// It has one state: loaded and displayed.
type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *views.MainView
	dispatcher *clipboard.Dispatcher
	records    []models.AddressRecord
	source     string
	logger     logger.Logger
	lifecycle  *Lifecycle
}

// NewApplication loads the sheet and builds the window. Load failures are
// returned before any toolkit state is created.
func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	records, source, err := LoadRecords(cfg, loader.CandidateDirs(), log)
	if err != nil {
		return nil, err
	}

	return newApplication(cfg, log, app.NewWithID(AppID), records, source)
}

// LoadRecords resolves cfg.CSVFile against dirs and parses it.
func LoadRecords(cfg config.Config, dirs []string, log logger.Logger) ([]models.AddressRecord, string, error) {
	source, err := loader.Resolve(cfg.CSVFile, dirs...)
	if err != nil {
		return nil, "", err
	}

	records, err := loader.Load(source, cfg.LoaderOptions())
	if err != nil {
		return nil, source, err
	}

	log.Info("Application", "address sheet loaded", map[string]interface{}{
		"path": source,
		"rows": len(records),
	})
	return records, source, nil
}

func newApplication(cfg config.Config, log logger.Logger, fyneApp fyne.App, records []models.AddressRecord, source string) (*Application, error) {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp.Settings().SetTheme(views.AppTheme{})

	writer, err := newClipboardWriter(cfg.Clipboard, fyneApp)
	if err != nil {
		return nil, err
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.SetMaster()

	dispatcher := clipboard.NewDispatcher(writer, log)
	view := views.NewMainView(window, records, dispatcher)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		dispatcher: dispatcher,
		records:    records,
		source:     source,
		logger:     log,
		lifecycle:  NewLifecycle(fyneApp, log),
	}

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":   AppVersion,
		"rows":      view.RowCount(),
		"clipboard": cfg.Clipboard,
		"width":     cfg.WindowWidth,
		"height":    cfg.WindowHeight,
	})
	return application, nil
}

func newClipboardWriter(backend string, fyneApp fyne.App) (clipboard.Writer, error) {
	switch backend {
	case config.ClipboardSystem:
		return clipboard.NewSystem(), nil
	case config.ClipboardFyne:
		return clipboard.NewFyne(fyneApp.Clipboard()), nil
	default:
		return nil, eris.Wrapf(config.ErrInvalid, "unknown clipboard backend %q", backend)
	}
}

// Run shows the window and blocks on the event loop until it exits.
func (a *Application) Run() error {
	a.installLifecycleHooks()

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)

	a.fyneApp.Run()
	a.lifecycle.MarkStopped()

	return nil
}

// installLifecycleHooks marks the lifecycle stopped as soon as the window
// closes or the app stops, so a late signal never queues a quit into a
// finished event loop.
func (a *Application) installLifecycleHooks() {
	a.window.SetOnClosed(func() {
		a.lifecycle.MarkStopped()
		a.logger.Info("Application", "window closed", nil)
	})
	a.fyneApp.Lifecycle().SetOnStopped(a.lifecycle.MarkStopped)
}

// Shutdown stops the event loop. Safe to call from any goroutine and more
// than once.
func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
}

func (a *Application) View() *views.MainView {
	return a.view
}

func (a *Application) Records() []models.AddressRecord {
	return a.records
}

func (a *Application) Source() string {
	return a.source
}
