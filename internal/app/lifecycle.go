package app

import (
	"sync"

	"address-copier/internal/logger"

	"fyne.io/fyne/v2"
)

// Lifecycle tears the toolkit down exactly once.
type Lifecycle struct {
	fyneApp fyne.App
	logger  logger.Logger

	mu         sync.Mutex
	isShutdown bool
}

func NewLifecycle(fyneApp fyne.App, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		fyneApp: fyneApp,
		logger:  log,
	}
}

// MarkStopped records that the event loop already returned, so no quit
// request needs to be queued.
func (l *Lifecycle) MarkStopped() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.isShutdown = true
}

func (l *Lifecycle) IsShutdown() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isShutdown
}

func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	if l.isShutdown {
		l.mu.Unlock()
		return
	}
	l.isShutdown = true
	l.mu.Unlock()

	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	// Quit must run on the UI goroutine
	fyne.Do(l.fyneApp.Quit)

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
