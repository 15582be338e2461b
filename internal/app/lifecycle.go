package app

import (
	"fmt"

	"job-mapper/internal/shutdown"
	"job-mapper/internal/watcher"

	"fyne.io/fyne/v2"
)

// setupLifecycle starts the optional data file watcher and registers
// everything that must be stopped on exit.
func (a *Application) setupLifecycle() error {
	a.shutdown.Register("timings", shutdown.Func(a.service.Timings().LogSummary))
	a.shutdown.Register("controller", shutdown.Func(a.controller.Shutdown))

	if !a.cfg.WatchDataFile {
		return nil
	}

	w, err := watcher.New(a.cfg.DataPath(), a.onDataFileChanged, watcher.WithLogger(a.logger))
	if err != nil {
		return fmt.Errorf("create data file watcher: %w", err)
	}
	if err := w.Start(a.shutdown.Context()); err != nil {
		_ = w.Stop()
		return fmt.Errorf("start data file watcher: %w", err)
	}

	a.watcher = w
	a.shutdown.Register("watcher", w)
	return nil
}

// onDataFileChanged runs on the watcher goroutine; the reload itself
// happens on the UI goroutine.
func (a *Application) onDataFileChanged() {
	fyne.Do(a.controller.ReloadData)
}
