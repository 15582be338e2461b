package app

import (
	"fmt"

	"job-mapper/internal/config"
	"job-mapper/internal/controllers"
	"job-mapper/internal/events"
	"job-mapper/internal/logger"
	"job-mapper/internal/mapexport"
	"job-mapper/internal/services"
	"job-mapper/internal/shutdown"
	"job-mapper/internal/store"
	"job-mapper/internal/views"
	"job-mapper/internal/watcher"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName         = "Job Mapper"
	AppID           = "io.github.jobmapper"
	MinWindowWidth  = 640
	MinWindowHeight = 480
)

// Version is set at build time with -ldflags
var Version = "dev"

type Application struct {
	cfg        *config.Config
	logger     logger.Logger
	fyneApp    fyne.App
	window     fyne.Window
	service    *services.JobService
	controller *controllers.MainController
	view       *views.MainView
	watcher    *watcher.FileWatcher
	shutdown   *shutdown.Manager
}

// NewJobService builds the store, exporter and service described by cfg.
// It does not load the data file.
func NewJobService(cfg *config.Config, log logger.Logger) *services.JobService {
	st := store.NewCSVStore(cfg.DataPath(), log)
	exporter := mapexport.NewExporter(cfg.Map.ExporterOptions())
	return services.NewJobService(st, exporter, cfg.MapPath(), events.NewBus(log), log)
}

// NewApplication loads the data file and builds the window. A data file
// that cannot be read aborts startup so that a later save cannot replace
// it with a partial collection.
func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	service := NewJobService(cfg, log)
	if err := service.Load(); err != nil {
		return nil, fmt.Errorf("load jobs: %w", err)
	}

	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)

	width := max(cfg.Window.Width, MinWindowWidth)
	height := max(cfg.Window.Height, MinWindowHeight)
	window.Resize(fyne.NewSize(width, height))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       Version,
		"data_file":     cfg.DataPath(),
		"map_file":      cfg.MapPath(),
		"window_width":  width,
		"window_height": height,
	})

	view := views.NewMainView(window)
	view.SetDataFile(cfg.DataPath())

	controller := controllers.NewMainController(service, fyneApp, log)
	controller.SetMainView(view)

	application := &Application{
		cfg:        cfg,
		logger:     log,
		fyneApp:    fyneApp,
		window:     window,
		service:    service,
		controller: controller,
		view:       view,
		shutdown:   shutdown.NewManager(log),
	}

	if err := application.setupLifecycle(); err != nil {
		return nil, err
	}

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.shutdown.Shutdown()
		a.window.Close()
	})

	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	return nil
}
