package controllers

import (
	"errors"
	"fmt"
	"net/url"

	"job-mapper/internal/events"
	"job-mapper/internal/logger"
	"job-mapper/internal/mapexport"
	"job-mapper/internal/models"
	"job-mapper/internal/services"
)

// View is the part of the main window the controller drives
type View interface {
	SetAddRecordHandler(func(models.JobInput))
	SetSearchHandler(func(string))
	SetShowAllHandler(func())
	SetSortHandler(func())
	SetExportHandler(func())

	ShowRecords([]models.JobRecord)
	UpdateStatus(string)
	UpdateCounts(shown, total int)
	ClearForm()
	ShowError(title string, err error)
	ShowWarning(title, message string)
	ShowInfo(title, message string)
}

// URLOpener opens a URL in the user's browser. fyne.App satisfies it.
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// MainController translates user actions into job service calls and
// renders the resulting state
type MainController struct {
	service *services.JobService
	opener  URLOpener
	logger  logger.Logger

	mainView View
	handler  events.HandlerFunc
}

func NewMainController(service *services.JobService, opener URLOpener, log logger.Logger) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	mc := &MainController{
		service: service,
		opener:  opener,
		logger:  log,
	}
	mc.handler = events.HandlerFunc{ID: "main-controller", Fn: mc.onViewChanged}
	return mc
}

// SetMainView associates the view, connects its callbacks and renders the
// current state
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	mc.setupViewEventHandlers()

	bus := mc.service.Bus()
	bus.Unsubscribe(events.ViewChanged, mc.handler)
	bus.Subscribe(events.ViewChanged, mc.handler)

	mc.render(mc.service.State())
}

func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetAddRecordHandler(mc.AddRecord)
	mc.mainView.SetSearchHandler(mc.Search)
	mc.mainView.SetShowAllHandler(mc.ShowAll)
	mc.mainView.SetSortHandler(mc.Sort)
	mc.mainView.SetExportHandler(mc.ExportMap)
}

// AddRecord validates and stores a new job. Invalid input leaves the form
// as typed so the user can correct it.
func (mc *MainController) AddRecord(input models.JobInput) {
	rec, err := mc.service.Add(input)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			mc.logger.Warning("MainController", "invalid job input", map[string]interface{}{
				"field":  verr.Field,
				"reason": verr.Reason,
			})
			mc.mainView.ShowError("Invalid input", err)
			return
		}
		mc.handleError("Could not save job", err)
		return
	}

	mc.mainView.ClearForm()
	mc.mainView.UpdateStatus(fmt.Sprintf("Added %s", rec.PopupLabel()))
}

// Search filters the table by keyword
func (mc *MainController) Search(keyword string) {
	result, err := mc.service.Search(keyword)
	if errors.Is(err, services.ErrEmptyQuery) {
		mc.mainView.ShowWarning("Search", "Please enter a search keyword.")
		return
	}
	if err != nil {
		mc.handleError("Search failed", err)
		return
	}

	if len(result) == 0 {
		mc.mainView.ShowInfo("No results", fmt.Sprintf("No jobs match %q.", keyword))
	}
}

// Sort shows the full collection ordered by location
func (mc *MainController) Sort() {
	mc.service.SortByLocation()
}

func (mc *MainController) ShowAll() {
	mc.service.ShowAll()
}

// ExportMap writes the map document and opens it in the browser
func (mc *MainController) ExportMap() {
	path, err := mc.service.ExportMap()
	if err != nil {
		mc.handleError("Map export failed", err)
		return
	}
	mc.mainView.UpdateStatus(fmt.Sprintf("Map saved to %s", path))

	if mc.opener == nil {
		return
	}
	if err := mc.opener.OpenURL(mapexport.FileURL(path)); err != nil {
		mc.handleError("Could not open map", err)
	}
}

// ReloadData re-reads the data file after an external change
func (mc *MainController) ReloadData() {
	changed, err := mc.service.Reload()
	if err != nil {
		mc.logger.Error("MainController", err, map[string]interface{}{
			"action": "reload",
		})
		mc.mainView.UpdateStatus("Reload failed; keeping current jobs")
		return
	}
	if changed {
		mc.mainView.UpdateStatus("Jobs reloaded from disk")
	}
}

func (mc *MainController) onViewChanged(event events.Event) {
	state, ok := event.Data.(services.State)
	if !ok || mc.mainView == nil {
		return
	}
	mc.render(state)
}

func (mc *MainController) render(state services.State) {
	mc.mainView.ShowRecords(state.View)
	mc.mainView.UpdateCounts(len(state.View), len(state.Records))

	switch state.Mode {
	case services.ViewFiltered:
		mc.mainView.UpdateStatus(fmt.Sprintf("Results for %q", state.Query))
	case services.ViewSorted:
		mc.mainView.UpdateStatus("Sorted by location")
	default:
		mc.mainView.UpdateStatus("Showing all jobs")
	}
}

// handleError logs err and shows it in an error dialog
func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error("MainController", err, map[string]interface{}{
		"title": title,
	})
	mc.mainView.ShowError(title, err)
	mc.mainView.UpdateStatus(title)
}

// Shutdown detaches the controller from the event bus
func (mc *MainController) Shutdown() {
	mc.service.Bus().Unsubscribe(events.ViewChanged, mc.handler)
}
