package views

import (
	"job-mapper/internal/models"
	"job-mapper/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// MainView is the single application window: search, table, entry form
// and toolbar. Its methods must run on the Fyne UI goroutine.
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	searchBar     *components.SearchBar
	table         *components.JobTable
	form          *components.EntryForm
	toolbar       *components.Toolbar
	statusBar     *components.StatusBar
}

// NewMainView creates the view and installs it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.searchBar = components.NewSearchBar()
	mv.table = components.NewJobTable()
	mv.form = components.NewEntryForm()
	mv.toolbar = components.NewToolbar()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	topArea := container.NewVBox(
		mv.searchBar.GetContainer(),
		mv.toolbar.GetContainer(),
	)

	bottomArea := container.NewVBox(
		widget.NewSeparator(),
		mv.form.GetContainer(),
		mv.statusBar.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		topArea,
		bottomArea,
		nil,
		nil,
		mv.table.GetContainer(),
	)

	mv.window.SetContent(mv.mainContainer)
}

// Event handler setters - called by controller

func (mv *MainView) SetAddRecordHandler(handler func(models.JobInput)) {
	mv.form.SetAddHandler(handler)
}

func (mv *MainView) SetSearchHandler(handler func(string)) {
	mv.searchBar.SetSearchHandler(handler)
}

func (mv *MainView) SetShowAllHandler(handler func()) {
	mv.searchBar.SetShowAllHandler(func() {
		mv.searchBar.Clear()
		if handler != nil {
			handler()
		}
	})
}

func (mv *MainView) SetSortHandler(handler func()) {
	mv.toolbar.SetSortHandler(handler)
}

func (mv *MainView) SetExportHandler(handler func()) {
	mv.toolbar.SetExportHandler(handler)
}

// UI update methods - called by controller

// ShowRecords replaces the table contents
func (mv *MainView) ShowRecords(records []models.JobRecord) {
	mv.table.SetRecords(records)
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) UpdateCounts(shown, total int) {
	mv.statusBar.SetCounts(shown, total)
}

func (mv *MainView) SetDataFile(path string) {
	mv.statusBar.SetDataFile(path)
}

// ClearForm empties the entry form after a successful add
func (mv *MainView) ClearForm() {
	mv.form.Clear()
}

// ShowError displays a titled dialog with an error icon
func (mv *MainView) ShowError(title string, err error) {
	mv.showMessage(title, theme.ErrorIcon(), err.Error())
}

// ShowWarning displays a dialog with a warning icon
func (mv *MainView) ShowWarning(title, message string) {
	mv.showMessage(title, theme.WarningIcon(), message)
}

func (mv *MainView) showMessage(title string, icon fyne.Resource, message string) {
	content := container.NewHBox(widget.NewIcon(icon), widget.NewLabel(message))
	dialog.ShowCustom(title, "OK", content, mv.window)
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

func (mv *MainView) SearchBar() *components.SearchBar {
	return mv.searchBar
}

func (mv *MainView) Table() *components.JobTable {
	return mv.table
}

func (mv *MainView) Form() *components.EntryForm {
	return mv.form
}

func (mv *MainView) Toolbar() *components.Toolbar {
	return mv.toolbar
}

func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}
