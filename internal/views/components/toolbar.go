package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar represents the main application toolbar
type Toolbar struct {
	container    *fyne.Container
	sortButton   *widget.Button
	exportButton *widget.Button

	// Event handlers
	sortHandler   func()
	exportHandler func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

// createComponents initializes all toolbar components
func (t *Toolbar) createComponents() {
	t.sortButton = widget.NewButtonWithIcon("Sort by Location", theme.MenuDropDownIcon(), func() {
		if t.sortHandler != nil {
			t.sortHandler()
		}
	})

	t.exportButton = widget.NewButtonWithIcon("Generate Map", theme.DocumentSaveIcon(), func() {
		if t.exportHandler != nil {
			t.exportHandler()
		}
	})
	t.exportButton.Importance = widget.HighImportance
}

// buildLayout constructs the toolbar layout
func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		t.sortButton,
		widget.NewSeparator(),
		t.exportButton,
	)
}

// SetSortHandler sets the handler for the sort button
func (t *Toolbar) SetSortHandler(handler func()) {
	t.sortHandler = handler
}

// SetExportHandler sets the handler for the map button
func (t *Toolbar) SetExportHandler(handler func()) {
	t.exportHandler = handler
}

func (t *Toolbar) SortButton() *widget.Button {
	return t.sortButton
}

func (t *Toolbar) ExportButton() *widget.Button {
	return t.exportButton
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
