package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"job-mapper/internal/models"
)

// EntryForm collects the five fields of a new job record
type EntryForm struct {
	container *fyne.Container
	form      *widget.Form
	entries   map[string]*widget.Entry
	addButton *widget.Button

	addHandler func(models.JobInput)
}

func NewEntryForm() *EntryForm {
	ef := &EntryForm{entries: make(map[string]*widget.Entry, len(models.Fields))}
	ef.createComponents()
	ef.buildLayout()
	return ef
}

func (ef *EntryForm) createComponents() {
	ef.form = widget.NewForm()
	for _, field := range models.Fields {
		entry := widget.NewEntry()
		ef.entries[field] = entry
		ef.form.Append(field, entry)
	}
	ef.entries[models.FieldLatitude].SetPlaceHolder("e.g. 51.5")
	ef.entries[models.FieldLongitude].SetPlaceHolder("e.g. -0.12")

	ef.addButton = widget.NewButton("Add Job", func() {
		if ef.addHandler != nil {
			ef.addHandler(ef.Input())
		}
	})
	ef.addButton.Importance = widget.HighImportance
}

func (ef *EntryForm) buildLayout() {
	ef.container = container.NewVBox(
		widget.NewLabelWithStyle("New Job", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ef.form,
		container.NewHBox(ef.addButton),
	)
}

// Input returns the raw field values as typed
func (ef *EntryForm) Input() models.JobInput {
	return models.JobInput{
		Title:     ef.entries[models.FieldTitle].Text,
		Company:   ef.entries[models.FieldCompany].Text,
		Location:  ef.entries[models.FieldLocation].Text,
		Latitude:  ef.entries[models.FieldLatitude].Text,
		Longitude: ef.entries[models.FieldLongitude].Text,
	}
}

func (ef *EntryForm) Clear() {
	for _, entry := range ef.entries {
		entry.SetText("")
	}
}

func (ef *EntryForm) SetAddHandler(handler func(models.JobInput)) {
	ef.addHandler = handler
}

// Entry returns the entry for one of models.Fields, or nil
func (ef *EntryForm) Entry(field string) *widget.Entry {
	return ef.entries[field]
}

func (ef *EntryForm) AddButton() *widget.Button {
	return ef.addButton
}

func (ef *EntryForm) GetContainer() *fyne.Container {
	return ef.container
}
