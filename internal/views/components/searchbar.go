package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SearchBar holds the keyword entry with its Search and Show All buttons
type SearchBar struct {
	container     *fyne.Container
	entry         *widget.Entry
	searchButton  *widget.Button
	showAllButton *widget.Button

	searchHandler  func(string)
	showAllHandler func()
}

func NewSearchBar() *SearchBar {
	sb := &SearchBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *SearchBar) createComponents() {
	sb.entry = widget.NewEntry()
	sb.entry.SetPlaceHolder("Search by title or location")
	sb.entry.OnSubmitted = func(string) { sb.submit() }

	sb.searchButton = widget.NewButton("Search", sb.submit)
	sb.searchButton.Importance = widget.HighImportance

	sb.showAllButton = widget.NewButton("Show All", func() {
		if sb.showAllHandler != nil {
			sb.showAllHandler()
		}
	})
}

func (sb *SearchBar) buildLayout() {
	buttons := container.NewHBox(sb.searchButton, sb.showAllButton)
	sb.container = container.NewBorder(nil, nil, widget.NewLabel("Keyword"), buttons, sb.entry)
}

func (sb *SearchBar) submit() {
	if sb.searchHandler != nil {
		sb.searchHandler(sb.entry.Text)
	}
}

func (sb *SearchBar) SetSearchHandler(handler func(string)) {
	sb.searchHandler = handler
}

func (sb *SearchBar) SetShowAllHandler(handler func()) {
	sb.showAllHandler = handler
}

func (sb *SearchBar) Keyword() string {
	return sb.entry.Text
}

// Clear empties the keyword entry
func (sb *SearchBar) Clear() {
	sb.entry.SetText("")
}

func (sb *SearchBar) Entry() *widget.Entry {
	return sb.entry
}

func (sb *SearchBar) SearchButton() *widget.Button {
	return sb.searchButton
}

func (sb *SearchBar) ShowAllButton() *widget.Button {
	return sb.showAllButton
}

func (sb *SearchBar) GetContainer() *fyne.Container {
	return sb.container
}
