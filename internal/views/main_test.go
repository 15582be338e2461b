package views

import (
	"errors"
	"testing"

	"job-mapper/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T) *MainView {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow("Job Mapper")
	t.Cleanup(w.Close)
	return NewMainView(w)
}

func TestMainView_InstallsContent(t *testing.T) {
	mv := newTestView(t)

	assert.Equal(t, mv.GetContainer(), mv.GetWindow().Content())
	assert.Equal(t, "Ready", mv.StatusBar().GetStatus())
}

func TestMainView_AddButtonSendsFormInput(t *testing.T) {
	mv := newTestView(t)

	var got models.JobInput
	mv.SetAddRecordHandler(func(in models.JobInput) { got = in })

	form := mv.Form()
	form.Entry(models.FieldTitle).SetText("Engineer")
	form.Entry(models.FieldCompany).SetText("Acme")
	form.Entry(models.FieldLocation).SetText("London")
	form.Entry(models.FieldLatitude).SetText("51.5")
	form.Entry(models.FieldLongitude).SetText("-0.12")
	test.Tap(form.AddButton())

	assert.Equal(t, models.JobInput{
		Title: "Engineer", Company: "Acme", Location: "London", Latitude: "51.5", Longitude: "-0.12",
	}, got)

	mv.ClearForm()
	assert.Equal(t, models.JobInput{}, form.Input())
}

func TestMainView_SearchAndShowAll(t *testing.T) {
	mv := newTestView(t)

	var keyword string
	showAll := 0
	mv.SetSearchHandler(func(k string) { keyword = k })
	mv.SetShowAllHandler(func() { showAll++ })

	mv.SearchBar().Entry().SetText("leeds")
	test.Tap(mv.SearchBar().SearchButton())
	assert.Equal(t, "leeds", keyword)

	test.Tap(mv.SearchBar().ShowAllButton())
	assert.Equal(t, 1, showAll)
	assert.Empty(t, mv.SearchBar().Keyword(), "show all clears the keyword")
}

func TestMainView_ToolbarButtons(t *testing.T) {
	mv := newTestView(t)

	var sorted, exported bool
	mv.SetSortHandler(func() { sorted = true })
	mv.SetExportHandler(func() { exported = true })

	test.Tap(mv.Toolbar().SortButton())
	test.Tap(mv.Toolbar().ExportButton())
	assert.True(t, sorted)
	assert.True(t, exported)
}

func TestMainView_ShowRecordsFillsTable(t *testing.T) {
	mv := newTestView(t)

	mv.ShowRecords([]models.JobRecord{
		{Title: "Engineer", Company: "Acme", Location: "London", Latitude: 51.5, Longitude: -0.12},
		{Title: "Nurse", Company: "Beta", Location: "Leeds", Latitude: 53.8, Longitude: -1.5},
	})
	mv.UpdateCounts(1, 2)

	table := mv.Table()
	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, "Nurse", table.CellText(1, 0))
	assert.Equal(t, "-0.12", table.CellText(0, 4))
	assert.Empty(t, table.CellText(5, 0))
	assert.Equal(t, "Jobs: 1 of 2", mv.StatusBar().GetCounts())
}

func TestMainView_DialogsUseOverlay(t *testing.T) {
	mv := newTestView(t)

	mv.ShowWarning("Search", "Please enter a search keyword.")
	assert.NotNil(t, mv.GetWindow().Canvas().Overlays().Top())
}

func TestMainView_ShowErrorKeepsTitle(t *testing.T) {
	mv := newTestView(t)

	mv.ShowError("Map export failed", errors.New("disk full"))

	top, ok := mv.GetWindow().Canvas().Overlays().Top().(*widget.PopUp)
	require.True(t, ok)
	texts := labelTexts(top.Content)
	assert.Contains(t, texts, "Map export failed")
	assert.Contains(t, texts, "disk full")
}

func labelTexts(obj fyne.CanvasObject) []string {
	switch o := obj.(type) {
	case *widget.Label:
		return []string{o.Text}
	case *canvas.Text:
		return []string{o.Text}
	case *fyne.Container:
		var texts []string
		for _, child := range o.Objects {
			texts = append(texts, labelTexts(child)...)
		}
		return texts
	}
	return nil
}
