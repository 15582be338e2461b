package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"job-mapper/internal/models"
)

var columnWidths = []float32{200, 180, 160, 100, 100}

// JobTable shows job records, one row per record, under a fixed header row
type JobTable struct {
	container *fyne.Container
	table     *widget.Table
	rows      []models.JobRecord
}

func NewJobTable() *JobTable {
	jt := &JobTable{rows: []models.JobRecord{}}
	jt.createComponents()
	jt.container = container.NewStack(jt.table)
	return jt
}

func (jt *JobTable) createComponents() {
	jt.table = widget.NewTable(
		func() (int, int) {
			return len(jt.rows), len(models.Fields)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(jt.CellText(id.Row, id.Col))
		},
	)

	jt.table.ShowHeaderRow = true
	jt.table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("")
		label.TextStyle = fyne.TextStyle{Bold: true}
		return label
	}
	jt.table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(models.Fields) {
			obj.(*widget.Label).SetText(models.Fields[id.Col])
		}
	}

	for col, width := range columnWidths {
		jt.table.SetColumnWidth(col, width)
	}
}

// SetRecords replaces the displayed rows
func (jt *JobTable) SetRecords(records []models.JobRecord) {
	jt.rows = make([]models.JobRecord, len(records))
	copy(jt.rows, records)
	jt.table.Refresh()
}

func (jt *JobTable) Records() []models.JobRecord {
	out := make([]models.JobRecord, len(jt.rows))
	copy(out, jt.rows)
	return out
}

func (jt *JobTable) RowCount() int {
	return len(jt.rows)
}

// CellText returns the text shown at row, col. Out of range cells are empty.
func (jt *JobTable) CellText(row, col int) string {
	if row < 0 || row >= len(jt.rows) {
		return ""
	}
	cells := jt.rows[row].Row()
	if col < 0 || col >= len(cells) {
		return ""
	}
	return cells[col]
}

func (jt *JobTable) GetContainer() *fyne.Container {
	return jt.container
}
