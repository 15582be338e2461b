package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays application status and information
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	countLabel  *widget.Label
	fileLabel   *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.countLabel = widget.NewLabel("Jobs: 0")
	sb.fileLabel = widget.NewLabel("")
	sb.fileLabel.Truncation = fyne.TextTruncateEllipsis
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.countLabel,
		widget.NewSeparator(),
		sb.fileLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetCounts shows how many of the stored jobs are on screen
func (sb *StatusBar) SetCounts(shown, total int) {
	if shown == total {
		sb.countLabel.SetText(fmt.Sprintf("Jobs: %d", total))
		return
	}
	sb.countLabel.SetText(fmt.Sprintf("Jobs: %d of %d", shown, total))
}

func (sb *StatusBar) GetCounts() string {
	return sb.countLabel.Text
}

// SetDataFile shows the path of the backing CSV file
func (sb *StatusBar) SetDataFile(path string) {
	sb.fileLabel.SetText(path)
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
