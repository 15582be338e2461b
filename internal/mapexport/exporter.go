package mapexport

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"job-mapper/internal/models"
)

// Default view of the exported map
const (
	DefaultCenterLat   = 51.5074
	DefaultCenterLon   = -0.1278
	DefaultZoom        = 2
	DefaultTileURL     = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultAttribution = "&copy; OpenStreetMap contributors"
	DefaultTitle       = "Job Map"
)

type Options struct {
	CenterLat   float64
	CenterLon   float64
	Zoom        int
	TileURL     string
	Attribution string
	Title       string
}

func DefaultOptions() Options {
	return Options{
		CenterLat:   DefaultCenterLat,
		CenterLon:   DefaultCenterLon,
		Zoom:        DefaultZoom,
		TileURL:     DefaultTileURL,
		Attribution: DefaultAttribution,
		Title:       DefaultTitle,
	}
}

// Marker is one map pin as embedded in the document
type Marker struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Popup string  `json:"popup"`
}

type page struct {
	Options
	Markers []Marker
}

// Exporter renders job records onto an interactive Leaflet map
type Exporter struct {
	opts Options
}

func NewExporter(opts Options) *Exporter {
	def := DefaultOptions()
	if opts.TileURL == "" {
		opts.TileURL = def.TileURL
	}
	if opts.Attribution == "" {
		opts.Attribution = def.Attribution
	}
	if opts.Title == "" {
		opts.Title = def.Title
	}
	return &Exporter{opts: opts}
}

func (e *Exporter) Options() Options {
	return e.opts
}

// Render writes the map document with one marker per record. A record
// with a NaN or infinite coordinate fails the whole render.
func (e *Exporter) Render(w io.Writer, records []models.JobRecord) error {
	markers := make([]Marker, 0, len(records))
	for i, rec := range records {
		if !finite(rec.Latitude) || !finite(rec.Longitude) {
			return fmt.Errorf("record %d (%s): coordinates (%v, %v) are not finite",
				i+1, rec.PopupLabel(), rec.Latitude, rec.Longitude)
		}
		markers = append(markers, Marker{
			Lat:   rec.Latitude,
			Lng:   rec.Longitude,
			Popup: rec.PopupLabel(),
		})
	}
	return mapTmpl.Execute(w, page{Options: e.opts, Markers: markers})
}

// Export writes the map document to outputPath, replacing any existing
// file, and returns its absolute path.
func (e *Exporter) Export(records []models.JobRecord, outputPath string) (string, error) {
	abs, err := filepath.Abs(outputPath)
	if err != nil {
		return "", fmt.Errorf("resolve map path: %w", err)
	}

	var buf bytes.Buffer
	if err := e.Render(&buf, records); err != nil {
		return "", fmt.Errorf("render map: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("create map directory: %w", err)
	}
	if err := os.WriteFile(abs, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write map: %w", err)
	}
	return abs, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FileURL converts an absolute file path to a file:// URL
func FileURL(absPath string) *url.URL {
	p := filepath.ToSlash(absPath)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return &url.URL{Scheme: "file", Path: p}
}
