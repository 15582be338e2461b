package services

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"job-mapper/internal/events"
	"job-mapper/internal/logger"
	"job-mapper/internal/models"
	"job-mapper/internal/query"
	"job-mapper/internal/store"
	"job-mapper/internal/timing"
)

// ErrEmptyQuery is returned when a search is requested without a keyword
var ErrEmptyQuery = errors.New("please enter a search keyword")

// ViewMode describes which slice of the collection is on screen
type ViewMode int

const (
	ViewAll ViewMode = iota
	ViewFiltered
	ViewSorted
)

func (m ViewMode) String() string {
	switch m {
	case ViewFiltered:
		return "filtered"
	case ViewSorted:
		return "sorted"
	default:
		return "all"
	}
}

// State is a snapshot of the application state. Slices are copies and may
// be kept by the receiver.
type State struct {
	Records []models.JobRecord
	View    []models.JobRecord
	Mode    ViewMode
	Query   string
}

// MapExporter writes a map document for a set of records
type MapExporter interface {
	Export(records []models.JobRecord, outputPath string) (string, error)
}

// JobService owns the in-memory collection and the current view of it.
// Every change is announced on the event bus with the new State as data.
type JobService struct {
	store    store.Store
	exporter MapExporter
	mapPath  string
	bus      *events.Bus
	logger   logger.Logger
	timings  *timing.Tracker

	mu      sync.RWMutex
	records []models.JobRecord
	view    []models.JobRecord
	mode    ViewMode
	query   string
}

func NewJobService(st store.Store, exporter MapExporter, mapPath string, bus *events.Bus, log logger.Logger) *JobService {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if bus == nil {
		bus = events.NewBus(log)
	}
	return &JobService{
		store:    st,
		exporter: exporter,
		mapPath:  mapPath,
		bus:      bus,
		logger:   log,
		timings:  timing.NewTracker(log),
		records:  []models.JobRecord{},
		view:     []models.JobRecord{},
	}
}

func (s *JobService) Bus() *events.Bus {
	return s.bus
}

// Timings reports how long store and export operations have taken
func (s *JobService) Timings() *timing.Tracker {
	return s.timings
}

func (s *JobService) loadRecords() ([]models.JobRecord, error) {
	defer s.timings.Start(timing.OpLoad)()
	return s.store.Load()
}

func (s *JobService) saveRecords(records []models.JobRecord) error {
	defer s.timings.Start(timing.OpSave)()
	return s.store.Save(records)
}

// Load replaces the collection with the stored records and shows all of them
func (s *JobService) Load() error {
	records, err := s.loadRecords()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.records = records
	s.resetViewLocked()
	s.mu.Unlock()

	s.logger.Info("JobService", "collection loaded", map[string]interface{}{
		"path":  s.store.Path(),
		"count": len(records),
	})
	s.publish(events.ViewChanged)
	return nil
}

// Reload re-reads the store and reports whether the collection differed
// from the one in memory. An unchanged collection leaves the view alone.
func (s *JobService) Reload() (bool, error) {
	records, err := s.loadRecords()
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	if slices.Equal(records, s.records) {
		s.mu.Unlock()
		return false, nil
	}
	s.records = records
	s.resetViewLocked()
	s.mu.Unlock()

	s.logger.Info("JobService", "collection reloaded from disk", map[string]interface{}{
		"count": len(records),
	})
	s.publish(events.ViewChanged)
	return true, nil
}

// Add validates the input, persists the extended collection and, once the
// write succeeded, commits it in memory and shows the full collection.
func (s *JobService) Add(input models.JobInput) (models.JobRecord, error) {
	rec, err := input.Parse()
	if err != nil {
		return models.JobRecord{}, err
	}

	s.mu.Lock()
	next := make([]models.JobRecord, len(s.records), len(s.records)+1)
	copy(next, s.records)
	next = append(next, rec)

	if err := s.saveRecords(next); err != nil {
		s.mu.Unlock()
		return models.JobRecord{}, err
	}
	s.records = next
	s.resetViewLocked()
	s.mu.Unlock()

	s.logger.Info("JobService", "record added", map[string]interface{}{
		"title":    rec.Title,
		"location": rec.Location,
		"count":    len(next),
	})
	s.publish(events.ViewChanged)
	return rec, nil
}

// Search filters the full collection by keyword. A blank keyword returns
// ErrEmptyQuery and leaves the state unchanged.
func (s *JobService) Search(keyword string) ([]models.JobRecord, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyQuery
	}

	s.mu.Lock()
	result := query.Search(s.records, keyword)
	s.view = result
	s.mode = ViewFiltered
	s.query = keyword
	s.mu.Unlock()

	s.logger.Debug("JobService", "search", map[string]interface{}{
		"keyword": keyword,
		"matches": len(result),
	})
	s.publish(events.ViewChanged)
	return slices.Clone(result), nil
}

// SortByLocation shows the full collection ordered by location. The stored
// order is not changed.
func (s *JobService) SortByLocation() []models.JobRecord {
	s.mu.Lock()
	sorted := query.SortByLocation(s.records)
	s.view = sorted
	s.mode = ViewSorted
	s.query = ""
	s.mu.Unlock()

	s.publish(events.ViewChanged)
	return slices.Clone(sorted)
}

// ShowAll returns to the unfiltered, unsorted view
func (s *JobService) ShowAll() {
	s.mu.Lock()
	s.resetViewLocked()
	s.mu.Unlock()

	s.publish(events.ViewChanged)
}

// ExportMap writes the map for the full collection and returns the
// absolute path of the document.
func (s *JobService) ExportMap() (string, error) {
	s.mu.RLock()
	records := slices.Clone(s.records)
	s.mu.RUnlock()

	stop := s.timings.Start(timing.OpExport)
	path, err := s.exporter.Export(records, s.mapPath)
	stop()
	if err != nil {
		return "", err
	}

	s.logger.Info("JobService", "map saved", map[string]interface{}{
		"path":    path,
		"markers": len(records),
	})
	return path, nil
}

// State returns a snapshot of the current state
func (s *JobService) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

func (s *JobService) stateLocked() State {
	return State{
		Records: slices.Clone(s.records),
		View:    slices.Clone(s.view),
		Mode:    s.mode,
		Query:   s.query,
	}
}

func (s *JobService) resetViewLocked() {
	s.view = slices.Clone(s.records)
	s.mode = ViewAll
	s.query = ""
}

func (s *JobService) publish(eventType string) {
	s.bus.Publish(events.Event{Type: eventType, Data: s.State()})
}
