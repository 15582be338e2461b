package services

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"job-mapper/internal/events"
	"job-mapper/internal/mapexport"
	"job-mapper/internal/models"
	"job-mapper/internal/store"
	"job-mapper/internal/timing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	engineerInput = models.JobInput{Title: "Engineer", Company: "Acme", Location: "London", Latitude: "51.5", Longitude: "-0.12"}
	nurseInput    = models.JobInput{Title: "Nurse", Company: "Beta", Location: "Leeds", Latitude: "53.8", Longitude: "-1.5"}
)

type failingStore struct {
	records []models.JobRecord
	saveErr error
}

func (f *failingStore) Load() ([]models.JobRecord, error) { return f.records, nil }
func (f *failingStore) Save([]models.JobRecord) error     { return f.saveErr }
func (f *failingStore) Path() string                      { return "memory" }

type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) Handle(e events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) GetID() string { return "recorder" }

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func newService(t *testing.T) (*JobService, string) {
	t.Helper()
	dir := t.TempDir()
	st := store.NewCSVStore(filepath.Join(dir, "jobs.csv"), nil)
	svc := NewJobService(st, mapexport.NewExporter(mapexport.DefaultOptions()), filepath.Join(dir, "job_map.html"), nil, nil)
	require.NoError(t, svc.Load())
	return svc, dir
}

func TestJobService_LoadMissingFileIsEmpty(t *testing.T) {
	svc, _ := newService(t)

	state := svc.State()
	assert.Empty(t, state.Records)
	assert.Empty(t, state.View)
	assert.Equal(t, ViewAll, state.Mode)
}

func TestJobService_AddPersistsAndShowsAll(t *testing.T) {
	svc, dir := newService(t)

	rec, err := svc.Add(engineerInput)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", rec.Title)

	state := svc.State()
	assert.Equal(t, []models.JobRecord{rec}, state.Records)
	assert.Equal(t, state.Records, state.View)

	reloaded, err := store.NewCSVStore(filepath.Join(dir, "jobs.csv"), nil).Load()
	require.NoError(t, err)
	assert.Equal(t, state.Records, reloaded)
}

func TestJobService_AddInvalidLeavesStateUnchanged(t *testing.T) {
	svc, dir := newService(t)

	_, err := svc.Add(models.JobInput{Title: "Engineer", Company: "Acme", Location: "London", Latitude: "abc", Longitude: "1"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, models.FieldLatitude, verr.Field)

	assert.Empty(t, svc.State().Records)
	_, statErr := os.Stat(filepath.Join(dir, "jobs.csv"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestJobService_AddNonFiniteCoordinateRejected(t *testing.T) {
	svc, dir := newService(t)

	_, err := svc.Add(models.JobInput{Title: "Engineer", Company: "Acme", Location: "London", Latitude: "NaN", Longitude: "Inf"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, models.FieldLatitude, verr.Field)

	assert.Empty(t, svc.State().Records)
	_, statErr := os.Stat(filepath.Join(dir, "jobs.csv"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestJobService_AddSaveFailureLeavesStateUnchanged(t *testing.T) {
	boom := errors.New("disk full")
	svc := NewJobService(&failingStore{saveErr: boom}, mapexport.NewExporter(mapexport.DefaultOptions()), "unused.html", nil, nil)
	require.NoError(t, svc.Load())

	_, err := svc.Add(engineerInput)
	require.ErrorIs(t, err, boom)
	assert.Empty(t, svc.State().Records)
}

func TestJobService_SearchFiltersView(t *testing.T) {
	svc, _ := newService(t)
	eng, err := svc.Add(engineerInput)
	require.NoError(t, err)
	_, err = svc.Add(nurseInput)
	require.NoError(t, err)

	got, err := svc.Search("  eng ")
	require.NoError(t, err)
	assert.Equal(t, []models.JobRecord{eng}, got)

	state := svc.State()
	assert.Equal(t, ViewFiltered, state.Mode)
	assert.Equal(t, "eng", state.Query)
	assert.Equal(t, []models.JobRecord{eng}, state.View)
	assert.Len(t, state.Records, 2)
}

func TestJobService_SearchBlankKeyword(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Add(engineerInput)
	require.NoError(t, err)

	_, err = svc.Search("   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Equal(t, ViewAll, svc.State().Mode)
}

func TestJobService_SortUsesFullCollection(t *testing.T) {
	svc, _ := newService(t)
	eng, _ := svc.Add(engineerInput)
	nurse, _ := svc.Add(nurseInput)

	_, err := svc.Search("eng")
	require.NoError(t, err)

	sorted := svc.SortByLocation()
	assert.Equal(t, []models.JobRecord{nurse, eng}, sorted)

	state := svc.State()
	assert.Equal(t, ViewSorted, state.Mode)
	assert.Empty(t, state.Query)
	assert.Equal(t, []models.JobRecord{eng, nurse}, state.Records, "stored order is unchanged")
}

func TestJobService_AddResetsFilteredView(t *testing.T) {
	svc, _ := newService(t)
	_, _ = svc.Add(engineerInput)
	_, err := svc.Search("eng")
	require.NoError(t, err)

	_, err = svc.Add(nurseInput)
	require.NoError(t, err)

	state := svc.State()
	assert.Equal(t, ViewAll, state.Mode)
	assert.Len(t, state.View, 2)
}

func TestJobService_ShowAll(t *testing.T) {
	svc, _ := newService(t)
	_, _ = svc.Add(engineerInput)
	_, _ = svc.Add(nurseInput)
	svc.SortByLocation()

	svc.ShowAll()

	state := svc.State()
	assert.Equal(t, ViewAll, state.Mode)
	assert.Equal(t, state.Records, state.View)
}

func TestJobService_ExportMapWritesAllRecords(t *testing.T) {
	svc, dir := newService(t)
	_, _ = svc.Add(engineerInput)
	_, _ = svc.Add(nurseInput)
	_, err := svc.Search("leeds")
	require.NoError(t, err)

	path, err := svc.ExportMap()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "job_map.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Engineer at Acme (London)")
	assert.Contains(t, string(data), "Nurse at Beta (Leeds)")
}

func TestJobService_PublishesEvents(t *testing.T) {
	svc, _ := newService(t)
	rec := &recorder{}
	svc.Bus().Subscribe(events.ViewChanged, rec)

	_, err := svc.Add(engineerInput)
	require.NoError(t, err)
	_, err = svc.Search("eng")
	require.NoError(t, err)

	assert.Equal(t, []string{events.ViewChanged, events.ViewChanged}, rec.types())

	last := rec.events[len(rec.events)-1]
	state, ok := last.Data.(State)
	require.True(t, ok)
	assert.Equal(t, ViewFiltered, state.Mode)
}

func TestJobService_ReloadDetectsExternalChange(t *testing.T) {
	svc, dir := newService(t)
	_, _ = svc.Add(engineerInput)

	changed, err := svc.Reload()
	require.NoError(t, err)
	assert.False(t, changed, "own write is not a change")

	other := store.NewCSVStore(filepath.Join(dir, "jobs.csv"), nil)
	nurse, err := nurseInput.Parse()
	require.NoError(t, err)
	records, err := other.Load()
	require.NoError(t, err)
	require.NoError(t, other.Save(append(records, nurse)))

	changed, err = svc.Reload()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, svc.State().Records, 2)
}

func TestJobService_ReloadKeepsStateOnError(t *testing.T) {
	svc, dir := newService(t)
	_, _ = svc.Add(engineerInput)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "jobs.csv"), []byte("Job Title,Company,Location\nEngineer,Acme,London\n"), 0o644))

	_, err := svc.Reload()
	assert.ErrorIs(t, err, store.ErrLegacySchema)
	assert.Len(t, svc.State().Records, 1)
}

func TestJobService_RecordsTimings(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Add(engineerInput)
	require.NoError(t, err)
	_, err = svc.ExportMap()
	require.NoError(t, err)

	tt := svc.Timings()
	assert.Equal(t, 1, tt.Stats(timing.OpLoad).Count)
	assert.Equal(t, 1, tt.Stats(timing.OpSave).Count)
	assert.Equal(t, 1, tt.Stats(timing.OpExport).Count)
}
