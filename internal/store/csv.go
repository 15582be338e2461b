package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"job-mapper/internal/logger"
	"job-mapper/internal/models"

	"github.com/gofrs/flock"
)

// Store persists the job collection
type Store interface {
	Load() ([]models.JobRecord, error)
	Save(records []models.JobRecord) error
	Path() string
}

// CSVStore keeps the collection in a comma-separated file with a header row.
// Every Save rewrites the whole file.
type CSVStore struct {
	path   string
	logger logger.Logger
}

func NewCSVStore(path string, log logger.Logger) *CSVStore {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &CSVStore{path: path, logger: log}
}

func (s *CSVStore) Path() string {
	return s.path
}

// Load reads all records. A missing file yields an empty collection.
func (s *CSVStore) Load() ([]models.JobRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info("Store", "job file not found, starting empty", map[string]interface{}{
				"path": s.path,
			})
			return []models.JobRecord{}, nil
		}
		return nil, &StorageError{Op: "open", Path: s.path, Err: err}
	}
	defer f.Close()

	records, err := decode(f)
	if err != nil {
		return nil, &StorageError{Op: "read", Path: s.path, Err: err}
	}

	s.logger.Debug("Store", "records loaded", map[string]interface{}{
		"path":  s.path,
		"count": len(records),
	})
	return records, nil
}

// Save replaces the file contents with the given records. The new content
// is written to a temporary file and renamed into place while holding
// <path>.lock.
func (s *CSVStore) Save(records []models.JobRecord) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &StorageError{Op: "mkdir", Path: dir, Err: err}
	}

	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return &StorageError{Op: "lock", Path: s.path, Err: err}
	}
	defer lock.Unlock()

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return &StorageError{Op: "create", Path: s.path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return &StorageError{Op: "chmod", Path: s.path, Err: err}
	}
	if err := encode(tmp, records); err != nil {
		tmp.Close()
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return &StorageError{Op: "rename", Path: s.path, Err: err}
	}

	s.logger.Debug("Store", "records saved", map[string]interface{}{
		"path":  s.path,
		"count": len(records),
	})
	return nil
}

func decode(r io.Reader) ([]models.JobRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []models.JobRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	if err := checkSchema(header); err != nil {
		return nil, err
	}

	records := []models.JobRecord{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		rec, err := parseRow(row)
		if err != nil {
			return nil, &RowError{Line: line, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string) (models.JobRecord, error) {
	lat, err := models.ParseCoordinate(row[3])
	if err != nil {
		return models.JobRecord{}, fmt.Errorf("%s %q is not a number", models.FieldLatitude, row[3])
	}
	lon, err := models.ParseCoordinate(row[4])
	if err != nil {
		return models.JobRecord{}, fmt.Errorf("%s %q is not a number", models.FieldLongitude, row[4])
	}
	return models.JobRecord{
		Title:     row[0],
		Company:   row[1],
		Location:  row[2],
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

func encode(w io.Writer, records []models.JobRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CurrentSchema.Header()); err != nil {
		return err
	}
	for _, rec := range records {
		if err := writer.Write(rec.Row()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
