package store

import (
	"fmt"
	"strings"

	"job-mapper/internal/models"
)

// SchemaVersion identifies a persisted file layout by its header row
type SchemaVersion int

const (
	SchemaUnknown SchemaVersion = iota
	// SchemaV1 is the original title/company/location layout.
	SchemaV1
	// SchemaV2 adds latitude and longitude.
	SchemaV2
)

// CurrentSchema is the layout written by Save
const CurrentSchema = SchemaV2

var headers = map[SchemaVersion][]string{
	SchemaV1: {models.FieldTitle, models.FieldCompany, models.FieldLocation},
	SchemaV2: models.Fields,
}

func (v SchemaVersion) String() string {
	switch v {
	case SchemaV1:
		return "v1"
	case SchemaV2:
		return "v2"
	default:
		return "unknown"
	}
}

// Header returns the header row for a schema version
func (v SchemaVersion) Header() []string {
	h := headers[v]
	out := make([]string, len(h))
	copy(out, h)
	return out
}

// DetectSchema matches a header row against the known layouts. Cells are
// compared trimmed and case-insensitively.
func DetectSchema(header []string) SchemaVersion {
	for _, v := range []SchemaVersion{SchemaV2, SchemaV1} {
		if headerMatches(header, headers[v]) {
			return v
		}
	}
	return SchemaUnknown
}

func headerMatches(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		cell := strings.TrimSpace(strings.TrimPrefix(got[i], "\ufeff"))
		if !strings.EqualFold(cell, want[i]) {
			return false
		}
	}
	return true
}

func checkSchema(header []string) error {
	switch v := DetectSchema(header); v {
	case CurrentSchema:
		return nil
	case SchemaV1:
		return ErrLegacySchema
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSchema, strings.Join(header, ","))
	}
}
