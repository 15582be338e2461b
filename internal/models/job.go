package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field names as shown to the user and written in the CSV header
const (
	FieldTitle     = "Job Title"
	FieldCompany   = "Company"
	FieldLocation  = "Location"
	FieldLatitude  = "Latitude"
	FieldLongitude = "Longitude"
)

// Fields lists the record fields in persisted column order
var Fields = []string{FieldTitle, FieldCompany, FieldLocation, FieldLatitude, FieldLongitude}

// JobRecord is one job posting. Records carry no identifier; two records
// are the same only if every field matches.
type JobRecord struct {
	Title     string
	Company   string
	Location  string
	Latitude  float64
	Longitude float64
}

// PopupLabel is the text shown for the record on the exported map
func (r JobRecord) PopupLabel() string {
	return fmt.Sprintf("%s at %s (%s)", r.Title, r.Company, r.Location)
}

// Row returns the record as display strings in column order
func (r JobRecord) Row() []string {
	return []string{
		r.Title,
		r.Company,
		r.Location,
		FormatCoordinate(r.Latitude),
		FormatCoordinate(r.Longitude),
	}
}

// FormatCoordinate renders a coordinate with the shortest representation
// that parses back to the same value.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// JobInput holds the raw form values for a new record
type JobInput struct {
	Title     string
	Company   string
	Location  string
	Latitude  string
	Longitude string
}

// Parse validates the input and converts it to a record. The first failing
// field is reported as a *ValidationError.
func (in JobInput) Parse() (JobRecord, error) {
	values := []struct {
		field string
		value string
	}{
		{FieldTitle, in.Title},
		{FieldCompany, in.Company},
		{FieldLocation, in.Location},
		{FieldLatitude, in.Latitude},
		{FieldLongitude, in.Longitude},
	}
	for _, v := range values {
		if strings.TrimSpace(v.value) == "" {
			return JobRecord{}, &ValidationError{Field: v.field, Reason: "is required"}
		}
	}

	lat, err := parseCoordinate(FieldLatitude, in.Latitude)
	if err != nil {
		return JobRecord{}, err
	}
	lon, err := parseCoordinate(FieldLongitude, in.Longitude)
	if err != nil {
		return JobRecord{}, err
	}

	return JobRecord{
		Title:     strings.TrimSpace(in.Title),
		Company:   strings.TrimSpace(in.Company),
		Location:  strings.TrimSpace(in.Location),
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

// ErrNotFinite is returned for NaN and infinite coordinates, which cannot
// be encoded into the exported map.
var ErrNotFinite = errors.New("not a finite number")

// ParseCoordinate parses a decimal coordinate, rejecting NaN and ±Inf.
func ParseCoordinate(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

func parseCoordinate(field, raw string) (float64, error) {
	v, err := ParseCoordinate(raw)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: "must be a number"}
	}
	return v, nil
}

// ValidationError reports a rejected form field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
