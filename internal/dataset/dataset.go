// Package dataset loads the destination dataset into typed records and
// answers city/state lookups against it.
package dataset

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Column names the loader relies on. The rating column varies by
// dataset export and is configured instead.
const (
	ColName  = "Name"
	ColCity  = "City"
	ColState = "State"
	ColType  = "Type"
)

// Destination is one row of the dataset. Rating is nil when the rating
// column is absent or the cell is empty/non-numeric.
type Destination struct {
	Name   string
	City   string
	State  string
	Type   string // comma-joined category labels
	Rating *float64
}

// Table is the in-memory dataset: the typed records plus the raw rows
// they were built from. Raw rows are kept for dataset inspection.
type Table struct {
	Columns      []string
	Rows         [][]string
	Destinations []Destination

	// RatingColumn is the configured rating column name; HasRating
	// reports whether it was actually present in the header.
	RatingColumn string
	HasRating    bool
	HasType      bool
	HasState     bool

	colIdx map[string]int
}

// Options configures dataset loading.
type Options struct {
	// RatingColumn is the header name of the numeric rating column.
	RatingColumn string
}

// Load reads a dataset file into a Table. Files ending in .xlsx are
// read as spreadsheets, everything else as CSV.
func Load(path string, opts Options) (*Table, error) {
	var (
		records [][]string
		err     error
	)
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		records, err = readXLSX(path)
	} else {
		records, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}

	return build(records, opts)
}

// build assembles a Table from raw records (header row first).
func build(records [][]string, opts Options) (*Table, error) {
	if len(records) < 2 {
		return nil, eris.New("dataset: file has no data rows")
	}

	header := records[0]
	colIdx := make(map[string]int, len(header))
	for i, col := range header {
		colIdx[strings.TrimSpace(col)] = i
	}

	// Name and City must exist; everything else degrades to neutral
	// scoring defaults.
	for _, col := range []string{ColName, ColCity} {
		if _, ok := colIdx[col]; !ok {
			return nil, eris.Errorf("dataset: missing required column %q", col)
		}
	}

	t := &Table{
		Columns:      header,
		Rows:         records[1:],
		RatingColumn: opts.RatingColumn,
		colIdx:       colIdx,
	}
	_, t.HasState = colIdx[ColState]
	_, t.HasType = colIdx[ColType]
	if opts.RatingColumn != "" {
		_, t.HasRating = colIdx[opts.RatingColumn]
	}

	log := zap.L()
	if !t.HasState {
		log.Warn("dataset: State column missing, proximity scoring will be uniform")
	}
	if !t.HasType {
		log.Warn("dataset: Type column missing, category scores default to neutral")
	}
	if opts.RatingColumn != "" && !t.HasRating {
		log.Warn("dataset: rating column missing, rating scores default to neutral",
			zap.String("column", opts.RatingColumn))
	}

	titler := cases.Title(language.English)
	var dropped int
	for _, row := range t.Rows {
		city := getCol(row, colIdx, ColCity)
		state := getCol(row, colIdx, ColState)

		// A record without a city can never be resolved or located; a
		// record without a state (when the column exists) cannot be
		// proximity-scored. Both are excluded up front.
		if city == "" || (t.HasState && state == "") {
			dropped++
			continue
		}

		d := Destination{
			Name:  getCol(row, colIdx, ColName),
			City:  titler.String(strings.ToLower(city)),
			State: state,
			Type:  getCol(row, colIdx, ColType),
		}
		if t.HasRating {
			if v, err := strconv.ParseFloat(getCol(row, colIdx, opts.RatingColumn), 64); err == nil {
				d.Rating = &v
			}
		}
		t.Destinations = append(t.Destinations, d)
	}

	if dropped > 0 {
		log.Info("dataset: dropped records with empty City/State", zap.Int("dropped", dropped))
	}
	if len(t.Destinations) == 0 {
		return nil, eris.New("dataset: no usable records")
	}

	log.Info("dataset loaded",
		zap.Int("destinations", len(t.Destinations)),
		zap.Int("columns", len(t.Columns)),
	)
	return t, nil
}

// HasColumn reports whether the header contains the given column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.colIdx[name]
	return ok
}

// Col returns the trimmed value of the named column in a raw row, or ""
// when the column is absent or the row is short.
func (t *Table) Col(row []string, name string) string {
	return getCol(row, t.colIdx, name)
}

// StateOf resolves the state of a city by case-insensitive match over
// the loaded records. The second return is false when no record
// matches.
func (t *Table) StateOf(city string) (string, bool) {
	for _, d := range t.Destinations {
		if strings.EqualFold(d.City, city) {
			return d.State, true
		}
	}
	return "", false
}

// Cities returns the distinct city names in the dataset, in first-seen
// order.
func (t *Table) Cities() []string {
	seen := make(map[string]bool)
	var cities []string
	for _, d := range t.Destinations {
		key := strings.ToLower(d.City)
		if seen[key] {
			continue
		}
		seen[key] = true
		cities = append(cities, d.City)
	}
	return cities
}

// getCol safely retrieves a column value from a raw row.
func getCol(row []string, colIdx map[string]int, col string) string {
	idx, ok := colIdx[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
