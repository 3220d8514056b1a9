package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ResponseColumn string   // Column name of the response (default: "y")
	FeatureColumns []string // Feature column names (default: all other columns)
	DateColumn     string   // Column name for dates (optional, auto-detected)
	DateFormat     string   // Date format (default: "2006-01-02")
	HasHeader      bool     // Whether CSV has header row (default: true)
	Delimiter      rune     // Field delimiter (default: ',')
	SkipRows       int      // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ResponseColumn: "y",
		DateFormat:     "2006-01-02",
		HasHeader:      true,
		Delimiter:      ',',
	}
}

var dateColumns = []string{"ds", "date", "Date", "timestamp", "Month", "Year"}

// missingValues are matched case-insensitively. Non-finite numbers such as
// Inf are treated as missing as well.
var missingValues = []string{"NA", "N/A", "NaN", "null", "none"}

var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
	"2006",
}

// LoadCSV loads a dataset from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a dataset from an io.Reader.
//
// Without a header the first column is the response and the remaining
// columns are features named x1, x2, ...
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Dataset, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	if reader.Comma == 0 {
		reader.Comma = ','
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	var layout *columnLayout
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		layout, err = headerLayout(header, opts)
		if err != nil {
			return nil, err
		}
	}

	ds := &Dataset{}
	var timestamps []time.Time
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if layout == nil {
			layout = positionalLayout(len(record))
		}

		y, ok := parseValue(record, layout.response)
		if !ok {
			continue
		}
		row := make([]float64, len(layout.features))
		complete := true
		for j, idx := range layout.features {
			if row[j], ok = parseValue(record, idx); !ok {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}

		ds.Response = append(ds.Response, y)
		ds.Design = append(ds.Design, row)

		if layout.date >= 0 && layout.date < len(record) {
			if ts, ok := parseDate(clean(record[layout.date]), opts.DateFormat); ok {
				timestamps = append(timestamps, ts)
			}
		}
	}

	if layout == nil || len(ds.Response) == 0 {
		return nil, ErrNoData
	}
	if len(layout.features) == 0 {
		return nil, ErrNoFeatures
	}

	ds.ResponseName = layout.responseName
	ds.Features = layout.featureNames
	if len(timestamps) == len(ds.Response) {
		ds.Timestamps = timestamps
	}
	return ds, nil
}

type columnLayout struct {
	response     int
	responseName string
	features     []int
	featureNames []string
	date         int
}

func headerLayout(header []string, opts *CSVOptions) (*columnLayout, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[clean(h)] = i
	}

	responseName := opts.ResponseColumn
	if responseName == "" {
		responseName = "y"
	}
	response, ok := index[responseName]
	if !ok {
		return nil, fmt.Errorf("%w: response %q", ErrUnknownColumn, responseName)
	}

	date := -1
	if opts.DateColumn != "" {
		if date, ok = index[opts.DateColumn]; !ok {
			return nil, fmt.Errorf("%w: date %q", ErrUnknownColumn, opts.DateColumn)
		}
	} else {
		for _, name := range dateColumns {
			if i, ok := index[name]; ok {
				date = i
				break
			}
		}
	}

	layout := &columnLayout{response: response, responseName: responseName, date: date}
	if len(opts.FeatureColumns) > 0 {
		for _, name := range opts.FeatureColumns {
			i, ok := index[name]
			if !ok {
				return nil, fmt.Errorf("%w: feature %q", ErrUnknownColumn, name)
			}
			layout.features = append(layout.features, i)
			layout.featureNames = append(layout.featureNames, name)
		}
		return layout, nil
	}

	for i, h := range header {
		if i == response || i == date {
			continue
		}
		layout.features = append(layout.features, i)
		layout.featureNames = append(layout.featureNames, clean(h))
	}
	return layout, nil
}

func positionalLayout(width int) *columnLayout {
	layout := &columnLayout{response: 0, responseName: "y", date: -1}
	for i := 1; i < width; i++ {
		layout.features = append(layout.features, i)
		layout.featureNames = append(layout.featureNames, "x"+strconv.Itoa(i))
	}
	return layout
}

func clean(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

func parseValue(record []string, idx int) (float64, bool) {
	if idx >= len(record) {
		return 0, false
	}
	s := clean(record[idx])
	if s == "" || slices.ContainsFunc(missingValues, func(m string) bool { return strings.EqualFold(s, m) }) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseDate(s, preferred string) (time.Time, bool) {
	formats := dateFormats
	if preferred != "" && preferred != dateFormats[0] {
		formats = append([]string{preferred}, dateFormats...)
	}
	for _, f := range formats {
		if ts, err := time.Parse(f, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
