package survey

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// Form exports write timestamps like "2020/03/23 10:11:32 AM GMT+3".
// time.Parse only records the offset of such zone names without applying
// it, so the suffix is split off and parsed here.
var timestampLayouts = []string{
	"2006/01/02 3:04:05 PM",
	"2006/01/02 15:04:05",
}

var gmtOffset = regexp.MustCompile(`^(.*?)\s*(?:GMT|UTC)([+-])(\d{1,2})(?::?(\d{2}))?$`)

// splitZone cuts a trailing "GMT+3" / "GMT-05:30" and returns the matching
// fixed zone. Strings without such a suffix are parsed in UTC.
func splitZone(s string) (string, *time.Location) {
	m := gmtOffset.FindStringSubmatch(s)
	if m == nil {
		return s, time.UTC
	}
	hours, _ := strconv.Atoi(m[3])
	minutes, _ := strconv.Atoi(m[4])
	offset := hours*3600 + minutes*60
	if m[2] == "-" {
		offset = -offset
	}
	name := "GMT" + m[2] + m[3]
	if m[4] != "" {
		name += ":" + m[4]
	}
	return m[1], time.FixedZone(name, offset)
}

func readFrame(path, sheet string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var df dataframe.DataFrame
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		df, err = readWorkbook(f, sheet)
	case ".gz":
		var zr *gzip.Reader
		zr, err = gzip.NewReader(f)
		if err == nil {
			defer zr.Close()
			df, err = readCSV(zr)
		}
	default:
		df, err = readCSV(f)
	}
	if err != nil {
		return dataframe.DataFrame{}, &LoadError{Path: path, Err: err}
	}
	return df, nil
}

func readCSV(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r)
	return df, df.Err
}

func readWorkbook(r io.Reader, sheet string) (dataframe.DataFrame, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return dataframe.DataFrame{}, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	if len(rows) == 0 {
		return dataframe.DataFrame{}, errors.New("sheet " + sheet + " is empty")
	}
	// GetRows drops trailing empty cells.
	width := len(rows[0])
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row[:width]
	}
	df := dataframe.LoadRecords(rows)
	return df, df.Err
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	local, loc := splitZone(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, local, loc); err == nil {
			return t, nil
		}
	}
	return dateparse.ParseAny(s)
}

// parseTimestamps parses the Timestamp column and replaces it with RFC 3339
// text so every later reader sees one format.
func parseTimestamps(df dataframe.DataFrame) (dataframe.DataFrame, []time.Time, error) {
	if !hasColumn(df, ColTimestamp) {
		return df, nil, &SchemaError{Column: ColTimestamp, Row: -1, Message: "missing"}
	}
	records := df.Col(ColTimestamp).Records()
	parsed := make([]time.Time, len(records))
	normalized := make([]string, len(records))
	for i, r := range records {
		t, err := parseTimestamp(r)
		if err != nil {
			return df, nil, &SchemaError{Column: ColTimestamp, Row: i, Message: "not a date/time", Err: err}
		}
		parsed[i] = t
		normalized[i] = t.Format(time.RFC3339)
	}
	df = df.Mutate(series.New(normalized, series.String, ColTimestamp))
	return df, parsed, df.Err
}

func renameColumns(df dataframe.DataFrame, names Labels) dataframe.DataFrame {
	for _, old := range df.Names() {
		if name, ok := names[old]; ok && name != old {
			df = df.Rename(name, old)
		}
	}
	return df
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
