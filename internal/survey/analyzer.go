// Package survey loads survey responses into a dataframe and derives the
// aggregates and charts of the audience report.
package survey

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/sirupsen/logrus"

	"berkotech.co/survey/internal/chart"
)

// Display shows a figure immediately, e.g. by writing it to disk.
type Display interface {
	Show(name string, fig chart.Figure) error
}

// DailyCount is the cumulative number of responses up to and including Date.
type DailyCount struct {
	Date  time.Time
	Count int
}

// CountryCount is the number of responses from one country.
type CountryCount struct {
	Country string
	Count   int
}

// Analyzer owns a loaded response table and the aggregates computed from it
// at construction. The table is never modified afterwards.
type Analyzer struct {
	df         dataframe.DataFrame
	timestamps []time.Time

	daily            []DailyCount
	countries        []CountryCount
	countriesByCount []CountryCount

	log                *logrus.Entry
	columnNames        Labels
	workLabels         Labels
	satisfactionLabels Labels
	ageOrder           []string
	stopwords          map[string]bool
	maxWords           int
	display            Display
	sheet              string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the entry the analyzer logs through.
func WithLogger(l *logrus.Entry) Option { return func(a *Analyzer) { a.log = l } }

// WithColumnNames replaces the header rename table.
func WithColumnNames(l Labels) Option { return func(a *Analyzer) { a.columnNames = l } }

// WithWorkLabels sets the Work status display names.
func WithWorkLabels(l Labels) Option { return func(a *Analyzer) { a.workLabels = l } }

// WithSatisfactionLabels sets the Sat_material display names.
func WithSatisfactionLabels(l Labels) Option {
	return func(a *Analyzer) { a.satisfactionLabels = l }
}

// WithAgeOrder sets the order of the Age buckets in the facet plot.
func WithAgeOrder(order []string) Option { return func(a *Analyzer) { a.ageOrder = order } }

// WithDisplay sets where word clouds are shown.
func WithDisplay(d Display) Option { return func(a *Analyzer) { a.display = d } }

// WithSheet selects the worksheet read from .xlsx input.
func WithSheet(name string) Option { return func(a *Analyzer) { a.sheet = name } }

func newAnalyzer(opts []Option) *Analyzer {
	a := &Analyzer{
		log:                logrus.NewEntry(logrus.StandardLogger()),
		columnNames:        DefaultColumnNames,
		workLabels:         DefaultWorkLabels,
		satisfactionLabels: DefaultSatisfactionLabels,
		ageOrder:           DefaultAgeOrder,
		maxWords:           DefaultMaxWords,
	}
	WithStopwords(DefaultStopwords)(a)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// New reads the dataset at path (.csv, .gz compressed csv or .xlsx).
func New(path string, opts ...Option) (*Analyzer, error) {
	a := newAnalyzer(opts)
	df, err := readFrame(path, a.sheet)
	if err != nil {
		return nil, err
	}
	rows, cols := df.Dims()
	a.log.WithFields(logrus.Fields{"path": path, "rows": rows, "columns": cols}).Debug("dataset loaded")
	if err := a.prepare(df); err != nil {
		return nil, err
	}
	return a, nil
}

// NewFromFrame builds an Analyzer over an already loaded table.
func NewFromFrame(df dataframe.DataFrame, opts ...Option) (*Analyzer, error) {
	if df.Err != nil {
		return nil, &LoadError{Path: "<frame>", Err: df.Err}
	}
	a := newAnalyzer(opts)
	if err := a.prepare(df); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Analyzer) prepare(df dataframe.DataFrame) error {
	df, ts, err := parseTimestamps(df)
	if err != nil {
		return err
	}
	df = renameColumns(df, a.columnNames)
	if df.Err != nil {
		return fmt.Errorf("rename columns: %w", df.Err)
	}
	a.df = df
	a.timestamps = ts
	a.daily = dailyCounts(ts)

	if hasColumn(df, ColCountry) {
		c := newCounter()
		for _, v := range a.values(ColCountry) {
			if v != "" {
				c.add(v)
			}
		}
		for _, vc := range c.mostCommon(-1) {
			a.countriesByCount = append(a.countriesByCount, CountryCount{Country: vc.Value, Count: vc.Count})
		}
		a.countries = append([]CountryCount(nil), a.countriesByCount...)
		sort.Slice(a.countries, func(i, j int) bool { return a.countries[i].Country < a.countries[j].Country })
	} else {
		a.log.Warn("no Country column, country aggregates are empty")
	}

	a.log.WithFields(logrus.Fields{
		"days":      len(a.daily),
		"countries": len(a.countries),
	}).Debug("aggregates computed")
	return nil
}

func dailyCounts(ts []time.Time) []DailyCount {
	perDay := map[time.Time]int{}
	for _, t := range ts {
		y, m, d := t.Date()
		perDay[time.Date(y, m, d, 0, 0, 0, 0, time.UTC)]++
	}
	days := make([]time.Time, 0, len(perDay))
	for d := range perDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	out := make([]DailyCount, len(days))
	total := 0
	for i, d := range days {
		total += perDay[d]
		out[i] = DailyCount{Date: d, Count: total}
	}
	return out
}

// Frame returns the renamed response table.
func (a *Analyzer) Frame() dataframe.DataFrame { return a.df.Copy() }

// Timestamps returns the parsed Timestamp column.
func (a *Analyzer) Timestamps() []time.Time {
	return append([]time.Time(nil), a.timestamps...)
}

// DailyCounts returns the cumulative responses per day, oldest first.
func (a *Analyzer) DailyCounts() []DailyCount {
	return append([]DailyCount(nil), a.daily...)
}

// Countries returns the responses per country sorted by country name.
func (a *Analyzer) Countries() []CountryCount {
	return append([]CountryCount(nil), a.countries...)
}

// CountriesByCount returns the responses per country, most frequent first.
func (a *Analyzer) CountriesByCount() []CountryCount {
	return append([]CountryCount(nil), a.countriesByCount...)
}

// DailyCountFrame is DailyCounts as a (Date, Count) table.
func (a *Analyzer) DailyCountFrame() dataframe.DataFrame {
	dates := make([]string, len(a.daily))
	counts := make([]int, len(a.daily))
	for i, d := range a.daily {
		dates[i] = d.Date.Format("2006-01-02")
		counts[i] = d.Count
	}
	return dataframe.New(
		series.New(dates, series.String, "Date"),
		series.New(counts, series.Int, "Count"),
	)
}

// CountryFrame is a (Country, Count) table; byCount selects frequency order.
func (a *Analyzer) CountryFrame(byCount bool) dataframe.DataFrame {
	cs := a.countries
	if byCount {
		cs = a.countriesByCount
	}
	if len(cs) == 0 {
		return dataframe.New(
			series.New([]string{}, series.String, "Country"),
			series.New([]int{}, series.Int, "Count"),
		)
	}
	return dataframe.LoadStructs(cs)
}
