package survey

import (
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"berkotech.co/survey/internal/chart"
)

const (
	topCountriesForViolins = 5
	facetWrap              = 3
	topicsPerCountry       = 3
)

// PlotDateCount draws the cumulative number of responses per day.
func (a *Analyzer) PlotDateCount() (*plot.Plot, error) {
	dates := make([]time.Time, len(a.daily))
	for i, d := range a.daily {
		dates[i] = d.Date
	}
	counts := chart.Values(a.DailyCountFrame().Col("Count"))
	return chart.TimeLine("Cumulative number of respondents by day", "Date", "Count", dates, counts)
}

// PlotTopCountries draws the n most frequent countries, largest on top.
func (a *Analyzer) PlotTopCountries(n int) (*plot.Plot, error) {
	top := a.TopCountries(n)
	labels := make([]string, len(top))
	values := make(plotter.Values, len(top))
	for i, c := range top {
		j := len(top) - 1 - i
		labels[j] = c.Country
		values[j] = float64(c.Count)
	}
	return chart.HorizontalBars(fmt.Sprintf("Top %d countries of the audience", n), "Count", labels, values)
}

// PlotFeatureCount draws the value counts of any column.
func (a *Analyzer) PlotFeatureCount(feature, title string) (*plot.Plot, error) {
	counts, err := a.FeatureCounts(feature)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(counts))
	values := make(plotter.Values, len(counts))
	for i, c := range counts {
		labels[i] = c.Value
		values[i] = float64(c.Count)
	}
	return chart.HorizontalBars(title, "Count", labels, values)
}

// PlotWorkCountry draws Work status against the n most frequent countries.
func (a *Analyzer) PlotWorkCountry(n int) (*plot.Plot, error) {
	df, err := a.WorkByCountry(n, a.workLabels)
	if err != nil {
		return nil, err
	}
	return chart.ViolinPlot("Relationship between country and work status", ColCountry, ColWork,
		columnValues(df, ColCountry), columnValues(df, ColWork))
}

// PlotAge draws Age against the five most frequent countries.
func (a *Analyzer) PlotAge() (*plot.Plot, error) {
	df, err := a.AgeByCountry(topCountriesForViolins)
	if err != nil {
		return nil, err
	}
	return chart.ViolinPlot("Relationship between countries and age", ColCountry, ColAge,
		columnValues(df, ColCountry), columnValues(df, ColAge))
}

// PlotAgeExperience draws Age counts with one panel per Experience level.
func (a *Analyzer) PlotAgeExperience() (chart.Figure, error) {
	facets, err := a.AgeByExperience()
	if err != nil {
		return nil, err
	}
	panels := make([]chart.Facet, len(facets))
	for i, f := range facets {
		counts := make(plotter.Values, len(f.Counts))
		for j, c := range f.Counts {
			counts[j] = float64(c)
		}
		panels[i] = chart.Facet{Title: ColExperience + " = " + f.Experience, Counts: counts}
	}
	grid, err := chart.NewFacetGrid(ColAge, a.ageOrder, panels, facetWrap)
	if err != nil {
		return nil, err
	}
	return grid, nil
}

// PlotSatisfaction draws material satisfaction against Work status.
func (a *Analyzer) PlotSatisfaction() (*plot.Plot, error) {
	df, err := a.SatisfactionByWork(a.satisfactionLabels)
	if err != nil {
		return nil, err
	}
	return chart.ViolinPlot("Distribution of satisfaction for material complexity", ColWork, ColSatMaterial,
		columnValues(df, ColWork), columnValues(df, ColSatMaterial))
}

// PlotCountryInterests draws the top interest topics of the n least
// represented countries as a 2x2 grid of pies. A country without topics
// keeps its cell. More than four countries do not fit and fail with
// chart.ErrGridFull.
func (a *Analyzer) PlotCountryInterests(n int) (chart.Figure, error) {
	interests, err := a.CountryInterests(n, topicsPerCountry)
	if err != nil {
		return nil, err
	}
	grid, err := chart.NewPieGrid(fmt.Sprintf("Top %d topics in the %d least represented countries", topicsPerCountry, n), 2, 2)
	if err != nil {
		return nil, err
	}
	if len(interests) > 4 {
		return nil, fmt.Errorf("%d countries in a 2x2 grid: %w", len(interests), chart.ErrGridFull)
	}
	for _, ci := range interests {
		pie := chart.Pie{Title: ci.Country}
		for _, t := range ci.Topics {
			pie.Labels = append(pie.Labels, t.Value)
			pie.Values = append(pie.Values, float64(t.Count))
		}
		if _, _, err := grid.Add(pie); err != nil {
			return nil, err
		}
	}
	return grid, nil
}
