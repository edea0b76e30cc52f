package survey

import (
	"bytes"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"berkotech.co/survey/internal/chart"
)

func TestPlotsRender(t *testing.T) {
	a := loadPoll(t)

	tests := []struct {
		name  string
		build func() (chart.Figure, error)
	}{
		{"date count", func() (chart.Figure, error) { return a.PlotDateCount() }},
		{"top countries", func() (chart.Figure, error) { return a.PlotTopCountries(3) }},
		{"feature", func() (chart.Figure, error) { return a.PlotFeatureCount(ColWork, "Work status") }},
		{"work by country", func() (chart.Figure, error) { return a.PlotWorkCountry(5) }},
		{"age by country", func() (chart.Figure, error) { return a.PlotAge() }},
		{"age by experience", a.PlotAgeExperience},
		{"satisfaction", func() (chart.Figure, error) { return a.PlotSatisfaction() }},
		{"country interests", func() (chart.Figure, error) { return a.PlotCountryInterests(4) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig, err := tt.build()
			require.NoError(t, err)
			b, err := chart.Encode(fig, 8*vg.Inch, 6*vg.Inch, "png")
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))
		})
	}
}

func TestPlotTopCountriesLargestOnTop(t *testing.T) {
	a := loadPoll(t)
	p, err := a.PlotTopCountries(3)
	require.NoError(t, err)

	ticks := p.Y.Tick.Marker.Ticks(p.Y.Min, p.Y.Max)
	var labels []string
	for _, tk := range ticks {
		if tk.Label != "" {
			labels = append(labels, tk.Label)
		}
	}
	assert.Equal(t, []string{"Belarus", "Ukraine", "Russia"}, labels)
}

func TestPlotAgeExperienceWraps(t *testing.T) {
	a := loadPoll(t)
	fig, err := a.PlotAgeExperience()
	require.NoError(t, err)

	grid, ok := fig.(*chart.FacetGrid)
	require.True(t, ok)
	panels := grid.Panels()
	require.Len(t, panels, 1)
	require.Len(t, panels[0], 3)
	assert.Equal(t, "Experience = Middle", panels[0][0].Title.Text)
	assert.Equal(t, "Experience = Senior", panels[0][2].Title.Text)
}

func TestPlotCountryInterestsGrid(t *testing.T) {
	a := loadPoll(t)
	fig, err := a.PlotCountryInterests(4)
	require.NoError(t, err)

	grid, ok := fig.(*chart.PieGrid)
	require.True(t, ok)
	assert.Equal(t, [][]string{
		{"Belarus", "Kazakhstan"},
		{"Russia", "Ukraine"},
	}, grid.Titles())
}

func TestPlotCountryInterestsFewerCountries(t *testing.T) {
	a := loadPoll(t)
	fig, err := a.PlotCountryInterests(3)
	require.NoError(t, err)

	grid := fig.(*chart.PieGrid)
	assert.Equal(t, [][]string{
		{"Belarus", "Kazakhstan"},
		{"Ukraine", ""},
	}, grid.Titles())
}

func TestPlotCountryInterestsTooManyCountries(t *testing.T) {
	records := [][]string{{"Timestamp", "Country", "Interests"}}
	for _, c := range []string{"A", "B", "C", "D", "E"} {
		records = append(records, []string{"2020-03-23 10:00:00", c, "#NLP"})
	}
	a, err := NewFromFrame(dataframe.LoadRecords(records))
	require.NoError(t, err)

	_, err = a.PlotCountryInterests(5)
	assert.ErrorIs(t, err, chart.ErrGridFull)
}

func TestPlotCountryInterestsKeepsCountryWithoutTopics(t *testing.T) {
	a, err := NewFromFrame(dataframe.LoadRecords([][]string{
		{"Timestamp", "Country", "Interests"},
		{"2020-03-23 10:00:00", "A", "#NLP"},
		{"2020-03-23 11:00:00", "B", ""},
		{"2020-03-23 12:00:00", "C", "#CV #RL"},
		{"2020-03-23 13:00:00", "D", "#Stats"},
	}))
	require.NoError(t, err)

	fig, err := a.PlotCountryInterests(4)
	require.NoError(t, err)
	grid := fig.(*chart.PieGrid)
	assert.Equal(t, [][]string{{"A", "B"}, {"C", "D"}}, grid.Titles())
}
