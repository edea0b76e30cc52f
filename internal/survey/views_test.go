package survey

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopCountries(t *testing.T) {
	a := loadPoll(t)

	tests := []struct {
		name string
		n    int
		want []CountryCount
	}{
		{"top 3", 3, []CountryCount{{"Russia", 4}, {"Ukraine", 3}, {"Belarus", 2}}},
		{"more than available", 10, a.CountriesByCount()},
		{"zero", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.TopCountries(tt.n))
		})
	}
	assert.Equal(t, []CountryCount{{"Belarus", 2}, {"Kazakhstan", 1}}, a.BottomCountries(2))
}

func TestFeatureCounts(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"Timestamp", "Grade"},
		{"2020-03-23", "A"},
		{"2020-03-23", "B"},
		{"2020-03-23", "B"},
		{"2020-03-23", "C"},
		{"2020-03-23", "B"},
		{"2020-03-23", "A"},
		{"2020-03-23", "B"},
		{"2020-03-23", "B"},
	})
	a, err := NewFromFrame(df)
	require.NoError(t, err)

	got, err := a.FeatureCounts("Grade")
	require.NoError(t, err)
	assert.Equal(t, []ValueCount{{"C", 1}, {"A", 2}, {"B", 5}}, got)
}

func TestFeatureCountsTiesKeepFirstAppearance(t *testing.T) {
	a := loadPoll(t)
	got, err := a.FeatureCounts(ColWork)
	require.NoError(t, err)
	assert.Equal(t, []ValueCount{
		{"Self-employed (freelance)", 1},
		{"Unemployed", 1},
		{"Employed remotely", 1},
		{"Student", 3},
		{"Employed", 4},
	}, got)
}

func TestFeatureCountsUnknownColumn(t *testing.T) {
	a := loadPoll(t)
	_, err := a.FeatureCounts("Salary")
	assert.ErrorIs(t, err, ErrColumnNotFound)

	p, err := a.PlotFeatureCount("Salary", "Salary")
	assert.ErrorIs(t, err, ErrColumnNotFound)
	assert.Nil(t, p)
}

func TestWorkByCountry(t *testing.T) {
	a := loadPoll(t)
	df, err := a.WorkByCountry(3, DefaultWorkLabels)
	require.NoError(t, err)

	assert.Equal(t, 9, df.Nrow())
	assert.NotContains(t, columnValues(df, ColCountry), "Kazakhstan")
	assert.Contains(t, columnValues(df, ColWork), "Freelancer")
	assert.NotContains(t, columnValues(df, ColWork), "Self-employed (freelance)")

	// the stored table keeps the raw answers
	assert.Contains(t, a.values(ColWork), "Self-employed (freelance)")
}

func TestWorkByCountrySyntheticLabels(t *testing.T) {
	a := loadPoll(t)
	df, err := a.WorkByCountry(1, Labels{"Employed": "E"})
	require.NoError(t, err)
	assert.Equal(t, []string{"E", "", "E", "E"}, columnValues(df, ColWork))
}

func TestAgeByCountry(t *testing.T) {
	a := loadPoll(t)
	df, err := a.AgeByCountry(5)
	require.NoError(t, err)

	assert.Equal(t, 10, df.Nrow())
	ages := columnValues(df, ColAge)
	assert.Equal(t, "18-", ages[0])
	assert.Equal(t, "42+", ages[len(ages)-1])
	assert.IsNonDecreasing(t, ages)
}

func TestAgeByExperience(t *testing.T) {
	a := loadPoll(t)
	got, err := a.AgeByExperience()
	require.NoError(t, err)
	assert.Equal(t, []AgeFacet{
		{Experience: "Middle", Counts: []int{0, 0, 3, 1, 0}},
		{Experience: "Junior", Counts: []int{1, 3, 0, 0, 0}},
		{Experience: "Senior", Counts: []int{0, 0, 0, 1, 1}},
	}, got)
}

func TestSatisfactionByWorkIsPure(t *testing.T) {
	a := loadPoll(t)
	before := a.values(ColSatMaterial)

	view, err := a.SatisfactionByWork(DefaultSatisfactionLabels)
	require.NoError(t, err)
	assert.Equal(t, "Perfect", columnValues(view, ColSatMaterial)[0])
	assert.Equal(t, "Too complex", columnValues(view, ColSatMaterial)[1])
	assert.Equal(t, "Too simple", columnValues(view, ColSatMaterial)[3])

	// a second call sees the raw answers again
	again, err := a.SatisfactionByWork(DefaultSatisfactionLabels)
	require.NoError(t, err)
	assert.Equal(t, columnValues(view, ColSatMaterial), columnValues(again, ColSatMaterial))
	assert.Equal(t, before, a.values(ColSatMaterial))
}

func TestCountryInterests(t *testing.T) {
	a := loadPoll(t)
	got, err := a.CountryInterests(4, 3)
	require.NoError(t, err)

	assert.Equal(t, []CountryInterests{
		{Country: "Belarus", Topics: []ValueCount{{"#RL", 2}, {"#Stats", 1}}},
		{Country: "Kazakhstan", Topics: []ValueCount{{"#CV", 1}}},
		{Country: "Russia", Topics: []ValueCount{{"#NLP", 3}, {"#CV", 2}, {"#RL", 1}}},
		{Country: "Ukraine", Topics: []ValueCount{{"#CV", 2}, {"#NLP", 2}, {"#Stats", 1}}},
	}, got)
}

func TestCountryInterestsBottomSelection(t *testing.T) {
	a := loadPoll(t)
	got, err := a.CountryInterests(2, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Belarus", got[0].Country)
	assert.Equal(t, "Kazakhstan", got[1].Country)
	assert.Equal(t, []ValueCount{{"#RL", 2}}, got[0].Topics)
}
