package survey

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// AgeFacet holds the Age bucket counts of one Experience level, aligned with
// the analyzer's age order.
type AgeFacet struct {
	Experience string
	Counts     []int
}

// CountryInterests holds the most frequent interest tokens of one country.
type CountryInterests struct {
	Country string
	Topics  []ValueCount
}

func (a *Analyzer) requireColumns(cols ...string) error {
	for _, c := range cols {
		if !hasColumn(a.df, c) {
			return columnError(c)
		}
	}
	return nil
}

// columnValues returns a column as strings with missing cells as "".
// The column must exist.
func columnValues(df dataframe.DataFrame, col string) []string {
	s := df.Col(col)
	out := make([]string, s.Len())
	for i := range out {
		if e := s.Elem(i); !e.IsNA() {
			out[i] = e.String()
		}
	}
	return out
}

func (a *Analyzer) values(col string) []string { return columnValues(a.df, col) }

// TopCountries returns the n countries with the most responses, descending.
func (a *Analyzer) TopCountries(n int) []CountryCount {
	n = max(0, min(n, len(a.countriesByCount)))
	return append([]CountryCount(nil), a.countriesByCount[:n]...)
}

// BottomCountries returns the n countries with the fewest responses, in
// frequency order (the least frequent last).
func (a *Analyzer) BottomCountries(n int) []CountryCount {
	n = max(0, min(n, len(a.countriesByCount)))
	return append([]CountryCount(nil), a.countriesByCount[len(a.countriesByCount)-n:]...)
}

// FeatureCounts counts the distinct non-empty values of feature, ascending by
// count. Equal counts keep first-appearance order.
func (a *Analyzer) FeatureCounts(feature string) ([]ValueCount, error) {
	if err := a.requireColumns(feature); err != nil {
		return nil, err
	}
	c := newCounter()
	for _, v := range a.values(feature) {
		if v != "" {
			c.add(v)
		}
	}
	out := c.counts()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count < out[j].Count })
	return out, nil
}

func (a *Analyzer) rowsInCountries(countries []CountryCount) (dataframe.DataFrame, error) {
	if len(countries) == 0 {
		return dataframe.DataFrame{}, errors.New("no countries selected")
	}
	names := make([]string, len(countries))
	for i, c := range countries {
		names[i] = c.Country
	}
	sub := a.df.Filter(dataframe.F{Colname: ColCountry, Comparator: series.In, Comparando: names})
	if sub.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("filter countries: %w", sub.Err)
	}
	return sub.Copy(), nil
}

// WorkByCountry returns the rows of the n most frequent countries with Work
// mapped through labels.
func (a *Analyzer) WorkByCountry(n int, labels Labels) (dataframe.DataFrame, error) {
	if err := a.requireColumns(ColCountry, ColWork); err != nil {
		return dataframe.DataFrame{}, err
	}
	sub, err := a.rowsInCountries(a.TopCountries(n))
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	work := labels.Apply(columnValues(sub, ColWork))
	sub = sub.Mutate(series.New(work, series.String, ColWork))
	return sub, sub.Err
}

// AgeByCountry returns the rows of the n most frequent countries sorted by Age.
func (a *Analyzer) AgeByCountry(n int) (dataframe.DataFrame, error) {
	if err := a.requireColumns(ColCountry, ColAge); err != nil {
		return dataframe.DataFrame{}, err
	}
	sub, err := a.rowsInCountries(a.TopCountries(n))
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	sub = sub.Arrange(dataframe.Sort(ColAge))
	return sub, sub.Err
}

// AgeByExperience counts Age buckets per Experience level. Levels appear in
// first-appearance order; ages outside the configured order are ignored.
func (a *Analyzer) AgeByExperience() ([]AgeFacet, error) {
	if err := a.requireColumns(ColAge, ColExperience); err != nil {
		return nil, err
	}
	pos := make(map[string]int, len(a.ageOrder))
	for i, age := range a.ageOrder {
		pos[age] = i
	}
	var facets []AgeFacet
	index := map[string]int{}
	ages := a.values(ColAge)
	for i, exp := range a.values(ColExperience) {
		if exp == "" {
			continue
		}
		fi, ok := index[exp]
		if !ok {
			fi = len(facets)
			index[exp] = fi
			facets = append(facets, AgeFacet{Experience: exp, Counts: make([]int, len(a.ageOrder))})
		}
		if p, ok := pos[ages[i]]; ok {
			facets[fi].Counts[p]++
		}
	}
	return facets, nil
}

// SatisfactionByWork returns a copy of the table with Sat_material mapped
// through labels. The analyzer's own table is left unchanged.
func (a *Analyzer) SatisfactionByWork(labels Labels) (dataframe.DataFrame, error) {
	if err := a.requireColumns(ColSatMaterial, ColWork); err != nil {
		return dataframe.DataFrame{}, err
	}
	view := a.df.Copy()
	sat := labels.Apply(columnValues(view, ColSatMaterial))
	view = view.Mutate(series.New(sat, series.String, ColSatMaterial))
	return view, view.Err
}

// CountryInterests takes the n least frequent countries and returns the k
// most common interest tokens of each, countries ordered by name.
func (a *Analyzer) CountryInterests(n, k int) ([]CountryInterests, error) {
	if err := a.requireColumns(ColCountry, ColInterests); err != nil {
		return nil, err
	}
	sub, err := a.rowsInCountries(a.BottomCountries(n))
	if err != nil {
		return nil, err
	}

	var out []CountryInterests
	for _, g := range sub.GroupBy(ColCountry).GetGroups() {
		if g.Nrow() == 0 {
			continue
		}
		country := columnValues(g, ColCountry)[0]
		tokens := strings.Fields(strings.Join(columnValues(g, ColInterests), " "))
		c := newCounter()
		c.addAll(tokens)
		out = append(out, CountryInterests{Country: country, Topics: c.mostCommon(k)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out, nil
}
