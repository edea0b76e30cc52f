package survey

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ValueCount is the number of occurrences of one value.
type ValueCount struct {
	Value string
	Count int
}

// counter counts values and remembers the order they were first seen in,
// so ties always resolve to the earlier value.
type counter struct {
	m *orderedmap.OrderedMap[string, int]
}

func newCounter() *counter {
	return &counter{m: orderedmap.New[string, int]()}
}

func (c *counter) add(v string) {
	n, _ := c.m.Get(v)
	c.m.Set(v, n+1)
}

func (c *counter) addAll(vs []string) {
	for _, v := range vs {
		c.add(v)
	}
}

func (c *counter) len() int { return c.m.Len() }

// counts returns the counts in first-seen order.
func (c *counter) counts() []ValueCount {
	out := make([]ValueCount, 0, c.m.Len())
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, ValueCount{Value: pair.Key, Count: pair.Value})
	}
	return out
}

// mostCommon returns the n highest counts, descending. n < 0 returns all.
func (c *counter) mostCommon(n int) []ValueCount {
	out := c.counts()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
