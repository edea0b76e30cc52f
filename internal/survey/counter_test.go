package survey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterMostCommon(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  []ValueCount
	}{
		{
			name:  "ties keep first seen order",
			input: "#WhereToStart #EntryLevel #Novice #EntryLevel #WhereToStart #Novice",
			n:     3,
			want:  []ValueCount{{"#WhereToStart", 2}, {"#EntryLevel", 2}, {"#Novice", 2}},
		},
		{
			name:  "truncates",
			input: "b a b c b a",
			n:     2,
			want:  []ValueCount{{"b", 3}, {"a", 2}},
		},
		{
			name:  "all",
			input: "x y",
			n:     -1,
			want:  []ValueCount{{"x", 1}, {"y", 1}},
		},
		{
			name:  "empty",
			input: "",
			n:     3,
			want:  []ValueCount{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCounter()
			c.addAll(strings.Fields(tt.input))
			assert.Equal(t, tt.want, c.mostCommon(tt.n))
		})
	}
}

func TestLabelsApply(t *testing.T) {
	l := Labels{"It's all ok": "Perfect"}
	assert.Equal(t, []string{"Perfect", ""}, l.Apply([]string{"It's all ok", "Meh"}))
}
