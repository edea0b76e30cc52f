package survey

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-gota/gota/series"
	"github.com/sirupsen/logrus"

	"berkotech.co/survey/internal/chart"
)

var wordPattern = regexp.MustCompile(`\w[\w']+`)

// DefaultStopwords are dropped from word clouds.
var DefaultStopwords = []string{
	"a", "about", "all", "also", "am", "an", "and", "any", "are", "as", "at",
	"be", "because", "been", "but", "by", "can", "could", "do", "does", "for",
	"from", "get", "had", "has", "have", "he", "her", "here", "him", "his",
	"how", "i", "i'm", "if", "in", "into", "is", "it", "it's", "its", "just",
	"me", "more", "most", "my", "no", "not", "of", "on", "one", "only", "or",
	"other", "our", "out", "so", "some", "such", "than", "that", "the",
	"their", "them", "then", "there", "these", "they", "this", "those", "to",
	"too", "very", "was", "we", "were", "what", "when", "which", "who", "why",
	"will", "with", "would", "you", "your",
}

// DefaultMaxWords is the number of words drawn in a word cloud.
const DefaultMaxWords = 200

// WithMaxWords caps the words drawn in a word cloud; n <= 0 draws all.
func WithMaxWords(n int) Option { return func(a *Analyzer) { a.maxWords = n } }

// WithStopwords replaces the words dropped from word clouds.
func WithStopwords(words []string) Option {
	return func(a *Analyzer) {
		a.stopwords = make(map[string]bool, len(words))
		for _, w := range words {
			a.stopwords[strings.ToLower(w)] = true
		}
	}
}

// Text joins the non-empty values of a text column with single spaces.
func (a *Analyzer) Text(feature string) (string, error) {
	if err := a.requireColumns(feature); err != nil {
		return "", err
	}
	if t := a.df.Col(feature).Type(); t != series.String {
		return "", fmt.Errorf("%q has type %s: %w", feature, t, ErrNotText)
	}
	var parts []string
	for _, v := range a.values(feature) {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " "), nil
}

// wordCounts counts words case-insensitively, keeping the first spelling
// seen, and returns the limit most frequent (all when limit <= 0).
func wordCounts(text string, stopwords map[string]bool, limit int) []chart.Word {
	c := newCounter()
	spelling := map[string]string{}
	for _, w := range wordPattern.FindAllString(text, -1) {
		key := strings.ToLower(w)
		if stopwords[key] {
			continue
		}
		if _, ok := spelling[key]; !ok {
			spelling[key] = w
		}
		c.add(key)
	}
	if limit <= 0 {
		limit = -1
	}
	top := c.mostCommon(limit)
	words := make([]chart.Word, len(top))
	for i, vc := range top {
		words[i] = chart.Word{Text: spelling[vc.Value], Count: vc.Count}
	}
	return words
}

// DisplayWordCloud renders a word cloud of a text column on the display.
func (a *Analyzer) DisplayWordCloud(feature string) error {
	if a.display == nil {
		return ErrNoDisplay
	}
	text, err := a.Text(feature)
	if err != nil {
		return err
	}
	words := wordCounts(text, a.stopwords, a.maxWords)
	a.log.WithFields(logrus.Fields{"column": feature, "words": len(words)}).Debug("word cloud")
	return a.display.Show("wordcloud_"+strings.ToLower(feature), chart.NewWordCloud(words))
}
