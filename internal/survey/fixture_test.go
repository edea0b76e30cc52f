package survey

import (
	"compress/gzip"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// pollRecords is a ten-respondent poll export with the raw questionnaire
// headers. Countries: Russia 4, Ukraine 3, Belarus 2, Kazakhstan 1.
var pollRecords = [][]string{
	{
		"Timestamp",
		"Work status",
		"What is your residence country (where are you from?)",
		"Data Science expertise  level",
		"Are you satisfied with channel's material complexity?",
		"What field are you interested in (multiple choices are possible)",
		"How likely are you going to recommend a channel to your friend or colleague?",
		"Whatâ€™s the main reason for your score? *",
		"Age",
	},
	{"2020/03/23 10:11:32 AM GMT+3", "Employed", "Russia", "Middle", "It's all ok", "#NLP #CV", "9", "Great content and great people", "25-30"},
	{"2020/03/23 11:00:00 AM GMT+3", "Student", "Russia", "Junior", "Need more beginners' stuff", "#NLP #RL", "7", "Too complex sometimes", "18-24"},
	{"2020/03/23 01:15:00 PM GMT+3", "Self-employed (freelance)", "Ukraine", "Senior", "It's all ok", "#CV", "10", "Great memes", "31-42"},
	{"2020-03-24 09:00:00", "Employed", "Russia", "Middle", "Need more specific and complicated materials", "#NLP #CV", "8", "Content is great", "25-30"},
	{"2020-03-24 10:00:00", "Unemployed", "Ukraine", "Junior", "It's all ok", "#CV #NLP", "6", "ok", "18-"},
	{"2020-03-24 11:00:00", "Employed", "Belarus", "Middle", "It's all ok", "#RL #RL", "9", "nice", "25-30"},
	{"2020-03-24 12:00:00", "Student", "Kazakhstan", "Junior", "Need more beginners' stuff", "#CV", "5", "hard", "18-24"},
	{"2020-03-25 09:00:00", "Employed", "Russia", "Senior", "It's all ok", "#Stats", "10", "great", "42+"},
	{"2020-03-25 10:00:00", "Employed remotely", "Ukraine", "Middle", "It's all ok", "#Stats #NLP", "9", "useful", "31-42"},
	{"2020-03-25 11:00:00", "Student", "Belarus", "Junior", "It's all ok", "#Stats", "8", "useful", "18-24"},
}

func writeCSV(t *testing.T, path string, records [][]string) string {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	if filepath.Ext(path) == ".gz" {
		zw := gzip.NewWriter(f)
		defer zw.Close()
		w = csv.NewWriter(zw)
	}
	require.NoError(t, w.WriteAll(records))
	return path
}

func writeXLSX(t *testing.T, path string, records [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, rec := range records {
		row := make([]interface{}, len(rec))
		for j, v := range rec {
			row[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func loadPoll(t *testing.T, opts ...Option) *Analyzer {
	t.Helper()
	path := writeCSV(t, filepath.Join(t.TempDir(), "poll.csv"), pollRecords)
	a, err := New(path, opts...)
	require.NoError(t, err)
	return a
}
