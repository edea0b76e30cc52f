package survey

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes the snapshot aggregates as an xlsx workbook with the
// sheets "Daily", "Countries" and "Top countries".
func (a *Analyzer) WriteWorkbook(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name string
		df   dataframe.DataFrame
	}{
		{"Daily", a.DailyCountFrame()},
		{"Countries", a.CountryFrame(false)},
		{"Top countries", a.CountryFrame(true)},
	}
	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return err
		}
		if err := writeFrame(f, s.name, s.df); err != nil {
			return fmt.Errorf("sheet %s: %w", s.name, err)
		}
	}
	_, err := f.WriteTo(w)
	return err
}

// SaveWorkbook writes the workbook to path.
func (a *Analyzer) SaveWorkbook(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.WriteWorkbook(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeFrame(f *excelize.File, sheet string, df dataframe.DataFrame) error {
	names := df.Names()
	header := make([]interface{}, len(names))
	for i, n := range names {
		header[i] = n
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for r := 0; r < df.Nrow(); r++ {
		row := make([]interface{}, len(names))
		for c, n := range names {
			s := df.Col(n)
			e := s.Elem(r)
			switch s.Type() {
			case series.Int:
				v, err := e.Int()
				if err != nil {
					return err
				}
				row[c] = v
			case series.Float:
				row[c] = e.Float()
			default:
				row[c] = e.String()
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
