package loadcase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Column order of case sheets
var caseColumns = []string{"name", "type", "length", "magnitude", "position", "start", "end"}

// Column order of result sheets
var resultColumns = []string{"name", "type", "length", "magnitude", "total_load", "reaction_a", "reaction_b", "error"}

// LoadXLSX reads cases from the first sheet of a workbook. The first row is
// a header; empty rows are skipped and a malformed row fails the whole file
// with its row number.
func LoadXLSX(path string) ([]Case, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: sheet %q has no cases", path, sheet)
	}

	var cases []Case
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		c, err := parseCaseRow(rows[i])
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, i+1, err)
		}
		cases = append(cases, c)
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("%s: sheet %q has no cases", path, sheet)
	}

	return cases, nil
}

// WriteXLSX writes one row per result with a header row
func WriteXLSX(path string, results []Result) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := setRow(f, sheet, 1, toRow(resultColumns)); err != nil {
		return err
	}

	for i, r := range results {
		row := []interface{}{r.Case.Name, r.Case.Load.Type, r.Case.Length, magnitudeOf(r)}
		if r.Err != nil {
			row = append(row, nil, nil, nil, r.Err.Error())
		} else {
			row = append(row, r.Total, r.Reactions.ReactionA, r.Reactions.ReactionB)
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// WriteCasesXLSX writes cases in the layout LoadXLSX reads
func WriteCasesXLSX(path string, cases []Case) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := setRow(f, sheet, 1, toRow(caseColumns)); err != nil {
		return err
	}
	for i, c := range cases {
		row := []interface{}{c.Name, c.Load.Type, c.Length, c.Load.Magnitude,
			cellValue(c.Load.Position), cellValue(c.Load.Start), cellValue(c.Load.End)}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func parseCaseRow(row []string) (Case, error) {
	// expected: name, type, length, magnitude, position(optional), start(optional), end(optional)
	if len(row) < 4 {
		return Case{}, fmt.Errorf("expected at least %d columns (%s), got %d",
			4, strings.Join(caseColumns[:4], ", "), len(row))
	}

	c := Case{Name: strings.TrimSpace(row[0])}
	c.Load.Type = strings.TrimSpace(row[1])

	var err error
	if c.Length, err = toFloat("length", row[2]); err != nil {
		return Case{}, err
	}
	if c.Load.Magnitude, err = toFloat("magnitude", row[3]); err != nil {
		return Case{}, err
	}

	// empty cells stay nil so ToLoad can tell a missing position from 0
	optional := []**float64{&c.Load.Position, &c.Load.Start, &c.Load.End}
	for j, dst := range optional {
		col := 4 + j
		if len(row) <= col || strings.TrimSpace(row[col]) == "" {
			continue
		}
		v, err := toFloat(caseColumns[col], row[col])
		if err != nil {
			return Case{}, err
		}
		*dst = &v
	}

	return c, nil
}

func toFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, s)
	}
	return v, nil
}

// cellValue leaves the cell empty for an absent field
func cellValue(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func toRow(cols []string) []interface{} {
	out := make([]interface{}, len(cols))
	for i, c := range cols {
		out[i] = c
	}
	return out
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
