// Package export writes the tracker's records to an Excel workbook.
package export

import (
	"fmt"
	"io"
	"time"

	"khelkhatm/backend/models"

	"github.com/xuri/excelize/v2"
)

const (
	SheetQuestions = "Questions"
	SheetConcepts  = "Concepts"
	SheetDailyLogs = "DailyLogs"
)

type Data struct {
	Questions []models.Question
	Concepts  []models.Concept
	Logs      []models.DailyLog
}

type sheet struct {
	name   string
	header []interface{}
	widths []float64
	rows   [][]interface{}
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (d Data) sheets() []sheet {
	questions := sheet{
		name:   SheetQuestions,
		header: []interface{}{"Phase", "Topic", "Title", "Status", "Completed At", "Revisions", "Link"},
		widths: []float64{28, 24, 40, 10, 24, 10, 50},
	}
	for _, q := range d.Questions {
		questions.rows = append(questions.rows, []interface{}{
			q.Phase, q.Topic, q.Title, string(q.Status), timestamp(q.CompletedAt), len(q.Revisions), optional(q.Link),
		})
	}

	concepts := sheet{
		name:   SheetConcepts,
		header: []interface{}{"Subject", "Topic", "Status"},
		widths: []float64{16, 28, 10},
	}
	for _, c := range d.Concepts {
		concepts.rows = append(concepts.rows, []interface{}{c.Subject, c.Topic, string(c.Status)})
	}

	logs := sheet{
		name:   SheetDailyLogs,
		header: []interface{}{"Date", "Exercise", "Coding", "Notes"},
		widths: []float64{12, 10, 10, 50},
	}
	for _, l := range d.Logs {
		logs.rows = append(logs.rows, []interface{}{l.DayKey(), yesNo(l.Exercise), yesNo(l.Coding), optional(l.Notes)})
	}

	return []sheet{questions, concepts, logs}
}

// Workbook builds a workbook with one sheet per record kind. The caller
// closes it.
func Workbook(d Data) (*excelize.File, error) {
	f := excelize.NewFile()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, s := range d.sheets() {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				f.Close()
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", s.name, err)
		}

		if err := writeSheet(f, s, bold); err != nil {
			f.Close()
			return nil, fmt.Errorf("write sheet %s: %w", s.name, err)
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, s sheet, headerStyle int) error {
	if err := f.SetSheetRow(s.name, "A1", &s.header); err != nil {
		return err
	}

	last, err := excelize.ColumnNumberToName(len(s.header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(s.name, "A1", last+"1", headerStyle); err != nil {
		return err
	}

	for i, width := range s.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(s.name, col, col, width); err != nil {
			return err
		}
	}

	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// Write streams the workbook to w.
func Write(w io.Writer, d Data) error {
	f, err := Workbook(d)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

func SaveAs(path string, d Data) error {
	f, err := Workbook(d)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
