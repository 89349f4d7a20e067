package export

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"investorhub/investor-portal/docgen/internal/config"
)

// Workbook assembles a styled XLSX document. Like DocumentBuilder, one
// workbook is built per export and never reused. Write errors latch on the
// workbook (the gofpdf model): subsequent writes become no-ops and SaveAs
// reports the first failure.
type Workbook struct {
	file          *excelize.File
	theme         config.Theme
	ref           string
	sheets        int
	err           error
	titleStyle    int
	headerStyle   int
	currencyStyle int
}

// NewWorkbook creates a workbook with document properties and shared styles.
func NewWorkbook(theme config.Theme, docTitle string) (*Workbook, error) {
	f := excelize.NewFile()
	ref := uuid.NewString()

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:      docTitle,
		Creator:    theme.Brand,
		Identifier: ref,
	}); err != nil {
		return nil, fmt.Errorf("setting workbook properties: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("creating title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{hexColor(theme.HeaderColor)},
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	numFmt := CurrencyNumFmt
	currencyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return nil, fmt.Errorf("creating currency style: %w", err)
	}

	return &Workbook{
		file:          f,
		theme:         theme,
		ref:           ref,
		titleStyle:    titleStyle,
		headerStyle:   headerStyle,
		currencyStyle: currencyStyle,
	}, nil
}

// Reference returns the generated document reference ID.
func (w *Workbook) Reference() string {
	return w.ref
}

func (w *Workbook) setErr(context string, err error) {
	if w.err == nil && err != nil {
		w.err = fmt.Errorf("%s: %w", context, err)
	}
}

// Sheet writes rows top to bottom on one worksheet.
type Sheet struct {
	wb   *Workbook
	name string
	row  int
}

// AddSheet adds a named worksheet. The first call renames the default sheet.
func (w *Workbook) AddSheet(name string) *Sheet {
	if w.err == nil {
		if w.sheets == 0 {
			w.setErr("naming sheet "+name, w.file.SetSheetName("Sheet1", name))
		} else {
			_, err := w.file.NewSheet(name)
			w.setErr("adding sheet "+name, err)
		}
	}
	w.sheets++
	return &Sheet{wb: w, name: name}
}

// SetColWidth sets the width of a column range, e.g. ("A", "D", 22).
func (s *Sheet) SetColWidth(start, end string, width float64) {
	if s.wb.err != nil {
		return
	}
	s.wb.setErr("sizing columns", s.wb.file.SetColWidth(s.name, start, end, width))
}

// SkipRow leaves one row blank.
func (s *Sheet) SkipRow() {
	s.row++
}

// TitleRow writes a bold title cell in the first column.
func (s *Sheet) TitleRow(text string) {
	s.row++
	if s.wb.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		s.wb.setErr("title row", err)
		return
	}
	s.wb.setErr("title row", s.wb.file.SetCellValue(s.name, cell, text))
	s.wb.setErr("title row", s.wb.file.SetCellStyle(s.name, cell, cell, s.wb.titleStyle))
}

// HeaderRow writes a filled, bold header row.
func (s *Sheet) HeaderRow(labels ...string) {
	s.row++
	if s.wb.err != nil {
		return
	}
	for i, label := range labels {
		cell, err := excelize.CoordinatesToCellName(i+1, s.row)
		if err != nil {
			s.wb.setErr("header row", err)
			return
		}
		s.wb.setErr("header row", s.wb.file.SetCellValue(s.name, cell, label))
		s.wb.setErr("header row", s.wb.file.SetCellStyle(s.name, cell, cell, s.wb.headerStyle))
	}
}

// Row writes one row of values. float64 cells get the currency number
// format; wrap a value in Raw to keep the default cell format.
func (s *Sheet) Row(values ...any) {
	s.row++
	if s.wb.err != nil {
		return
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, s.row)
		if err != nil {
			s.wb.setErr("data row", err)
			return
		}
		if raw, ok := v.(Raw); ok {
			v = raw.Value
		} else if _, ok := v.(float64); ok {
			s.wb.setErr("data row", s.wb.file.SetCellStyle(s.name, cell, cell, s.wb.currencyStyle))
		}
		s.wb.setErr("data row", s.wb.file.SetCellValue(s.name, cell, v))
	}
}

// Raw marks a cell value that must keep the default cell format.
type Raw struct {
	Value any
}

// SaveAs writes the workbook to a file, overwriting any existing file. Any
// error latched while writing sheets is returned instead.
func (w *Workbook) SaveAs(path string) error {
	if w.err != nil {
		return w.err
	}
	return w.file.SaveAs(path)
}

func hexColor(c config.Color) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}
