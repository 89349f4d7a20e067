package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"investorhub/investor-portal/docgen/internal/config"
)

// Column describes one column of a data table.
type Column struct {
	Label string
	Width float64 // mm
	Align string  // L, C, R
}

// DocumentBuilder assembles a single PDF document from theme-styled layout
// primitives. A builder is used for exactly one document and never reused;
// the underlying gofpdf state is not designed for reuse.
type DocumentBuilder struct {
	pdf   *gofpdf.Fpdf
	theme config.Theme
	tr    func(string) string
	ref   string
}

// NewDocumentBuilder creates a builder for one document. The document title,
// brand and a generated reference ID are stamped into the PDF metadata.
func NewDocumentBuilder(theme config.Theme, docTitle string) *DocumentBuilder {
	orientation := "P"
	if theme.Orientation == "landscape" {
		orientation = "L"
	}

	pdf := gofpdf.New(orientation, "mm", theme.PageSize, "")
	pdf.SetMargins(theme.Margins.Left, theme.Margins.Top, theme.Margins.Right)
	pdf.SetAutoPageBreak(true, theme.Margins.Bottom)

	ref := uuid.NewString()
	pdf.SetTitle(docTitle, true)
	pdf.SetAuthor(theme.Brand, true)
	pdf.SetCreator(theme.Brand, true)
	pdf.SetSubject(fmt.Sprintf("Document Reference %s", ref), true)

	b := &DocumentBuilder{
		pdf:   pdf,
		theme: theme,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		ref:   ref,
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(theme.FontFamily, "", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	return b
}

// Reference returns the generated document reference ID.
func (b *DocumentBuilder) Reference() string {
	return b.ref
}

// Title adds the centered document title.
func (b *DocumentBuilder) Title(text string) {
	b.pdf.SetFont(b.theme.FontFamily, "B", b.theme.TitleFontSize)
	b.pdf.SetTextColor(26, 26, 46)
	b.pdf.CellFormat(0, 12, b.tr(text), "", 1, "C", false, 0, "")
	b.pdf.Ln(2)
}

// Subtitle adds a centered secondary line under the title.
func (b *DocumentBuilder) Subtitle(text string) {
	b.pdf.SetFont(b.theme.FontFamily, "B", b.theme.HeadingFontSize)
	b.pdf.SetTextColor(100, 100, 100)
	b.pdf.CellFormat(0, 8, b.tr(text), "", 1, "C", false, 0, "")
	b.pdf.Ln(2)
}

// Heading adds a left-aligned section heading.
func (b *DocumentBuilder) Heading(text string) {
	b.pdf.Ln(4)
	b.pdf.SetFont(b.theme.FontFamily, "B", b.theme.HeadingFontSize)
	b.pdf.SetTextColor(26, 26, 46)
	b.pdf.CellFormat(0, 8, b.tr(text), "", 1, "L", false, 0, "")
	b.pdf.Ln(1)
}

// Paragraph adds a body paragraph with wrapping.
func (b *DocumentBuilder) Paragraph(text string) {
	b.pdf.SetFont(b.theme.FontFamily, "", b.theme.FontSize)
	b.pdf.SetTextColor(0, 0, 0)
	b.pdf.MultiCell(0, 6, b.tr(text), "", "L", false)
	b.pdf.Ln(2)
}

// Note adds a smaller, muted paragraph for legal text.
func (b *DocumentBuilder) Note(text string) {
	b.pdf.SetFont(b.theme.FontFamily, "", b.theme.FontSize-1)
	b.pdf.SetTextColor(b.theme.MutedColor.R, b.theme.MutedColor.G, b.theme.MutedColor.B)
	b.pdf.MultiCell(0, 5.5, b.tr(text), "", "L", false)
	b.pdf.Ln(1)
}

// CenteredNote adds a small centered line, used for document footers.
func (b *DocumentBuilder) CenteredNote(text string) {
	b.pdf.SetFont(b.theme.FontFamily, "", b.theme.FontSize-2)
	b.pdf.SetTextColor(128, 128, 128)
	b.pdf.CellFormat(0, 5, b.tr(text), "", 1, "C", false, 0, "")
}

// Spacer adds vertical whitespace.
func (b *DocumentBuilder) Spacer(h float64) {
	b.pdf.Ln(h)
}

// KeyValueTable adds a borderless two-column table with bold labels.
func (b *DocumentBuilder) KeyValueTable(rows [][2]string, labelWidth float64) {
	for _, row := range rows {
		b.pdf.SetFont(b.theme.FontFamily, "B", b.theme.FontSize)
		b.pdf.SetTextColor(b.theme.MutedColor.R, b.theme.MutedColor.G, b.theme.MutedColor.B)
		b.pdf.CellFormat(labelWidth, 7, b.tr(row[0]), "", 0, "L", false, 0, "")
		b.pdf.SetFont(b.theme.FontFamily, "", b.theme.FontSize)
		b.pdf.SetTextColor(0, 0, 0)
		b.pdf.CellFormat(0, 7, b.tr(row[1]), "", 1, "L", false, 0, "")
	}
	b.pdf.Ln(2)
}

// PairRow adds one row of a label/value grid with two pairs side by side.
func (b *DocumentBuilder) PairRow(label1, value1, label2, value2 string) {
	b.pdf.SetFont(b.theme.FontFamily, "B", b.theme.FontSize-1)
	b.pdf.SetTextColor(0, 0, 0)
	b.pdf.CellFormat(30, 7, b.tr(label1), "", 0, "L", false, 0, "")
	b.pdf.SetFont(b.theme.FontFamily, "", b.theme.FontSize-1)
	b.pdf.CellFormat(64, 7, b.tr(value1), "", 0, "L", false, 0, "")
	b.pdf.SetFont(b.theme.FontFamily, "B", b.theme.FontSize-1)
	b.pdf.CellFormat(34, 7, b.tr(label2), "", 0, "L", false, 0, "")
	b.pdf.SetFont(b.theme.FontFamily, "", b.theme.FontSize-1)
	b.pdf.CellFormat(0, 7, b.tr(value2), "", 1, "L", false, 0, "")
}

// DataTable adds a bordered table with a filled header row and alternating
// row backgrounds. When totalRow is true the last row is emphasized with the
// total-row fill and a bold font. The header repeats after a page break.
func (b *DocumentBuilder) DataTable(cols []Column, rows [][]string, totalRow bool) {
	b.pdf.SetDrawColor(b.theme.GridColor.R, b.theme.GridColor.G, b.theme.GridColor.B)
	b.writeTableHeader(cols)

	_, pageH := b.pdf.GetPageSize()
	maxY := pageH - b.theme.Margins.Bottom

	const rowH = 8.0
	for i, row := range rows {
		if b.pdf.GetY()+rowH > maxY {
			b.pdf.AddPage()
			b.writeTableHeader(cols)
		}

		isTotal := totalRow && i == len(rows)-1
		style := ""
		fill := false
		switch {
		case isTotal:
			style = "B"
			fill = true
			b.pdf.SetFillColor(b.theme.TotalRowColor.R, b.theme.TotalRowColor.G, b.theme.TotalRowColor.B)
		case i%2 == 1:
			fill = true
			b.pdf.SetFillColor(b.theme.AlternateColor.R, b.theme.AlternateColor.G, b.theme.AlternateColor.B)
		}

		b.pdf.SetFont(b.theme.FontFamily, style, b.theme.FontSize-1)
		b.pdf.SetTextColor(0, 0, 0)
		for j, col := range cols {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			b.pdf.CellFormat(col.Width, rowH, b.tr(cell), "1", 0, col.Align, fill, 0, "")
		}
		b.pdf.Ln(-1)
	}
	b.pdf.Ln(2)
}

func (b *DocumentBuilder) writeTableHeader(cols []Column) {
	b.pdf.SetFont(b.theme.FontFamily, "B", b.theme.FontSize-1)
	b.pdf.SetFillColor(b.theme.HeaderColor.R, b.theme.HeaderColor.G, b.theme.HeaderColor.B)
	b.pdf.SetTextColor(255, 255, 255)
	for _, col := range cols {
		b.pdf.CellFormat(col.Width, 8, b.tr(col.Label), "1", 0, "C", true, 0, "")
	}
	b.pdf.Ln(-1)
}

// ImageData embeds an in-memory image at the current position. The bytes are
// validated against a scratch document first so a corrupt image reports an
// error instead of poisoning the builder.
func (b *DocumentBuilder) ImageData(data []byte, imageType string, w, h float64) error {
	opts := gofpdf.ImageOptions{ImageType: imageType}
	name := "img-" + uuid.NewString()

	probe := gofpdf.New("P", "mm", "A4", "")
	probe.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if probe.Err() {
		return fmt.Errorf("registering image: %w", probe.Error())
	}

	b.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	y := b.pdf.GetY()
	b.pdf.ImageOptions(name, b.pdf.GetX(), y, w, h, false, opts, 0, "")
	if b.pdf.Err() {
		return fmt.Errorf("placing image: %w", b.pdf.Error())
	}
	b.pdf.SetY(y + h + 2)
	return nil
}

// WriteTo renders the document to a writer.
func (b *DocumentBuilder) WriteTo(w io.Writer) error {
	return b.pdf.Output(w)
}

// SaveAs renders the document to a file, overwriting any existing file.
func (b *DocumentBuilder) SaveAs(path string) error {
	return b.pdf.OutputFileAndClose(path)
}
