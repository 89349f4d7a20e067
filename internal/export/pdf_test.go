package export

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investorhub/investor-portal/docgen/internal/config"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 4))))
	return buf.Bytes()
}

func TestDocumentBuilderProducesPDF(t *testing.T) {
	b := NewDocumentBuilder(config.DefaultTheme(), "Test Document")
	b.Title("TITLE")
	b.Subtitle("subtitle")
	b.Heading("Section")
	b.Paragraph("Body text that should wrap when it gets long enough to span more than one line of the page.")
	b.KeyValueTable([][2]string{{"Label:", "value"}}, 40)
	b.PairRow("A:", "1", "B:", "2")
	b.DataTable([]Column{
		{Label: "Name", Width: 100, Align: "L"},
		{Label: "Amount", Width: 70, Align: "R"},
	}, [][]string{{"first", "$1.00"}, {"second", "$2.00"}, {"Total", "$3.00"}}, true)
	b.CenteredNote("footer line")

	var buf bytes.Buffer
	require.NoError(t, b.WriteTo(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestDocumentBuilderReference(t *testing.T) {
	b := NewDocumentBuilder(config.DefaultTheme(), "Test Document")
	_, err := uuid.Parse(b.Reference())
	assert.NoError(t, err)
}

func TestImageDataEmbedsValidPNG(t *testing.T) {
	b := NewDocumentBuilder(config.DefaultTheme(), "Test Document")
	require.NoError(t, b.ImageData(encodePNG(t), "png", 63.5, 25.4))

	var buf bytes.Buffer
	require.NoError(t, b.WriteTo(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestImageDataRejectsCorruptImage(t *testing.T) {
	b := NewDocumentBuilder(config.DefaultTheme(), "Test Document")
	err := b.ImageData([]byte("definitely not an image"), "png", 63.5, 25.4)
	require.Error(t, err)

	// a rejected image must not poison the document
	b.Paragraph("still renders")
	var buf bytes.Buffer
	require.NoError(t, b.WriteTo(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestDataTablePageBreakRepeatsHeader(t *testing.T) {
	b := NewDocumentBuilder(config.DefaultTheme(), "Test Document")
	rows := make([][]string, 80)
	for i := range rows {
		rows[i] = []string{"row", "$0.00"}
	}
	b.DataTable([]Column{
		{Label: "Name", Width: 100, Align: "L"},
		{Label: "Amount", Width: 70, Align: "R"},
	}, rows, false)

	var buf bytes.Buffer
	require.NoError(t, b.WriteTo(&buf))
	assert.Greater(t, buf.Len(), 1000)
}
