package agreements

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"investorhub/investor-portal/docgen/internal/config"
	"investorhub/investor-portal/docgen/internal/export"
)

// Signature image size, 2.5in x 1in.
const (
	signatureWidthMM  = 63.5
	signatureHeightMM = 25.4
)

const (
	placeholderNoSignature  = "[No signature provided]"
	placeholderBadSignature = "[Signature could not be rendered]"
)

type signatureKind int

const (
	sigNone signatureKind = iota
	sigBroken
	sigImage
)

type signature struct {
	kind      signatureKind
	data      []byte
	imageType string
}

// resolveSignature classifies a signatureData value. Only a data:image/ URI
// with a decodable base64 payload yields an embeddable image; a present but
// undecodable payload is broken, anything else means no signature.
func resolveSignature(raw string) signature {
	const prefix = "data:image/"
	if !strings.HasPrefix(raw, prefix) {
		return signature{kind: sigNone}
	}
	header, payload, found := strings.Cut(raw, ",")
	if !found {
		return signature{kind: sigBroken}
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return signature{kind: sigBroken}
	}
	imageType := strings.TrimPrefix(header, prefix)
	if i := strings.IndexByte(imageType, ';'); i >= 0 {
		imageType = imageType[:i]
	}
	return signature{kind: sigImage, data: data, imageType: imageType}
}

// Render writes the signed agreement PDF to outputPath. Field-level problems
// in the input degrade to placeholders; only document or output failures
// return an error.
func Render(in AgreementInput, theme config.Theme, outputPath string) error {
	doc := in.withDefaults(theme, time.Now())

	b := export.NewDocumentBuilder(theme, "Investment Agreement")
	b.Title("INVESTMENT AGREEMENT")
	b.Heading(doc.Title)

	b.KeyValueTable([][2]string{
		{"Investor Name:", doc.InvestorName},
		{"Email:", doc.InvestorEmail},
		{"Investment Amount:", export.FormatCurrency(doc.Amount)},
		{"Agreement Date:", doc.AgreementDate},
	}, 50)

	b.Heading("Terms and Conditions")
	for _, p := range doc.Paragraphs {
		b.Paragraph(p)
	}

	b.Spacer(8)
	b.Heading("Acknowledgment")
	b.Note(fmt.Sprintf(
		"I, %s, acknowledge that I have read, understood, and agree to be bound "+
			"by all terms and conditions set forth in this Investment Agreement. "+
			"I confirm that I am investing the amount specified above of my own "+
			"free will and understand the risks involved with this investment.",
		doc.AckName))

	b.Spacer(8)
	b.Heading("Digital Signature")
	switch doc.Signature.kind {
	case sigImage:
		err := b.ImageData(doc.Signature.data, doc.Signature.imageType,
			signatureWidthMM, signatureHeightMM)
		if err != nil {
			b.Paragraph(placeholderBadSignature)
		}
	case sigBroken:
		b.Paragraph(placeholderBadSignature)
	default:
		b.Paragraph(placeholderNoSignature)
	}

	b.Spacer(4)
	b.KeyValueTable([][2]string{
		{"Signed by:", doc.InvestorName},
		{"Date Signed:", doc.SignedDate},
		{"IP Address:", "Recorded on server"},
	}, 40)

	b.Spacer(12)
	b.Note("This document was electronically signed and is legally binding. " +
		"A copy has been stored securely for your records.")

	return b.SaveAs(outputPath)
}
