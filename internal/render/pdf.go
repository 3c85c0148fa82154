package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/claude/fitcoach/internal/models"
)

const fontFamily = "Helvetica"

type style struct {
	font   string // fpdf style string: "", "B", "I", "BI"
	size   float64
	height float64
	align  string
	indent float64
}

var styles = map[Kind]style{
	KindTitle:    {font: "B", size: 20, height: 10, align: "C"},
	KindMeta:     {font: "", size: 11, height: 6, align: "L"},
	KindLabel:    {font: "B", size: 12, height: 7, align: "L"},
	KindHeading1: {font: "B", size: 16, height: 9, align: "L"},
	KindHeading2: {font: "B", size: 14, height: 8, align: "L"},
	KindHeading3: {font: "B", size: 12, height: 7, align: "L"},
	KindEmphasis: {font: "B", size: 11, height: 6, align: "L"},
	KindBullet:   {font: "", size: 11, height: 6, align: "L", indent: 6},
	KindBody:     {font: "", size: 11, height: 6, align: "L"},
	KindFooter:   {font: "I", size: 8, height: 5, align: "C"},
}

const (
	blankHeight  = 4
	ruleSpacing  = 3
	bulletGlyph  = "•"
	bulletIndent = 6
)

// PDF renders spec as an A4 document. Text is translated to cp1252 for the
// core fonts; runes outside that code page are not representable.
func PDF(spec models.WorkoutSpec, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(DocumentTitle, true)
	pdf.SetCreator(ProductName, true)
	pdf.SetCreationDate(generatedAt)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, l := range Layout(spec, generatedAt) {
		writeLine(pdf, tr, l)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("laying out pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeLine(pdf *fpdf.Fpdf, tr func(string) string, l Line) {
	switch l.Kind {
	case KindBlank:
		pdf.Ln(blankHeight)
		return
	case KindRule:
		left, _, right, _ := pdf.GetMargins()
		pageW, _ := pdf.GetPageSize()
		y := pdf.GetY() + ruleSpacing
		pdf.Line(left, y, pageW-right, y)
		pdf.SetY(y + ruleSpacing)
		return
	}

	st, ok := styles[l.Kind]
	if !ok {
		st = styles[KindBody]
	}
	pdf.SetFont(fontFamily, st.font, st.size)

	if l.Kind == KindBullet {
		left, _, _, _ := pdf.GetMargins()
		pdf.SetX(left + st.indent)
		pdf.CellFormat(bulletIndent, st.height, tr(bulletGlyph), "", 0, "L", false, 0, "")
		pdf.MultiCell(0, st.height, tr(l.Text), "", st.align, false)
		return
	}
	if l.Kind == KindHeading1 || l.Kind == KindHeading2 {
		pdf.Ln(2)
	}
	pdf.MultiCell(0, st.height, tr(l.Text), "", st.align, false)
}
