package pdf

import (
	"strings"

	"github.com/jhoicas/labora-api/internal/domain/document"
)

// boxWidth ancho del texto dentro de una caja (padding lateral de 3 mm).
const boxWidth = printableWidth - 2*boxPadding

// ── Orçamento ─────────────────────────────────────────────────────────────────

// quoteElements convierte las secciones del orçamento en elementos maquetables.
// La sección de la empresa no se repite en el cuerpo: ya está en el encabezado.
func quoteElements(m Measurer, doc *document.QuoteDocument) []element {
	var out []element
	for _, s := range doc.Sections {
		switch s.Kind {
		case document.SectionCompany:
			continue
		case document.SectionValue:
			out = append(out, valueBox(m, s))
		case document.SectionTerms:
			out = append(out, paragraphBox(m, s, styleMuted))
		case document.SectionStatus:
			out = append(out, stampBox(m, s))
		default:
			out = append(out, heading(m, s.Title))
			out = append(out, plainSection(m, s)...)
		}
	}
	return out
}

func heading(m Measurer, title string) element {
	return element{
		Lines:       textLines(m, title, headingSize, true, false, printableWidth),
		SpaceBefore: headingGap,
	}
}

func plainSection(m Measurer, s document.Section) []element {
	var out []element
	for _, f := range s.Fields {
		out = append(out, element{Lines: textLines(m, f.Label+": "+f.Value, bodySize, false, false, printableWidth)})
	}
	for _, p := range s.Paragraphs {
		out = append(out, element{Lines: textLines(m, p, bodySize, false, false, printableWidth)})
	}
	return out
}

// valueBox caja destacada con el valor total y la forma de pago.
func valueBox(m Measurer, s document.Section) element {
	lines := textLines(m, s.Title, 12, true, false, boxWidth)
	for i, f := range s.Fields {
		size := bodySize
		if i == 0 {
			size = 14
		}
		lines = append(lines, textLines(m, f.Label+": "+f.Value, size, i == 0, false, boxWidth)...)
	}
	return element{Lines: lines, Style: styleHighlight, Atomic: true, SpaceBefore: headingGap}
}

// paragraphBox caja con título y párrafos (términos y condiciones).
func paragraphBox(m Measurer, s document.Section, style boxStyle) element {
	lines := textLines(m, s.Title, headingSize, true, false, boxWidth)
	for _, p := range s.Paragraphs {
		lines = append(lines, textLines(m, p, 9, false, false, boxWidth)...)
	}
	return element{Lines: lines, Style: style, Atomic: true, SpaceBefore: headingGap}
}

// stampBox sello de estado (APROVADO / REJEITADO + justificativa).
func stampBox(m Measurer, s document.Section) element {
	var lines []textLine
	for i, f := range s.Fields {
		if i == 0 {
			lines = append(lines, textLines(m, f.Value, 14, true, true, boxWidth)...)
			continue
		}
		lines = append(lines, textLines(m, f.Label+": "+f.Value, bodySize, false, true, boxWidth)...)
	}
	return element{Lines: lines, Style: styleStamp, Atomic: true, SpaceBefore: headingGap}
}

// ── Contrato ──────────────────────────────────────────────────────────────────

// contractElements convierte los bloques del contrato. Las firmas se mantienen juntas.
func contractElements(m Measurer, c *document.Contract) []element {
	var out []element
	for _, b := range c.Blocks {
		space := float64(b.BlankLinesBefore) * lineHeight(bodySize)

		if b.Kind == document.BlockSignature {
			var lines []textLine
			for _, l := range strings.Split(b.Text, "\n") {
				lines = append(lines, textLines(m, l, bodySize, false, true, printableWidth)...)
			}
			out = append(out, element{Lines: lines, Atomic: true, SpaceBefore: space})
			continue
		}

		for i, l := range strings.Split(b.Text, "\n") {
			e := element{}
			switch b.Kind {
			case document.BlockAuto:
				e.Lines = autoLines(m, b, l)
			case document.BlockHeading:
				e.Lines = textLines(m, strings.TrimSpace(l), headingSize, true, false, printableWidth)
			default:
				e.Lines = textLines(m, l, bodySize, false, false, printableWidth)
			}
			if i == 0 {
				e.SpaceBefore = space
			}
			out = append(out, e)
		}
	}
	return out
}

// autoLines parte una línea de texto libre al ancho de página y recién entonces
// clasifica cada tramo con b.LineKind.
func autoLines(m Measurer, b document.Block, l string) []textLine {
	var lines []textLine
	for _, w := range wrap(m, l, bodySize, false, printableWidth) {
		if b.LineKind(w) == document.BlockHeading {
			lines = append(lines, textLines(m, strings.TrimSpace(w), headingSize, true, false, printableWidth)...)
			continue
		}
		lines = append(lines, textLine{Text: w, Size: bodySize})
	}
	return lines
}
