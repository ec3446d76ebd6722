package pdf

import (
	"strings"
	"unicode/utf8"
)

// ── Geometría de página (mm) ──────────────────────────────────────────────────

const (
	pageHeight   = 297.0
	marginTop    = 10.0
	marginBottom = 10.0
	marginSide   = 20.0
	// printableWidth ancho útil A4 (210 - 2×20) menos 2 mm para que maroto no vuelva a partir la línea.
	printableWidth = 168.0

	headerHeight = 28.0
	dividerH     = 2.0
	footerHeight = 12.0
	titleHeight  = 14.0
	titleGap     = 4.0
	// slack margen para errores de redondeo: maroto no debe abrir páginas propias.
	slack = 1.0

	bodySize    = 10.0
	headingSize = 11.0
	headingGap  = 5.0
	boxPadding  = 3.0
)

// bodyHeight alto disponible para el cuerpo de una página.
func bodyHeight(first bool) float64 {
	h := pageHeight - marginTop - marginBottom - headerHeight - dividerH - dividerH - footerHeight - slack
	if first {
		h -= titleHeight + titleGap
	}
	return h
}

// lineHeight alto de una línea de texto de tamaño size (pt): 10 pt → 5 mm.
func lineHeight(size float64) float64 {
	return size * 0.5
}

// ── Elementos ─────────────────────────────────────────────────────────────────

// Measurer mide el ancho (mm) de un texto en la fuente del documento.
type Measurer interface {
	Width(text string, size float64, bold bool) float64
}

// boxStyle estilo visual de un elemento.
type boxStyle int

const (
	stylePlain boxStyle = iota
	styleHighlight
	styleMuted
	styleStamp
)

// textLine línea ya partida al ancho de página.
type textLine struct {
	Text   string
	Size   float64
	Bold   bool
	Center bool
}

func (l textLine) height() float64 { return lineHeight(l.Size) }

// element unidad de maquetación. Los atómicos (cajas, firmas) nunca se parten entre páginas.
type element struct {
	Lines       []textLine
	Style       boxStyle
	Atomic      bool
	SpaceBefore float64
}

func (e element) padding() float64 {
	if e.Style == stylePlain {
		return 0
	}
	return boxPadding
}

func (e element) height() float64 {
	h := 2 * e.padding()
	for _, l := range e.Lines {
		h += l.height()
	}
	return h
}

// page elementos de una página física.
type page struct {
	Number   int
	Elements []element
}

// ── Paginación ────────────────────────────────────────────────────────────────

// paginate reparte los elementos en páginas con un cursor vertical. Un elemento
// atómico que no entra pasa entero a la página siguiente; uno plano se parte por líneas.
// El espacio previo se descarta al comienzo de página.
func paginate(elems []element) []page {
	pages := []page{{Number: 1}}
	cursor := 0.0
	avail := bodyHeight(true)

	newPage := func() {
		pages = append(pages, page{Number: len(pages) + 1})
		cursor = 0
		avail = bodyHeight(false)
	}
	place := func(e element) {
		if cursor == 0 {
			e.SpaceBefore = 0
		}
		p := &pages[len(pages)-1]
		p.Elements = append(p.Elements, e)
		cursor += e.SpaceBefore + e.height()
	}

	for _, e := range elems {
		space := e.SpaceBefore
		if cursor == 0 {
			space = 0
		}
		if cursor+space+e.height() <= avail {
			place(e)
			continue
		}

		// Atómico: página nueva, salvo que no entre ni en una página vacía.
		if e.Atomic && e.height() <= bodyHeight(false) {
			if cursor > 0 {
				newPage()
			}
			place(e)
			continue
		}

		rest := e.Lines
		for len(rest) > 0 {
			if cursor > 0 && cursor+space+2*e.padding()+rest[0].height() > avail {
				newPage()
			}
			if cursor == 0 {
				space = 0
			}
			used := cursor + space + 2*e.padding()
			n := 0
			for n < len(rest) && used+rest[n].height() <= avail {
				used += rest[n].height()
				n++
			}
			if n == 0 {
				n = 1
			}
			part := e
			part.Lines = rest[:n]
			part.SpaceBefore = space
			place(part)
			rest = rest[n:]
			space = 0
		}
	}
	return pages
}

// ── Word-wrap ─────────────────────────────────────────────────────────────────

// wrap parte text al ancho width. Respeta los saltos de línea explícitos y conserva
// las líneas vacías. Una palabra más ancha que la línea se corta por caracteres.
func wrap(m Measurer, text string, size float64, bold bool, width float64) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		current := ""
		for _, w := range words {
			candidate := w
			if current != "" {
				candidate = current + " " + w
			}
			if m.Width(candidate, size, bold) <= width {
				current = candidate
				continue
			}
			if current != "" {
				out = append(out, current)
				current = ""
			}
			for m.Width(w, size, bold) > width {
				head, tail := splitToWidth(m, w, size, bold, width)
				out = append(out, head)
				w = tail
			}
			current = w
		}
		out = append(out, current)
	}
	return out
}

// splitToWidth corta s en el mayor prefijo que entra en width (al menos un carácter).
func splitToWidth(m Measurer, s string, size float64, bold bool, width float64) (string, string) {
	cut := 0
	for i := range s {
		if i > 0 && m.Width(s[:i], size, bold) > width {
			break
		}
		cut = i
	}
	if cut == 0 {
		_, n := utf8.DecodeRuneInString(s)
		cut = n
	}
	return s[:cut], s[cut:]
}

// textLines envuelve text y devuelve las líneas con el estilo dado.
func textLines(m Measurer, text string, size float64, bold, center bool, width float64) []textLine {
	parts := wrap(m, text, size, bold, width)
	lines := make([]textLine, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, textLine{Text: p, Size: size, Bold: bold, Center: center})
	}
	return lines
}
