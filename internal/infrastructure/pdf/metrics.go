package pdf

import (
	"sync"

	"github.com/phpdave11/gofpdf"
)

// fpdfMeasurer mide con las métricas de las fuentes core de gofpdf, las mismas que usa
// maroto al dibujar. gofpdf no es seguro para uso concurrente.
type fpdfMeasurer struct {
	mu  sync.Mutex
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newFpdfMeasurer() *fpdfMeasurer {
	pdf := gofpdf.New("P", "mm", "A4", "")
	return &fpdfMeasurer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// Width ancho en mm de text en Helvetica.
func (f *fpdfMeasurer) Width(text string, size float64, bold bool) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	style := ""
	if bold {
		style = "B"
	}
	f.pdf.SetFont("Helvetica", style, size)
	return f.pdf.GetStringWidth(f.tr(text))
}
