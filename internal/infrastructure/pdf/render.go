package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/labora-api/internal/domain/document"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorText    = &props.Color{Red: 40, Green: 40, Blue: 40}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorBand    = &props.Color{Red: 245, Green: 245, Blue: 245}
	colorStamp   = &props.Color{Red: 232, Green: 240, Blue: 248}
)

// pageFrame datos comunes a todas las páginas de un documento.
type pageFrame struct {
	logo  []byte
	title string
	date  string
	total int
}

// renderPage filas de maroto de una página: encabezado, título (sólo la primera),
// cuerpo, relleno hasta el pie y pie con "Página i de N".
func renderPage(f pageFrame, p page) []core.Row {
	rows := headerRows(f.logo)
	used := 0.0
	if p.Number == 1 {
		rows = append(rows, titleRow(f.title, f.date), row.New(titleGap))
	}
	for _, e := range p.Elements {
		rows = append(rows, elementRows(e)...)
		used += e.SpaceBefore + e.height()
	}
	if filler := bodyHeight(p.Number == 1) - used; filler > 0 {
		rows = append(rows, row.New(filler))
	}
	return append(rows, footerRows(p.Number, f.total)...)
}

// ── Encabezado y pie ──────────────────────────────────────────────────────────

// headerRows logo a la izquierda y datos de contacto alineados a la derecha.
func headerRows(logo []byte) []core.Row {
	contact := col.New(9)
	for i, l := range document.CompanyContactLines() {
		ps := props.Text{Size: 8, Align: align.Right, Color: colorGray, Top: 2 + float64(i)*4.5}
		if i == 0 {
			ps.Style = fontstyle.Bold
			ps.Color = colorPrimary
			ps.Size = 10
		}
		contact.Add(text.New(l, ps))
	}
	return []core.Row{
		row.New(headerHeight).Add(
			col.New(3).Add(image.NewFromBytes(logo, extension.Png, props.Rect{Percent: 90, Top: 1})),
			contact,
		),
		line.NewRow(dividerH, props.Line{Color: colorPrimary, Thickness: 0.5}),
	}
}

func titleRow(title, date string) core.Row {
	return row.New(titleHeight).WithStyle(&props.Cell{BackgroundColor: colorBand}).Add(
		col.New(8).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 4, Left: 2,
		})),
		col.New(4).Add(text.New(date, props.Text{
			Size: 10, Align: align.Right, Color: colorGray, Top: 5, Right: 2,
		})),
	)
}

func footerRows(number, total int) []core.Row {
	return []core.Row{
		line.NewRow(dividerH, props.Line{Color: colorGray, Thickness: 0.3}),
		row.New(footerHeight).Add(
			col.New(9).Add(
				text.New(document.CompanyTradeName, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
				text.New(document.CompanyFooterLine(), props.Text{Size: 7, Color: colorGray, Top: 5}),
			),
			col.New(3).Add(text.New(fmt.Sprintf("Página %d de %d", number, total), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 3,
			})),
		),
	}
}

// ── Cuerpo ────────────────────────────────────────────────────────────────────

func elementRows(e element) []core.Row {
	var rows []core.Row
	if e.SpaceBefore > 0 {
		rows = append(rows, row.New(e.SpaceBefore))
	}

	cell, color := boxColors(e.Style)
	pad := func() core.Row {
		r := row.New(e.padding())
		if cell != nil {
			r.WithStyle(cell)
		}
		return r
	}
	if e.padding() > 0 {
		rows = append(rows, pad())
	}
	for _, l := range e.Lines {
		ps := props.Text{Size: l.Size, Color: color, Left: e.padding()}
		if l.Bold {
			ps.Style = fontstyle.Bold
		}
		if l.Center {
			ps.Align = align.Center
		}
		r := row.New(l.height()).Add(col.New(12).Add(text.New(l.Text, ps)))
		if cell != nil {
			r.WithStyle(cell)
		}
		rows = append(rows, r)
	}
	if e.padding() > 0 {
		rows = append(rows, pad())
	}
	return rows
}

func boxColors(s boxStyle) (*props.Cell, *props.Color) {
	switch s {
	case styleHighlight:
		return &props.Cell{BackgroundColor: colorPrimary}, colorWhite
	case styleMuted:
		return &props.Cell{BackgroundColor: colorBand}, colorText
	case styleStamp:
		return &props.Cell{BackgroundColor: colorStamp}, colorPrimary
	}
	return nil, colorText
}
