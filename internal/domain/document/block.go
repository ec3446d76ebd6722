package document

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BlockKind etiqueta estructural de un bloque de texto.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockBody      BlockKind = "body"
	BlockSignature BlockKind = "signature"
	// BlockAuto texto editado a mano: cada línea se clasifica con IsHeadingLine.
	BlockAuto BlockKind = "auto"
)

// Block párrafo del documento. Text puede contener saltos de línea internos.
type Block struct {
	Kind             BlockKind `json:"kind"`
	Text             string    `json:"text"`
	BlankLinesBefore int       `json:"blank_lines_before"`
}

// minHeadingRunes longitud mínima (exclusiva) de una línea para considerarla título.
const minHeadingRunes = 20

// IsHeadingLine clasifica una línea de texto libre: es título si, sin espacios
// en los extremos, está toda en mayúsculas y tiene más de 20 caracteres.
func IsHeadingLine(line string) bool {
	t := strings.TrimSpace(line)
	if utf8.RuneCountInString(t) <= minHeadingRunes {
		return false
	}
	return cases.Upper(language.BrazilianPortuguese).String(t) == t
}

// LineKind resuelve la etiqueta efectiva de una línea del bloque.
func (b Block) LineKind(line string) BlockKind {
	if b.Kind != BlockAuto {
		return b.Kind
	}
	if IsHeadingLine(line) {
		return BlockHeading
	}
	return BlockBody
}

// joinBlocks reconstruye el texto plano respetando las líneas en blanco entre bloques.
func joinBlocks(blocks []Block) string {
	var b strings.Builder
	for i, blk := range blocks {
		if i > 0 {
			b.WriteString("\n")
			b.WriteString(strings.Repeat("\n", blk.BlankLinesBefore))
		}
		b.WriteString(blk.Text)
	}
	return b.String()
}
