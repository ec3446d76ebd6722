package dto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeSearch compone los acentos (NFC), quita caracteres de control y recorta espacios.
// "José" y "José" buscan lo mismo.
func NormalizeSearch(term string) string {
	t := transform.Chain(norm.NFC, runes.Remove(runes.In(unicode.Cc)))
	s, _, err := transform.String(t, term)
	if err != nil {
		s = term
	}
	return strings.TrimSpace(s)
}
