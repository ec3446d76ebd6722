// Package brdoc valida y formatea documentos brasileños: CPF, CNPJ, teléfono y CEP.
//
// Todas las funciones aceptan cualquier string (con o sin máscara) y nunca entran en pánico.
package brdoc

import (
	"strings"
	"unicode"
)

const (
	cpfLen   = 11
	cnpjLen  = 14
	phoneLen = 11
	cepLen   = 8
)

// pesos del primer dígito verificador del CNPJ; el segundo antepone un 6.
var cnpjWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// ValidateTaxID valida un CPF (11 dígitos) o un CNPJ (14 dígitos).
// Cualquier otra longitud es inválida.
func ValidateTaxID(raw string) bool {
	digits := extractDigits(raw)
	switch len(digits) {
	case cpfLen:
		return validCPFDigits(digits)
	case cnpjLen:
		return validCNPJDigits(digits)
	default:
		return false
	}
}

// ValidateCPF valida los dos dígitos verificadores de un CPF.
// Las secuencias de dígitos repetidos ("111.111.111-11") son inválidas.
func ValidateCPF(raw string) bool {
	digits := extractDigits(raw)
	return len(digits) == cpfLen && validCPFDigits(digits)
}

// ValidateCNPJ valida los dos dígitos verificadores de un CNPJ.
func ValidateCNPJ(raw string) bool {
	digits := extractDigits(raw)
	return len(digits) == cnpjLen && validCNPJDigits(digits)
}

func validCPFDigits(d []byte) bool {
	if allEqual(d) {
		return false
	}
	for pass := 0; pass < 2; pass++ {
		n := 9 + pass
		var sum int
		for i := 0; i < n; i++ {
			sum += int(d[i]-'0') * (n + 1 - i)
		}
		rest := (sum * 10) % 11
		if rest == 10 || rest == 11 {
			rest = 0
		}
		if rest != int(d[n]-'0') {
			return false
		}
	}
	return true
}

func validCNPJDigits(d []byte) bool {
	if allEqual(d) {
		return false
	}
	for pass := 0; pass < 2; pass++ {
		n := 12 + pass
		weights := cnpjWeights[1-pass:]
		var sum int
		for i := 0; i < n; i++ {
			sum += int(d[i]-'0') * weights[i]
		}
		expected := 0
		if r := sum % 11; r >= 2 {
			expected = 11 - r
		}
		if expected != int(d[n]-'0') {
			return false
		}
	}
	return true
}

// FormatTaxID aplica la máscara de CPF hasta 11 dígitos y la de CNPJ a partir de 12.
func FormatTaxID(raw string) string {
	digits := extractDigits(raw)
	if len(digits) <= cpfLen {
		return maskCPF(digits)
	}
	return maskCNPJ(truncate(digits, cnpjLen))
}

// FormatCPF devuelve el CPF con máscara 000.000.000-00 (progresiva si está incompleto).
func FormatCPF(raw string) string {
	return maskCPF(truncate(extractDigits(raw), cpfLen))
}

// FormatCNPJ devuelve el CNPJ con máscara 00.000.000/0000-00.
func FormatCNPJ(raw string) string {
	return maskCNPJ(truncate(extractDigits(raw), cnpjLen))
}

// FormatPhone devuelve el teléfono como (00) 00000-0000, o (00) 0000-0000 para fijos de 10 dígitos.
func FormatPhone(raw string) string {
	d := string(truncate(extractDigits(raw), phoneLen))
	switch {
	case len(d) <= 2:
		return d
	case len(d) == 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	case len(d) == 11:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	default:
		return "(" + d[:2] + ") " + d[2:]
	}
}

// FormatPostalCode devuelve el CEP como 00000-000.
func FormatPostalCode(raw string) string {
	d := string(truncate(extractDigits(raw), cepLen))
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// Digits devuelve sólo los dígitos ASCII de s.
func Digits(s string) string {
	return string(extractDigits(s))
}

func maskCPF(digits []byte) string {
	return mask(string(digits), []int{3, 6, 9}, []string{".", ".", "-"})
}

func maskCNPJ(digits []byte) string {
	return mask(string(digits), []int{2, 5, 8, 12}, []string{".", ".", "/", "-"})
}

// mask inserta seps[i] antes de la posición cuts[i] cuando hay dígitos después del corte.
func mask(d string, cuts []int, seps []string) string {
	var b strings.Builder
	prev := 0
	for i, cut := range cuts {
		if len(d) <= cut {
			break
		}
		b.WriteString(d[prev:cut])
		b.WriteString(seps[i])
		prev = cut
	}
	b.WriteString(d[prev:])
	return b.String()
}

func truncate(d []byte, n int) []byte {
	if len(d) > n {
		return d[:n]
	}
	return d
}

func allEqual(d []byte) bool {
	for _, c := range d[1:] {
		if c != d[0] {
			return false
		}
	}
	return true
}

// extractDigits conserva únicamente dígitos ASCII (descarta puntos, guiones, barras y espacios).
func extractDigits(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
