package brdoc

import "strings"

// States siglas de las 27 unidades federativas.
var States = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO",
	"MA", "MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI",
	"RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

var stateSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(States))
	for _, s := range States {
		m[s] = struct{}{}
	}
	return m
}()

// ValidState indica si uf es una sigla de estado válida (sin distinguir mayúsculas).
func ValidState(uf string) bool {
	_, ok := stateSet[strings.ToUpper(strings.TrimSpace(uf))]
	return ok
}
