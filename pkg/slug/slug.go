// Package slug normaliza nombres a identificadores aptos para URL
// (minúsculas, sin acentos, separados por guiones).
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make convierte un nombre libre en slug: "Filamentos PLA Ñandú" -> "filamentos-pla-nandu".
// Descompone acentos (NFD), elimina marcas diacríticas y reemplaza todo lo no
// alfanumérico por guiones, colapsando repeticiones.
func Make(nombre string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plano, _, err := transform.String(t, nombre)
	if err != nil {
		plano = nombre
	}

	var b strings.Builder
	prevGuion := true // evita guion inicial
	for _, r := range strings.ToLower(plano) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevGuion = false
		default:
			if !prevGuion {
				b.WriteRune('-')
				prevGuion = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
