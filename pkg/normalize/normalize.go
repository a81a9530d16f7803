// Package normalize ofrece comparación de texto insensible a mayúsculas y
// acentos, para búsquedas sobre nombres en español ("categoría" ~ "CATEGORIA").
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve s en minúsculas y sin marcas diacríticas.
func Fold(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Contains reporta si needle aparece dentro de haystack ignorando
// mayúsculas y acentos. Un needle vacío siempre coincide.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
