package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics descompone (NFD), elimina las marcas diacríticas y recompone (NFC).
var removeDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make genera un slug URL-safe a partir de un nombre: minúsculas, sin tildes,
// separadores colapsados a '-'. "Café con Leche" -> "cafe-con-leche".
func Make(name string) string {
	folded, _, err := transform.String(removeDiacritics, name)
	if err != nil {
		folded = name
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	lastDash := true // evita '-' inicial
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
