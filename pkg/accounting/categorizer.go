package accounting

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters and removes combining marks, turning
// "Réparation" into "Reparation".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalize lowercases a description and strips diacritics so keyword
// matching survives OCR accent garbling.
func normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Categorize classifies a line-item description. The keyword list is scanned
// longest keyword first and the first keyword contained in the normalized
// description wins; descriptions matching no keyword get the default
// category. Deterministic: identical input always yields identical output.
func (t *Tables) Categorize(description string) string {
	if description == "" {
		return t.defaultCategory
	}

	normalized := normalize(description)
	for _, kw := range t.keywords {
		if strings.Contains(normalized, kw.Keyword) {
			return kw.Category
		}
	}

	return t.defaultCategory
}
