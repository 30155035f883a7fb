package places

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// cleanTransformer fixes encoding artifacts without discarding legitimate
// non-Latin characters: NFC composition plus removal of control characters.
var cleanTransformer = transform.Chain(
	norm.NFC,
	runes.Remove(runes.In(unicode.C)),
)

// foldTransformer builds the dedupe key: decompose, drop combining marks,
// recompose. Combined with lowercasing this makes the key case- and
// diacritic-insensitive.
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// CleanName normalizes an upstream name to a clean displayable string.
// Whitespace runs are collapsed; names that clean down to nothing yield "".
func CleanName(name string) string {
	cleaned, _, err := transform.String(cleanTransformer, name)
	if err != nil {
		// Malformed input that the transformer refuses: keep the valid
		// runes only rather than dropping the whole name.
		cleaned = strings.ToValidUTF8(name, "")
	}
	return strings.Join(strings.Fields(cleaned), " ")
}

// dedupeKey maps a cleaned name to its case- and diacritic-insensitive form.
func dedupeKey(name string) string {
	folded, _, err := transform.String(foldTransformer, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(folded)
}
