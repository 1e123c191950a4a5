package matcher

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minSetToken is the shortest set-name word that counts toward a set match.
const minSetToken = 4

// setNoise are words stripped from the front of set names before tokens
// are compared ("Pokemon Japanese Neo Genesis" -> "neo genesis").
var setNoise = map[string]bool{
	"pokemon":  true,
	"tcg":      true,
	"japanese": true,
	"english":  true,
	"chinese":  true,
	"korean":   true,
	"german":   true,
	"french":   true,
	"italian":  true,
	"spanish":  true,
}

// Fold lower-cases s with Unicode case folding, strips diacritics and
// collapses whitespace, so "Pokémon  Flabébé" becomes "pokemon flabebe".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.Join(strings.Fields(cases.Fold().String(stripped)), " ")
}

// NormalizeNumber reduces a card number to its comparable form: a leading
// '#' is dropped, anything from '/' on is cut and leading zeros are
// stripped. "005/025", "#5" and "5" all become "5"; "000" becomes "0".
// An empty input stays empty.
func NormalizeNumber(num string) string {
	num = strings.TrimSpace(num)
	num = strings.TrimLeft(num, "#")
	if i := strings.IndexByte(num, '/'); i >= 0 {
		num = num[:i]
	}
	num = strings.TrimSpace(num)
	if num == "" {
		return ""
	}
	if trimmed := strings.TrimLeft(num, "0"); trimmed != "" {
		return trimmed
	}
	return "0"
}

// numberTokens returns the normalized "#<digits>" numbers in a folded
// product name.
func numberTokens(folded string) []string {
	var out []string
	for i := 0; i < len(folded); i++ {
		if folded[i] != '#' {
			continue
		}
		j := i + 1
		for j < len(folded) && folded[j] >= '0' && folded[j] <= '9' {
			j++
		}
		if j > i+1 {
			out = append(out, NormalizeNumber(folded[i+1:j]))
		}
		i = j - 1
	}
	return out
}

// SetTokens splits a folded set name into words, drops leading noise
// words, and keeps words of at least four characters.
func SetTokens(folded string) []string {
	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for len(words) > 0 && setNoise[words[0]] {
		words = words[1:]
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) >= minSetToken {
			out = append(out, w)
		}
	}
	return out
}

// containsWord reports whether phrase appears in folded as whole words.
func containsWord(folded, phrase string) bool {
	for start := 0; ; {
		i := strings.Index(folded[start:], phrase)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(phrase)
		if boundaryBefore(folded, i) && boundaryAfter(folded, end) {
			return true
		}
		start = i + 1
	}
}

func boundaryBefore(s string, i int) bool {
	return i == 0 || !isWordByte(s[i-1])
}

func boundaryAfter(s string, i int) bool {
	return i >= len(s) || !isWordByte(s[i])
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b >= 0x80
}
