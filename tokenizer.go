package syllabify

import (
	"regexp"
	"strings"
)

// SyllableDelimiter is the explicit syllable boundary marker within
// transcriptions, as well as the delimiter between rendered syllables.
const SyllableDelimiter = "."

// tokenizer splits transcriptions into phoneme tokens. A token is an
// optional stress mark, immediately followed by either a single phoneme
// symbol or the syllable delimiter.
//
// Alternatives are tried in inventory order (Go regular expressions prefer
// the leftmost alternative), so multi-character phonemes must be listed
// before any of their prefixes, e.g. "t͡ʃ" before "t".
// Characters which do not match any phoneme are skipped.
type tokenizer struct {
	pattern *regexp.Regexp
}

func newTokenizer(symbols []string) *tokenizer {
	alternatives := make([]string, 0, len(symbols)+1)
	for _, symbol := range symbols {
		if symbol == "" {
			continue // would match everywhere
		}
		alternatives = append(alternatives, regexp.QuoteMeta(symbol))
	}
	alternatives = append(alternatives, regexp.QuoteMeta(SyllableDelimiter))
	expr := "[" + PrimaryStress.String() + SecondaryStress.String() + "]?(?:" +
		strings.Join(alternatives, "|") + ")"
	return &tokenizer{pattern: regexp.MustCompile(expr)}
}

// Tokens returns the phoneme tokens of transcription, from left to right.
func (t *tokenizer) Tokens(transcription string) []string {
	return t.pattern.FindAllString(transcription, -1)
}

// tokenizerFor returns a tokenizer for the symbols of inv. Inventories may
// provide a pre-compiled one.
func tokenizerFor(inv Inventory) *tokenizer {
	if cached, ok := inv.(interface{ tokenizer() *tokenizer }); ok {
		return cached.tokenizer()
	}
	return newTokenizer(inv.Symbols())
}
