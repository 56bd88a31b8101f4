package freq

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Tokenize splits text into canonical word tokens using Unicode default
// word-boundary rules (UAX #29). Segments that are empty or whitespace-only
// are dropped; everything else, including punctuation and emoji segments,
// is kept and uppercased. Training and classification must share this exact
// rule, otherwise frequency lookups silently stop matching.
func Tokenize(text string) []string {
	var tokens []string

	state := -1
	var segment string
	for len(text) > 0 {
		segment, text, state = uniseg.FirstWordInString(text, state)
		if strings.TrimSpace(segment) == "" {
			continue
		}
		tokens = append(tokens, strings.ToUpper(segment))
	}

	return tokens
}
