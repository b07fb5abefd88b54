package engine

import (
	"sort"
	"strings"
)

// token is one element of a tokenized layout: either a pattern token such as "YYYY", or literal text
type token struct {
	text    string
	literal bool
}

var formatTokens = sortedByLength([]string{
	"YY", "YYYY",
	"M", "MM", "MMM", "MMMM",
	"D", "DD", "Do",
	"d", "dd", "ddd", "dddd",
	"H", "HH", "h", "hh", "k", "kk",
	"m", "mm", "s", "ss", "SSS",
	"Z", "ZZ", "A", "a",
	"Q", "X", "x", "w", "ww", "wo", "z", "zzz",
	"LT", "LTS", "L", "LL", "LLL", "LLLL",
})

var parseTokens = sortedByLength([]string{
	"YY", "YYYY",
	"M", "MM", "MMM", "MMMM",
	"D", "DD", "Do",
	"H", "HH", "h", "hh",
	"m", "mm", "s", "ss", "S", "SS", "SSS",
	"Z", "ZZ", "A", "a", "X", "x",
})

func sortedByLength(tokens []string) []string {
	sort.SliceStable(tokens, func(i, j int) bool {
		return len(tokens[i]) > len(tokens[j])
	})

	return tokens
}

// tokenize splits a layout into tokens, preferring the longest known token at each position. Text inside square
// brackets is always literal.
func tokenize(layout string, known []string) []token {
	var tokens []token
	var literal strings.Builder

	flushLiteral := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, token{text: literal.String(), literal: true})
			literal.Reset()
		}
	}

	for i := 0; i < len(layout); {
		if layout[i] == '[' {
			if end := strings.IndexByte(layout[i+1:], ']'); end != -1 {
				literal.WriteString(layout[i+1 : i+1+end])
				i += end + 2
				continue
			}
		}

		matched := ""
		for _, candidate := range known {
			if strings.HasPrefix(layout[i:], candidate) {
				matched = candidate
				break
			}
		}

		if matched == "" {
			literal.WriteByte(layout[i])
			i++
			continue
		}

		flushLiteral()
		tokens = append(tokens, token{text: matched})
		i += len(matched)
	}

	flushLiteral()
	return tokens
}

// expandLocalized replaces L-family tokens with the layouts they stand for, leaving bracketed text untouched
func expandLocalized(layout string) string {
	if !strings.Contains(layout, "L") {
		return layout
	}

	var b strings.Builder
	for _, tok := range tokenize(layout, formatTokens) {
		switch {
		case tok.literal:
			b.WriteString("[" + tok.text + "]")
		case localizedLayouts[tok.text] != "":
			b.WriteString(localizedLayouts[tok.text])
		default:
			b.WriteString(tok.text)
		}
	}

	return b.String()
}
