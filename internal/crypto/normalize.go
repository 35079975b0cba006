package crypto

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// DefaultMinTokenLength is the shortest word, in runes, that gets a search
// token. Shorter words are too common to be useful and too easy to guess.
const DefaultMinTokenLength = 3

// NormalizeWords runs the full-text normalization pipeline used both when a
// record is indexed and when a query is tokenized:
//
//  1. strip markup, keeping text content and decoding entities;
//  2. Unicode NFKC;
//  3. lowercase;
//  4. split on every rune that is neither a letter nor a digit;
//  5. drop words shorter than minLen runes;
//  6. de-duplicate and sort.
func NormalizeWords(text string, minLen int) []string {
	if minLen < 1 {
		minLen = 1
	}

	s := stripMarkup(text)
	s = norm.NFKC.String(s)
	// cases.Caser is stateful, so one is created per call.
	s = cases.Lower(language.Und).String(s)

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < minLen {
			continue
		}
		words = append(words, f)
	}

	slices.Sort(words)
	return slices.Compact(words)
}

// NormalizeName prepares a whole name for exact matching: NFKC, trim,
// lowercase.
func NormalizeName(name string) string {
	s := norm.NFKC.String(name)
	s = strings.TrimSpace(s)
	return cases.Lower(language.Und).String(s)
}

// stripMarkup returns the text content of s with tags replaced by spaces, so
// that "<p>one</p><p>two</p>" yields two words rather than "onetwo".
func stripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	b.Grow(len(s))

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way everything readable has
			// been collected.
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			b.WriteByte(' ')
		}
	}
}
