package logos

import (
	"unicode"
	"unicode/utf8"
)

// Span is a byte-offset range into the original input text. Spans must
// round-trip: text[span.Start:span.End] always equals the token's
// surface form (spec.md §8).
type Span struct {
	Start, End int
}

// Len reports the byte length of the span.
func (s Span) Len() int { return s.End - s.Start }

// RawTokenKind distinguishes the two lexical shapes the tokenizer
// produces, before any dictionary lookup.
type RawTokenKind int

const (
	RawWord RawTokenKind = iota
	RawPunct
)

// RawToken is a (Span, kind) pair produced by Tokenize, before
// dictionary resolution assigns it a TokenKind.
type RawToken struct {
	Span Span
	Kind RawTokenKind
	// Punct holds the punctuation rune when Kind == RawPunct.
	Punct rune
}

// recognisedPunctuation is the punctuation alphabet spec.md §4.1
// recognises; anything else falls through the resilient one-scalar
// recovery path.
var recognisedPunctuation = map[rune]bool{
	'.': true, ',': true, ';': true, '?': true, '!': true,
}

// isGreekAlphabetic reports whether r belongs to the Greek or Greek
// Extended Unicode blocks, or is otherwise alphabetic (resilience for
// stray Latin input).
func isGreekAlphabetic(r rune) bool {
	switch {
	case r >= 0x0370 && r <= 0x03FF:
		return true
	case r >= 0x1F00 && r <= 0x1FFF:
		return true
	default:
		return unicode.IsLetter(r)
	}
}

// Tokenize scans text into an ordered sequence of RawTokens: maximal
// runs of Greek-alphabetic characters become Word tokens, recognised
// punctuation marks become Punct tokens, Unicode whitespace is skipped,
// and any other character is skipped one scalar at a time (the sentence
// is never failed — spec.md §4.1/§7).
func Tokenize(text string) []RawToken {
	var out []RawToken
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		if unicode.IsSpace(r) {
			i += size
			continue
		}

		if isGreekAlphabetic(r) {
			start := i
			for i < len(text) {
				r2, size2 := utf8.DecodeRuneInString(text[i:])
				if !isGreekAlphabetic(r2) {
					break
				}
				i += size2
			}
			out = append(out, RawToken{Span: Span{start, i}, Kind: RawWord})
			continue
		}

		if recognisedPunctuation[r] {
			out = append(out, RawToken{Span: Span{i, i + size}, Kind: RawPunct, Punct: r})
			i += size
			continue
		}

		// Resilient recovery: skip one scalar and continue.
		i += size
	}
	return out
}
