package logos

import "strings"

// TokenKind is the classification a post-lex Token carries once it has
// been checked against the dictionary.
type TokenKind int

const (
	// KindWord is a word matched to a dictionary lemma.
	KindWord TokenKind = iota
	// KindUnknownWord looks like Greek but isn't in the dictionary.
	KindUnknownWord
	// KindPunctuation is one of the recognised punctuation marks.
	KindPunctuation
	// KindOther is reserved for future lexical categories (numbers, etc).
	KindOther
)

// Token is a lexical unit located in the original text, classified
// against the dictionary.
type Token struct {
	Span Span
	Text string
	Kind TokenKind
	// Lemma is set when Kind == KindWord.
	Lemma LemmaId
	// Punct is set when Kind == KindPunctuation.
	Punct rune
}

// Lexer turns text into dictionary-checked Tokens: a thin layer over
// Tokenize that performs the initial (exact-or-prefix) lemma lookup used
// as the resolver's optional hint.
type Lexer struct {
	Dict *Dictionary
}

// NewLexer returns a Lexer bound to dict.
func NewLexer(dict *Dictionary) *Lexer {
	return &Lexer{Dict: dict}
}

// Tokenize runs Tokenize over input and classifies each raw token
// against the lexer's dictionary.
func (lx *Lexer) Tokenize(input string) []Token {
	raw := Tokenize(input)
	out := make([]Token, 0, len(raw))
	for _, r := range raw {
		text := input[r.Span.Start:r.Span.End]
		switch r.Kind {
		case RawPunct:
			out = append(out, Token{Span: r.Span, Text: text, Kind: KindPunctuation, Punct: r.Punct})
		case RawWord:
			if id, ok := lx.lookupLemma(text); ok {
				out = append(out, Token{Span: r.Span, Text: text, Kind: KindWord, Lemma: id})
			} else {
				out = append(out, Token{Span: r.Span, Text: text, Kind: KindUnknownWord})
			}
		}
	}
	return out
}

// lookupLemma does a linear-scan exact-or-prefix lookup (an MVP lemma
// hint, refined by the resolver proper): exact match wins first, then
// "surface form starts with the lemma's citation form".
func (lx *Lexer) lookupLemma(surface string) (LemmaId, bool) {
	if lx.Dict == nil {
		return 0, false
	}
	for _, l := range lx.Dict.Lemmas {
		if l.Text == surface {
			return l.ID, true
		}
	}
	for _, l := range lx.Dict.Lemmas {
		if strings.HasPrefix(surface, l.Text) {
			return l.ID, true
		}
	}
	return 0, false
}
