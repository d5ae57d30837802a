package logos

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// AnalysisKind is the outcome classification of a morphological
// resolution, stringified exactly as spec.md §3 names them.
type AnalysisKind string

const (
	KindResolvedWord  AnalysisKind = "Word"
	KindRecoveredWord AnalysisKind = "Word(Recovered)"
	KindUnknown       AnalysisKind = "Unknown"
)

// MorphAnalysis is the resolver's output for one surface form: the
// matched flags, the lemma it was attributed to (if any), the stem the
// suffix was stripped from, a classification, and a debug trace.
type MorphAnalysis struct {
	Flags   MorphFlags
	LemmaID LemmaId
	HasLemma bool
	Stem    string
	Kind    AnalysisKind
	Debug   string
}

func unknownAnalysis(debug string) MorphAnalysis {
	return MorphAnalysis{Kind: KindUnknown, Debug: debug}
}

// Resolve determines the morphology of surface form s, optionally
// constrained to a single lemma hint h (from the lexer's prior
// exact/prefix lookup), by a four-step algorithm:
//
//  1. scan every (lemma, paradigm, ending) triple — or, if h is set,
//     only that lemma's — in lemma-major/paradigm-major/ending-major
//     order; the first ending whose suffix matches s AND whose lemma
//     text starts with the resulting stem wins.
//  2. if nothing matched but h was given, return an empty-flags
//     "indeclinable or no rule applied" analysis for h.
//  3. otherwise try a last-resort prefix match against the whole
//     dictionary, in either direction, and return that as Recovered.
//  4. otherwise the word is Unknown.
//
// When multiple paradigm endings match ambiguously, the first in
// archive order wins; this module preserves that behaviour deliberately
// rather than adding heuristic tie-breaking.
func Resolve(dict *Dictionary, s string, h LemmaId, hasHint bool) MorphAnalysis {
	if s == "" {
		return unknownAnalysis("empty surface form")
	}
	if dict == nil {
		return unknownAnalysis(fmt.Sprintf("no dictionary loaded for '%s'", s))
	}

	for _, lemma := range dict.Lemmas {
		if hasHint && lemma.ID != h {
			continue
		}
		for _, paradigm := range dict.Paradigms {
			for _, ending := range paradigm.Endings {
				if !strings.HasSuffix(s, ending.Suffix) {
					continue
				}
				stemLen := len(s) - len(ending.Suffix)
				if !utf8.RuneStart(byteAt(s, stemLen)) {
					// Reject candidates that split mid-rune.
					continue
				}
				stem := s[:stemLen]
				if !strings.HasPrefix(lemma.Text, stem) {
					continue
				}
				return MorphAnalysis{
					Flags:    ending.Flags,
					LemmaID:  lemma.ID,
					HasLemma: true,
					Stem:     stem,
					Kind:     KindResolvedWord,
					Debug:    fmt.Sprintf("matched stem '%s' + suffix '%s' against lemma '%s'", stem, ending.Suffix, lemma.Text),
				}
			}
		}
	}

	if hasHint {
		return MorphAnalysis{
			LemmaID:  h,
			HasLemma: true,
			Stem:     s,
			Kind:     KindResolvedWord,
			Debug:    "indeclinable or no rule applied",
		}
	}

	for _, lemma := range dict.Lemmas {
		if strings.HasPrefix(s, lemma.Text) || strings.HasPrefix(lemma.Text, s) {
			return MorphAnalysis{
				LemmaID:  lemma.ID,
				HasLemma: true,
				Stem:     s,
				Kind:     KindRecoveredWord,
				Debug:    fmt.Sprintf("recovered via raw prefix match against '%s'", lemma.Text),
			}
		}
	}

	return unknownAnalysis(fmt.Sprintf("no match found for '%s'", s))
}

// byteAt returns the byte at index i of s, or 0 (an ASCII byte, which
// utf8.RuneStart accepts) if i is exactly len(s): an empty suffix leaves
// the whole token as the stem, which always ends on a rune boundary.
func byteAt(s string, i int) byte {
	if i == len(s) {
		return 0 // ASCII, a valid rune-start byte
	}
	return s[i]
}
