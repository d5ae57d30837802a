package logos

import (
	"fmt"

	"github.com/glossa-analytics/logos/semantics"
)

// TokenReport is one entry of Report.Tokens: the surface text, its
// resolved lemma (if any), the resolver's outcome classification, a
// stringified view of its morph flags, and the resolver's debug trace.
type TokenReport struct {
	Text       string
	LemmaID    LemmaId
	HasLemma   bool
	Kind       AnalysisKind
	Morphology string
	Debug      string
}

// SyntaxErrorReport is one AgreementError rendered for the report.
type SyntaxErrorReport struct {
	Source  string
	Target  string
	Message string
}

// Report is the single output shape of Pipeline.Analyse.
type Report struct {
	Tokens        []TokenReport
	SyntaxErrors  []SyntaxErrorReport
	SemanticErrors []string
	DebugInfo     string
}

// Pipeline wires the tokenizer, resolver, parser, store and validators
// behind a single entry point. It holds the archive's Dictionary and an
// optional semantic Graph, both acquired once and shared read-only
// across any number of concurrent Analyse calls: Analyse itself does no
// I/O, performs no logging, and has no suspension points, so it is safe
// to call from multiple goroutines against the same Pipeline.
type Pipeline struct {
	Dict      *Dictionary
	Semantics *semantics.Graph
}

// NewPipeline returns a Pipeline over dict with no semantic graph
// loaded; LoadSemantics can attach one later.
func NewPipeline(dict *Dictionary) *Pipeline {
	return &Pipeline{Dict: dict}
}

// LoadSemantics attaches g as the semantic graph subsequent Analyse
// calls validate object selection against. Passing nil clears it, which
// makes the semantic validator report zero errors (spec's documented
// "absent graph" behaviour).
func (p *Pipeline) LoadSemantics(g *semantics.Graph) {
	p.Semantics = g
}

// Analyse runs the full pipeline over text: tokenize, resolve each
// word's morphology, parse a dependency tree, populate a per-sentence
// store, then run the agreement and semantic validators. It is a pure
// function of (p.Dict, p.Semantics, text); the store it builds is
// discarded on return.
func (p *Pipeline) Analyse(text string) Report {
	lexer := NewLexer(p.Dict)
	lexed := lexer.Tokenize(text)

	type wordSlot struct {
		analysis MorphAnalysis
	}

	var words []wordSlot
	morphTokens := make([]MorphToken, 0, len(lexed))

	for _, tok := range lexed {
		if tok.Kind != KindWord && tok.Kind != KindUnknownWord {
			continue
		}
		var analysis MorphAnalysis
		if tok.Kind == KindWord {
			analysis = Resolve(p.Dict, tok.Text, tok.Lemma, true)
		} else {
			analysis = Resolve(p.Dict, tok.Text, 0, false)
		}
		words = append(words, wordSlot{analysis: analysis})
		morphTokens = append(morphTokens, MorphToken{Text: tok.Text, Flags: analysis.Flags})
	}

	deps := ParseGreedy(morphTokens)

	store := NewStore()
	entityIDs := make([]EntityID, len(words))
	for i, w := range words {
		entityIDs[i] = store.CreateToken(morphTokens[i].Text, w.analysis.LemmaID, w.analysis.HasLemma, w.analysis.Flags)
	}
	for _, d := range deps {
		store.AttachSyntax(entityIDs[d.Dependent], Syntax{Head: entityIDs[d.Head], Role: d.Role})
	}

	agreementErrs := CheckAgreement(store)
	syntaxErrors := make([]SyntaxErrorReport, 0, len(agreementErrs))
	for _, e := range agreementErrs {
		syntaxErrors = append(syntaxErrors, SyntaxErrorReport{Source: e.Source, Target: e.Target, Message: e.Details})
	}

	semanticErrors := p.checkSemantics(store)

	tokenReports := make([]TokenReport, len(words))
	for i, w := range words {
		tokenReports[i] = TokenReport{
			Text:       morphTokens[i].Text,
			LemmaID:    w.analysis.LemmaID,
			HasLemma:   w.analysis.HasLemma,
			Kind:       w.analysis.Kind,
			Morphology: w.analysis.Flags.String(),
			Debug:      w.analysis.Debug,
		}
	}

	return Report{
		Tokens:         tokenReports,
		SyntaxErrors:   syntaxErrors,
		SemanticErrors: semanticErrors,
		DebugInfo:      fmt.Sprintf("%d tokens, %d words, %d dependency edges", len(lexed), len(words), len(deps)),
	}
}

// checkSemantics implements spec.md §4.6: for every entity playing
// Object under a verb head, every concept the verb RequiresAttribute
// must be satisfied by the object's lemma, inheritance included.
func (p *Pipeline) checkSemantics(store *Store) []string {
	if p.Semantics == nil {
		return nil
	}
	var errs []string
	store.EachWithSyntax(func(id EntityID, text string, lemma LemmaId, hasLemma bool, flags MorphFlags, syn Syntax) {
		if syn.Role != RoleObject || !hasLemma {
			return
		}
		if !isVerb(store.Flags(syn.Head)) {
			return
		}
		verbLemma, hasVerbLemma := store.Lemma(syn.Head)
		if !hasVerbLemma {
			return
		}
		verbText := store.Text(syn.Head)
		for _, required := range p.Semantics.RequiredAttributes(uint32(verbLemma)) {
			if !p.Semantics.Satisfies(uint32(lemma), required) {
				errs = append(errs, fmt.Sprintf("%q does not satisfy a required attribute of %q", text, verbText))
			}
		}
	})
	return errs
}
