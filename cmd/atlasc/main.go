// Command atlasc compiles a JSON dictionary description into the binary
// archive format the logos pipeline loads. It is an external
// collaborator to the core analysis pipeline, specified only at its
// interface: --input/--output flags and a process exit code.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/glossa-analytics/logos"
	"github.com/glossa-analytics/logos/archive"
	"github.com/glossa-analytics/logos/semantics"
)

// sourceDictionary is the textual JSON shape atlasc reads: morph flags
// and semantic relations are given by name rather than as the runtime's
// bitset values, so that a dictionary maintainer never has to
// hand-compute MorphFlags values. Lemma, paradigm and relation ids are
// plain numbers; gender is a one-letter code ("m", "f", "n") and the
// part of speech is taken from the first letter of its string.
type sourceDictionary struct {
	Version   uint32           `json:"version"`
	Lemmas    []sourceLemma    `json:"lemmas"`
	Paradigms []sourceParadigm `json:"paradigms"`
	Relations []sourceRelation `json:"relations"`
}

type sourceLemma struct {
	ID     uint32 `json:"id"`
	Text   string `json:"text"`
	Gender string `json:"gender"`
	POS    string `json:"pos"`
}

type sourceParadigm struct {
	ID      uint32         `json:"id"`
	Endings []sourceEnding `json:"endings"`
}

type sourceEnding struct {
	Flags  []string `json:"flags"`
	Suffix string   `json:"suffix"`
}

type sourceRelation struct {
	From     uint32 `json:"from"`
	To       uint32 `json:"to"`
	Relation string `json:"relation"`
}

var flagNames = map[string]logos.MorphFlags{
	"Nominative": logos.Nominative, "Genitive": logos.Genitive, "Accusative": logos.Accusative,
	"Vocative": logos.Vocative, "Dative": logos.Dative,
	"Masculine": logos.Masculine, "Feminine": logos.Feminine, "Neuter": logos.Neuter,
	"Singular": logos.Singular, "Plural": logos.Plural,
	"First": logos.FirstPerson, "Second": logos.SecondPerson, "Third": logos.ThirdPerson,
	"Active": logos.Active, "Passive": logos.Passive,
	"Present": logos.Present, "Past": logos.Past, "Future": logos.Future,
	"Noun": logos.NounFlag, "Adjective": logos.AdjectiveFlag, "Article": logos.ArticleFlag,
	"Preposition": logos.PrepositionFlag, "Conjunction": logos.ConjunctionFlag,
	"Pronoun": logos.PronounFlag, "Relative": logos.RelativeFlag, "Participle": logos.ParticipleFlag,
	"Infinitive": logos.InfinitiveFlag, "Verb": logos.VerbFlag,
}

var relationNames = map[string]semantics.Relation{
	"IsA": semantics.IsA, "RequiresAttribute": semantics.RequiresAttribute, "HasAttribute": semantics.HasAttribute,
}

func parseFlags(names []string) (logos.MorphFlags, error) {
	var out logos.MorphFlags
	for _, n := range names {
		f, ok := flagNames[n]
		if !ok {
			return 0, fmt.Errorf("unknown morph flag %q", n)
		}
		out |= f
	}
	return out, nil
}

func compile(src sourceDictionary) (*logos.Dictionary, []archive.Relation, error) {
	dict := &logos.Dictionary{Version: src.Version}
	for _, l := range src.Lemmas {
		var gender logos.Gender
		switch l.Gender {
		case "m":
			gender = logos.GenderMasculine
		case "f":
			gender = logos.GenderFeminine
		case "n":
			gender = logos.GenderNeuter
		default:
			return nil, nil, fmt.Errorf("lemma %d: unknown gender %q", l.ID, l.Gender)
		}
		dict.Lemmas = append(dict.Lemmas, logos.Lemma{
			ID: logos.LemmaId(l.ID), Text: l.Text, Gender: gender, POS: logos.PartOfSpeech([]rune(l.POS)[0]),
		})
	}
	for _, p := range src.Paradigms {
		paradigm := logos.Paradigm{ID: logos.ParadigmId(p.ID)}
		for _, e := range p.Endings {
			flags, err := parseFlags(e.Flags)
			if err != nil {
				return nil, nil, fmt.Errorf("paradigm %d: %w", p.ID, err)
			}
			paradigm.Endings = append(paradigm.Endings, logos.Ending{Flags: flags, Suffix: e.Suffix})
		}
		dict.Paradigms = append(dict.Paradigms, paradigm)
	}

	var relations []archive.Relation
	for _, r := range src.Relations {
		rel, ok := relationNames[r.Relation]
		if !ok {
			return nil, nil, fmt.Errorf("unknown relation %q", r.Relation)
		}
		relations = append(relations, archive.Relation{From: r.From, To: r.To, Relation: rel})
	}

	return dict, relations, nil
}

func run(inputPath, outputPath string) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	var src sourceDictionary
	if err := json.Unmarshal(raw, &src); err != nil {
		return fmt.Errorf("parsing %s: %w", inputPath, err)
	}

	dict, relations, err := compile(src)
	if err != nil {
		return fmt.Errorf("compiling %s: %w", inputPath, err)
	}

	if err := archive.Save(outputPath, dict, relations); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}

func main() {
	input := flag.String("input", "", "path to the JSON dictionary description")
	output := flag.String("output", "", "path to write the compiled archive")
	flag.Parse()

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "usage: atlasc --input PATH --output PATH")
		os.Exit(2)
	}

	if err := run(*input, *output); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
