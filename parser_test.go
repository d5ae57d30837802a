package logos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findEdge returns the edge with the given dependent index, if present.
func findEdge(edges []Dependency, dependent int) (Dependency, bool) {
	for _, e := range edges {
		if e.Dependent == dependent {
			return e, true
		}
	}
	return Dependency{}, false
}

func assertEdge(t *testing.T, edges []Dependency, dependent, head int, role SyntaxRole) {
	t.Helper()
	e, ok := findEdge(edges, dependent)
	require.True(t, ok, "no edge found for dependent %d", dependent)
	assert.Equal(t, head, e.Head, "dependent %d: wrong head", dependent)
	assert.Equal(t, role, e.Role, "dependent %d: wrong role", dependent)
}

func TestParseGreedyScenario1SimpleTransitive(t *testing.T) {
	tokens := []MorphToken{
		{Text: "Ο", Flags: ArticleFlag | Nominative | Masculine | Singular},
		{Text: "Πέτρος", Flags: NounFlag | Nominative | Masculine | Singular},
		{Text: "βλέπει", Flags: Present | Active | ThirdPerson},
		{Text: "την", Flags: ArticleFlag | Accusative | Feminine | Singular},
		{Text: "Μαρίαν", Flags: NounFlag | Accusative | Feminine | Singular},
	}
	edges := ParseGreedy(tokens)
	require.Len(t, edges, 4)
	assertEdge(t, edges, 1, 2, RoleSubject)
	assertEdge(t, edges, 4, 2, RoleObject)
	assertEdge(t, edges, 0, 1, RoleModifier)
	assertEdge(t, edges, 3, 4, RoleModifier)
}

func TestParseGreedyScenario2PrepositionalPhrase(t *testing.T) {
	tokens := []MorphToken{
		{Text: "μένει", Flags: Present | Active | ThirdPerson},
		{Text: "από", Flags: PrepositionFlag},
		{Text: "της", Flags: ArticleFlag | Genitive | Feminine | Singular},
		{Text: "οικίας", Flags: NounFlag | Genitive | Feminine | Singular},
	}
	edges := ParseGreedy(tokens)
	require.Len(t, edges, 3)
	assertEdge(t, edges, 1, 0, RoleModifier)
	assertEdge(t, edges, 3, 1, RolePrepositionArg)
	assertEdge(t, edges, 2, 3, RoleModifier)
}

func TestParseGreedyScenario3DativeIndirectObject(t *testing.T) {
	tokens := []MorphToken{
		{Text: "Ο", Flags: ArticleFlag | Nominative | Masculine | Singular},
		{Text: "διδάσκαλος", Flags: NounFlag | Nominative | Masculine | Singular},
		{Text: "δίδει", Flags: Present | Active | ThirdPerson},
		{Text: "το", Flags: ArticleFlag | Accusative | Neuter | Singular},
		{Text: "βιβλίον", Flags: NounFlag | Accusative | Neuter | Singular},
		{Text: "τω", Flags: ArticleFlag | Dative | Masculine | Singular},
		{Text: "μαθητή", Flags: NounFlag | Dative | Masculine | Singular},
	}
	edges := ParseGreedy(tokens)
	assertEdge(t, edges, 1, 2, RoleSubject)
	assertEdge(t, edges, 4, 2, RoleObject)
	assertEdge(t, edges, 6, 2, RoleIndirectObject)
	assertEdge(t, edges, 5, 6, RoleModifier)
}

func TestParseGreedyScenario4GenitiveModifierChain(t *testing.T) {
	tokens := []MorphToken{
		{Text: "Βλέπω", Flags: Present | Active | FirstPerson},
		{Text: "την", Flags: ArticleFlag | Accusative | Feminine | Singular},
		{Text: "οικίαν", Flags: NounFlag | Accusative | Feminine | Singular},
		{Text: "του", Flags: ArticleFlag | Genitive | Masculine | Singular},
		{Text: "πατρός", Flags: NounFlag | Genitive | Masculine | Singular},
	}
	edges := ParseGreedy(tokens)
	require.Len(t, edges, 4)
	assertEdge(t, edges, 2, 0, RoleObject)
	assertEdge(t, edges, 4, 2, RoleModifier)
	assertEdge(t, edges, 3, 4, RoleModifier)
	assertEdge(t, edges, 1, 2, RoleModifier)
}

func TestParseGreedyScenario5Coordination(t *testing.T) {
	tokens := []MorphToken{
		{Text: "Ο", Flags: ArticleFlag | Nominative | Masculine | Singular},
		{Text: "διδάσκαλος", Flags: NounFlag | Nominative | Masculine | Singular},
		{Text: "και", Flags: ConjunctionFlag},
		{Text: "ο", Flags: ArticleFlag | Nominative | Masculine | Singular},
		{Text: "μαθητής", Flags: NounFlag | Nominative | Masculine | Singular},
	}
	edges := ParseGreedy(tokens)
	assertEdge(t, edges, 2, 1, RoleCoordinator)
	assertEdge(t, edges, 4, 1, RoleConjunct)
}

func TestParseGreedyScenario6GenitiveAbsoluteRelink(t *testing.T) {
	tokens := []MorphToken{
		{Text: "έφυγον", Flags: Present | Active | ThirdPerson},
		{Text: "του", Flags: ArticleFlag | Genitive | Masculine | Singular},
		{Text: "ανθρώπου", Flags: NounFlag | Genitive | Masculine | Singular},
		{Text: "λέγοντος", Flags: ParticipleFlag | Genitive | Masculine | Singular},
	}
	edges := ParseGreedy(tokens)
	assertEdge(t, edges, 3, 0, RoleAbsoluteClause)
	assertEdge(t, edges, 2, 3, RoleSubject)

	// RELINK must have overwritten, not duplicated: index 2 appears as a
	// dependent exactly once.
	count := 0
	for _, e := range edges {
		if e.Dependent == 2 {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestParseGreedyScenario7RelativeClauseScope(t *testing.T) {
	tokens := []MorphToken{
		{Text: "τρέχει", Flags: Present | Active | ThirdPerson},
		{Text: "Ο", Flags: ArticleFlag | Nominative | Masculine | Singular},
		{Text: "άνθρωπος", Flags: NounFlag | Nominative | Masculine | Singular},
		{Text: "ος", Flags: RelativeFlag | Nominative | Masculine | Singular},
		{Text: "βλέπει", Flags: Present | Active | ThirdPerson},
		{Text: "με", Flags: Accusative | PronounFlag | Singular},
	}
	edges := ParseGreedy(tokens)
	assertEdge(t, edges, 2, 0, RoleSubject)
	assertEdge(t, edges, 4, 2, RoleRelativeClause)
	assertEdge(t, edges, 3, 4, RoleSubject)
	// crucially, 5 attaches within the relative clause scope (head 4),
	// not to the outer root (0).
	assertEdge(t, edges, 5, 4, RoleObject)
}

func TestParseGreedyArticularInfinitiveObject(t *testing.T) {
	tokens := []MorphToken{
		{Text: "λέγει", Flags: Present | Active | ThirdPerson},
		{Text: "το", Flags: ArticleFlag | Accusative | Neuter | Singular},
		{Text: "γράφειν", Flags: InfinitiveFlag},
	}
	edges := ParseGreedy(tokens)
	require.Len(t, edges, 2)
	assertEdge(t, edges, 1, 2, RoleModifier)
	assertEdge(t, edges, 2, 0, RoleObject)
}

func TestParseGreedyArticularInfinitiveSubject(t *testing.T) {
	tokens := []MorphToken{
		{Text: "λέγει", Flags: Present | Active | ThirdPerson},
		{Text: "το", Flags: ArticleFlag | Nominative | Neuter | Singular},
		{Text: "γράφειν", Flags: InfinitiveFlag},
	}
	edges := ParseGreedy(tokens)
	require.Len(t, edges, 2)
	assertEdge(t, edges, 1, 2, RoleModifier)
	assertEdge(t, edges, 2, 0, RoleSubject)
}

// TestParseGreedyArticularInfinitiveAnySemantics reproduces the case that
// distinguishes "any matched modifier" from "the one Article-flagged
// modifier": a Nominative, non-Article modifier and an Accusative,
// Article-flagged modifier both match the infinitive (agrees is
// permissive against an Infinitive head on case/gender/number alike).
// Articularity comes from the second modifier, but the Subject role must
// come from the first — a decision a single-modifier scan gets wrong.
func TestParseGreedyArticularInfinitiveAnySemantics(t *testing.T) {
	tokens := []MorphToken{
		{Text: "λέγει", Flags: Present | Active | ThirdPerson},
		{Text: "καλόν", Flags: AdjectiveFlag | Nominative | Neuter | Singular},
		{Text: "το", Flags: ArticleFlag | Accusative | Neuter | Singular},
		{Text: "γράφειν", Flags: InfinitiveFlag},
	}
	edges := ParseGreedy(tokens)
	require.Len(t, edges, 3)
	assertEdge(t, edges, 1, 3, RoleModifier)
	assertEdge(t, edges, 2, 3, RoleModifier)
	assertEdge(t, edges, 3, 0, RoleSubject)
}

func TestParseGreedyBareInfinitiveAccusativeSubjectRelink(t *testing.T) {
	tokens := []MorphToken{
		{Text: "βούλεται", Flags: Present | Active | ThirdPerson},
		{Text: "αὐτόν", Flags: NounFlag | Accusative | Masculine | Singular},
		{Text: "γράφειν", Flags: InfinitiveFlag},
	}
	edges := ParseGreedy(tokens)
	require.Len(t, edges, 2)
	assertEdge(t, edges, 1, 2, RoleSubject)
	assertEdge(t, edges, 2, 0, RoleComplement)

	count := 0
	for _, e := range edges {
		if e.Dependent == 1 {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestParseGreedyPassiveAgentPreposition(t *testing.T) {
	tokens := []MorphToken{
		{Text: "ἐγράφη", Flags: Passive | Past | ThirdPerson},
		{Text: "υπό", Flags: PrepositionFlag},
		{Text: "του", Flags: ArticleFlag | Genitive | Masculine | Singular},
		{Text: "πατρός", Flags: NounFlag | Genitive | Masculine | Singular},
	}
	edges := ParseGreedy(tokens)
	require.Len(t, edges, 3)
	assertEdge(t, edges, 1, 0, RolePassiveAgent)
	assertEdge(t, edges, 2, 3, RoleModifier)
	assertEdge(t, edges, 3, 1, RolePrepositionArg)
}

func TestParseGreedyInvariants(t *testing.T) {
	tokens := []MorphToken{
		{Text: "Ο", Flags: ArticleFlag | Nominative | Masculine | Singular},
		{Text: "Πέτρος", Flags: NounFlag | Nominative | Masculine | Singular},
		{Text: "βλέπει", Flags: Present | Active | ThirdPerson},
		{Text: "την", Flags: ArticleFlag | Accusative | Feminine | Singular},
		{Text: "Μαρίαν", Flags: NounFlag | Accusative | Feminine | Singular},
	}
	edges := ParseGreedy(tokens)

	seen := map[int]bool{}
	for _, e := range edges {
		assert.GreaterOrEqual(t, e.Head, 0)
		assert.Less(t, e.Head, len(tokens))
		assert.GreaterOrEqual(t, e.Dependent, 0)
		assert.Less(t, e.Dependent, len(tokens))
		assert.NotEqual(t, e.Head, e.Dependent)
		assert.False(t, seen[e.Dependent], "dependent %d appears more than once", e.Dependent)
		seen[e.Dependent] = true
		assert.NotEqual(t, 2, e.Dependent, "root must have no outgoing edge")
	}
}

func TestParseGreedyEmptyInput(t *testing.T) {
	assert.Nil(t, ParseGreedy(nil))
}
