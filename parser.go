package logos

// SyntaxRole is the label a Dependency edge carries.
type SyntaxRole int

const (
	RoleNone SyntaxRole = iota
	RoleSubject
	RoleObject
	RoleIndirectObject
	RoleModifier
	RoleRoot
	RolePrepositionArg
	RoleCoordinator
	RoleConjunct
	RolePassiveAgent
	RoleAbsoluteClause
	RoleComplement
	RoleRelativeClause
)

func (r SyntaxRole) String() string {
	switch r {
	case RoleSubject:
		return "Subject"
	case RoleObject:
		return "Object"
	case RoleIndirectObject:
		return "IndirectObject"
	case RoleModifier:
		return "Modifier"
	case RoleRoot:
		return "Root"
	case RolePrepositionArg:
		return "PrepositionArg"
	case RoleCoordinator:
		return "Coordinator"
	case RoleConjunct:
		return "Conjunct"
	case RolePassiveAgent:
		return "PassiveAgent"
	case RoleAbsoluteClause:
		return "AbsoluteClause"
	case RoleComplement:
		return "Complement"
	case RoleRelativeClause:
		return "RelativeClause"
	default:
		return "None"
	}
}

// Dependency is one edge of the parse: dependent attaches to head under
// role. RELINK mutates an already-emitted Dependency's Head/Role fields
// in place; it never appends a duplicate for the same Dependent.
type Dependency struct {
	Head      int
	Dependent int
	Role      SyntaxRole
}

// MorphToken is the parser's view of one sentence position: its surface
// text and resolved morph flags. Index within the slice passed to
// ParseGreedy is the position's identity throughout parsing.
type MorphToken struct {
	Text  string
	Flags MorphFlags
}

// relativePending records a relative pronoun awaiting the finite verb
// that opens its clause.
type relativePending struct {
	pronounIdx    int
	antecedentIdx int
}

// parseState is the parser's bounded mutable state, passed explicitly
// through the flat per-token loop rather than hung off a larger object.
type parseState struct {
	root               int
	currentClauseHead  int
	openPrepositionIdx int
	hasOpenPreposition bool
	pendingModifiers   []int
	lastNounIdx        int
	hasLastNoun        bool
	activeCoordHead    int
	hasActiveCoordHead bool
	pendingRelative    relativePending
	hasPendingRelative bool

	edges       []Dependency
	byDependent map[int]int // dependent index -> position in edges
}

// emit appends a new edge, or, if dependent already has one (a RELINK),
// overwrites its head/role in place rather than appending a duplicate.
func (st *parseState) emit(head, dependent int, role SyntaxRole) {
	if pos, ok := st.byDependent[dependent]; ok {
		st.edges[pos].Head = head
		st.edges[pos].Role = role
		return
	}
	st.byDependent[dependent] = len(st.edges)
	st.edges = append(st.edges, Dependency{Head: head, Dependent: dependent, Role: role})
}

// edgeOf returns the edge currently recorded for dependent, if any.
func (st *parseState) edgeOf(dependent int) (Dependency, bool) {
	pos, ok := st.byDependent[dependent]
	if !ok {
		return Dependency{}, false
	}
	return st.edges[pos], true
}

// ParseGreedy runs the single left-to-right, non-backtracking dependency
// pass over tokens and returns the resulting edge list. The parser never
// fails: unattached tokens simply have no outgoing edge, and a token
// index never appears twice as a Dependent because RELINK overwrites an
// edge already in the slice rather than appending a second one.
func ParseGreedy(tokens []MorphToken) []Dependency {
	n := len(tokens)
	if n == 0 {
		return nil
	}

	root := 0
	for i, t := range tokens {
		if isVerb(t.Flags) {
			root = i
			break
		}
	}

	st := &parseState{
		root:              root,
		currentClauseHead: root,
		byDependent:       make(map[int]int),
	}

	for i := 0; i < n; i++ {
		if i == root {
			continue
		}
		t := tokens[i]
		flags := t.Flags

		switch {
		case flags.Has(PrepositionFlag):
			if (t.Text == "υπό" || t.Text == "ὑπό") && tokens[st.currentClauseHead].Flags.Has(Passive) {
				st.emit(st.currentClauseHead, i, RolePassiveAgent)
			} else {
				st.emit(st.currentClauseHead, i, RoleModifier)
			}
			st.openPrepositionIdx = i
			st.hasOpenPreposition = true

		case flags.Has(ConjunctionFlag):
			head := st.currentClauseHead
			if st.hasLastNoun {
				head = st.lastNounIdx
			}
			st.emit(head, i, RoleCoordinator)
			st.activeCoordHead = head
			st.hasActiveCoordHead = true

		case flags.Has(RelativeFlag):
			if st.hasLastNoun {
				st.pendingRelative = relativePending{pronounIdx: i, antecedentIdx: st.lastNounIdx}
				st.hasPendingRelative = true
			}

		case isVerb(flags):
			if st.hasPendingRelative {
				p := st.pendingRelative.pronounIdx
				a := st.pendingRelative.antecedentIdx
				st.emit(a, i, RoleRelativeClause)
				var pRole SyntaxRole
				switch {
				case tokens[p].Flags.Has(Nominative):
					pRole = RoleSubject
				case tokens[p].Flags.Has(Accusative):
					pRole = RoleObject
				default:
					pRole = RoleModifier
				}
				st.emit(i, p, pRole)
				st.currentClauseHead = i
				st.hasPendingRelative = false
			}

		case hasCase(flags) || flags.Has(InfinitiveFlag):
			isHeadNoun := flags.Has(NounFlag) || !flags.Intersects(ArticleFlag|AdjectiveFlag)
			if isHeadNoun {
				parseHeadNoun(tokens, st, i)
				st.lastNounIdx = i
				st.hasLastNoun = true
			} else {
				st.pendingModifiers = append(st.pendingModifiers, i)
			}
		}
	}

	return st.edges
}

// parseHeadNoun implements step 5 of the per-token dispatch for a token
// classified as a head noun (or infinitive acting nominally): attach
// matching pending modifiers, then attach the head itself by the first
// matching rule.
func parseHeadNoun(tokens []MorphToken, st *parseState, i int) {
	t := tokens[i]

	// (a) attach matching pending modifiers, removing matched ones, and
	// remembering which ones matched for the articular-infinitive check
	// below (mirroring matched_modifiers in the reference parser).
	var matched []int
	remaining := st.pendingModifiers[:0:0]
	for _, m := range st.pendingModifiers {
		if agrees(tokens[m].Flags, t.Flags) {
			st.emit(i, m, RoleModifier)
			matched = append(matched, m)
		} else {
			remaining = append(remaining, m)
		}
	}
	st.pendingModifiers = remaining

	// (b) attach the head itself.
	switch {
	case st.hasActiveCoordHead:
		st.emit(st.activeCoordHead, i, RoleConjunct)
		st.hasActiveCoordHead = false

	case st.hasOpenPreposition:
		st.emit(st.openPrepositionIdx, i, RolePrepositionArg)
		st.hasOpenPreposition = false

	case t.Flags.Has(ParticipleFlag):
		parseParticiple(tokens, st, i)

	case t.Flags.Has(InfinitiveFlag):
		parseInfinitive(tokens, st, i, matched)

	case t.Flags.Has(Nominative):
		st.emit(st.currentClauseHead, i, RoleSubject)

	case t.Flags.Has(Accusative):
		st.emit(st.currentClauseHead, i, RoleObject)

	case t.Flags.Has(Genitive):
		if st.hasLastNoun {
			st.emit(st.lastNounIdx, i, RoleModifier)
		} else {
			st.emit(st.currentClauseHead, i, RoleModifier)
		}

	case t.Flags.Has(Dative):
		st.emit(st.currentClauseHead, i, RoleIndirectObject)

	default:
		st.emit(st.currentClauseHead, i, RoleModifier)
	}
}

// parseParticiple handles the genitive-absolute / plain-participle split
// of the per-token dispatch.
func parseParticiple(tokens []MorphToken, st *parseState, i int) {
	t := tokens[i]
	if t.Flags.Has(Genitive) && st.hasLastNoun && tokens[st.lastNounIdx].Flags.Has(Genitive) && agrees(t.Flags, tokens[st.lastNounIdx].Flags) {
		// Genitive absolute: RELINK the noun's existing edge to make it
		// the participle's subject, and attach the whole clause.
		st.emit(i, st.lastNounIdx, RoleSubject)
		st.emit(st.currentClauseHead, i, RoleAbsoluteClause)
		return
	}
	head := st.currentClauseHead
	if st.hasLastNoun && agrees(t.Flags, tokens[st.lastNounIdx].Flags) {
		head = st.lastNounIdx
	}
	st.emit(head, i, RoleModifier)
}

// parseInfinitive handles the articular/bare infinitive split of the
// per-token dispatch. An infinitive is articular when any modifier
// matched in step (a) carried the Article flag, and its role is
// Subject iff any matched modifier was Nominative — two independent
// "any" checks over the whole matched set, not a decision based on a
// single modifier.
func parseInfinitive(tokens []MorphToken, st *parseState, i int, matched []int) {
	isArticular := false
	isNominative := false
	for _, m := range matched {
		if tokens[m].Flags.Has(ArticleFlag) {
			isArticular = true
		}
		if tokens[m].Flags.Has(Nominative) {
			isNominative = true
		}
	}

	if isArticular {
		role := RoleObject
		if isNominative {
			role = RoleSubject
		}
		if st.hasOpenPreposition {
			st.emit(st.openPrepositionIdx, i, RolePrepositionArg)
			st.hasOpenPreposition = false
			return
		}
		st.emit(st.currentClauseHead, i, role)
		return
	}

	if st.hasLastNoun && tokens[st.lastNounIdx].Flags.Has(Accusative) {
		st.emit(i, st.lastNounIdx, RoleSubject)
	}
	st.emit(st.currentClauseHead, i, RoleComplement)
}
