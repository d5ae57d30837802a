package logos

// EntityID is a dense, per-sentence token identifier: a plain index into
// the store's backing slice of entities, giving O(1) lookup.
type EntityID int

// Syntax is the dependency-edge record attached to an entity once the
// parser decides it has a head: its governing entity and the role it
// plays under that head.
type Syntax struct {
	Head EntityID
	Role SyntaxRole
}

// entity bundles every per-token fact the store tracks, colocated by
// index rather than split across parallel component slices — the store
// is sentence-scoped and small enough that a single struct-of-entities
// layout reads more plainly than an ECS-style struct-of-arrays split.
type entity struct {
	text   string
	lemma  LemmaId
	hasLemma bool
	flags  MorphFlags
	syntax Syntax
	hasSyntax bool
}

// Store is a per-sentence fact base: one entity per token, keyed by its
// dense EntityID. It is filled from the parser's finished edge list and
// discarded at the end of one analyse() call; nothing about it survives
// across sentences.
type Store struct {
	entities []entity
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// CreateToken appends a new entity carrying text/lemma/flags and returns
// its id. Ids are assigned densely in creation order, so EntityID(i)
// after n calls is the id returned by the i-th call.
func (s *Store) CreateToken(text string, lemma LemmaId, hasLemma bool, flags MorphFlags) EntityID {
	id := EntityID(len(s.entities))
	s.entities = append(s.entities, entity{text: text, lemma: lemma, hasLemma: hasLemma, flags: flags})
	return id
}

// AttachSyntax sets (or idempotently overwrites) the Syntax record for
// id. Calling it again for the same id with a new head/role replaces the
// earlier record, the same in-place overwrite the parser's RELINK makes
// on its own edge list.
func (s *Store) AttachSyntax(id EntityID, syn Syntax) {
	s.entities[int(id)].syntax = syn
	s.entities[int(id)].hasSyntax = true
}

// Len reports how many entities the store holds.
func (s *Store) Len() int { return len(s.entities) }

// Text returns the surface text of id.
func (s *Store) Text(id EntityID) string { return s.entities[int(id)].text }

// Flags returns the morph flags of id.
func (s *Store) Flags(id EntityID) MorphFlags { return s.entities[int(id)].flags }

// Lemma returns the lemma id of id and whether one is set.
func (s *Store) Lemma(id EntityID) (LemmaId, bool) {
	e := s.entities[int(id)]
	return e.lemma, e.hasLemma
}

// Syntax returns the Syntax record of id and whether one has been
// attached.
func (s *Store) Syntax(id EntityID) (Syntax, bool) {
	e := s.entities[int(id)]
	return e.syntax, e.hasSyntax
}

// EachWithSyntax calls fn once per entity that carries a Syntax record,
// in ascending id order, passing the entity's id, text, flags and
// syntax. Used by the agreement and semantic validators, which only
// ever care about attached entities.
func (s *Store) EachWithSyntax(fn func(id EntityID, text string, lemma LemmaId, hasLemma bool, flags MorphFlags, syn Syntax)) {
	for i, e := range s.entities {
		if !e.hasSyntax {
			continue
		}
		fn(EntityID(i), e.text, e.lemma, e.hasLemma, e.flags, e.syntax)
	}
}
