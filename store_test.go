package logos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateTokenAssignsDenseIDs(t *testing.T) {
	s := NewStore()
	id0 := s.CreateToken("Πέτρος", 1, true, Nominative|Masculine|Singular|NounFlag)
	id1 := s.CreateToken("βλέπει", 2, true, Present|Active|ThirdPerson)
	assert.Equal(t, EntityID(0), id0)
	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, 2, s.Len())

	assert.Equal(t, "Πέτρος", s.Text(id0))
	lemma, ok := s.Lemma(id0)
	require.True(t, ok)
	assert.Equal(t, LemmaId(1), lemma)
	assert.Equal(t, Nominative|Masculine|Singular|NounFlag, s.Flags(id0))
}

func TestStoreAttachSyntaxIsIdempotentOverwrite(t *testing.T) {
	s := NewStore()
	id := s.CreateToken("Πέτρος", 1, true, Nominative)
	head := s.CreateToken("βλέπει", 2, true, Present)

	s.AttachSyntax(id, Syntax{Head: head, Role: RoleModifier})
	syn, ok := s.Syntax(id)
	require.True(t, ok)
	assert.Equal(t, RoleModifier, syn.Role)

	// RELINK: attaching again overwrites in place.
	s.AttachSyntax(id, Syntax{Head: head, Role: RoleSubject})
	syn, ok = s.Syntax(id)
	require.True(t, ok)
	assert.Equal(t, RoleSubject, syn.Role)
	assert.Equal(t, 2, s.Len(), "overwrite must not grow the store")
}

func TestStoreEachWithSyntaxOnlyVisitsAttachedInAscendingOrder(t *testing.T) {
	s := NewStore()
	a := s.CreateToken("a", 1, true, 0)
	b := s.CreateToken("b", 2, true, 0)
	_ = s.CreateToken("c", 3, true, 0) // never attached

	s.AttachSyntax(b, Syntax{Head: a, Role: RoleObject})
	s.AttachSyntax(a, Syntax{Head: a, Role: RoleSubject})

	var visited []EntityID
	s.EachWithSyntax(func(id EntityID, text string, lemma LemmaId, hasLemma bool, flags MorphFlags, syn Syntax) {
		visited = append(visited, id)
	})
	require.Len(t, visited, 2)
	assert.Equal(t, []EntityID{a, b}, visited)
}

func TestStoreSyntaxUnattachedReportsFalse(t *testing.T) {
	s := NewStore()
	id := s.CreateToken("x", 1, true, 0)
	_, ok := s.Syntax(id)
	assert.False(t, ok)
}
