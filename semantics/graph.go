// Package semantics holds the inheritance-aware concept graph used by
// the semantic validator: a directed multigraph of LemmaIds connected
// by IsA, RequiresAttribute and HasAttribute edges, built once when a
// graph blob is loaded and read-only for the lifetime of the process.
package semantics

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
)

// Relation is the label a concept-graph edge carries. The graph is a
// multigraph because two concepts can be related more than one way
// (e.g. both IsA and HasAttribute between the same pair is nonsensical
// linguistically but not forbidden structurally), which is why it is
// built on gonum's multi.DirectedGraph rather than simple.DirectedGraph.
type Relation int

const (
	IsA Relation = iota
	RequiresAttribute
	HasAttribute
)

func (r Relation) String() string {
	switch r {
	case IsA:
		return "IsA"
	case RequiresAttribute:
		return "RequiresAttribute"
	case HasAttribute:
		return "HasAttribute"
	default:
		return "Unknown"
	}
}

// node wraps a LemmaId as a graph.Node; gonum identifies nodes by a
// dense int64, which a LemmaId already is.
type node int64

func (n node) ID() int64 { return int64(n) }

// line is one labeled edge of the multigraph: gonum's Line interface
// plus the Relation it carries.
type line struct {
	id       int64
	from, to node
	relation Relation
}

func (l line) From() graph.Node         { return l.from }
func (l line) To() graph.Node           { return l.to }
func (l line) ID() int64                { return l.id }
func (l line) ReversedLine() graph.Line { return line{id: l.id, from: l.to, to: l.from, relation: l.relation} }

// Graph is a directed multigraph over LemmaIds (represented here as
// int64 for gonum's benefit). Triples are (from, to, relation).
type Graph struct {
	g      *multi.DirectedGraph
	nextID int64
}

// NewGraph returns an empty concept graph.
func NewGraph() *Graph {
	return &Graph{g: multi.NewDirectedGraph()}
}

// AddConcept ensures id is present as a node, even with no edges yet.
func (cg *Graph) AddConcept(id uint32) {
	n := node(id)
	if cg.g.Node(n.ID()) == nil {
		cg.g.AddNode(n)
	}
}

// AddRelation adds a (from, to, relation) triple. from and to are added
// as nodes first if not already present.
func (cg *Graph) AddRelation(from, to uint32, relation Relation) {
	cg.AddConcept(from)
	cg.AddConcept(to)
	cg.nextID++
	cg.g.SetLine(line{id: cg.nextID, from: node(from), to: node(to), relation: relation})
}

// relations returns every Relation on the edge(s) from u to v.
func (cg *Graph) relations(u, v int64) []Relation {
	lines := cg.g.Lines(u, v)
	var out []Relation
	for lines.Next() {
		l, ok := lines.Line().(line)
		if !ok {
			continue
		}
		out = append(out, l.relation)
	}
	return out
}

// hasRelation reports whether any edge from u to v carries relation.
func (cg *Graph) hasRelation(u, v int64, relation Relation) bool {
	for _, r := range cg.relations(u, v) {
		if r == relation {
			return true
		}
	}
	return false
}

// RequiredAttributes returns every concept r such that verb
// RequiresAttribute r.
func (cg *Graph) RequiredAttributes(verb uint32) []uint32 {
	if cg.g.Node(int64(verb)) == nil {
		return nil
	}
	var out []uint32
	to := cg.g.From(int64(verb))
	for to.Next() {
		v := to.Node().ID()
		if cg.hasRelation(int64(verb), v, RequiresAttribute) {
			out = append(out, uint32(v))
		}
	}
	return out
}

// Satisfies reports whether subject satisfies attribute: there is a
// path from subject to attribute using only IsA edges, terminating in a
// single HasAttribute edge to attribute. Traversal is an explicit
// stack/visited-set walk (not recursion) so that cyclic IsA chains in
// user-supplied data terminate rather than hang the process.
func (cg *Graph) Satisfies(subject, attribute uint32) bool {
	if cg.g.Node(int64(subject)) == nil {
		return false
	}

	visited := map[int64]bool{}
	stack := []int64{int64(subject)}

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[u] {
			continue
		}
		visited[u] = true

		if cg.hasRelation(u, int64(attribute), HasAttribute) {
			return true
		}

		to := cg.g.From(u)
		for to.Next() {
			v := to.Node().ID()
			if visited[v] {
				continue
			}
			if cg.hasRelation(u, v, IsA) {
				stack = append(stack, v)
			}
		}
	}
	return false
}
