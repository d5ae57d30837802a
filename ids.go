// Package logos analyses Ancient/Polytonic Greek text: tokenizing,
// resolving morphology against a compiled dictionary archive, building a
// dependency tree with a single-pass greedy parser, and checking
// agreement and semantic-selectional constraints over the result.
//
// A zero-copy archive, a bitflag morphology tagset, a greedy dependency
// parser and an inheritance-aware semantic validator are wired together
// by a single Pipeline.Analyse entry point.
package logos

// LemmaId identifies a dictionary headword. Equality and hashing only;
// the underlying representation is a transparent uint32 so it round-trips
// through the archive format without translation.
type LemmaId uint32

// ParadigmId identifies an inflectional paradigm (a table of endings).
type ParadigmId uint32
