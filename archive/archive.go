// Package archive implements the on-disk format for a compiled
// dictionary: a small fixed header mapped directly off an mmap'd file,
// followed by a gob-encoded payload holding the lemmas, paradigms and
// semantic-graph triples. The runtime never copies the file into a
// buffer it controls; the OS pages it in on demand and the mapping stays
// alive until the Archive returned by Load is closed.
package archive

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/glossa-analytics/logos"
	"github.com/glossa-analytics/logos/semantics"
)

// magic identifies a logos dictionary archive.
var magic = [4]byte{'L', 'G', 'A', '1'}

// Header is the fixed-size prefix of an archive file, read straight off
// the mmap'd bytes with encoding/binary. PayloadLength may be smaller
// than the remaining mapped bytes; anything past it is ignored, which
// is what gives the format its "tolerant of trailing unknown bytes"
// property (future fields can be appended without breaking old
// readers).
type Header struct {
	Magic         [4]byte
	Version       uint32
	PayloadLength uint64
}

const headerSize = 4 + 4 + 8

// payload is the gob-encoded body of the archive: the logical
// Dictionary plus the semantic graph's flat triple list, deserialised
// eagerly into ordinary Go values. Zero-copy is a performance property
// of this format, not a correctness one: only the header is read
// directly off the mapping, and the rest goes through gob.
type payload struct {
	Version   uint32
	Lemmas    []logos.Lemma
	Paradigms []logos.Paradigm
	Relations []Relation
}

// Relation is one (from, to, relation) triple of the semantic graph, as
// stored flat in the archive payload.
type Relation struct {
	From     uint32
	To       uint32
	Relation semantics.Relation
}

// Archive is a loaded dictionary archive. Close releases the
// underlying mmap mapping; it must be called exactly once when the
// archive is no longer needed, typically at process teardown.
type Archive struct {
	Dict      *logos.Dictionary
	Semantics *semantics.Graph
	mapped    mmap.MMap
	file      *os.File
}

// Close unmaps the archive's backing file and closes the file handle.
func (a *Archive) Close() error {
	var err error
	if a.mapped != nil {
		err = a.mapped.Unmap()
	}
	if a.file != nil {
		if cerr := a.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Load opens path, maps it into the process address space, validates
// the header's magic and that the declared payload length fits in the
// file, and decodes the payload into a Dictionary and an optional
// semantic Graph. The header's Version field is read but not checked;
// an archive with any version value is accepted. The caller owns the
// returned Archive and must Close it when done.
func Load(path string) (*Archive, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("archive: open %s: %w", path, err)
	}

	mapped, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("archive: mmap %s: %w", path, err)
	}

	if len(mapped) < headerSize {
		mapped.Unmap()
		file.Close()
		return nil, fmt.Errorf("archive: %s is too small to hold a header", path)
	}

	var hdr Header
	if err := binary.Read(bytes.NewReader(mapped[:headerSize]), binary.LittleEndian, &hdr); err != nil {
		mapped.Unmap()
		file.Close()
		return nil, fmt.Errorf("archive: reading header: %w", err)
	}
	if hdr.Magic != magic {
		mapped.Unmap()
		file.Close()
		return nil, fmt.Errorf("archive: %s has bad magic %q", path, hdr.Magic[:])
	}
	if uint64(len(mapped)-headerSize) < hdr.PayloadLength {
		mapped.Unmap()
		file.Close()
		return nil, fmt.Errorf("archive: %s is truncated: declares %d payload bytes, has %d", path, hdr.PayloadLength, len(mapped)-headerSize)
	}

	body := mapped[headerSize : headerSize+int(hdr.PayloadLength)]
	var p payload
	if err := gob.NewDecoder(bytes.NewReader(body)).Decode(&p); err != nil {
		mapped.Unmap()
		file.Close()
		return nil, fmt.Errorf("archive: decoding payload: %w", err)
	}

	dict := &logos.Dictionary{Version: p.Version, Lemmas: p.Lemmas, Paradigms: p.Paradigms}

	var graph *semantics.Graph
	if len(p.Relations) > 0 {
		graph = semantics.NewGraph()
		for _, r := range p.Relations {
			graph.AddRelation(r.From, r.To, r.Relation)
		}
	}

	return &Archive{Dict: dict, Semantics: graph, mapped: mapped, file: file}, nil
}

// Save encodes dict and the semantic graph's triples (relations may be
// nil) into a fresh archive file at path, for use by the offline
// compiler. It is not on the hot read path and does not attempt to be
// zero-copy.
func Save(path string, dict *logos.Dictionary, relations []Relation) error {
	var buf bytes.Buffer
	p := payload{Version: dict.Version, Lemmas: dict.Lemmas, Paradigms: dict.Paradigms, Relations: relations}
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return fmt.Errorf("archive: encoding payload: %w", err)
	}

	hdr := Header{Magic: magic, Version: dict.Version, PayloadLength: uint64(buf.Len())}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("archive: create %s: %w", path, err)
	}
	defer f.Close()

	if err := binary.Write(f, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("archive: writing header: %w", err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("archive: writing payload: %w", err)
	}
	return nil
}

