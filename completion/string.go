package completion

import (
	"cmp"
	"strings"

	"github.com/wtdcode/clang-rs/ast"
	"github.com/wtdcode/clang-rs/engine"
	"github.com/wtdcode/clang-rs/errors"
)

// String is a semantic completion string: a read-only view over one
// completion template inside an owning ResultSet. Copying a String is cheap
// and safe; it is a handle, not a value. Every String is invalidated when
// its owning ResultSet is closed, and using one afterwards is a contract
// violation that panics.
type String struct {
	owner *ResultSet
	ref   engine.StringRef
}

// Priority returns the engine's relevance key for this completion; smaller
// values indicate higher priorities. The scale is engine-defined and opaque:
// treat the value only as a comparison key, never as a displayable score.
func (s String) Priority() int {
	return int(s.owner.live().Priority(s.ref))
}

// Annotations returns the annotations attached to the completion's
// declaration, in declaration order.
func (s String) Annotations() []string {
	buf := s.owner.live()
	n := buf.NumAnnotations(s.ref)
	if n == 0 {
		return nil
	}
	annotations := make([]string, 0, n)
	for i := uint32(0); i < n; i++ {
		annotations = append(annotations, buf.Annotation(s.ref, i))
	}
	return annotations
}

// Availability returns the availability of the completion's declaration.
func (s String) Availability() ast.Availability {
	return ast.Availability(s.owner.live().Availability(s.ref))
}

// BriefComment returns the documentation-comment brief of the completion's
// declaration, if one was requested and exists.
func (s String) BriefComment() (string, bool) {
	brief := s.owner.live().BriefComment(s.ref)
	return brief, brief != ""
}

// ParentName returns the name of the semantic parent of the completion's
// declaration, if it has one.
func (s String) ParentName() (string, bool) {
	name := s.owner.live().ParentName(s.ref)
	return name, name != ""
}

// TypedText returns the text of the first top-level TypedText chunk in
// template order, if any. This is the canonical "what the user must type"
// string and the tie-break key for ordering.
func (s String) TypedText() (string, bool) {
	chunks, err := s.Chunks()
	if err != nil {
		return "", false
	}
	for _, chunk := range chunks {
		if chunk.Kind() == TypedText {
			return chunk.text, true
		}
	}
	return "", false
}

// Chunks decodes every chunk of this template, in template order. Optional
// chunks wrap a nested String bound to the same owning ResultSet as this
// one; all data lives in one buffer for the whole result set. An
// unrecognized raw chunk kind indicates a version mismatch with the engine
// and aborts the decode of this sequence.
func (s String) Chunks() ([]Chunk, error) {
	buf := s.owner.live()
	n := buf.NumChunks(s.ref)
	chunks := make([]Chunk, 0, n)
	for i := uint32(0); i < n; i++ {
		raw := buf.ChunkKind(s.ref, i)
		if raw == engine.ChunkOptional {
			nested := String{owner: s.owner, ref: buf.ChunkString(s.ref, i)}
			chunks = append(chunks, Chunk{kind: Optional, nested: nested})
			continue
		}
		kind, ok := decodedChunkKinds[raw]
		if !ok {
			return nil, errors.Newf("completion: unrecognized chunk kind %d at index %d", raw, i)
		}
		if literal, fixed := punctuationText[kind]; fixed {
			chunks = append(chunks, Chunk{kind: kind, text: literal})
			continue
		}
		chunks = append(chunks, Chunk{kind: kind, text: buf.ChunkText(s.ref, i)})
	}
	return chunks, nil
}

// Equal reports structural equality: two Strings are equal iff their fully
// decoded chunk sequences are equal element-wise, recursively through
// Optional chunks. Handle identity is irrelevant except as a fallback when
// a sequence cannot be decoded.
func (s String) Equal(other String) bool {
	a, errA := s.Chunks()
	b, errB := other.Chunks()
	if errA != nil || errB != nil {
		return s.owner == other.owner && s.ref == other.ref
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Compare orders completion strings for presentation: by priority ascending,
// then by typed text, where "no typed text" sorts strictly before "has typed
// text" and two present values compare lexicographically.
func (s String) Compare(other String) int {
	if c := cmp.Compare(s.Priority(), other.Priority()); c != 0 {
		return c
	}
	at, aok := s.TypedText()
	bt, bok := other.TypedText()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}
	return strings.Compare(at, bt)
}

// String renders the decoded chunk sequence for debugging.
func (s String) String() string {
	chunks, err := s.Chunks()
	if err != nil {
		return "CompletionString(<undecodable>)"
	}
	parts := make([]string, len(chunks))
	for i, chunk := range chunks {
		parts[i] = chunk.String()
	}
	return "CompletionString(" + strings.Join(parts, " ") + ")"
}
