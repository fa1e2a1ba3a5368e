// Package completion models the result set of a code-completion query: the
// buffer-owning ResultSet, the lazily decoded completion String and its
// Chunk sequence, the query-context flags, and the ordering used to rank
// candidates for presentation.
package completion

import (
	"fmt"

	"github.com/wtdcode/clang-rs/engine"
)

// ChunkKind identifies one variant of Chunk.
type ChunkKind uint8

const (
	// Punctuation kinds. Each maps to a fixed one-character literal.
	Colon ChunkKind = iota
	Comma
	Equals
	Semicolon
	LeftAngleBracket
	RightAngleBracket
	LeftBrace
	RightBrace
	LeftParenthesis
	RightParenthesis
	LeftSquareBracket
	RightSquareBracket

	// Text-bearing kinds. Each carries a string payload.
	HorizontalSpace
	VerticalSpace
	CurrentParameter
	Informative
	Placeholder
	ResultType
	Text
	TypedText

	// Optional wraps a nested sub-template that may or may not be
	// inserted.
	Optional
)

var chunkKindNames = [...]string{
	Colon:              "Colon",
	Comma:              "Comma",
	Equals:             "Equals",
	Semicolon:          "Semicolon",
	LeftAngleBracket:   "LeftAngleBracket",
	RightAngleBracket:  "RightAngleBracket",
	LeftBrace:          "LeftBrace",
	RightBrace:         "RightBrace",
	LeftParenthesis:    "LeftParenthesis",
	RightParenthesis:   "RightParenthesis",
	LeftSquareBracket:  "LeftSquareBracket",
	RightSquareBracket: "RightSquareBracket",
	HorizontalSpace:    "HorizontalSpace",
	VerticalSpace:      "VerticalSpace",
	CurrentParameter:   "CurrentParameter",
	Informative:        "Informative",
	Placeholder:        "Placeholder",
	ResultType:         "ResultType",
	Text:               "Text",
	TypedText:          "TypedText",
	Optional:           "Optional",
}

func (k ChunkKind) String() string {
	if int(k) < len(chunkKindNames) {
		return chunkKindNames[k]
	}
	return fmt.Sprintf("ChunkKind(%d)", uint8(k))
}

// punctuationText maps each punctuation kind to its fixed literal.
var punctuationText = map[ChunkKind]string{
	Colon:              ":",
	Comma:              ",",
	Equals:             "=",
	Semicolon:          ";",
	LeftAngleBracket:   "<",
	RightAngleBracket:  ">",
	LeftBrace:          "{",
	RightBrace:         "}",
	LeftParenthesis:    "(",
	RightParenthesis:   ")",
	LeftSquareBracket:  "[",
	RightSquareBracket: "]",
}

// decodedChunkKinds maps the engine's raw chunk kind codes to the decoded
// taxonomy. The Optional code is absent because it decodes into a nested
// String rather than a plain variant.
var decodedChunkKinds = map[uint32]ChunkKind{
	engine.ChunkColon:           Colon,
	engine.ChunkComma:           Comma,
	engine.ChunkEqual:           Equals,
	engine.ChunkSemiColon:       Semicolon,
	engine.ChunkLeftAngle:       LeftAngleBracket,
	engine.ChunkRightAngle:      RightAngleBracket,
	engine.ChunkLeftBrace:       LeftBrace,
	engine.ChunkRightBrace:      RightBrace,
	engine.ChunkLeftParen:       LeftParenthesis,
	engine.ChunkRightParen:      RightParenthesis,
	engine.ChunkLeftBracket:     LeftSquareBracket,
	engine.ChunkRightBracket:    RightSquareBracket,
	engine.ChunkHorizontalSpace: HorizontalSpace,
	engine.ChunkVerticalSpace:   VerticalSpace,
	engine.ChunkCurrentParam:    CurrentParameter,
	engine.ChunkInformative:     Informative,
	engine.ChunkPlaceholder:     Placeholder,
	engine.ChunkResultType:      ResultType,
	engine.ChunkText:            Text,
	engine.ChunkTypedText:       TypedText,
}

// Chunk is one atomic piece of a completion template: a fixed punctuation
// literal, a block of text, or an optional nested sub-template.
type Chunk struct {
	kind   ChunkKind
	text   string
	nested String // valid only when kind == Optional
}

// Kind returns the chunk's variant.
func (c Chunk) Kind() ChunkKind { return c.kind }

// Text returns the text associated with the chunk: the fixed literal for
// punctuation kinds, the payload for text-bearing kinds. Optional chunks
// have no text of their own; their content is obtained by decoding the
// nested template.
func (c Chunk) Text() (string, bool) {
	if c.kind == Optional {
		return "", false
	}
	return c.text, true
}

// IsOptional reports whether the chunk wraps a nested sub-template.
func (c Chunk) IsOptional() bool { return c.kind == Optional }

// Nested returns the sub-template of an Optional chunk. The returned String
// borrows from the same ResultSet as the chunk's parent template.
func (c Chunk) Nested() (String, bool) {
	if c.kind != Optional {
		return String{}, false
	}
	return c.nested, true
}

// Equal reports structural equality. Optional chunks compare by the fully
// decoded chunk sequences of their nested templates.
func (c Chunk) Equal(other Chunk) bool {
	if c.kind != other.kind {
		return false
	}
	if c.kind == Optional {
		return c.nested.Equal(other.nested)
	}
	return c.text == other.text
}

func (c Chunk) String() string {
	if c.kind == Optional {
		return fmt.Sprintf("%s(%s)", c.kind, c.nested)
	}
	return fmt.Sprintf("%s(%q)", c.kind, c.text)
}
