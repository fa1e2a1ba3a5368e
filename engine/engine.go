// Package engine is the seam between the completion model and the external
// completion engine. It declares the raw, handle-based surface the model
// decodes from: an Engine executes positional queries against a translation
// unit and yields a Buffer, the single externally-allocated allocation that
// physically backs every candidate of one query. Nothing in this package
// interprets the raw codes; decoding lives in the completion package.
package engine

import "github.com/wtdcode/clang-rs/errors"

// UnsavedFile substitutes in-memory contents for the on-disk content of a
// file during a query.
type UnsavedFile struct {
	Path     string
	Contents string
}

// Options is the engine's query option bitmask.
type Options uint32

const (
	// OptIncludeMacros includes macro names as candidates.
	OptIncludeMacros Options = 1 << 0
	// OptIncludeCodePatterns includes statement and snippet templates.
	OptIncludeCodePatterns Options = 1 << 1
	// OptIncludeBriefComments attaches documentation-comment briefs.
	OptIncludeBriefComments Options = 1 << 2
)

// With returns the options with the given flag set or cleared.
func (o Options) With(flag Options, on bool) Options {
	if on {
		return o | flag
	}
	return o &^ flag
}

// Has reports whether the given flag is set.
func (o Options) Has(flag Options) bool { return o&flag != 0 }

// Engine executes completion queries. Implementations are expected to
// serialize or reject concurrent queries against the same translation unit;
// callers issue at most one at a time.
type Engine interface {
	// DefaultOptions returns the engine's built-in default option flags.
	DefaultOptions() Options

	// CompleteAt runs one synchronous completion query at the 1-based
	// line/column position in file, with the given unsaved overrides in
	// effect. A query that finds nothing returns a valid, empty Buffer.
	// A nil Buffer with a nil error signals catastrophic engine failure;
	// callers must degrade rather than fault.
	CompleteAt(file string, line, column uint32, unsaved []UnsavedFile, opts Options) (Buffer, error)
}

// TranslationUnit pairs an engine with the main file of a parsed translation
// unit. It is the anchor completion queries are issued against.
type TranslationUnit struct {
	eng      Engine
	mainFile string
}

// NewTranslationUnit wraps an already-parsed translation unit.
func NewTranslationUnit(eng Engine, mainFile string) (*TranslationUnit, error) {
	if eng == nil {
		return nil, errors.New("engine is required")
	}
	if mainFile == "" {
		return nil, errors.New("main file is required")
	}
	return &TranslationUnit{eng: eng, mainFile: mainFile}, nil
}

// Engine returns the engine this translation unit was parsed by.
func (tu *TranslationUnit) Engine() Engine { return tu.eng }

// MainFile returns the path of the translation unit's main file.
func (tu *TranslationUnit) MainFile() string { return tu.mainFile }
