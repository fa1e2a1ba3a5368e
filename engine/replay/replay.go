// Package replay implements the engine seam over a recorded snapshot of a
// completion query. A snapshot carries the raw result set the way the
// native engine lays it out: a flat arena of completion templates, with
// nested optional sub-templates referenced by arena index.
//
// Replay serves two roles: the test double for the completion model (no
// real engine is needed to exercise decoding, ordering, or lifetimes) and
// the data source for the clang-complete CLI.
package replay

import (
	"encoding/json"
	"os"

	"github.com/wtdcode/clang-rs/ast"
	"github.com/wtdcode/clang-rs/engine"
	"github.com/wtdcode/clang-rs/errors"
	"github.com/wtdcode/clang-rs/logger"
)

// Chunk is one recorded chunk. Kind holds the raw chunk kind code; Template
// is the arena index of the nested sub-template for optional chunks.
type Chunk struct {
	Kind     uint32 `json:"kind"`
	Text     string `json:"text,omitempty"`
	Template uint32 `json:"template,omitempty"`
}

// Template is one recorded completion template.
type Template struct {
	Priority     uint32   `json:"priority"`
	Availability uint32   `json:"availability,omitempty"`
	Annotations  []string `json:"annotations,omitempty"`
	Brief        string   `json:"brief,omitempty"`
	Parent       string   `json:"parent,omitempty"`
	Chunks       []Chunk  `json:"chunks"`
}

// Result is one recorded candidate: a raw entity-kind code and the arena
// index of its template. Pattern marks statement/snippet candidates that the
// engine only emits when code patterns are requested.
type Result struct {
	Kind     uint32 `json:"kind"`
	Template uint32 `json:"template"`
	Pattern  bool   `json:"pattern,omitempty"`
}

// Container is the recorded containing entity, when the query had one.
type Container struct {
	Kind       uint32 `json:"kind"`
	Incomplete bool   `json:"incomplete,omitempty"`
	USR        string `json:"usr,omitempty"`
}

// Diagnostic is one recorded diagnostic.
type Diagnostic struct {
	Severity uint32 `json:"severity"`
	Message  string `json:"message"`
	File     string `json:"file,omitempty"`
	Line     uint32 `json:"line,omitempty"`
	Column   uint32 `json:"column,omitempty"`
}

// Snapshot is a recorded completion query.
type Snapshot struct {
	// DefaultOptions is the engine's built-in default option bitmask.
	DefaultOptions uint32 `json:"default_options,omitempty"`

	Results     []Result     `json:"results"`
	Templates   []Template   `json:"templates"`
	Contexts    uint64       `json:"contexts,omitempty"`
	Container   *Container   `json:"container,omitempty"`
	Selector    string       `json:"selector,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Engine replays a snapshot for every query.
type Engine struct {
	snap Snapshot
}

// New creates a replay engine over the given snapshot.
func New(snap Snapshot) *Engine {
	return &Engine{snap: snap}
}

// Load reads a snapshot from a JSON file.
func Load(path string) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read completion snapshot")
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrapf(err, "failed to parse completion snapshot %s", path)
	}
	logger.Named("replay").Debugw("snapshot loaded",
		"path", path,
		"results", len(snap.Results),
		"templates", len(snap.Templates),
	)
	return New(snap), nil
}

// DefaultOptions returns the option bitmask recorded in the snapshot.
func (e *Engine) DefaultOptions() engine.Options {
	return engine.Options(e.snap.DefaultOptions)
}

// CompleteAt replays the snapshot. The replayed candidate list honors the
// requested options the way the native engine would: macro candidates only
// appear when macros are requested, pattern candidates only when code
// patterns are, and briefs are only attached when requested. An out-of-range
// position (zero line or column) is refused.
func (e *Engine) CompleteAt(file string, line, column uint32, unsaved []engine.UnsavedFile, opts engine.Options) (engine.Buffer, error) {
	if line == 0 || column == 0 {
		return nil, errors.Newf("invalid completion position %s:%d:%d", file, line, column)
	}

	results := make([]Result, 0, len(e.snap.Results))
	for _, r := range e.snap.Results {
		if r.Kind == uint32(ast.KindMacroDefinition) && !opts.Has(engine.OptIncludeMacros) {
			continue
		}
		if r.Pattern && !opts.Has(engine.OptIncludeCodePatterns) {
			continue
		}
		results = append(results, r)
	}
	return &buffer{snap: &e.snap, results: results, opts: opts}, nil
}

// buffer is the replayed raw result set. It is "released" by discarding the
// snapshot reference so that use after dispose trips immediately.
type buffer struct {
	snap    *Snapshot
	results []Result
	opts    engine.Options
}

func (b *buffer) arena() *Snapshot {
	if b.snap == nil {
		panic("replay: buffer used after dispose")
	}
	return b.snap
}

func (b *buffer) template(ref engine.StringRef) *Template {
	snap := b.arena()
	if int(ref) >= len(snap.Templates) {
		panic("replay: template index out of range")
	}
	return &snap.Templates[ref]
}

func (b *buffer) NumResults() uint32 {
	b.arena()
	return uint32(len(b.results))
}

func (b *buffer) Result(i uint32) (uint32, engine.StringRef) {
	b.arena()
	r := b.results[i]
	return r.Kind, engine.StringRef(r.Template)
}

func (b *buffer) Contexts() uint64 {
	return b.arena().Contexts
}

func (b *buffer) Container() (uint32, bool) {
	snap := b.arena()
	if snap.Container == nil {
		return uint32(ast.KindInvalidCode), false
	}
	return snap.Container.Kind, snap.Container.Incomplete
}

func (b *buffer) Selector() string {
	return b.arena().Selector
}

func (b *buffer) ContainerUSR() string {
	snap := b.arena()
	if snap.Container == nil {
		return ""
	}
	return snap.Container.USR
}

func (b *buffer) NumDiagnostics() uint32 {
	return uint32(len(b.arena().Diagnostics))
}

func (b *buffer) Diagnostic(i uint32) engine.Diagnostic {
	d := b.arena().Diagnostics[i]
	return engine.Diagnostic{
		Severity: d.Severity,
		Message:  d.Message,
		File:     d.File,
		Line:     d.Line,
		Column:   d.Column,
	}
}

func (b *buffer) NumChunks(ref engine.StringRef) uint32 {
	return uint32(len(b.template(ref).Chunks))
}

func (b *buffer) ChunkKind(ref engine.StringRef, i uint32) uint32 {
	return b.template(ref).Chunks[i].Kind
}

func (b *buffer) ChunkText(ref engine.StringRef, i uint32) string {
	return b.template(ref).Chunks[i].Text
}

func (b *buffer) ChunkString(ref engine.StringRef, i uint32) engine.StringRef {
	return engine.StringRef(b.template(ref).Chunks[i].Template)
}

func (b *buffer) Priority(ref engine.StringRef) uint32 {
	return b.template(ref).Priority
}

func (b *buffer) Availability(ref engine.StringRef) uint32 {
	return b.template(ref).Availability
}

func (b *buffer) NumAnnotations(ref engine.StringRef) uint32 {
	return uint32(len(b.template(ref).Annotations))
}

func (b *buffer) Annotation(ref engine.StringRef, i uint32) string {
	return b.template(ref).Annotations[i]
}

func (b *buffer) BriefComment(ref engine.StringRef) string {
	if !b.opts.Has(engine.OptIncludeBriefComments) {
		return ""
	}
	return b.template(ref).Brief
}

func (b *buffer) ParentName(ref engine.StringRef) string {
	return b.template(ref).Parent
}

func (b *buffer) Dispose() {
	b.snap = nil
	b.results = nil
}
