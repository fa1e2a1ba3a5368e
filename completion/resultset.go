package completion

import (
	"github.com/wtdcode/clang-rs/ast"
	"github.com/wtdcode/clang-rs/diag"
	"github.com/wtdcode/clang-rs/engine"
)

// ResultSet owns the raw buffer produced by one completion query for the
// lifetime of the object. Every String, Chunk, and Result obtained from a
// ResultSet is a borrow into that buffer: cheap to copy, and valid only
// until Close.
//
// A ResultSet wrapping no buffer at all (catastrophic engine failure) is
// still valid; every accessor degrades to the empty or absent value.
type ResultSet struct {
	buf    engine.Buffer
	closed bool
}

func newResultSet(buf engine.Buffer) *ResultSet {
	return &ResultSet{buf: buf}
}

// Close releases the underlying buffer. It releases exactly once no matter
// how many times it is called or how many views were taken, and is safe on
// a set with zero results. After Close every borrowed String panics on use.
func (r *ResultSet) Close() {
	if r.closed {
		return
	}
	r.closed = true
	if r.buf != nil {
		r.buf.Dispose()
		r.buf = nil
	}
}

// live returns the underlying buffer, which is nil for the degenerate empty
// set. Use after Close is a lifetime contract violation and panics.
func (r *ResultSet) live() engine.Buffer {
	if r.closed {
		panic("completion: use of ResultSet after Close")
	}
	return r.buf
}

// Results returns one Result per candidate, in the engine's native order.
// No ranking is applied; use Sort for presentation order.
func (r *ResultSet) Results() []Result {
	buf := r.live()
	if buf == nil {
		return nil
	}
	n := buf.NumResults()
	results := make([]Result, 0, n)
	for i := uint32(0); i < n; i++ {
		kind, ref := buf.Result(i)
		results = append(results, Result{
			Kind:   ast.EntityKind(kind),
			String: String{owner: r, ref: ref},
		})
	}
	return results
}

// Context returns the decoded completion context, or nil when the engine
// reported none (a zero mask or the unknown sentinel).
func (r *ResultSet) Context() *Context {
	buf := r.live()
	if buf == nil {
		return nil
	}
	return decodeContext(buf.Contexts())
}

// Container describes the entity containing the completion context.
type Container struct {
	// Kind categorizes the containing entity.
	Kind ast.EntityKind
	// Incomplete marks whether the container's member list was only
	// partially known, e.g. completion inside an as-yet-unparsed class
	// body.
	Incomplete bool
}

// Container returns the containing entity of the completion context, if the
// engine reported one.
func (r *ResultSet) Container() (Container, bool) {
	buf := r.live()
	if buf == nil {
		return Container{}, false
	}
	kind, incomplete := buf.Container()
	entity := ast.EntityKind(kind)
	if entity == ast.KindInvalidCode {
		return Container{}, false
	}
	return Container{Kind: entity, Incomplete: incomplete}, true
}

// Selector returns the selector or partial selector entered so far when the
// completion context is an Objective-C message send.
func (r *ResultSet) Selector() (string, bool) {
	buf := r.live()
	if buf == nil {
		return "", false
	}
	selector := buf.Selector()
	return selector, selector != ""
}

// USR returns the Unified Symbol Resolution identifier of the containing
// entity, if resolvable.
func (r *ResultSet) USR() (ast.Usr, bool) {
	buf := r.live()
	if buf == nil {
		return "", false
	}
	usr := buf.ContainerUSR()
	return ast.Usr(usr), usr != ""
}

// Diagnostics returns the diagnostics the engine raised while preparing the
// completion context, decoded in emission order and attached to tu.
func (r *ResultSet) Diagnostics(tu *engine.TranslationUnit) []diag.Diagnostic {
	buf := r.live()
	if buf == nil {
		return nil
	}
	n := buf.NumDiagnostics()
	if n == 0 {
		return nil
	}
	diagnostics := make([]diag.Diagnostic, 0, n)
	for i := uint32(0); i < n; i++ {
		diagnostics = append(diagnostics, diag.FromRaw(buf.Diagnostic(i), tu))
	}
	return diagnostics
}
