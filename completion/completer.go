package completion

import (
	"github.com/wtdcode/clang-rs/engine"
	"github.com/wtdcode/clang-rs/errors"
)

// Completer configures and runs one completion query. Construct it per
// request, or reuse it across queries by mutating the position through the
// setters; every Complete call issues an independent query.
type Completer struct {
	tu      *engine.TranslationUnit
	file    string
	line    uint32
	column  uint32
	unsaved []engine.UnsavedFile
	opts    engine.Options
}

// NewCompleter creates a completer for the given translation unit and
// 1-based line/column position in file. Option flags start from the engine's
// built-in default set; no overrides are hardcoded here.
func NewCompleter(tu *engine.TranslationUnit, file string, line, column uint32) *Completer {
	return &Completer{
		tu:     tu,
		file:   file,
		line:   line,
		column: column,
		opts:   tu.Engine().DefaultOptions(),
	}
}

// Unsaved sets the unsaved file overrides to use for the query.
func (c *Completer) Unsaved(files ...engine.UnsavedFile) *Completer {
	c.unsaved = append([]engine.UnsavedFile(nil), files...)
	return c
}

// Macros sets whether macro names will be included as candidates.
func (c *Completer) Macros(include bool) *Completer {
	c.opts = c.opts.With(engine.OptIncludeMacros, include)
	return c
}

// CodePatterns sets whether code patterns (e.g. for loops) will be included
// as candidates.
func (c *Completer) CodePatterns(include bool) *Completer {
	c.opts = c.opts.With(engine.OptIncludeCodePatterns, include)
	return c
}

// Briefs sets whether documentation comment briefs will be attached to
// candidates.
func (c *Completer) Briefs(include bool) *Completer {
	c.opts = c.opts.With(engine.OptIncludeBriefComments, include)
	return c
}

// Complete runs the query synchronously and returns the result set. The
// translation unit is not mutated. An engine refusal (for example an invalid
// position) is the only failure surfaced here; a query that merely finds no
// candidates yields a valid, empty ResultSet. The caller owns the returned
// set and must Close it.
func (c *Completer) Complete() (*ResultSet, error) {
	buf, err := c.tu.Engine().CompleteAt(c.file, c.line, c.column, c.unsaved, c.opts)
	if err != nil {
		return nil, errors.Wrapf(err, "code completion at %s:%d:%d", c.file, c.line, c.column)
	}
	return newResultSet(buf), nil
}
