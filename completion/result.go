package completion

import (
	"slices"

	"github.com/wtdcode/clang-rs/ast"
)

// Result is one completion candidate: the kind of AST entity the completion
// produces, paired with its completion string. Results borrow from the
// ResultSet they came from.
type Result struct {
	// Kind categorizes the AST entity this completion produces. It is
	// informational only and takes no part in ordering.
	Kind ast.EntityKind
	// String is the completion string for this candidate.
	String String
}

// Compare delegates entirely to the completion string's ordering.
func (r Result) Compare(other Result) int {
	return r.String.Compare(other.String)
}

// Equal reports whether both candidates produce the same kind of entity and
// have structurally equal completion strings. Unlike Compare, Kind
// participates here.
func (r Result) Equal(other Result) bool {
	return r.Kind == other.Kind && r.String.Equal(other.String)
}

// Sort stably sorts candidates into presentation order: priority ascending,
// ties broken by typed text.
func Sort(results []Result) {
	slices.SortStableFunc(results, Result.Compare)
}
