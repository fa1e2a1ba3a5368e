// Package diag decodes the raw diagnostics attached to a completion result
// set into structured values. The formatting subsystem proper lives with the
// engine; this package only carries what completion callers need to show.
package diag

import (
	"fmt"

	"github.com/wtdcode/clang-rs/engine"
)

// Severity of a diagnostic. The numeric values are the native codes.
type Severity uint32

const (
	Ignored Severity = 0
	Note    Severity = 1
	Warning Severity = 2
	Error   Severity = 3
	Fatal   Severity = 4
)

func (s Severity) String() string {
	switch s {
	case Ignored:
		return "ignored"
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	}
	return fmt.Sprintf("severity(%d)", uint32(s))
}

// Diagnostic is one decoded diagnostic, attached to the translation unit it
// was raised against.
type Diagnostic struct {
	Severity Severity
	Message  string
	File     string
	Line     uint32
	Column   uint32

	// Unit is the translation unit the diagnostic was raised against.
	Unit *engine.TranslationUnit
}

// FromRaw decodes one raw diagnostic record, attaching it to tu.
func FromRaw(raw engine.Diagnostic, tu *engine.TranslationUnit) Diagnostic {
	return Diagnostic{
		Severity: Severity(raw.Severity),
		Message:  raw.Message,
		File:     raw.File,
		Line:     raw.Line,
		Column:   raw.Column,
		Unit:     tu,
	}
}

// String renders the diagnostic in the conventional file:line:col form.
func (d Diagnostic) String() string {
	if d.File == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.File, d.Line, d.Column, d.Severity, d.Message)
}
