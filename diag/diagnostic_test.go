package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wtdcode/clang-rs/engine"
)

func TestFromRaw(t *testing.T) {
	raw := engine.Diagnostic{
		Severity: 2,
		Message:  "unused variable 'tmp'",
		File:     "widget.cpp",
		Line:     14,
		Column:   9,
	}
	d := FromRaw(raw, nil)

	assert.Equal(t, Warning, d.Severity)
	assert.Equal(t, "widget.cpp:14:9: warning: unused variable 'tmp'", d.String())
}

func TestStringWithoutLocation(t *testing.T) {
	d := Diagnostic{Severity: Fatal, Message: "'missing.h' file not found"}
	assert.Equal(t, "fatal: 'missing.h' file not found", d.String())
}

func TestSeverityNames(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{Ignored, "ignored"},
		{Note, "note"},
		{Warning, "warning"},
		{Error, "error"},
		{Fatal, "fatal"},
		{Severity(9), "severity(9)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.severity.String())
	}
}
