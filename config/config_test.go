package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := New()

	assert.False(t, v.GetBool("log.json"))
	assert.Empty(t, v.GetString("replay.snapshot"))

	// completer option overrides deliberately have no defaults: unset
	// means "use the engine's built-in default"
	assert.False(t, v.IsSet(KeyMacros))
	assert.False(t, v.IsSet(KeyCodePatterns))
	assert.False(t, v.IsSet(KeyBriefs))
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CLANG_COMPLETE_LOG_JSON", "true")
	t.Setenv("CLANG_COMPLETE_COMPLETION_MACROS", "true")

	v := New()
	assert.True(t, v.GetBool("log.json"))
	assert.True(t, v.GetBool(KeyMacros))
}

func TestLoadMissingFileIsFine(t *testing.T) {
	t.Chdir(t.TempDir())
	v := New()
	require.NoError(t, Load(v))
}
