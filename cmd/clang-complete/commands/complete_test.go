package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wtdcode/clang-rs/completion"
	"github.com/wtdcode/clang-rs/config"
)

const sampleSnapshot = `{
	"default_options": 4,
	"results": [
		{"kind": 8, "template": 0},
		{"kind": 501, "template": 1}
	],
	"templates": [
		{"priority": 50, "chunks": [
			{"kind": 15, "text": "int"},
			{"kind": 1, "text": "area"},
			{"kind": 6},
			{"kind": 7}
		]},
		{"priority": 70, "chunks": [{"kind": 1, "text": "AREA_MAX"}]}
	]
}`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "query.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleSnapshot), 0o644))
	return path
}

// optionCmd builds a throwaway command carrying one bool flag, optionally
// already set on the command line.
func optionCmd(t *testing.T, flag, value string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "complete"}
	cmd.Flags().Bool(flag, false, "")
	if value != "" {
		require.NoError(t, cmd.Flags().Set(flag, value))
	}
	return cmd
}

func TestApplyOptionPrecedence(t *testing.T) {
	restore := Config
	t.Cleanup(func() { Config = restore })

	// records every forwarded override; nil return is fine, applyOption
	// ignores the chaining result
	var got []bool
	record := func(v bool) *completion.Completer {
		got = append(got, v)
		return nil
	}

	t.Run("flag beats config", func(t *testing.T) {
		got = nil
		Config = viper.New()
		Config.Set(config.KeyMacros, true)

		applyOption(optionCmd(t, "macros", "false"), record, "macros", config.KeyMacros)

		require.Len(t, got, 1)
		assert.False(t, got[0])
	})

	t.Run("config beats engine default", func(t *testing.T) {
		got = nil
		Config = viper.New()
		Config.Set(config.KeyMacros, true)

		applyOption(optionCmd(t, "macros", ""), record, "macros", config.KeyMacros)

		require.Len(t, got, 1)
		assert.True(t, got[0])
	})

	t.Run("neither set leaves engine default", func(t *testing.T) {
		got = nil
		Config = viper.New()

		applyOption(optionCmd(t, "macros", ""), record, "macros", config.KeyMacros)

		assert.Empty(t, got)
	})
}

func TestCompleteCommandRuns(t *testing.T) {
	pterm.DisableOutput()
	t.Cleanup(pterm.EnableOutput)

	snapshot := writeSnapshot(t)
	err := CompleteCmd.RunE(CompleteCmd, []string{snapshot, "main.cpp", "3", "7"})
	require.NoError(t, err)
}

func TestCompleteCommandRejectsBadPosition(t *testing.T) {
	snapshot := writeSnapshot(t)

	err := CompleteCmd.RunE(CompleteCmd, []string{snapshot, "main.cpp", "0", "7"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line must be a positive integer")

	err = CompleteCmd.RunE(CompleteCmd, []string{snapshot, "main.cpp", "3", "up"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column must be a positive integer")
}

func TestCompleteCommandMissingSnapshot(t *testing.T) {
	err := CompleteCmd.RunE(CompleteCmd, []string{
		filepath.Join(t.TempDir(), "absent.json"), "main.cpp", "1", "1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read completion snapshot")
}

func TestParseUnsaved(t *testing.T) {
	local := filepath.Join(t.TempDir(), "draft.cpp")
	require.NoError(t, os.WriteFile(local, []byte("int main() {}\n"), 0o644))

	files, err := parseUnsaved([]string{"main.cpp=" + local})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "main.cpp", files[0].Path)
	assert.Equal(t, "int main() {}\n", files[0].Contents)

	_, err = parseUnsaved([]string{"main.cpp"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid unsaved override")

	_, err = parseUnsaved([]string{"main.cpp=" + filepath.Join(t.TempDir(), "nope.cpp")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read unsaved override")
}
