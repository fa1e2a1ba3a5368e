package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wtdcode/clang-rs/completion"
	"github.com/wtdcode/clang-rs/config"
	"github.com/wtdcode/clang-rs/diag"
	"github.com/wtdcode/clang-rs/engine"
	"github.com/wtdcode/clang-rs/engine/replay"
	"github.com/wtdcode/clang-rs/errors"
	"github.com/wtdcode/clang-rs/logger"
)

// Config is the loaded tool configuration, set by the root command before
// any subcommand runs.
var Config *viper.Viper

// CompleteCmd runs a completion query from a recorded snapshot and displays
// the ranked candidates.
var CompleteCmd = &cobra.Command{
	Use:   "complete <snapshot> <file> <line> <column>",
	Short: "Rank the candidates of a recorded completion query",
	Long: `Replay a recorded completion snapshot at the given 1-based position and
display the decoded, ranked candidate list along with the completion context
and any diagnostics.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		line, err := parsePositive(args[2], "line")
		if err != nil {
			return err
		}
		column, err := parsePositive(args[3], "column")
		if err != nil {
			return err
		}
		return runComplete(cmd, args[0], args[1], line, column)
	},
}

var unsavedSpecs []string

func init() {
	CompleteCmd.Flags().Bool("macros", false, "Include macro names as candidates")
	CompleteCmd.Flags().Bool("code-patterns", false, "Include statement/snippet templates")
	CompleteCmd.Flags().Bool("briefs", false, "Attach documentation briefs")
	CompleteCmd.Flags().StringArrayVar(&unsavedSpecs, "unsaved", nil,
		"Unsaved override as <path>=<local file>, repeatable")
}

func runComplete(cmd *cobra.Command, snapshot, file string, line, column uint32) error {
	log := logger.Named("complete")

	eng, err := replay.Load(snapshot)
	if err != nil {
		return err
	}
	tu, err := engine.NewTranslationUnit(eng, file)
	if err != nil {
		return err
	}

	unsaved, err := parseUnsaved(unsavedSpecs)
	if err != nil {
		return err
	}

	completer := completion.NewCompleter(tu, file, line, column).Unsaved(unsaved...)
	applyOption(cmd, completer.Macros, "macros", config.KeyMacros)
	applyOption(cmd, completer.CodePatterns, "code-patterns", config.KeyCodePatterns)
	applyOption(cmd, completer.Briefs, "briefs", config.KeyBriefs)

	results, err := completer.Complete()
	if err != nil {
		return err
	}
	defer results.Close()

	printDiagnostics(results.Diagnostics(tu))

	candidates := results.Results()
	if len(candidates) == 0 {
		pterm.Info.Println("No suggestions")
		return nil
	}
	completion.Sort(candidates)

	log.Infow("completion query replayed",
		"snapshot", snapshot,
		"position", fmt.Sprintf("%s:%d:%d", file, line, column),
		"candidates", len(candidates),
	)

	if container, ok := results.Container(); ok {
		suffix := ""
		if container.Incomplete {
			suffix = " (incomplete)"
		}
		pterm.Info.Printf("Container: %s%s\n", container.Kind, suffix)
	}
	if selector, ok := results.Selector(); ok {
		pterm.Info.Printf("Partial selector: %s\n", selector)
	}
	if ctx := results.Context(); ctx != nil {
		log.Debugw("completion context decoded", "context", fmt.Sprintf("%+v", *ctx))
	}

	rows := pterm.TableData{{"Priority", "Kind", "Completion", "Availability"}}
	for _, candidate := range candidates {
		text, err := renderTemplate(candidate.String)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			strconv.Itoa(candidate.String.Priority()),
			candidate.Kind.String(),
			text,
			candidate.String.Availability().String(),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// renderTemplate flattens a completion template for display, bracketing
// optional sub-templates.
func renderTemplate(s completion.String) (string, error) {
	chunks, err := s.Chunks()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, chunk := range chunks {
		if nested, ok := chunk.Nested(); ok {
			inner, err := renderTemplate(nested)
			if err != nil {
				return "", err
			}
			b.WriteString("[" + inner + "]")
			continue
		}
		text, _ := chunk.Text()
		b.WriteString(text)
	}
	return b.String(), nil
}

// applyOption forwards a completer option override from the CLI flag or the
// config file. Neither being set leaves the engine default in force.
func applyOption(cmd *cobra.Command, set func(bool) *completion.Completer, flag, key string) {
	if cmd.Flags().Changed(flag) {
		value, _ := cmd.Flags().GetBool(flag)
		set(value)
		return
	}
	if Config != nil && Config.IsSet(key) {
		set(Config.GetBool(key))
	}
}

func parsePositive(arg, name string) (uint32, error) {
	value, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.Newf("%s must be a positive integer, got %q", name, arg)
	}
	return uint32(value), nil
}

func parseUnsaved(specs []string) ([]engine.UnsavedFile, error) {
	files := make([]engine.UnsavedFile, 0, len(specs))
	for _, spec := range specs {
		path, local, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, errors.Newf("invalid unsaved override %q, expected <path>=<local file>", spec)
		}
		contents, err := os.ReadFile(local)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read unsaved override %s", local)
		}
		files = append(files, engine.UnsavedFile{Path: path, Contents: string(contents)})
	}
	return files, nil
}

func printDiagnostics(diagnostics []diag.Diagnostic) {
	for _, d := range diagnostics {
		switch {
		case d.Severity >= diag.Error:
			pterm.Error.Println(d.String())
		case d.Severity == diag.Warning:
			pterm.Warning.Println(d.String())
		default:
			pterm.Info.Println(d.String())
		}
	}
}
