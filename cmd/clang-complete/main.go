package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wtdcode/clang-rs/cmd/clang-complete/commands"
	"github.com/wtdcode/clang-rs/config"
	"github.com/wtdcode/clang-rs/logger"
)

var (
	jsonLogs  bool
	verbosity int
)

var rootCmd = &cobra.Command{
	Use:   "clang-complete",
	Short: "Inspect code-completion result sets",
	Long: `clang-complete decodes, ranks, and displays the result set of a
code-completion query from a recorded snapshot.

Examples:
  clang-complete complete query.json main.cpp 12 8   # Rank candidates at main.cpp:12:8
  clang-complete complete query.json main.cpp 12 8 --briefs
  clang-complete version`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := config.New()
		if err := config.Load(v); err != nil {
			return err
		}
		if !jsonLogs {
			jsonLogs = v.GetBool("log.json")
		}
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		commands.Config = v
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity")

	rootCmd.AddCommand(commands.CompleteCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
