// Command leitner keeps a Leitner box of flashcards in a local file and
// moves cards between its decks from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dra1n/leitner-box/store"
)

const defaultBoxPath = "leitner.yaml"

// app holds the state shared by every subcommand.
type app struct {
	boxPath string
	verbose bool
	logger  *zap.Logger
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. A nil logger is built from the
// --verbose flag before any subcommand runs.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   "leitner",
		Short: "Spaced repetition with a Leitner box",
		Long: `leitner keeps flashcards in a Leitner box stored in a YAML or JSON file.

New cards start in the "unknown" deck. Moving a card to "lessons" parks it
in the slot of the current lesson, from where it comes due on a growing
schedule of later lessons. Cards you know for good go to "learned".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.boxPath, "box", defaultBoxPath, "box file (.yaml, .yml or .json)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.initCmd(),
		a.addCmd(),
		a.moveCmd(),
		a.dueCmd(),
		a.infoCmd(),
		a.lessonCmd(),
		a.nextCmd(),
		a.showCmd(),
	)
	return root
}

func (a *app) openStore() (*store.File[Card], error) {
	return store.NewFile[Card](a.boxPath, a.logger)
}
