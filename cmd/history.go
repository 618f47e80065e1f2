package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/cryptowords/internal/infrastructure/sqlite"
	"github.com/zjrosen/cryptowords/internal/log"
	"github.com/zjrosen/cryptowords/internal/output"
	"github.com/zjrosen/cryptowords/internal/runs/domain"
)

var (
	historyLimit  int
	historyFormat string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect saved extraction runs",
	Long: `List, show, compare and delete runs saved with "extract --save".
Run ids may be shortened to any unique prefix.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved runs, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withRuns(func(repo domain.RunRepository) error {
			runs, err := repo.List(historyLimit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No saved runs.")
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output.RunTable(runs))
			return err
		})
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveFormat(historyFormat)
		if err != nil {
			return err
		}
		return withRuns(func(repo domain.RunRepository) error {
			run, err := findRun(repo, args[0])
			if err != nil {
				return err
			}
			return output.RenderRun(cmd.OutOrStdout(), format, run)
		})
	},
}

var historyDiffCmd = &cobra.Command{
	Use:   "diff <old-id> <new-id>",
	Short: "Compare the candidate words of two saved runs",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuns(func(repo domain.RunRepository) error {
			oldRun, err := findRun(repo, args[0])
			if err != nil {
				return err
			}
			newRun, err := findRun(repo, args[1])
			if err != nil {
				return err
			}
			return output.RenderDiff(cmd.OutOrStdout(), output.DiffWords(oldRun.Words(), newRun.Words()))
		})
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuns(func(repo domain.RunRepository) error {
			run, err := findRun(repo, args[0])
			if err != nil {
				return err
			}
			if err := repo.Delete(run.GUID()); err != nil {
				return fmt.Errorf("deleting run %s: %w", run.ShortGUID(), err)
			}
			log.Info(log.CatDB, "Deleted run", "guid", run.GUID())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", run.ShortGUID())
			return err
		})
	},
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum runs to list (0 for all)")
	historyShowCmd.Flags().StringVarP(&historyFormat, "format", "f", "", "output format: text, json or yaml (default from config)")

	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDiffCmd, historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

// withRuns opens the runs database for the duration of fn.
func withRuns(fn func(domain.RunRepository) error) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer func(db *sqlite.DB) { _ = db.Close() }(db)
	return fn(db.RunRepository())
}

// findRun resolves a full GUID or a unique prefix.
func findRun(repo domain.RunRepository, id string) (*domain.Run, error) {
	run, err := repo.FindByPrefix(id)
	switch {
	case err == nil:
		return run, nil
	case domain.IsNotFound(err):
		return nil, fmt.Errorf("no saved run matches %q", id)
	case errors.Is(err, domain.ErrAmbiguousPrefix):
		return nil, fmt.Errorf("%q matches more than one run; use a longer id", id)
	default:
		return nil, err
	}
}
