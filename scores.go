package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/milk9111/jungle/storage"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	bestStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the stored high score",
	Long: `Display the high score kept by the selected store. The sqlite
store also lists the most recent saved runs.

Examples:
  jungle scores
  jungle scores --store sqlite`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Jungle Adventure - High Score"))
	fmt.Fprintln(out)

	best, err := store.LoadHighScore()
	switch {
	case errors.Is(err, storage.ErrNoScore):
		fmt.Fprintln(out, dimStyle.Render("No scores recorded yet."))
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintf(out, "Best: %s\n", bestStyle.Render(fmt.Sprint(best)))

	db, ok := store.(*storage.SQLiteStore)
	if !ok {
		return nil
	}
	runs, err := db.RecentRuns(10)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("  %-10s  %-16s  %s", "Score", "Date", "Run")))
	for _, r := range runs {
		fmt.Fprintf(out, "  %-10d  %-16s  %s\n", r.Score, r.CreatedAt.Format("2006-01-02 15:04"), r.RunID)
	}
	return nil
}
