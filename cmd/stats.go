package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anandk/termquest/internal/progress"
	"github.com/anandk/termquest/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		p := progress.Default()
		snap, err := st.SnapshotRepo().Latest(context.Background())
		if err == nil && snap != nil {
			p = snap.Data
		}
		lvl := progress.GetLevel(p.XP)

		fmt.Printf("Level:        %d (%s)\n", lvl.Level, lvl.Title)
		fmt.Printf("XP:           %d (%d/%d to next level)\n", p.XP, lvl.CurrentXP, lvl.RequiredXP)
		fmt.Printf("Streak:       %d day(s)\n", p.Streak)
		fmt.Printf("Lessons:      %d completed\n", len(p.CompletedLessons))
		fmt.Printf("Quizzes:      %d taken, %d correct answers\n", p.TotalQuizzesTaken, p.TotalCorrectAnswers)
		fmt.Printf("Items:        %d studied, %d mastered\n", p.TotalItemsStudied, p.MasteredCount())
		fmt.Printf("Achievements: %d unlocked\n", len(p.Achievements))
		return nil
	},
}
