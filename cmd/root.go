package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anandk/termquest/internal/achievements"
	"github.com/anandk/termquest/internal/app"
	"github.com/anandk/termquest/internal/corpus"
	"github.com/anandk/termquest/internal/curriculum"
	"github.com/anandk/termquest/internal/session"
	"github.com/anandk/termquest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "termquest",
	Short: "Terminal study companion",
	Long:  "TermQuest turns an extracted knowledge corpus into lessons, quizzes, and mastery tracking, all in your terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TERMQUEST_DB env var)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TERMQUEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// runApp loads the corpus, builds the curriculum, and starts the TUI.
func runApp(cmd *cobra.Command) error {
	items, err := corpus.Load()
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	modules := curriculum.BuildModules(items)

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	tracker := session.NewTracker(st.SnapshotRepo(), st.EventRepo(), achievements.Catalog(len(items)))

	return app.Run(app.Options{
		Items:   items,
		Modules: modules,
		Tracker: tracker,
		Events:  st.EventRepo(),
	})
}
