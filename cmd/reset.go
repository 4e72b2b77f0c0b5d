package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anandk/termquest/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all learner progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes all progress and history. Re-run with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		if err := st.DeleteAllSnapshots(ctx); err != nil {
			return err
		}
		if err := st.EventRepo().DeleteAll(ctx); err != nil {
			return err
		}

		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip confirmation")
}
