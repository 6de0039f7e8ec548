package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ritmo/internal/storage"
	"github.com/spf13/cobra"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Sweep the schedule for references to deleted workouts or malformed dates",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		validIDs, err := st.WorkoutIDs()
		if err != nil {
			return fmt.Errorf("Failed to list workouts: %w", err)
		}

		store := openScheduleStore()
		store.CleanupInvalidAssignments(validIDs)

		fmt.Println("✅ Schedule cleaned up")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}
