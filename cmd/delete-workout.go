package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ritmo/internal/storage"
	"github.com/spf13/cobra"
)

var deleteWorkoutCmd = &cobra.Command{
	Use:   "delete-workout [name]",
	Short: "Delete a saved workout and its schedule assignments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		workoutID, err := st.DeleteWorkoutByName(args[0])
		if err != nil {
			return fmt.Errorf("Failed to delete workout: %w", err)
		}

		// Purge every schedule entry and log branch that references the
		// deleted workout. Completion flags stay, they belong to the day.
		store := openScheduleStore()
		store.RemoveAssignmentsForWorkoutID(workoutID)

		fmt.Printf("✅ Workout '%s' deleted successfully\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteWorkoutCmd)
}
