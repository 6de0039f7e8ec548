package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ritmo/internal/storage"
	"github.com/misterclayt0n/ritmo/internal/utils"
	"github.com/spf13/cobra"
)

var editWorkoutCmd = &cobra.Command{
	Use:   "edit-workout [file]",
	Short: "Replace a saved workout's contents from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workout, err := utils.ParseWorkoutFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("Failed to parse TOML: %w", err)
		}
		if workout.Name == "" {
			return fmt.Errorf("Workout name not specified in TOML file")
		}

		st := storage.NewStorage()
		oldID, newID, err := st.UpdateWorkout(workout.Name, workout.Description, workout.Exercises)
		if err != nil {
			return fmt.Errorf("Failed to edit workout: %w", err)
		}

		// Editing regenerates the workout's identity; scheduled dates and
		// logged history must follow it at the moment of the edit.
		store := openScheduleStore()
		store.RemapWorkoutID(oldID, newID)

		fmt.Printf("✅ Workout '%s' updated successfully\n", workout.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editWorkoutCmd)
}
