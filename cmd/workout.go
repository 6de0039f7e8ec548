package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ritmo/internal/storage"
	"github.com/misterclayt0n/ritmo/internal/utils"
	"github.com/spf13/cobra"
)

var createWorkoutCmd = &cobra.Command{
	Use:   "create-workout [file]",
	Short: "Create a new workout from a TOML file",
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
		if err := st.CreateWorkout(workout.Name, workout.Description, workout.Exercises); err != nil {
			return fmt.Errorf("Failed to create workout: %w", err)
		}

		fmt.Printf("✅ Workout '%s' created successfully\n", workout.Name)
		return nil
	},
}

var listWorkoutsCmd = &cobra.Command{
	Use:   "list-workouts",
	Short: "List all saved workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		workouts, err := st.ListWorkouts()
		if err != nil {
			return err
		}

		for _, w := range workouts {
			fmt.Printf("%s - %s\n", w.ID, w.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createWorkoutCmd)
	rootCmd.AddCommand(listWorkoutsCmd)
}
