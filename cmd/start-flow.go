package cmd

import (
	"fmt"
	"time"

	"github.com/misterclayt0n/ritmo/internal/flow"
	"github.com/misterclayt0n/ritmo/internal/models"
	"github.com/misterclayt0n/ritmo/internal/schedule"
	"github.com/misterclayt0n/ritmo/internal/storage"
	"github.com/misterclayt0n/ritmo/internal/utils"
	"github.com/spf13/cobra"
)

var flowWorkoutName string

var startFlowCmd = &cobra.Command{
	Use:   "start-flow",
	Short: "Start a guided session through today's workout (or one given with -w)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if utils.FlowSessionExists() {
			return fmt.Errorf("A flow session is already active")
		}

		dateKey := schedule.TodayKey()
		st := storage.NewStorage()

		var workout *models.Workout
		if flowWorkoutName != "" {
			w, err := st.GetWorkoutByName(flowWorkoutName)
			if err != nil {
				return fmt.Errorf("Failed to get workout: %w", err)
			}
			workout = w
		} else {
			store := openScheduleStore()
			workoutID, ok := store.AssignmentFor(dateKey)
			if !ok {
				return fmt.Errorf("No workout assigned to today, pass one with --workout")
			}
			w, err := st.GetWorkoutByID(workoutID)
			if err != nil {
				return fmt.Errorf("Failed to get workout: %w", err)
			}
			workout = w
		}

		exerciseIDs := make([]string, 0, len(workout.Exercises))
		for _, ex := range workout.Exercises {
			exerciseIDs = append(exerciseIDs, ex.ID)
		}

		session, err := flow.Start(workout.ID, workout.Name, dateKey, exerciseIDs, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("Failed to start flow: %w", err)
		}

		if err := utils.SaveFlowSession(session); err != nil {
			return fmt.Errorf("Failed to save flow session: %w", err)
		}

		fmt.Printf("✅ Started flow through '%s' (%d exercises)\n", workout.Name, len(exerciseIDs))
		printCurrentExercise(session, st)
		return nil
	},
}

func printCurrentExercise(session *flow.Session, st *storage.Storage) {
	id := session.CurrentExercise()
	if id == "" {
		return
	}
	name := id
	if ex, err := st.GetExerciseByID(id); err == nil {
		name = ex.Name
	}
	fmt.Printf("▶ Exercise %d/%d: %s\n", session.Current+1, len(session.Exercises), name)
}

func init() {
	startFlowCmd.Flags().StringVarP(&flowWorkoutName, "workout", "w", "", "Workout name (default: today's assignment)")
	rootCmd.AddCommand(startFlowCmd)
}
