package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/misterclayt0n/ritmo/internal/models"
	"github.com/misterclayt0n/ritmo/internal/storage"
	"github.com/spf13/cobra"
)

var (
	logDate     string
	logWorkout  string
	logSets     string
	logSetCount int
)

var logCmd = &cobra.Command{
	Use:   "log [exercise-name]",
	Short: "Log sets for an exercise on a date (defaults to today's assigned workout)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dateKey, err := resolveDateKey(logDate)
		if err != nil {
			return err
		}

		sets, err := parseSets(logSets)
		if err != nil {
			return err
		}

		st := storage.NewStorage()
		ex, err := st.GetExerciseByName(args[0])
		if err != nil {
			return fmt.Errorf("Failed to get exercise: %w", err)
		}

		store := openScheduleStore()

		// The workout defaults to whatever is assigned to the date.
		workoutID := ""
		if logWorkout != "" {
			w, err := st.GetWorkoutByName(logWorkout)
			if err != nil {
				return fmt.Errorf("Failed to get workout: %w", err)
			}
			workoutID = w.ID
		} else {
			id, ok := store.AssignmentFor(dateKey)
			if !ok {
				return fmt.Errorf("No workout assigned to %s, pass one with --workout", dateKey)
			}
			workoutID = id
		}

		setCount := logSetCount
		if setCount == 0 {
			setCount = len(sets)
		}

		store.SetExerciseLog(dateKey, workoutID, ex.ID, models.LogEntry{
			SetCount:  setCount,
			Sets:      sets,
			UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		})

		fmt.Printf("✅ Logged %d sets of '%s' on %s\n", len(sets), ex.Name, dateKey)
		return nil
	},
}

var clearLogsWorkout string

var clearLogsCmd = &cobra.Command{
	Use:   "clear-logs [date]",
	Short: "Clear logged sets for a date (one workout with -w, or the date's assignment)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dateArg := ""
		if len(args) == 1 {
			dateArg = args[0]
		}
		dateKey, err := resolveDateKey(dateArg)
		if err != nil {
			return err
		}

		store := openScheduleStore()

		workoutID := ""
		if clearLogsWorkout != "" {
			st := storage.NewStorage()
			w, err := st.GetWorkoutByName(clearLogsWorkout)
			if err != nil {
				return fmt.Errorf("Failed to get workout: %w", err)
			}
			workoutID = w.ID
		} else {
			id, ok := store.AssignmentFor(dateKey)
			if !ok {
				return fmt.Errorf("No workout assigned to %s, pass one with --workout", dateKey)
			}
			workoutID = id
		}

		store.ClearLogsForDateWorkout(dateKey, workoutID)

		fmt.Printf("✅ Cleared logs for %s\n", dateKey)
		return nil
	},
}

// parseSets parses "RxW,RxW,..." (reps x weight) into set records. Values are
// normalized by the store on write.
func parseSets(s string) ([]models.SetRecord, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("No sets given, expected --sets \"RxW,RxW,...\"")
	}

	var sets []models.SetRecord
	for _, part := range strings.Split(s, ",") {
		fields := strings.SplitN(strings.TrimSpace(part), "x", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("Invalid set %q, expected REPSxWEIGHT", part)
		}
		reps, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("Invalid reps in set %q", part)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("Invalid weight in set %q", part)
		}
		sets = append(sets, models.SetRecord{Reps: reps, Weight: weight})
	}
	return sets, nil
}

func init() {
	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "Date (YYYY-MM-DD, default today)")
	logCmd.Flags().StringVarP(&logWorkout, "workout", "w", "", "Workout name (default: the date's assignment)")
	logCmd.Flags().StringVarP(&logSets, "sets", "s", "", "Sets as \"RxW,RxW,...\" (reps x weight)")
	logCmd.Flags().IntVarP(&logSetCount, "set-count", "c", 0, "Planned set count (default: number of sets given)")
	logCmd.MarkFlagRequired("sets")

	clearLogsCmd.Flags().StringVarP(&clearLogsWorkout, "workout", "w", "", "Workout name (default: the date's assignment)")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(clearLogsCmd)
}
