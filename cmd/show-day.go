package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ritmo/internal/storage"
	"github.com/spf13/cobra"
)

var showDayCmd = &cobra.Command{
	Use:   "show-day [date]",
	Short: "Show a date's assignment, completion and logged sets",
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
		st := storage.NewStorage()

		header := color.New(color.FgCyan, color.Bold).Sprintf("%s", dateKey)
		fmt.Println(header)

		if workoutID, ok := store.AssignmentFor(dateKey); ok {
			name := workoutID
			if w, err := st.GetWorkoutByID(workoutID); err == nil {
				name = w.Name
			}
			fmt.Printf("Workout: %s\n", name)
		} else {
			fmt.Println("Workout: none assigned")
		}

		if store.IsCompleted(dateKey) {
			fmt.Println(color.GreenString("Completed ✓"))
		} else {
			fmt.Println("Not completed")
		}

		logs := store.LogsForDate(dateKey)
		if len(logs) == 0 {
			return nil
		}

		fmt.Println("\nLogged sets:")
		var workoutIDs []string
		for id := range logs {
			workoutIDs = append(workoutIDs, id)
		}
		sort.Strings(workoutIDs)
		for _, workoutID := range workoutIDs {
			var exerciseIDs []string
			for id := range logs[workoutID] {
				exerciseIDs = append(exerciseIDs, id)
			}
			sort.Strings(exerciseIDs)
			for _, exerciseID := range exerciseIDs {
				entry := logs[workoutID][exerciseID]
				name := exerciseID
				if ex, err := st.GetExerciseByID(exerciseID); err == nil {
					name = ex.Name
				}
				fmt.Printf("  %s (%d sets planned)\n", color.New(color.FgMagenta, color.Bold).Sprint(name), entry.SetCount)
				for i, set := range entry.Sets {
					fmt.Printf("    %d. %d reps @ %.0f kg\n", i+1, set.Reps, set.Weight)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showDayCmd)
}
