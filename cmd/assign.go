package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ritmo/internal/storage"
	"github.com/spf13/cobra"
)

var assignWorkoutName string

var assignCmd = &cobra.Command{
	Use:   "assign [date]",
	Short: "Assign a saved workout to a calendar date (YYYY-MM-DD or 'today')",
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

		st := storage.NewStorage()
		w, err := st.GetWorkoutByName(assignWorkoutName)
		if err != nil {
			return fmt.Errorf("Failed to get workout: %w", err)
		}

		store := openScheduleStore()
		store.AssignWorkoutToDate(dateKey, w.ID)

		fmt.Printf("✅ Assigned '%s' to %s\n", w.Name, dateKey)
		return nil
	},
}

var unassignCmd = &cobra.Command{
	Use:   "unassign [date]",
	Short: "Clear a date's assignment, completion and logs",
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
		store.ClearDateAssignment(dateKey)

		fmt.Printf("✅ Cleared %s\n", dateKey)
		return nil
	},
}

func init() {
	assignCmd.Flags().StringVarP(&assignWorkoutName, "workout", "w", "", "Workout name")
	assignCmd.MarkFlagRequired("workout")
	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(unassignCmd)
}
