package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	completeDone    bool
	completeNotDone bool
)

var completeCmd = &cobra.Command{
	Use:   "complete [date]",
	Short: "Toggle a date's completion (or set it explicitly with --done/--not-done)",
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
		if completeDone && completeNotDone {
			return fmt.Errorf("--done and --not-done are mutually exclusive")
		}

		store := openScheduleStore()
		switch {
		case completeDone:
			store.SetDateCompleted(dateKey, true)
		case completeNotDone:
			store.SetDateCompleted(dateKey, false)
		default:
			store.ToggleDateCompleted(dateKey)
		}

		if store.IsCompleted(dateKey) {
			fmt.Printf("✅ %s marked as completed\n", dateKey)
		} else {
			fmt.Printf("✅ %s marked as not completed\n", dateKey)
		}
		return nil
	},
}

func init() {
	completeCmd.Flags().BoolVar(&completeDone, "done", false, "Mark the date completed")
	completeCmd.Flags().BoolVar(&completeNotDone, "not-done", false, "Mark the date not completed")
	rootCmd.AddCommand(completeCmd)
}
