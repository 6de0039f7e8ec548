package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ritmo/internal/storage"
	"github.com/misterclayt0n/ritmo/internal/utils"
	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Advance the flow session to the next exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.FlowSessionExists() {
			return fmt.Errorf("No active flow session")
		}

		session, err := utils.LoadFlowSession()
		if err != nil {
			return fmt.Errorf("Failed to load flow session: %w", err)
		}

		done, err := session.Advance()
		if err != nil {
			return err
		}

		if done {
			// Stepping past the last exercise completes the session: mark the
			// day and drop the state file, exactly like finish-flow.
			store := openScheduleStore()
			store.SetDateCompleted(session.DateKey, true)

			if err := utils.ClearFlowSession(); err != nil {
				return fmt.Errorf("Failed to clear flow session: %w", err)
			}
			fmt.Printf("✅ Flow completed, %s marked as completed\n", session.DateKey)
			return nil
		}

		if err := utils.SaveFlowSession(session); err != nil {
			return fmt.Errorf("Failed to save flow session: %w", err)
		}

		printCurrentExercise(session, storage.NewStorage())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
}
