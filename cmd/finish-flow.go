package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ritmo/internal/utils"
	"github.com/spf13/cobra"
)

var finishFlowCmd = &cobra.Command{
	Use:   "finish-flow",
	Short: "Finish the flow session and mark today completed",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.FlowSessionExists() {
			return fmt.Errorf("No active flow session")
		}

		session, err := utils.LoadFlowSession()
		if err != nil {
			return fmt.Errorf("Failed to load flow session: %w", err)
		}

		if err := session.Complete(); err != nil {
			return err
		}

		// One completion mark per finished guided session.
		store := openScheduleStore()
		store.SetDateCompleted(session.DateKey, true)

		if err := utils.ClearFlowSession(); err != nil {
			return fmt.Errorf("Failed to clear flow session: %w", err)
		}

		fmt.Printf("✅ Flow finished, %s marked as completed\n", session.DateKey)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(finishFlowCmd)
}
