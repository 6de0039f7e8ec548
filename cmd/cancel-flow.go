package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ritmo/internal/utils"
	"github.com/spf13/cobra"
)

var cancelFlowCmd = &cobra.Command{
	Use:   "cancel-flow",
	Short: "Discard the active flow session without marking completion",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.FlowSessionExists() {
			return fmt.Errorf("No active flow session")
		}

		if err := utils.ClearFlowSession(); err != nil {
			return fmt.Errorf("Failed to clear flow session: %w", err)
		}

		fmt.Println("✅ Flow session cancelled")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelFlowCmd)
}
