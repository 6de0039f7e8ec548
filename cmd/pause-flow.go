package cmd

import (
	"fmt"
	"time"

	"github.com/misterclayt0n/ritmo/internal/utils"
	"github.com/spf13/cobra"
)

var pauseFlowCmd = &cobra.Command{
	Use:   "pause-flow",
	Short: "Pause the active flow session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.FlowSessionExists() {
			return fmt.Errorf("No active flow session")
		}

		session, err := utils.LoadFlowSession()
		if err != nil {
			return fmt.Errorf("Failed to load flow session: %w", err)
		}

		if err := session.Pause(time.Now().UTC()); err != nil {
			return err
		}

		if err := utils.SaveFlowSession(session); err != nil {
			return fmt.Errorf("Failed to save flow session: %w", err)
		}

		fmt.Println("✅ Flow paused")
		return nil
	},
}

var resumeFlowCmd = &cobra.Command{
	Use:   "resume-flow",
	Short: "Resume a paused flow session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.FlowSessionExists() {
			return fmt.Errorf("No active flow session")
		}

		session, err := utils.LoadFlowSession()
		if err != nil {
			return fmt.Errorf("Failed to load flow session: %w", err)
		}

		if err := session.Resume(); err != nil {
			return err
		}

		if err := utils.SaveFlowSession(session); err != nil {
			return fmt.Errorf("Failed to save flow session: %w", err)
		}

		fmt.Println("✅ Flow resumed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pauseFlowCmd)
	rootCmd.AddCommand(resumeFlowCmd)
}
