package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ritmo/internal/storage"
	"github.com/misterclayt0n/ritmo/internal/utils"
	"github.com/spf13/cobra"
)

var flowStatusCmd = &cobra.Command{
	Use:   "flow-status",
	Short: "Show the active flow session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.FlowSessionExists() {
			fmt.Println("No active flow session")
			return nil
		}

		session, err := utils.LoadFlowSession()
		if err != nil {
			return fmt.Errorf("Failed to load flow session: %w", err)
		}

		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("%s %s (%s)\n", bold("Workout:"), session.WorkoutName, session.DateKey)
		fmt.Printf("%s %s\n", bold("Status:"), session.Status)
		fmt.Printf("%s %s\n", bold("Started:"), session.StartTime.Format("15:04"))
		printCurrentExercise(session, storage.NewStorage())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(flowStatusCmd)
}
