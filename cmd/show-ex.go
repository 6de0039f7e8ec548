package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ritmo/internal/storage"
	"github.com/spf13/cobra"
)

var showExerciseCmd = &cobra.Command{
	Use:   "show-exercise [name]",
	Short: "Show an exercise from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		ex, err := st.GetExerciseByName(args[0])
		if err != nil {
			return fmt.Errorf("Failed to get exercise: %w", err)
		}

		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("%s %s\n", bold("Exercise:"), ex.Name)
		fmt.Printf("%s %s\n", bold("Primary muscle:"), ex.PrimaryMuscle)
		if ex.Description != "" {
			fmt.Printf("%s %s\n", bold("Description:"), ex.Description)
		}
		fmt.Printf("%s %s\n", bold("Added:"), ex.CreatedAt.Format("02 Jan 2006"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showExerciseCmd)
}
