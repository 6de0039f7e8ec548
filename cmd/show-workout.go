package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ritmo/internal/storage"
	"github.com/spf13/cobra"
)

var showWorkoutCmd = &cobra.Command{
	Use:   "show-workout [name]",
	Short: "Show a saved workout and its exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		w, err := st.GetWorkoutByName(args[0])
		if err != nil {
			return fmt.Errorf("Failed to get workout: %w", err)
		}

		header := color.New(color.FgCyan, color.Bold).Sprintf("%s", w.Name)
		fmt.Println(header)
		if w.Description != "" {
			fmt.Println(w.Description)
		}
		for i, ex := range w.Exercises {
			fmt.Printf("  %d. %s (%s)\n", i+1, ex.Name, ex.PrimaryMuscle)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showWorkoutCmd)
}
