package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ritmo/internal/storage"
	"github.com/misterclayt0n/ritmo/internal/utils"
	"github.com/spf13/cobra"
)

var importExercisesCmd = &cobra.Command{
	Use:   "import-exercises [file]",
	Short: "Import exercise definitions from a TOML catalog file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imp, err := utils.ParseExercisesFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("Failed to parse TOML: %w", err)
		}

		st := storage.NewStorage()
		created, updated, err := st.ImportExercises(imp)
		if err != nil {
			return fmt.Errorf("Failed to import exercises: %w", err)
		}

		fmt.Printf("✅ Imported %d exercises (%d updated)\n", created+updated, updated)
		return nil
	},
}

var listExercisesCmd = &cobra.Command{
	Use:   "list-exercises",
	Short: "List all exercises in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		exercises, err := st.ListExercises()
		if err != nil {
			return err
		}

		for _, ex := range exercises {
			fmt.Printf("%s - %s (%s)\n", ex.ID, ex.Name, ex.PrimaryMuscle)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importExercisesCmd)
	rootCmd.AddCommand(listExercisesCmd)
}
