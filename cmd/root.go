package cmd

import (
	"fmt"
	"os"

	"github.com/misterclayt0n/ritmo/internal/models"
	"github.com/misterclayt0n/ritmo/internal/schedule"
	"github.com/misterclayt0n/ritmo/internal/utils"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ritmo",
	Short: "CLI fitness tracker: schedule workouts, log sets, run guided flow sessions",
}

func Execute() error {
	return rootCmd.Execute()
}

// openScheduleStore loads the persisted snapshot, runs it through the repair
// pass and wires a save hook that writes every mutation back. Snapshot
// problems never fail a command: unreadable state starts fresh, failed writes
// only warn (best-effort durability).
func openScheduleStore() *schedule.Store {
	raw, err := utils.LoadRawSchedule()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read schedule state, starting fresh: %v\n", err)
	}

	snap := schedule.RepairSnapshot(raw)
	return schedule.FromSnapshot(snap, func(s models.ScheduleSnapshot) {
		if err := utils.SaveScheduleSnapshot(s); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to persist schedule state: %v\n", err)
		}
	})
}

// resolveDateKey turns a date argument into a canonical date key. Accepts
// "today" (and empty, meaning today) as a convenience.
func resolveDateKey(arg string) (string, error) {
	if arg == "" || arg == "today" {
		return schedule.TodayKey(), nil
	}
	if !schedule.IsValidDateKey(arg) {
		return "", fmt.Errorf("Invalid date %q, expected YYYY-MM-DD", arg)
	}
	return arg, nil
}
