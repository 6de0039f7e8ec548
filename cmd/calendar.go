package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ritmo/internal/schedule"
	"github.com/misterclayt0n/ritmo/internal/storage"
	"github.com/spf13/cobra"
)

// details is a flag to enable per-day assignment details.
var details bool

// calendarCmd prints the calendar grid. Days with an assigned workout are
// colored by workout, completed days get a '*', and a legend maps colors to
// workout names below the grid.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of scheduled workouts with completion marks",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Determine month and year (default to current month/year).
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		store := openScheduleStore()
		st := storage.NewStorage()

		// Resolve the month's assignments to workout names.
		workoutByDay := make(map[int]string)
		workoutSet := make(map[string]bool)
		for day := 1; day <= lastOfMonth.Day(); day++ {
			dateKey := schedule.DateKey(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
			workoutID, ok := store.AssignmentFor(dateKey)
			if !ok {
				continue
			}
			name := workoutID
			if w, err := st.GetWorkoutByID(workoutID); err == nil {
				name = w.Name
			}
			workoutByDay[day] = name
			workoutSet[name] = true
		}

		// Define a fixed palette of colors.
		colorPalette := []color.Attribute{
			color.FgRed, color.FgGreen, color.FgYellow,
			color.FgBlue, color.FgMagenta, color.FgCyan,
		}
		workoutNames := make([]string, 0, len(workoutSet))
		for name := range workoutSet {
			workoutNames = append(workoutNames, name)
		}
		sort.Strings(workoutNames)
		workoutColors := make(map[string]func(a ...interface{}) string)
		for i, name := range workoutNames {
			workoutColors[name] = color.New(colorPalette[i%len(colorPalette)]).SprintFunc()
		}

		// Print the calendar header.
		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		// Determine weekday of first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		// Print day numbers.
		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			dateKey := schedule.DateKey(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
			mark := ""
			if store.IsCompleted(dateKey) {
				mark = "*"
			}
			if name, hasWorkout := workoutByDay[day]; hasWorkout {
				dayStr = workoutColors[name](dayStr + mark)
			} else if mark != "" {
				dayStr = color.New(color.FgWhite).Sprint(dayStr + mark)
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n") // Extra newline after the calendar

		// Print a legend mapping colors to workout names.
		fmt.Println("Legend: ('*' marks a completed day)")
		for _, name := range workoutNames {
			fmt.Printf("  %s: %s\n", workoutColors[name]("██"), name)
		}

		// If the details flag is set, print per-day assignments.
		if details {
			fmt.Println("\nScheduled days:")
			var days []int
			for d := range workoutByDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
				dateKey := schedule.DateKey(dayDate)
				status := ""
				if store.IsCompleted(dateKey) {
					status = " ✓"
				}
				fmt.Printf("  %s: %s%s\n", dayDate.Format("Mon, 02 Jan 2006"), workoutByDay[day], status)
			}
		}

		return nil
	},
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print per-day assignment details")
}
