package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"focuslock/internal/schedule"

	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage recurring lock windows",
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schedules, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		items := eng.Schedules()
		if len(items) == 0 {
			fmt.Println("No schedules.")
			return nil
		}

		for _, s := range items {
			star := " "
			if s.Favorite {
				star = "★"
			}
			fmt.Printf("%s %s  %02d:%02d-%02d:%02d  %s  %s\n",
				star, s.ID[:8],
				s.StartMinute/60, s.StartMinute%60,
				s.EndMinute/60, s.EndMinute%60,
				weekdayList(s.Weekdays), appNameList(s.AppIDs))
		}
		return nil
	},
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a schedule over the selected apps",
	RunE: func(cmd *cobra.Command, args []string) error {
		startStr, _ := cmd.Flags().GetString("start")
		endStr, _ := cmd.Flags().GetString("end")
		daysStr, _ := cmd.Flags().GetString("days")

		start, err := parseClockFlag(startStr)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		end, err := parseClockFlag(endStr)
		if err != nil {
			return fmt.Errorf("--end: %w", err)
		}
		days, err := parseDaysFlag(daysStr)
		if err != nil {
			return fmt.Errorf("--days: %w", err)
		}

		eng, st, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		s, err := eng.UpsertSchedule(context.Background(), schedule.Schedule{
			AppIDs:      eng.SelectedApps(),
			StartMinute: start,
			EndMinute:   end,
			Weekdays:    days,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added schedule %s.\n", s.ID[:8])
		return nil
	},
}

var scheduleFavoriteCmd = &cobra.Command{
	Use:   "favorite <id-prefix>",
	Short: "Toggle the favorite flag on a schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		for _, s := range eng.Schedules() {
			if strings.HasPrefix(s.ID, args[0]) {
				if err := eng.ToggleScheduleFavorite(context.Background(), s.ID); err != nil {
					return err
				}
				fmt.Println("Toggled.")
				return nil
			}
		}
		return fmt.Errorf("no schedule matching %q", args[0])
	},
}

func parseClockFlag(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("want HH:MM, got %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("bad hour %q", parts[0])
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("bad minute %q", parts[1])
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%q is not a time of day", s)
	}
	return h*60 + m, nil
}

var dayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

func parseDaysFlag(s string) ([]time.Weekday, error) {
	fields := strings.Split(strings.ToLower(s), ",")
	seen := make(map[time.Weekday]bool)
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if len(f) > 3 {
			f = f[:3]
		}
		d, ok := dayNames[f]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", f)
		}
		seen[d] = true
	}

	var out []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if seen[d] {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no weekdays given")
	}
	return out, nil
}

func weekdayList(days []time.Weekday) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, d.String()[:3])
	}
	return strings.Join(parts, ",")
}

func init() {
	scheduleAddCmd.Flags().String("start", "", "Window start, HH:MM")
	scheduleAddCmd.Flags().String("end", "", "Window end, HH:MM")
	scheduleAddCmd.Flags().String("days", "", "Comma-separated weekdays, e.g. mon,tue,fri")
	_ = scheduleAddCmd.MarkFlagRequired("start")
	_ = scheduleAddCmd.MarkFlagRequired("end")
	_ = scheduleAddCmd.MarkFlagRequired("days")

	scheduleCmd.AddCommand(scheduleListCmd)
	scheduleCmd.AddCommand(scheduleAddCmd)
	scheduleCmd.AddCommand(scheduleFavoriteCmd)
}
