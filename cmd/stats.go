package cmd

import (
	"context"
	"fmt"
	"strings"

	"focuslock/internal/appcat"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show usage and challenge statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		fmt.Println("Hours on blocked apps")
		for _, p := range eng.UsageWeek() {
			bar := strings.Repeat("█", int(p.Hours*4))
			fmt.Printf("  %-4s %5.1f  %s\n", p.Label, p.Hours, bar)
		}

		fmt.Println()
		fmt.Println("Top apps (min/day)")
		for _, a := range eng.TopApps() {
			name := a.AppID
			if app, err := appcat.Get(a.AppID); err == nil {
				name = app.Name
			}
			fmt.Printf("  %-12s %4d\n", name, a.MinutesPerDay)
		}

		total, succeeded, err := st.EventRepo().ChallengeStats(context.Background())
		if err != nil {
			return fmt.Errorf("challenge stats: %w", err)
		}
		fmt.Println()
		if total == 0 {
			fmt.Println("No challenges attempted yet.")
		} else {
			fmt.Printf("Challenges: %d passed of %d (%.0f%%)\n",
				succeeded, total, float64(succeeded)/float64(total)*100)
		}
		d := eng.Difficulty()
		fmt.Printf("Difficulty: level %d (streak %d)\n", d.Level, d.Streak)
		return nil
	},
}
