package cmd

import (
	"fmt"
	"strings"

	"focuslock/internal/appcat"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current lock and selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if l := eng.ActiveLock(); l != nil {
			fmt.Printf("LOCKED (%s), %s remaining\n", l.Kind, formatRemaining(eng.Remaining()))
			fmt.Printf("Blocked: %s\n", appNameList(l.AppIDs))
		} else {
			fmt.Println("Unlocked.")
		}

		selected := eng.SelectedApps()
		if len(selected) == 0 {
			fmt.Println("Selection: none")
		} else {
			fmt.Printf("Selection: %s\n", appNameList(selected))
		}

		d := eng.Difficulty()
		fmt.Printf("Challenge difficulty: level %d (streak %d)\n", d.Level, d.Streak)

		if n := len(eng.Schedules()); n > 0 {
			fmt.Printf("Schedules: %d\n", n)
		}
		return nil
	},
}

func appNameList(ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if a, err := appcat.Get(id); err == nil {
			names = append(names, a.Name)
		} else {
			names = append(names, id)
		}
	}
	return strings.Join(names, ", ")
}
