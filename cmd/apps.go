package cmd

import (
	"context"
	"fmt"

	"focuslock/internal/appcat"

	"github.com/spf13/cobra"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "Manage the lock target selection",
}

var appsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog apps and their selection state",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		for _, c := range appcat.AllCategories() {
			fmt.Println(appcat.CategoryDisplayName(c))
			for _, a := range appcat.ByCategory(c) {
				mark := " "
				if eng.IsSelected(a.ID) {
					mark = "x"
				}
				fmt.Printf("  [%s] %-12s %s\n", mark, a.ID, a.Name)
			}
		}
		return nil
	},
}

var appsToggleCmd = &cobra.Command{
	Use:   "toggle <id>...",
	Short: "Toggle apps in or out of the selection",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		for _, id := range args {
			if err := eng.ToggleApp(ctx, id); err != nil {
				return err
			}
		}

		fmt.Printf("%d app(s) selected.\n", len(eng.SelectedApps()))
		return nil
	},
}

var appsCategoryCmd = &cobra.Command{
	Use:   "category <name>",
	Short: "Select every app in a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := eng.SelectCategory(context.Background(), appcat.Category(args[0])); err != nil {
			return err
		}
		fmt.Printf("%d app(s) selected.\n", len(eng.SelectedApps()))
		return nil
	},
}

func init() {
	appsCmd.AddCommand(appsListCmd)
	appsCmd.AddCommand(appsToggleCmd)
	appsCmd.AddCommand(appsCategoryCmd)
}
