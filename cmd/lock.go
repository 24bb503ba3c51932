package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"focuslock/internal/appcat"
	"focuslock/internal/engine"
	"focuslock/internal/lock"

	"github.com/spf13/cobra"
)

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Start a lock over the selected apps",
	RunE: func(cmd *cobra.Command, args []string) error {
		kindStr, _ := cmd.Flags().GetString("kind")
		durStr, _ := cmd.Flags().GetString("for")

		kind := lock.Kind(kindStr)
		if !kind.Valid() {
			return fmt.Errorf("kind must be %q or %q", lock.KindSoft, lock.KindHard)
		}

		eng, st, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		duration := eng.LastDuration()
		if durStr != "" {
			duration, err = time.ParseDuration(durStr)
			if err != nil {
				return fmt.Errorf("parse duration %q: %w", durStr, err)
			}
		}

		l, err := eng.StartLock(context.Background(), kind, duration)
		if err != nil {
			switch {
			case errors.Is(err, lock.ErrLockActive):
				return fmt.Errorf("a lock is already running; check `focuslock status`")
			case errors.Is(err, lock.ErrNoApps):
				return fmt.Errorf("no apps selected; run `focuslock apps toggle <id>` first")
			}
			return err
		}

		fmt.Printf("Locked %d app(s) with a %s lock until %s.\n",
			len(l.AppIDs), l.Kind, l.EndsAt.Local().Format("15:04"))
		for _, id := range l.AppIDs {
			if a, err := appcat.Get(id); err == nil {
				fmt.Printf("  ✕ %s\n", a.Name)
			}
		}
		return nil
	},
}

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "End the running soft lock early",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		err = eng.EndLockEarly(context.Background())
		switch {
		case errors.Is(err, engine.ErrNoActiveLock):
			fmt.Println("Nothing is locked.")
			return nil
		case errors.Is(err, engine.ErrHardLock):
			fmt.Printf("Hard lock: no early exit. %s to go.\n", formatRemaining(eng.Remaining()))
			return nil
		case err != nil:
			return err
		}

		fmt.Println("Lock ended.")
		return nil
	},
}

func formatRemaining(d time.Duration) string {
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

func init() {
	lockCmd.Flags().String("kind", "soft", "Lock kind: soft or hard")
	lockCmd.Flags().String("for", "", "Lock duration, e.g. 45m or 2h (default: last used)")
}
