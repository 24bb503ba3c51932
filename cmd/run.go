package cmd

import (
	"context"
	"fmt"

	"focuslock/internal/app"
	"focuslock/internal/engine"
	"focuslock/internal/store"

	"github.com/spf13/cobra"
)

// runApp opens the store, builds the engine, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	eng, st, err := loadEngine(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Engine: eng,
		Events: st.EventRepo(),
	})
}

// loadEngine opens the store and restores engine state from the latest
// snapshot. The caller owns closing the returned store.
func loadEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	eng := engine.New(engine.Options{
		Snapshots: st.SnapshotRepo(),
		Events:    st.EventRepo(),
	})
	if err := eng.Load(context.Background()); err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load state: %w", err)
	}
	return eng, st, nil
}
