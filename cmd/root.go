package cmd

import (
	"github.com/spf13/cobra"

	"termin/internal/config"
	"termin/internal/core"
	"termin/internal/storage"
	"termin/internal/store"
	"termin/internal/version"
)

// Shared per-invocation wiring, built in PersistentPreRunE.
var (
	cfg     config.Config
	backend *storage.SQLite
	st      *store.Store
	svc     *core.Service
)

var rootCmd = &cobra.Command{
	Use:          "termin",
	Short:        "Personal appointment tracking",
	Version:      version.GetVersion(),
	SilenceUsage: true,
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		backend, err = storage.OpenSQLite(cfg.DataDir)
		if err != nil {
			return err
		}
		st = store.New(backend)
		st.Init()
		svc = core.New(st)
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if backend != nil {
			_ = backend.Close()
		}
	}

	// Add commands; other files define these vars
	rootCmd.AddCommand(addCmd, listCmd, editCmd, deleteCmd, calendarCmd,
		categoryCmd, exportCmd, importCmd, remindCmd, resetCmd, tuiCmd)
}
