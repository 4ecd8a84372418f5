// cmd/serve.go
//
// Run the HTTP analysis API. The session store is in-memory; attaching a
// database (--db or DB_PATH) additionally exposes persisted run stats.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/franklinharper/wordle-human-solve/internal/httpserver"
	"github.com/franklinharper/wordle-human-solve/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis API",
	RunE: func(cmd *cobra.Command, args []string) error {
		corpus, err := loadCorpus(cmd)
		if err != nil {
			return err
		}
		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = getEnv("PORT", "5185")
		}
		dbPath, _ := cmd.Flags().GetString("db")
		if dbPath == "" {
			dbPath = getEnv("DB_PATH", "")
		}

		var runs *store.RunStore
		if dbPath != "" {
			db, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := store.Migrate(db); err != nil {
				return err
			}
			runs = store.NewRunStore(db)
		}

		srv := httpserver.New(corpus, store.NewMemorySessionStore(), runs)
		return srv.Start(":" + port)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "listen port (overrides PORT, default 5185)")
	serveCmd.Flags().String("db", "", "SQLite path for run stats (overrides DB_PATH)")
}
