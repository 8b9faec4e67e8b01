package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2/log"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/kuberbiotech/kuber-web/internal/config"
	"github.com/kuberbiotech/kuber-web/internal/gateway"
	"github.com/kuberbiotech/kuber-web/internal/session"
	"github.com/kuberbiotech/kuber-web/internal/web"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the website",
		Example: `  # Serve on the configured address (SITE_ADDR, default :8080)
  kuber-web serve

  # Keep admin sessions in Postgres
  DATABASE_URL=postgres://localhost/kuber kuber-web serve --addr :3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			sessions, closeDB, err := openSessions(cfg)
			if err != nil {
				return err
			}
			defer closeDB()

			app := web.New(web.Options{
				Config:    cfg,
				Client:    gateway.New(cfg.APIURL, nil),
				Sessions:  sessions,
				AccessLog: true,
			})

			serverErr := make(chan error, 1)
			go func() {
				log.Infow("website available", "addr", cfg.Addr, "api", cfg.APIURL)
				serverErr <- app.Listen(cfg.Addr)
			}()

			select {
			case <-cmd.Context().Done():
				log.Infow("shutting down")
				if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
					return errors.Wrap(err, "shutdown")
				}
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides SITE_ADDR)")
	return cmd
}

// openSessions returns the Postgres session store when DATABASE_URL is set,
// else an in-process one.
func openSessions(cfg config.Config) (session.Repository, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Warnw("DATABASE_URL is not set; admin sessions are kept in memory")
		return session.NewInMemoryRepository(), func() {}, nil
	}

	db, err := sql.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open database")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, errors.Wrap(err, "ping database")
	}

	repo := session.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		_ = db.Close()
		return nil, nil, errors.Wrap(err, "session schema")
	}
	return repo, func() { _ = db.Close() }, nil
}
