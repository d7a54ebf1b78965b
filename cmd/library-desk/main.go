// Command library-desk serves the library desk REST API.
//
// Every option can be passed as a flag or as a SERVICE_<NAME> env var, e.g. --dsn or SERVICE_DSN.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/danielgtaylor/huma/v2/humacli"

	"github.com/AntonStoeckl/library-desk-go/library/vmadapters"
	"github.com/AntonStoeckl/library-desk-go/service/api"
	"github.com/AntonStoeckl/library-desk-go/service/shared/logger"
	"github.com/AntonStoeckl/library-desk-go/service/shared/shell/config"
)

const (
	title   = "Library Desk"
	version = "1.0.0"
)

type Options struct {
	api.ServerOptions
	api.RouterOptions
	config.PoolOptions
	logger.Options

	Adapter string `doc:"store adapter: pgx.pool, sql.db, sqlx.db or inmem" default:"pgx.pool"`
	Migrate bool   `doc:"create tables and indexes on start"`
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		log := logger.New(&options.Options)

		set := metrics.NewSet()
		collector := vmadapters.NewMetricsCollector(set)

		var srv *http.Server
		var closeStore func()

		hooks.OnStart(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			store, closer, err := openStore(ctx, options, log, collector)
			cancel()
			if err != nil {
				log.Error("failed to open the store", "adapter", options.Adapter, "err", err)
				os.Exit(1)
			}
			closeStore = closer

			router, err := api.NewRouter(&options.RouterOptions, title, version, store, set, collector, log)
			if err != nil {
				log.Error("failed to build the router", "err", err)
				closeStore()
				os.Exit(1)
			}

			srv = api.NewServer(&options.ServerOptions, router, log)
			log.Info("listening", "addr", srv.Addr, "adapter", options.Adapter)

			err = srv.ListenAndServe()
			if !errors.Is(err, http.ErrServerClosed) {
				log.Error("failed to listen and serve", "err", err)
			} else {
				log.Info("server closed")
			}
		})

		hooks.OnStop(func() {
			if srv != nil {
				ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
				defer cancel()
				if err := srv.Shutdown(ctx); err != nil {
					log.Warn("could not shutdown the server", "err", err)
				}
			}
			if closeStore != nil {
				closeStore()
			}
		})
	})
	cli.Run()
}
