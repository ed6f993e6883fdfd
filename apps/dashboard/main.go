package main

import (
	"context"
	"log"
	"os"

	"github.com/mzalendo/shule/apps"
	dashapi "github.com/mzalendo/shule/apps/dashboard/echo"
	"github.com/mzalendo/shule/core"
	logsvc "github.com/mzalendo/shule/services/logger"
)

func main() {
	std := log.New(os.Stdout, "DASH : ", log.LstdFlags)

	conf, err := core.NewConfig()
	if err != nil {
		std.Fatal(err)
	}

	var logger core.Logger
	if conf.Debug || conf.TestMode {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	registry, err := apps.NewRegistry(conf, logger)
	if err != nil {
		logger.Fatal("wiring services", err)
	}

	// hydrate the session from the persisted token; the dashboard serves
	// anonymous-reachable data either way
	ctx, cancel := context.WithTimeout(context.Background(), conf.API.Timeout)
	if err := registry.Session.Restore(ctx); err != nil {
		logger.Warn("restoring session", err)
	}
	cancel()

	app := dashapi.NewServer(
		&dashapi.Options{
			Address:  conf.Dashboard.Addr,
			Debug:    conf.Debug,
			Logger:   logger,
			Registry: registry,
		},
	)
	app.Start()
}
