package main

import (
	"log"
	"os"

	"github.com/mzalendo/shule/apps"
	"github.com/mzalendo/shule/core"
	logsvc "github.com/mzalendo/shule/services/logger"
)

func main() {
	std := log.New(os.Stdout, "SHULE : ", log.LstdFlags)

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

	cli := &commandLine{registry: registry, out: os.Stdout}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			std.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
