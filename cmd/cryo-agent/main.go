// cryo-agent serves the checkpoint protocol for its own process: clients
// ask it to checkpoint itself, and an external supervisor later restores
// the image.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"code.cloudfoundry.org/lager"
	"contrib.go.opencensus.io/exporter/stackdriver"
	"go.opencensus.io/stats/view"

	"code.cloudfoundry.org/cryo/coordinator"
	"code.cloudfoundry.org/cryo/engine"
	"code.cloudfoundry.org/cryo/lifecycle"
	"code.cloudfoundry.org/cryo/server"
)

var configFile = flag.String(
	"config",
	"/etc/cryo/config.yaml",
	"path to the agent config file",
)

var listenNetwork = flag.String(
	"listen-network",
	"",
	"listen network, tcp or unix (overrides config)",
)

var listenAddr = flag.String(
	"listen-addr",
	"",
	"listen address or socket path (overrides config)",
)

var stackdriverProject = flag.String(
	"stackdriver-project",
	"",
	"export attempt metrics to this Stackdriver project (overrides config)",
)

func main() {
	flag.Parse()

	logger := lager.NewLogger("cryo-agent")
	logger.RegisterSink(lager.NewWriterSink(os.Stdout, lager.INFO))

	config, err := loadConfig(*configFile)
	if err != nil {
		logger.Fatal("failed-to-load-config", err)
	}

	config = config.withOverrides(*listenNetwork, *listenAddr, *stackdriverProject)

	if config.StackdriverProject != "" {
		exporter, err := stackdriver.NewExporter(stackdriver.Options{
			ProjectID: config.StackdriverProject,
		})
		if err != nil {
			logger.Fatal("failed-to-create-stackdriver-exporter", err)
		}
		defer exporter.Flush()

		view.RegisterExporter(exporter)
	}

	registry := lifecycle.NewRegistry()
	checkpointer := coordinator.New(engine.New(), registry, logger)

	cryoServer := server.New(config.ListenNetwork, config.ListenAddr, checkpointer, logger)

	err = cryoServer.Start()
	if err != nil {
		logger.Fatal("failed-to-start", err)
	}

	logger.Info("started", lager.Data{
		"network":   config.ListenNetwork,
		"addr":      config.ListenAddr,
		"supported": checkpointer.Supported(),
	})

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals

	cryoServer.Stop()
}
