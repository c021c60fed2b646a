// Command stoproute answers shortest-path queries over a transit stop network.
//
//	stoproute -routes data/routes.json -from Central -to Puerto
//
// Missing -from or -to values are read from standard input.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/stoproute/internal/app"
	"github.com/katalvlaran/stoproute/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml (default: ./config.yml if present)")
	source := flag.String("source", "", "route source: file|gtfsrt|mysql (overrides config)")
	routes := flag.String("routes", "", "route dataset path for the file source (overrides config)")
	from := flag.String("from", "", "start stop; prompted when empty")
	to := flag.String("to", "", "end stop; prompted when empty")
	flag.Parse()

	logging.Init(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := app.Run(ctx, app.Options{
		ConfigPath: *configPath,
		Source:     *source,
		RoutesPath: *routes,
		From:       *from,
		To:         *to,
	}, os.Stdin, os.Stdout)
	if err != nil {
		stop()
		log.Fatalf("stoproute: %v", err)
	}
}
