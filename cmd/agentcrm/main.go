package main

import (
	"agentcrm/internal/di"
	"agentcrm/internal/structures"
	"flag"
	"fmt"
	"os"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config/config.yaml", "Path to config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "Enable debug logging")
	flag.BoolVar(&flags.Reset, "reset", false, "Restore the seed data set on startup")
	flag.Parse()

	app, err := di.InitApp(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		app.Close()
		fmt.Fprintf(os.Stderr, "server stopped: %v\n", err)
		os.Exit(1)
	}
}
