package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"d2dfavicon/src/config"
	"d2dfavicon/src/favicon"
	"d2dfavicon/src/watcher"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run is main without the process exit, returning the exit code
func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("favicongen", flag.ContinueOnError)
	flags.SetOutput(stdout)
	configPath := flags.String("config", "favicon.yaml", "optional config file")
	watch := flags.Bool("watch", false, "keep running and regenerate when the logo changes")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Converting %s to favicon formats...\n\n", filepath.Base(cfg.LogoPath))

	gen := favicon.NewGenerator(cfg, stdout)
	success := gen.Convert()

	if !*watch {
		if !success {
			return 1
		}
		return 0
	}

	return watchLogo(cfg, gen)
}

// watchLogo regenerates favicons on every logo change until interrupted
func watchLogo(cfg *config.Config, gen *favicon.Generator) int {
	w, err := watcher.NewWatcher(cfg, gen)
	if err != nil {
		log.Printf("Failed to create watcher: %v", err)
		return 1
	}

	if err := w.Start(); err != nil {
		log.Printf("Failed to start watcher: %v", err)
		w.Stop()
		return 1
	}

	log.Println("Press Ctrl+C to stop")

	go func() {
		for event := range w.Events() {
			log.Printf("📄 Event: %v - %s", event.Type, event.FilePath)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
	if err := w.Stop(); err != nil {
		log.Printf("Failed to stop watcher: %v", err)
	}
	return 0
}
