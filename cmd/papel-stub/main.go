// papel-stub is a development stand-in for the PDF service. It stores
// documents on disk and speaks the same REST surface the papel TUI consumes,
// so the client can be exercised without the real backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/papeleta/papel/internal/stubserver"
)

func main() {
	var addr string
	var storageDir string

	flag.StringVar(&addr, "addr", "0.0.0.0:8080", "listen address")
	flag.StringVar(&storageDir, "storage", "pdf_storage", "directory for stored PDFs")
	flag.Parse()

	if err := run(addr, storageDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(addr, storageDir string) error {
	srv := stubserver.NewServer(addr, storageDir)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("starting stub server: %w", err)
	}
	log.Printf("papel-stub listening on %s, storage in %s", addr, storageDir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down gracefully... (press Ctrl+C again to force)")
		cancel()

		deadline := time.NewTimer(10 * time.Second)
		defer deadline.Stop()

		select {
		case <-sigCh:
			fmt.Println("\nForce shutdown.")
		case <-deadline.C:
			fmt.Println("Shutdown timed out, forcing exit.")
		}
		os.Exit(1)
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		return srv.Stop()
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	signal.Stop(sigCh)
	return nil
}
