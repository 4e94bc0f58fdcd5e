// Command sphview-server serves interactive 3D views of a coefficient set
// over HTTP. The set is loaded once at startup; every request re-evaluates
// the requested field and renders it to HTML.
//
// Usage:
//
//	go run ./cmd/sphview-server -in coeffs.json [flags]
//
// Flags:
//
//	-in      Coefficient set JSON file (required)
//	-listen  Listen address (default: :8080)
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acousticlab/soundfield.view/internal/coeffio"
)

func main() {
	in := flag.String("in", "", "Coefficient set JSON file (required)")
	listen := flag.String("listen", ":8080", "Listen address")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	set, err := coeffio.LoadFile(*in)
	if err != nil {
		log.Fatalf("Failed to load coefficient set: %v", err)
	}
	server, err := NewServer(set)
	if err != nil {
		log.Fatalf("Invalid coefficient set: %v", err)
	}

	srv := &http.Server{Addr: *listen, Handler: server}
	go func() {
		log.Printf("Listening on %s", *listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Printf("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
