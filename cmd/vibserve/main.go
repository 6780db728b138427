// Command vibserve runs the vibration analysis HTTP API.
//
// Usage:
//
//	vibserve [flags]
//
// Endpoints:
//
//	GET  /healthz      liveness probe
//	POST /api/analyze  multipart upload ("file" field, .csv or .txt)
//
// Examples:
//
//	vibserve
//	vibserve -addr :9090 -rate 25600
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/cwbudde/algo-vibration/internal/webapi"
	"github.com/cwbudde/algo-vibration/measure/vibration"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	rate := flag.Float64("rate", 12000, "sample rate in Hz assumed for uploads")
	threshold := flag.Float64("threshold", 0, "fault score threshold (0 keeps the default)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vibserve [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Serves the vibration analysis API.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.New(os.Stderr, "vibserve ", log.LstdFlags)

	opts := []vibration.Option{vibration.WithSampleRate(*rate)}
	if *threshold > 0 {
		opts = append(opts, vibration.WithFaultThreshold(*threshold))
	}

	analyzer, err := vibration.New(opts...)
	if err != nil {
		logger.Fatalf("error: %v", err)
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           webapi.New(analyzer, logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Printf("listening on %s (rate %.0f Hz)", *addr, *rate)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("error: %v", err)
	}
}
