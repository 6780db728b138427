// Command vibinfo analyzes vibration captures and prints a fault report.
//
// Usage:
//
//	vibinfo [flags] file.csv [file.txt ...]
//
// Examples:
//
//	vibinfo capture.csv
//	vibinfo -rate 25600 bearing.txt gearbox.csv
//	vibinfo -json capture.csv
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-vibration/ingest"
	"github.com/cwbudde/algo-vibration/measure/vibration"
)

func main() {
	rate := flag.Float64("rate", 12000, "sample rate in Hz")
	threshold := flag.Float64("threshold", 0, "fault score threshold (0 keeps the default)")
	asJSON := flag.Bool("json", false, "emit one JSON object per file instead of a table")
	verbose := flag.Bool("v", false, "print recommendations and fault hypotheses")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vibinfo [flags] file [file ...]\n\n")
		fmt.Fprintf(os.Stderr, "Analyzes vibration captures (.csv, .txt) and prints a fault report.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vibinfo capture.csv\n")
		fmt.Fprintf(os.Stderr, "  vibinfo -rate 25600 bearing.txt\n")
		fmt.Fprintf(os.Stderr, "  vibinfo -json capture.csv\n")
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	opts := []vibration.Option{vibration.WithSampleRate(*rate)}
	if *threshold > 0 {
		opts = append(opts, vibration.WithFaultThreshold(*threshold))
	}

	analyzer, err := vibration.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	failed := false
	var results []fileResult
	for _, path := range flag.Args() {
		samples, err := ingest.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			failed = true
			continue
		}

		r, err := analyzer.Analyze(samples)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", path, err)
			failed = true
			continue
		}
		results = append(results, fileResult{Path: path, Result: r})
	}

	if *asJSON {
		printJSON(results)
	} else {
		printTable(results, *verbose)
	}

	if failed {
		os.Exit(1)
	}
}

type fileResult struct {
	Path string `json:"file"`
	vibration.Result
}

func printJSON(results []fileResult) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
	}
}

func printTable(results []fileResult, verbose bool) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "File\tSamples\tRMS\tCrest\tKurtosis\tPeak [Hz]\tScore\tLevel\tFaulty\n")
	fmt.Fprintf(tw, "----\t-------\t---\t-----\t--------\t---------\t-----\t-----\t------\n")

	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.1f\t%.3f\t%s\t%v\n",
			r.Path,
			r.Time.Length,
			r.Time.RMS,
			r.Time.CrestFactor,
			r.Time.Kurtosis,
			r.Frequency.PeakFrequency,
			r.FaultScore,
			r.DamageLevel,
			r.IsFaulty,
		)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}

	if !verbose {
		return
	}

	for _, r := range results {
		fmt.Printf("\n%s:\n", r.Path)
		for _, h := range r.FaultTypes {
			fmt.Printf("  %s (%.0f%%): %s\n", h.Type, 100*h.Confidence, h.Description)
		}
		for _, rec := range r.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
}
