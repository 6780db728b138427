// Command vibgen writes synthetic gearbox vibration captures as CSV files,
// one per scenario. The output is suitable as vibinfo input or as upload
// payloads for the analysis API.
//
// Usage:
//
//	vibgen [flags] [scenario ...]
//
// Examples:
//
//	vibgen
//	vibgen -dir testdata -seconds 2 bearing gear
//	vibgen -rate 25600 -seed 3 unbalance
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cwbudde/algo-vibration/dsp/core"
	"github.com/cwbudde/algo-vibration/dsp/signal"
)

func main() {
	dir := flag.String("dir", ".", "output directory")
	rate := flag.Float64("rate", 12000, "sample rate in Hz")
	seconds := flag.Float64("seconds", 1, "capture duration in seconds")
	seed := flag.Int64("seed", 1, "noise seed")
	list := flag.Bool("list", false, "list available scenarios")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vibgen [flags] [scenario ...]\n\n")
		fmt.Fprintf(os.Stderr, "Writes synthetic gearbox captures as <scenario>.csv.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, writes every scenario.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vibgen\n")
		fmt.Fprintf(os.Stderr, "  vibgen -dir testdata -seconds 2 bearing gear\n")
	}
	flag.Parse()

	if *list {
		for _, name := range signal.Scenarios() {
			fmt.Println(name)
		}
		return
	}

	scenarios := flag.Args()
	if len(scenarios) == 0 {
		scenarios = signal.Scenarios()
	}

	samples := int(*seconds * *rate)
	gen := signal.NewGenerator(
		[]core.ProcessorOption{core.WithSampleRate(*rate)},
		signal.WithSeed(*seed),
	)

	for _, name := range scenarios {
		sig, err := gen.Gearbox(name, samples)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		path := filepath.Join(*dir, name+".csv")
		if err := writeCSV(path, sig); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d samples at %.0f Hz)\n", path, samples, *rate)
	}
}

func writeCSV(path string, samples []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"amplitude"}); err != nil {
		return err
	}
	for _, v := range samples {
		if err := w.Write([]string{strconv.FormatFloat(v, 'g', -1, 64)}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return f.Close()
}
