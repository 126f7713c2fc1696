// Command seam-carver finds the lowest-energy vertical seam of an image and
// prints it, one column index per row.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"seam-carver/internal/config"
	seamimage "seam-carver/internal/image"
	"seam-carver/internal/logger"
	"seam-carver/internal/seam"
	"seam-carver/internal/version"

	"github.com/rs/zerolog"
)

// report is the -json output.
type report struct {
	Image  string       `json:"image"`
	Format string       `json:"format"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Cost   int64        `json:"cost"`
	Energy seam.Summary `json:"energy"`
	Seam   seam.Seam    `json:"seam"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	prefs, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load preferences: %v\n", err)
		return 1
	}
	return runWithPrefs(args, prefs, stdout, stderr)
}

func runWithPrefs(args []string, prefs *config.Prefs, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("seam-carver", flag.ContinueOnError)
	fs.SetOutput(stderr)
	imagePath := fs.String("image", "", "Path to image (PNG, JPEG, GIF, TIFF, BMP or WebP)")
	workers := fs.Int("workers", prefs.Int(config.KeyWorkers, 1), "Goroutines per row during the cost fill")
	asJSON := fs.Bool("json", false, "Print a JSON report instead of text")
	verbose := fs.Bool("v", false, "Enable debug logging")
	showVersion := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}
	if *imagePath == "" {
		fmt.Fprintln(stderr, "Usage: seam-carver -image <path> [-workers N] [-json] [-v]")
		return 1
	}

	level := logger.ParseLevel(prefs.String(config.KeyLogLevel, "warn"))
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := logger.New(zerolog.ConsoleWriter{
		Out:        stderr,
		TimeFormat: "15:04:05",
		NoColor:    stderr != io.Writer(os.Stderr),
	}, level)

	if !seamimage.IsSupportedFormat(*imagePath) {
		log.Warning("main", "unrecognized extension, trying to decode anyway", logger.Fields{"path": *imagePath})
	}

	pic, err := seamimage.Load(*imagePath)
	if err != nil {
		log.Error("main", err, logger.Fields{"path": *imagePath})
		fmt.Fprintf(stderr, "Failed to load image: %v\n", err)
		return 1
	}
	log.Info("main", "image loaded", logger.Fields{
		"format": pic.Format, "width": pic.Width(), "height": pic.Height(),
	})

	solver := seam.NewSolver(seam.DefaultOptions().WithWorkers(*workers).WithLogger(log))
	res, err := solver.Solve(pic)
	if err != nil {
		log.Error("main", err, logger.Fields{"path": *imagePath})
		fmt.Fprintf(stderr, "Seam search failed: %v\n", err)
		return 1
	}

	out := report{
		Image:  *imagePath,
		Format: pic.Format,
		Width:  pic.Width(),
		Height: pic.Height(),
		Cost:   res.Cost,
		Energy: seam.Summarize(res.Importance),
		Seam:   res.Seam,
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return 1
		}
		return 0
	}

	printText(stdout, out)
	return 0
}

func printText(w io.Writer, r report) {
	fmt.Fprintf(w, "Loaded %s image: %dx%d pixels\n", r.Format, r.Width, r.Height)
	fmt.Fprintf(w, "Energy: min %.0f max %.0f mean %.2f stddev %.2f (%d zero)\n",
		r.Energy.Min, r.Energy.Max, r.Energy.Mean, r.Energy.StdDev, r.Energy.Zeros)
	fmt.Fprintf(w, "Seam cost: %d\n", r.Cost)

	cols := make([]string, len(r.Seam))
	for i, c := range r.Seam {
		cols[i] = fmt.Sprint(c)
	}
	fmt.Fprintf(w, "Seam: %s\n", strings.Join(cols, " "))
}
