// Command spline-plot samples a curve described in a YAML file and writes
// either CSV samples to stdout or a PNG preview.
//
// Usage:
//
//	spline-plot curve.yaml                     # CSV on stdout
//	spline-plot -png out.png curve.yaml        # PNG preview
//	spline-plot -n 512 -from 0 -to 2 curve.yaml
//
// The YAML file names the variant, the control points and any extension
// data the variant needs:
//
//	kind: tcb
//	points:
//	  - par: 0
//	    value: [0, 0]
//	    in:  {tension: 0.5, continuity: 0, bias: 0}
//	    out: {tension: 0.5, continuity: 0, bias: 0}
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	spline "github.com/tphakala/go-spline"
	"github.com/tphakala/go-spline/internal/curvefile"
)

const (
	// CLI defaults
	defaultSamples  = 256
	minRequiredArgs = 1

	// PNG canvas defaults
	defaultWidth  = 640
	defaultHeight = 480
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	samples := flag.Int("n", defaultSamples, "Number of samples across the parameter range")
	from := flag.Float64("from", 0, "Start parameter (default: first control point)")
	to := flag.Float64("to", 0, "End parameter (default: last control point)")
	useRange := flag.Bool("range", false, "Use -from/-to instead of the control point range")
	pngPath := flag.String("png", "", "Write a PNG preview to this path instead of CSV to stdout")
	width := flag.Int("w", defaultWidth, "PNG width in pixels")
	height := flag.Int("h", defaultHeight, "PNG height in pixels")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] curve.yaml\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("missing curve file")
	}

	scene, err := curvefile.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading %s: %w", args[0], err)
	}
	s, err := scene.Build()
	if err != nil {
		return fmt.Errorf("building %s spline: %w", scene.Kind, err)
	}
	defer spline.Destroy(s)

	lo, hi := scene.ParameterRange()
	if *useRange {
		lo, hi = *from, *to
	}
	values, terms, err := spline.Sample(s, lo, hi, *samples)
	if err != nil {
		return fmt.Errorf("sampling: %w", err)
	}

	if *pngPath != "" {
		return writePNG(*pngPath, *width, *height, values, terms)
	}
	return writeCSV(os.Stdout, lo, hi, values, terms)
}
