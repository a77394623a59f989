// Command spline-wav renders a spline-defined amplitude envelope to a mono
// WAV file: a sine carrier is scaled by the curve's first component over the
// curve's parameter range.
//
// Usage:
//
//	spline-wav -o env.wav envelope.yaml
//	spline-wav -rate 48000 -seconds 2 -freq 220 -o env.wav envelope.yaml
//
// The curve file uses the same YAML format as spline-plot. Envelope values
// are normalized to the largest magnitude in the rendered range.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	spline "github.com/tphakala/go-spline"
	"github.com/tphakala/go-spline/internal/curvefile"
)

const (
	// Rendering defaults
	defaultRate    = 44100
	defaultSeconds = 1.0
	defaultFreq    = 440.0

	// WAV output format
	outBitDepth     = 16
	outChannels     = 1
	wavFormatPCM    = 1
	maxInt16        = 32767.0
	minRequiredArgs = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rate := flag.Int("rate", defaultRate, "Output sample rate in Hz")
	seconds := flag.Float64("seconds", defaultSeconds, "Output duration in seconds")
	freq := flag.Float64("freq", defaultFreq, "Carrier sine frequency in Hz")
	outPath := flag.String("o", "out.wav", "Output WAV path")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] envelope.yaml\n\nOptions:\n", os.Args[0])
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

	frames := int(float64(*rate) * *seconds)
	if frames < 1 {
		return fmt.Errorf("duration too short: %v seconds at %d Hz", *seconds, *rate)
	}

	lo, hi := scene.ParameterRange()
	envelope := make([]spline.Vector, frames)
	if _, err := spline.SampleInto(s, lo, hi, envelope); err != nil {
		return fmt.Errorf("sampling envelope: %w", err)
	}

	peak := 0.0
	for _, v := range envelope {
		peak = math.Max(peak, math.Abs(v[0]))
	}
	if peak == 0 {
		peak = 1
	}

	if *verbose {
		log.Printf("Envelope: %s, %d points over [%g, %g], peak %g",
			scene.Kind, len(scene.Points), lo, hi, peak)
		log.Printf("Output: %s, %d Hz, %v s, carrier %g Hz", *outPath, *rate, *seconds, *freq)
	}

	data := make([]int, frames)
	phaseStep := 2 * math.Pi * *freq / float64(*rate)
	for i := range data {
		amp := envelope[i][0] / peak
		sample := amp * math.Sin(float64(i)*phaseStep)
		data[i] = int(sample * maxInt16)
	}

	return writeWAV(*outPath, *rate, data)
}

func writeWAV(path string, rate int, data []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	enc := wav.NewEncoder(f, rate, outBitDepth, outChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: outChannels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: outBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return fmt.Errorf("writing samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return f.Close()
}
