package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	spline "github.com/tphakala/go-spline"
)

const (
	// Canvas layout
	canvasMargin = 16  // pixels kept clear around the curve
	strokeHalf   = 1.0 // half stroke width in pixels

	csvPrecision = 6
)

// writeCSV emits one line per sample: parameter followed by the active
// components.
func writeCSV(w io.Writer, from, to float64, values []spline.Vector, terms int) error {
	step := 0.0
	if len(values) > 1 {
		step = (to - from) / float64(len(values)-1)
	}
	for i, v := range values {
		if _, err := fmt.Fprintf(w, "%.*g", csvPrecision, from+float64(i)*step); err != nil {
			return err
		}
		for k := 0; k < terms; k++ {
			if _, err := fmt.Fprintf(w, ",%.*g", csvPrecision, v[k]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// writePNG strokes the sampled polyline of the first two components onto a
// white canvas, scaled to fit.
func writePNG(path string, width, height int, values []spline.Vector, terms int) error {
	if terms < 2 {
		return fmt.Errorf("png preview needs 2 terms, have %d", terms)
	}

	minX, maxX := values[0][0], values[0][0]
	minY, maxY := values[0][1], values[0][1]
	for _, v := range values {
		minX = math.Min(minX, v[0])
		maxX = math.Max(maxX, v[0])
		minY = math.Min(minY, v[1])
		maxY = math.Max(maxY, v[1])
	}
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	scaleX := float64(width-2*canvasMargin) / spanX
	scaleY := float64(height-2*canvasMargin) / spanY
	toPixel := func(v spline.Vector) (float32, float32) {
		// Y grows downward on the canvas.
		x := canvasMargin + (v[0]-minX)*scaleX
		y := float64(height) - canvasMargin - (v[1]-minY)*scaleY
		return float32(x), float32(y)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range dst.Pix {
		dst.Pix[i] = 0xff
	}

	z := vector.NewRasterizer(width, height)
	for i := 1; i < len(values); i++ {
		x1, y1 := toPixel(values[i-1])
		x2, y2 := toPixel(values[i])
		strokeSegment(z, x1, y1, x2, y2)
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{})

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// strokeSegment adds a thin filled quad along the segment to the rasterizer.
func strokeSegment(z *vector.Rasterizer, x1, y1, x2, y2 float32) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx := float32(-dy / length * strokeHalf)
	ny := float32(dx / length * strokeHalf)

	z.MoveTo(x1+nx, y1+ny)
	z.LineTo(x2+nx, y2+ny)
	z.LineTo(x2-nx, y2-ny)
	z.LineTo(x1-nx, y1-ny)
	z.ClosePath()
}
