package main

import (
	"encoding/csv"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// writeRaster writes r to filename in the given format ("csv" or "png").
func writeRaster(filename, format string, r *Raster) error {
	var write func(io.Writer, *Raster) error
	switch format {
	case "csv":
		write = writeCSV
	case "png":
		write = writePNG
	default:
		return errors.Errorf("unknown output format %q", format)
	}

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create output")
	}

	if err := write(file, r); err != nil {
		file.Close()
		return errors.Wrapf(err, "write %s", format)
	}
	return errors.Wrap(file.Close(), "close output")
}

// writeCSV writes one record per raster row.
func writeCSV(w io.Writer, r *Raster) error {
	writer := csv.NewWriter(w)

	record := make([]string, r.Width)
	for y := range r.Height {
		for x, val := range r.Row(y) {
			record[x] = strconv.FormatFloat(float64(val), 'g', -1, 32)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// writePNG writes r as a 16-bit grayscale image, mapping [-1, 1] onto the
// full gray range.
func writePNG(w io.Writer, r *Raster) error {
	img := image.NewGray16(image.Rect(0, 0, r.Width, r.Height))
	for y := range r.Height {
		for x, val := range r.Row(y) {
			img.SetGray16(x, y, color.Gray16{Y: grayLevel(val)})
		}
	}
	return png.Encode(w, img)
}

// grayLevel maps a sample in [-1, 1] to a 16-bit gray level, clamping
// values outside the range.
func grayLevel(v float32) uint16 {
	u := (float64(v) + 1) / 2
	switch {
	case !(u > 0):
		return 0
	case u >= 1:
		return 0xffff
	}
	return uint16(u*0xffff + 0.5)
}
