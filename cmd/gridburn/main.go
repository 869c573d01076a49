// Command gridburn rasterizes WKB polygon files onto a grid and prints
// the resulting runs and edges as CSV.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/gogpu/gridburn"
)

func main() {
	var (
		xmin     = flag.Float64("xmin", 0, "grid extent xmin")
		ymin     = flag.Float64("ymin", 0, "grid extent ymin")
		xmax     = flag.Float64("xmax", 1, "grid extent xmax")
		ymax     = flag.Float64("ymax", 1, "grid extent ymax")
		ncol     = flag.Int("ncol", 1, "grid column count")
		nrow     = flag.Int("nrow", 1, "grid row count")
		runsOut  = flag.String("runs", "", "path to write run CSV (default stdout)")
		edgesOut = flag.String("edges", "", "path to write edge CSV")
		verbose  = flag.Bool("v", false, "log warnings for skipped geometries")
	)
	flag.Parse()

	if *verbose {
		gridburn.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	wkbList := make([][]byte, 0, flag.NArg())
	for _, path := range flag.Args() {
		buf, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("gridburn: read %s: %v", path, err)
		}
		wkbList = append(wkbList, buf)
	}

	result, err := gridburn.RasterizeExact(wkbList, gridburn.Extent{
		XMin: *xmin, YMin: *ymin, XMax: *xmax, YMax: *ymax,
	}, *ncol, *nrow)
	if err != nil {
		log.Fatalf("gridburn: %v", err)
	}

	if err := writeRuns(*runsOut, result.Runs); err != nil {
		log.Fatalf("gridburn: write runs: %v", err)
	}
	if *edgesOut != "" {
		if err := writeEdges(*edgesOut, result.Edges); err != nil {
			log.Fatalf("gridburn: write edges: %v", err)
		}
	}
}

func writeRuns(path string, runs []gridburn.Run) error {
	w, closeFn, err := openWriter(path)
	if err != nil {
		return err
	}
	defer closeFn()

	cw := csv.NewWriter(w)
	defer cw.Flush()
	if err := cw.Write([]string{"row", "col_start", "col_end", "id"}); err != nil {
		return err
	}
	for _, r := range runs {
		if err := cw.Write([]string{
			strconv.Itoa(r.Row), strconv.Itoa(r.ColStart), strconv.Itoa(r.ColEnd), strconv.Itoa(r.ID),
		}); err != nil {
			return err
		}
	}
	return cw.Error()
}

func writeEdges(path string, edges []gridburn.Edge) error {
	w, closeFn, err := openWriter(path)
	if err != nil {
		return err
	}
	defer closeFn()

	cw := csv.NewWriter(w)
	defer cw.Flush()
	if err := cw.Write([]string{"row", "col", "weight", "id"}); err != nil {
		return err
	}
	for _, e := range edges {
		if err := cw.Write([]string{
			strconv.Itoa(e.Row), strconv.Itoa(e.Col), strconv.FormatFloat(float64(e.Weight), 'g', -1, 32), strconv.Itoa(e.ID),
		}); err != nil {
			return err
		}
	}
	return cw.Error()
}

func openWriter(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
