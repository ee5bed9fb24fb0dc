// Command latticedraw rounds a planar graph drawing's vertex coordinates
// onto the integer grid while preserving its combinatorial embedding, per
// the data flow in pipeline.Run: an optional cartogram preprocess, a
// chosen feasibility strategy, mandatory quality annealing, and an
// optional hill-climb postprocess.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/latticedraw/latticedraw/cartogram"
	"github.com/latticedraw/latticedraw/drawing"
	"github.com/latticedraw/latticedraw/internal/obslog"
	"github.com/latticedraw/latticedraw/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("latticedraw", flag.ContinueOnError)

	feasibility := fs.String("feasibility", "round", "feasibility strategy: round|greedy|anneal|grid|cost|none")
	carto := fs.Bool("carto", false, "run the cartogram preprocess before feasibility")
	cartoEnlarge := fs.Bool("enlarge_short_edges", false, "cartogram: lengthen short edges toward sqrt(2)")
	cartoSpace := fs.Bool("space_nearby_vertices", false, "cartogram: push apart vertices closer than sqrt(2)")
	cartoCDT := fs.Bool("add_cdt", false, "cartogram: add constrained-Delaunay spacing constraints")
	steps := fs.Int("steps", 10000, "quality-annealing iteration budget")
	temp := fs.Float64("temp", 1.0, "initial quality temperature")
	minTemp := fs.Float64("mintemp", 0, "quality temperature floor")
	cooling := fs.Float64("cooling", 0.99, "quality cooling factor")
	autocool := fs.Bool("autocool", false, "derive cooling from (temp, mintemp, steps)")
	gridExtent := fs.Float64("grid", 0, "rescale input to fit this max coordinate extent")
	hillclimbFlag := fs.Bool("hillclimb", false, "run the hill-climb postprocess")
	nocenter := fs.Bool("nocenter", false, "skip centering the drawing at the origin")
	output := fs.String("output", "", "destination file (stdout if empty)")
	dump := fs.Bool("dump", false, "emit the intermediate feasible drawing to feasible.agf")
	seed := fs.Int64("seed", 0, "deterministic RNG seed")
	maxDensityIterations := fs.Int("maxdensityiterations", 200000, "iteration budget for anneal/grid/cost feasibility")
	verbose := fs.Bool("verbose", false, "log progress and diagnostics to stderr")

	if err := fs.Parse(args); err != nil {
		return -1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: latticedraw [options] <input-path>")
		return -1
	}
	inputPath := fs.Arg(0)

	if *verbose {
		obslog.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}
	log := obslog.Logger()

	f, err := os.Open(inputPath)
	if err != nil {
		log.Error("failed to open input", "path", inputPath, "error", err)
		return -1
	}
	d, err := drawing.LoadLineGraph(f)
	f.Close()
	if err != nil {
		log.Error("failed to load input", "path", inputPath, "error", err)
		return -1
	}
	d.SetRotationSystems()

	opts := pipeline.Options{
		Feasibility: pipeline.Feasibility(*feasibility),
		Carto:       *carto,
		CartoOptions: cartogram.Options{
			EnlargeShortEdges:      *cartoEnlarge,
			SpaceNearbyVertices:    *cartoSpace,
			AddDelaunayConstraints: *cartoCDT,
			Logger:                 log,
		},
		Steps:                *steps,
		StartTemp:            *temp,
		MinTemp:              *minTemp,
		Cooling:              *cooling,
		AutoCool:             *autocool,
		MaxDensityIterations: maxOr(*maxDensityIterations, 1),
		HillClimb:            *hillclimbFlag,
		Grid:                 *gridExtent,
		NoCenter:             *nocenter,
		Seed:                 *seed,
		Logger:               log,
	}

	result, err := pipeline.Run(d, opts)
	if err != nil {
		log.Error("pipeline failed", "error", err)
		return -1
	}

	if *dump {
		if err := os.WriteFile("feasible.agf", result.Feasible, 0o644); err != nil {
			log.Error("failed to write feasible.agf", "error", err)
			return -1
		}
	}

	out := os.Stdout
	if *output != "" {
		w, err := os.Create(*output)
		if err != nil {
			log.Error("failed to create output", "path", *output, "error", err)
			return -1
		}
		defer w.Close()
		out = w
	}
	if err := drawing.WriteLineGraph(out, d); err != nil {
		log.Error("failed to write output", "error", err)
		return -1
	}

	return 0
}

func maxOr(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
