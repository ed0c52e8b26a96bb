// Command visibomb runs a small, hard-coded demo scenario through the
// anteparo/destroy/paint/clone query pipeline and writes the resulting
// scene (plus any accumulated visibility regions) to an SVG file. It
// exists to exercise query.Executor and render.SVGWriter end-to-end;
// parsing the original .geo/.qry text formats is out of scope (see
// SPEC_FULL.md §6).
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/arvelin/visibomb/point"
	"github.com/arvelin/visibomb/query"
	"github.com/arvelin/visibomb/render"
	"github.com/arvelin/visibomb/scene"
	"github.com/arvelin/visibomb/shape"
	"github.com/arvelin/visibomb/sweep"
)

func main() {
	cmd := &cli.Command{
		Name:      "visibomb",
		Usage:     "Runs a demo visibility-bomb scenario and writes an SVG of the result",
		UsageText: "visibomb --out <path>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "out",
				Usage:    "Path to write the resulting SVG to",
				Value:    "visibomb.svg",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	outPath := cmd.String("out")

	ids := scene.NewIDSource(1000)
	shapes := []shape.Shape{
		shape.NewRectangle(1, 20, 20, 40, 30, "black", "lightgray"),
		shape.NewCircle(2, 120, 60, 25, "black", "lightblue"),
		shape.NewLine(3, 10, 150, 200, 150, "black"),
		shape.NewText(4, 80, 100, "obstacle", shape.AnchorMiddle, "black"),
	}

	bbox := sweep.BoundingBox{MinX: 0, MinY: 0, MaxX: 220, MaxY: 180}
	executor := query.NewExecutor(shapes, nil, ids, bbox, 1e-9)

	executor.Anteparo(1, 4, shape.ChordHorizontal)

	origin := point.New(10, 10)
	if _, ok := executor.Destroy(origin, "-"); !ok {
		return fmt.Errorf("visibility computation failed for destroy query")
	}
	if _, ok := executor.Paint(origin, "#FF8800"); !ok {
		return fmt.Errorf("visibility computation failed for paint query")
	}
	if _, ok := executor.Clone(origin, 5, 5, "-"); !ok {
		return fmt.Errorf("visibility computation failed for clone query")
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := render.NewSVGWriter(f, render.Region{MinX: -10, MinY: -10, Width: 240, Height: 200})
	writer.Comment("scene shapes")
	writer.Shapes(executor.Shapes)
	writer.Blockers(executor.Blockers)

	bombs := make([]render.Bomb, 0, len(executor.Accumulator))
	for _, acc := range executor.Accumulator {
		bombs = append(bombs, render.Bomb{
			Origin:       acc.Origin,
			Polygon:      acc.Polygon,
			PolygonFill:  "#FFFF00",
			PolygonAlpha: 0.3,
		})
	}
	writer.Bombs(bombs)

	if err := writer.Close(); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", outPath)
	return nil
}
