package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mikenye/geom2d/boolean"
	"github.com/mikenye/geom2d/options"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "boolcsg",
		Usage:     "Combines two polygon sets, read as JSON, with a planar boolean operation",
		UsageText: "boolcsg --a <file> --b <file> --op <union|intersect|subtract|xor>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "a",
				Usage:    "Path to polygon set A, as JSON (a boolean.Polygon)",
				OnlyOnce: true,
				Required: true,
			},
			&cli.StringFlag{
				Name:     "b",
				Usage:    "Path to polygon set B, as JSON (a boolean.Polygon)",
				OnlyOnce: true,
				Required: true,
			},
			&cli.StringFlag{
				Name:     "op",
				Usage:    "union | intersect | subtract | xor",
				OnlyOnce: true,
				Value:    "union",
			},
			&cli.Float64Flag{
				Name:     "epsilon",
				Usage:    "Rasterisation tolerance; 0 uses the package default",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      app,
		Authors:     []any{"https://github.com/mikenye"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func parseOp(s string) (boolean.Operation, error) {
	switch strings.ToLower(s) {
	case "union":
		return boolean.Union, nil
	case "intersect":
		return boolean.Intersect, nil
	case "subtract":
		return boolean.Subtract, nil
	case "xor":
		return boolean.Xor, nil
	default:
		return 0, fmt.Errorf("unknown operation %q", s)
	}
}

func loadPolygon(path string) (boolean.Polygon, error) {
	var p boolean.Polygon
	f, err := os.Open(path)
	if err != nil {
		return p, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&p); err != nil {
		return p, fmt.Errorf("decoding %s: %w", path, err)
	}
	return p, nil
}

func app(_ context.Context, cmd *cli.Command) error {
	op, err := parseOp(cmd.String("op"))
	if err != nil {
		return err
	}

	a, err := loadPolygon(cmd.String("a"))
	if err != nil {
		return err
	}
	b, err := loadPolygon(cmd.String("b"))
	if err != nil {
		return err
	}

	var opts []options.GeometryOptionsFunc
	if eps := cmd.Float64("epsilon"); eps > 0 {
		opts = append(opts, options.WithEpsilon(eps))
	}

	result, err := boolean.Run(a, b, op, opts...)
	if err != nil {
		return err
	}

	out, err := json.Marshal(result)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
