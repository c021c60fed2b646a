// Package app wires configuration, route sources, graph building and the
// shortest-path query behind the stoproute command.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/stoproute/bfs"
	"github.com/katalvlaran/stoproute/builder"
	"github.com/katalvlaran/stoproute/config"
	"github.com/katalvlaran/stoproute/core"
	"github.com/katalvlaran/stoproute/dijkstra"
)

// ErrNoInput is returned when a start or end location is neither passed
// nor readable from the input stream.
var ErrNoInput = errors.New("app: missing start or end location")

// Prompts written before reading a location from the input stream.
const (
	PromptStart = "Enter start location: "
	PromptEnd   = "Enter end location: "
)

// Options are the command-line overrides. Empty fields keep the
// configuration value.
type Options struct {
	ConfigPath string
	Source     string
	RoutesPath string
	From       string
	To         string
}

// Run loads the configured routes, builds the stop network and answers one
// shortest-path query, prompting on in for locations not given in opts.
// A query without a path is a normal outcome, not an error.
func Run(ctx context.Context, opts Options, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Source != "" {
		cfg.Source = opts.Source
	}
	if opts.RoutesPath != "" {
		cfg.Routes.Path = opts.RoutesPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	g, err := buildNetwork(ctx, cfg)
	if err != nil {
		return err
	}

	lines := bufio.NewScanner(in)
	from, err := location(opts.From, PromptStart, lines, out)
	if err != nil {
		return err
	}
	to, err := location(opts.To, PromptEnd, lines, out)
	if err != nil {
		return err
	}

	dist, path := dijkstra.ShortestPath(g, from, to)
	if math.IsInf(dist, 1) {
		log.Printf("no path: %s", explain(g, from, to))
		_, err = fmt.Fprintf(out, "No path found from %s to %s.\n", from, to)
		return err
	}

	if _, err = fmt.Fprintf(out, "Shortest distance from %s to %s is %s km.\n", from, to, FormatKM(dist)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Route: %s\n", strings.Join(path, " -> "))

	return err
}

func buildNetwork(ctx context.Context, cfg config.AppConfig) (*core.Graph, error) {
	src, closeSrc, err := openSource(cfg)
	if err != nil {
		return nil, err
	}
	defer closeSrc()

	opts := []builder.BuilderOption{
		builder.WithDefaultDistance(*cfg.Builder.DefaultDistanceKM),
	}
	if !cfg.Builder.QuietSkips {
		opts = append(opts, builder.WithSkipHook(func(s builder.Skip) {
			log.Printf("warn: %s", s)
		}))
	}

	g, err := builder.BuildGraphFromRoutes(ctx, src, opts...)
	if err != nil {
		return nil, err
	}
	log.Printf("network from %s source: %d stops, %d hops, %d components",
		cfg.Source, g.StopCount(), g.HopCount(), len(bfs.Components(g)))

	return g, nil
}

// location returns given when set, otherwise prompts and reads one line.
func location(given, prompt string, lines *bufio.Scanner, out io.Writer) (string, error) {
	if given != "" {
		return given, nil
	}
	if _, err := io.WriteString(out, prompt); err != nil {
		return "", err
	}
	if !lines.Scan() {
		if err := lines.Err(); err != nil {
			return "", fmt.Errorf("app: read location: %w", err)
		}
		return "", ErrNoInput
	}
	loc := strings.TrimSpace(lines.Text())
	if loc == "" {
		return "", ErrNoInput
	}

	return loc, nil
}

// explain says why from and to are not connected.
func explain(g *core.Graph, from, to string) string {
	switch {
	case !g.HasStop(from):
		return fmt.Sprintf("stop %q is not served by any route", from)
	case !g.HasStop(to):
		return fmt.Sprintf("stop %q is not served by any route", to)
	}

	res, err := bfs.Reach(g, from)
	if err == nil && !res.Reached(to) {
		return fmt.Sprintf("%q and %q are in different components", from, to)
	}

	return "unreachable"
}

// FormatKM renders a distance in its shortest exact form, always with a
// fractional part: 2.8 → "2.8", 4 → "4.0".
func FormatKM(d float64) string {
	s := strconv.FormatFloat(d, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
