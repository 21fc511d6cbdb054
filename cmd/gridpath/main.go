// Command gridpath is an interactive shortest-path board for the terminal.
//
// Usage:
//
//	gridpath [-width 15] [-height 15] [-seed 1] [-print] [-debug]
//
// With -print it randomizes the board, searches corner to corner and
// writes the board as text instead of starting the TUI.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/session"
	"github.com/katalvlaran/gridpath/tui"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	var (
		width     = flag.Int("width", 15, "Board width in cells")
		height    = flag.Int("height", 15, "Board height in cells")
		seed      = flag.Int64("seed", 1, "Terrain seed")
		printMode = flag.Bool("print", false, "Randomize, search corner to corner and print the board")
		debug     = flag.Bool("debug", false, "Log at debug level")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Shortest paths on a grid with blockable edges.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                         # Start interactive TUI\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -print -seed 7          # Print a random board and its path\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -width 40 -height 20    # Larger board\n", os.Args[0])
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *width, *height, *seed, *printMode, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, width, height int, seed int64, printOnly, debug bool) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	// the TUI owns the terminal, so interactive runs only log when asked to
	var out io.Writer = os.Stderr
	if !printOnly && !debug {
		out = io.Discard
	}
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := session.DefaultConfig()
	cfg.Logger = logger
	cfg.Registerer = prometheus.NewRegistry()
	store := session.NewStore(cfg)

	sess, err := store.Create(width, height)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Delete(sess.ID); err != nil {
			logger.Warn("session_delete_failed", slog.String("session", sess.ID.String()), slog.Any("error", err))
		}
	}()

	if printOnly {
		return printBoard(ctx, os.Stdout, sess, seed)
	}

	return interactive(ctx, sess, seed, logger)
}

// printBoard randomizes sess, searches corner to corner and writes the board.
func printBoard(ctx context.Context, w io.Writer, sess *session.Session, seed int64) error {
	walls, err := sess.Randomize(seed)
	if err != nil {
		return err
	}
	g := sess.Graph()
	start := gridgraph.Node{X: 0, Y: 0}
	end := gridgraph.Node{X: g.Width() - 1, Y: g.Height() - 1}
	res, err := sess.FindPath(ctx, start, end)
	if err != nil {
		return err
	}

	fmt.Fprint(w, render.ASCII(g, res.Path, render.WithStart(start), render.WithEnd(end)))
	steps := "unreachable"
	if res.Found() {
		steps = fmt.Sprintf("%d steps", len(res.Path)-1)
	}
	_, err = fmt.Fprintf(w, "seed %d: %d walls, %d regions, %s -> %s %s\n",
		seed, walls, len(g.Regions()), start, end, steps)

	return err
}

func interactive(ctx context.Context, sess *session.Session, seed int64, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to setup terminal: %w", err)
	}
	defer screen.Fini()

	return tui.New(screen, sess, seed, logger).Run(ctx)
}
