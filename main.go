// Command pixmap converts images and applies pixel transforms to them.
//
// Usage:
//
//	pixmap -op sobel -o edges.ppm photo.ppm
//	pixmap -op negate,hmirror -format png a.ppm b.qoi c.png
//	cat photo.ppm | pixmap -op vmirror -o - - > flipped.ppm
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"go_pixmap/internal/workerpool"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pixmap: ")

	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.verbose {
		logger = log.Default()
	}

	pool := workerpool.New(cfg.workers)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	p := newProcessor(cfg, pool, logger)
	p.isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
	err = p.run(ctx)

	stop()
	pool.Close()
	if err != nil {
		log.Fatal(err)
	}
}
