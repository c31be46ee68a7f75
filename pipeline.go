package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"go_pixmap/pkg/ppm"
	"go_pixmap/pkg/transform"
)

var errTerminal = errors.New("refusing to write binary image data to a terminal, use -force or -o")

type processor struct {
	cfg    config
	runner transform.Runner
	ops    []transform.Op
	logger *log.Logger

	stdin      io.Reader
	stdout     io.Writer
	isTerminal func() bool
}

func newProcessor(cfg config, runner transform.Runner, logger *log.Logger) *processor {
	p := &processor{
		cfg:        cfg,
		runner:     runner,
		logger:     logger,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		isTerminal: func() bool { return false },
	}
	for _, name := range cfg.ops {
		op, _ := transform.Lookup(name)
		p.ops = append(p.ops, op)
	}
	return p
}

// run processes every input, at most cfg.jobs at a time. The first error cancels
// inputs that have not started yet.
func (p *processor) run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.jobs)

	for _, in := range p.cfg.inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return p.process(in, p.outputName(in))
		})
	}
	return g.Wait()
}

func (p *processor) outputName(in string) string {
	if p.cfg.output != "" {
		return p.cfg.output
	}
	if in == "-" {
		return "-"
	}
	base := strings.TrimSuffix(in, filepath.Ext(in))
	return base + p.cfg.suffix + extensions[p.cfg.format][0]
}

func (p *processor) process(in, out string) error {
	start := time.Now()

	img, format, err := p.load(in)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	for i, op := range p.ops {
		img = op(p.runner, img)
		p.logger.Printf("%s: %s (%d/%d)", in, p.cfg.ops[i], i+1, len(p.ops))
	}

	if err := p.save(out, img); err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}

	p.logger.Printf("%s (%s, %dx%d) -> %s (%s) in %v",
		in, format, img.Width(), img.Height(), out, p.cfg.format, time.Since(start).Round(time.Millisecond))
	return nil
}

func (p *processor) load(in string) (*ppm.Image, string, error) {
	if in == "-" {
		return decodeAny(p.stdin)
	}
	f, err := os.Open(in)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return decodeAny(f)
}

func (p *processor) save(out string, img *ppm.Image) error {
	encode := formats[p.cfg.format]

	if out == "-" {
		if p.isTerminal() && !p.cfg.force {
			return errTerminal
		}
		bw := bufio.NewWriter(p.stdout)
		if err := encode(bw, img); err != nil {
			return err
		}
		return bw.Flush()
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	err = encode(bw, img)
	if err == nil {
		err = bw.Flush()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
