package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go_pixmap/pkg/transform"
)

const usage = `Usage: pixmap [flags] input...

Reads each input image, applies the transforms given by -op in order and
writes the result. Inputs may be ppm (P6), qoi, png, jpeg, gif, bmp or tiff;
"-" reads standard input.

Flags:
`

type config struct {
	ops     []string
	output  string
	suffix  string
	format  string
	workers int
	jobs    int
	force   bool
	verbose bool
	inputs  []string
}

// parseConfig reads flags from args. Defaults of -workers, -jobs and -format can be
// overridden by PIXMAP_WORKERS, PIXMAP_JOBS and PIXMAP_FORMAT.
func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	defaults := config{
		suffix:  "_out",
		workers: 0,
		jobs:    4,
	}
	if v := getenv("PIXMAP_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return config{}, fmt.Errorf("PIXMAP_WORKERS: %w", err)
		}
		defaults.workers = n
	}
	if v := getenv("PIXMAP_JOBS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return config{}, fmt.Errorf("PIXMAP_JOBS: %w", err)
		}
		defaults.jobs = n
	}
	if v := getenv("PIXMAP_FORMAT"); v != "" {
		defaults.format = v
	}

	var cfg config
	var ops string
	fs := flag.NewFlagSet("pixmap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&ops, "op", "", "Comma-separated transforms to apply in order ("+strings.Join(transform.Names(), ",")+")")
	fs.StringVar(&cfg.output, "o", "", "Output file for a single input, \"-\" for standard output")
	fs.StringVar(&cfg.suffix, "suffix", defaults.suffix, "Suffix added to input names when -o is not given")
	fs.StringVar(&cfg.format, "format", defaults.format, "Output format ("+strings.Join(formatNames(), ",")+"), default from the -o extension or ppm")
	fs.IntVar(&cfg.workers, "workers", defaults.workers, "Goroutines per filter, 0 means GOMAXPROCS")
	fs.IntVar(&cfg.jobs, "jobs", defaults.jobs, "Files processed concurrently")
	fs.BoolVar(&cfg.force, "force", false, "Write binary output to a terminal")
	fs.BoolVar(&cfg.verbose, "v", false, "Log every processed file")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	cfg.inputs = fs.Args()

	if ops != "" {
		for _, name := range strings.Split(ops, ",") {
			name = strings.TrimSpace(name)
			if _, ok := transform.Lookup(name); !ok {
				return config{}, fmt.Errorf("unknown transform %q, want one of %s", name, strings.Join(transform.Names(), ","))
			}
			cfg.ops = append(cfg.ops, name)
		}
	}

	if cfg.format == "" && cfg.output != "" && cfg.output != "-" {
		cfg.format, _ = formatForName(cfg.output)
	}
	if cfg.format == "" {
		cfg.format = "ppm"
	}
	if _, ok := formats[cfg.format]; !ok {
		return config{}, fmt.Errorf("unknown format %q, want one of %s", cfg.format, strings.Join(formatNames(), ","))
	}

	switch {
	case len(cfg.inputs) == 0:
		fs.Usage()
		return config{}, errors.New("no input files")
	case len(cfg.inputs) > 1 && cfg.output != "":
		return config{}, errors.New("-o needs exactly one input")
	case cfg.jobs < 1:
		return config{}, fmt.Errorf("-jobs must be positive, got %d", cfg.jobs)
	}
	for _, in := range cfg.inputs {
		if in == "-" && len(cfg.inputs) > 1 {
			return config{}, errors.New("standard input can only be read as the sole input")
		}
	}

	return cfg, nil
}
