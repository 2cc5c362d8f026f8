package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/loopcontext/diagcat"
)

// seedConfig holds flags for the seed command.
type seedConfig struct {
	def    string
	format string
	out    string
}

func usageSeed() {
	fmt.Fprintf(os.Stderr, `usage: diagcat seed [options]

Seed renders the catalog definition's default messages into a fresh
translator-facing file, one record per diagnostic in declared order. It
consults no existing translation.

Flags:
`)
	flag.CommandLine.PrintDefaults()
}

func parseSeedFlags(args []string) (*seedConfig, error) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	fs.Usage = usageSeed
	var cfg seedConfig
	fs.StringVar(&cfg.def, "def", "", "Catalog definition file (YAML records of id/msg). Required.")
	fs.StringVar(&cfg.format, "format", "strings", "Output grammar: 'strings' or 'yaml'.")
	fs.StringVar(&cfg.out, "out", "", "Output file. Default stdout.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func runSeed(cfg *seedConfig) error {
	cat, err := loadDefinition(cfg.def)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if cfg.out != "" {
		file, err := os.Create(cfg.out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		out = file
	}

	switch cfg.format {
	case "yaml":
		return diagcat.ConvertToYAML(cat, out)
	case "strings":
		return diagcat.ConvertToStrings(cat, out)
	}
	return fmt.Errorf("seed: unknown format %q (want 'strings' or 'yaml')", cfg.format)
}

func loadDefinition(path string) (*diagcat.Catalog, error) {
	if path == "" {
		return nil, fmt.Errorf("-def is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	cat, err := diagcat.ParseDefinition(data)
	if err != nil {
		return nil, err
	}
	return cat, nil
}
