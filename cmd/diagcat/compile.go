package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/loopcontext/diagcat"
)

// compileConfig holds flags for the compile command.
type compileConfig struct {
	def string
	in  string
	out string
}

func usageCompile() {
	fmt.Fprintf(os.Stderr, `usage: diagcat compile [options]

Compile loads a translated .yaml or .strings file, matches its records
against the catalog definition, and emits the serialized .db lookup table
used for production distribution. Unknown ids are reported and dropped.

Flags:
`)
	flag.CommandLine.PrintDefaults()
}

func parseCompileFlags(args []string) (*compileConfig, error) {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	fs.Usage = usageCompile
	var cfg compileConfig
	fs.StringVar(&cfg.def, "def", "", "Catalog definition file (YAML records of id/msg). Required.")
	fs.StringVar(&cfg.in, "in", "", "Translated input file (.yaml or .strings). Required.")
	fs.StringVar(&cfg.out, "out", "", "Output path; must end in .db. Required.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func runCompile(cfg *compileConfig) error {
	if cfg.in == "" || cfg.out == "" {
		return fmt.Errorf("compile: -in and -out are required")
	}
	cat, err := loadDefinition(cfg.def)
	if err != nil {
		return err
	}

	producer, err := diagcat.FileProducer(cat, cfg.in, diagcat.Config{Observer: stderrObserver{}})
	if err != nil {
		return err
	}

	writer := diagcat.NewTableWriter()
	count := 0
	producer.ForEachAvailable(func(id diagcat.ID, text string) {
		writer.Insert(id, text)
		count++
	})
	if producer.State() == diagcat.FailedInitialization {
		return fmt.Errorf("compile: %s could not be loaded", cfg.in)
	}

	if err := writer.Emit(cfg.out); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "diagcat: wrote %s (%d of %d diagnostics translated)\n", cfg.out, count, cat.Count())
	return nil
}
