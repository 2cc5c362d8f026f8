package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/loopcontext/diagcat"
)

// verifyConfig holds flags for the verify command.
type verifyConfig struct {
	def     string
	in      string
	listAll bool
}

func usageVerify() {
	fmt.Fprintf(os.Stderr, `usage: diagcat verify [options]

Verify loads a translation file (.db, .yaml or .strings) against the
catalog definition and reports coverage: how many diagnostics carry a
translation, which ids are still untranslated, and which raw ids in the
file match nothing in the catalog.

Flags:
`)
	flag.CommandLine.PrintDefaults()
}

func parseVerifyFlags(args []string) (*verifyConfig, error) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	fs.Usage = usageVerify
	var cfg verifyConfig
	fs.StringVar(&cfg.def, "def", "", "Catalog definition file (YAML records of id/msg). Required.")
	fs.StringVar(&cfg.in, "in", "", "Translation file to verify (.db, .yaml or .strings). Required.")
	fs.BoolVar(&cfg.listAll, "all", false, "List every untranslated id, not just the summary.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// stderrObserver surfaces unknown-id notices as bracketed markers on the
// error stream while the input is loading.
type stderrObserver struct{}

func (stderrObserver) OnUnknownID(locale string, rawID string) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "[!] Unknown diagnostic: %s\n", rawID)
}

func runVerify(cfg *verifyConfig) error {
	if cfg.in == "" {
		return fmt.Errorf("verify: -in is required")
	}
	cat, err := loadDefinition(cfg.def)
	if err != nil {
		return err
	}

	producer, err := diagcat.FileProducer(cat, cfg.in, diagcat.Config{Observer: stderrObserver{}})
	if err != nil {
		return err
	}

	translated := make(map[diagcat.ID]bool, cat.Count())
	producer.ForEachAvailable(func(id diagcat.ID, text string) {
		translated[id] = true
	})
	if producer.State() == diagcat.FailedInitialization {
		return fmt.Errorf("verify: %s could not be loaded", cfg.in)
	}

	var missing []diagcat.ID
	for i := 0; i < cat.Count(); i++ {
		if !translated[diagcat.ID(i)] {
			missing = append(missing, diagcat.ID(i))
		}
	}

	fmt.Printf("%d of %d diagnostics translated\n", len(translated), cat.Count())
	for _, rawID := range producer.UnknownIDs() {
		color.New(color.FgYellow).Printf("unknown id: %s\n", rawID)
	}
	if cfg.listAll {
		for _, id := range missing {
			fmt.Printf("untranslated: %s\n", cat.Name(id))
		}
	} else if len(missing) > 0 {
		fmt.Printf("%d untranslated (run with -all to list)\n", len(missing))
	}
	if len(missing) == 0 && len(producer.UnknownIDs()) == 0 {
		color.New(color.FgGreen).Println("complete")
	}
	return nil
}
