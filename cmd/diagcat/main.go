package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	sub := os.Args[1]
	args := os.Args[2:]
	var err error
	switch sub {
	case "seed":
		cfg, e := parseSeedFlags(args)
		if e != nil {
			err = e
			break
		}
		err = runSeed(cfg)
	case "compile":
		cfg, e := parseCompileFlags(args)
		if e != nil {
			err = e
			break
		}
		err = runCompile(cfg)
	case "verify":
		cfg, e := parseVerifyFlags(args)
		if e != nil {
			err = e
			break
		}
		err = runVerify(cfg)
	case "help", "-h", "--help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "diagcat: unknown subcommand %q\n", sub)
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "diagcat: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `diagcat - diagnostic localization tooling for seed, compile and verify workflow

usage: diagcat <command> [options]

commands:
  seed       Render the catalog defaults into a translator-facing .yaml or .strings file.
  compile    Compile a translated .yaml or .strings file into a serialized .db table.
  verify     Check a translation file against the catalog; report coverage and unknown ids.

Use 'diagcat seed -h', 'diagcat compile -h' or 'diagcat verify -h' for command-specific flags.
`)
}
