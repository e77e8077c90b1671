// SPDX-License-Identifier: MIT

// Command pilp reads a YAML problem description and prints the
// lex-optimal piecewise-affine relation solver.PartialLexopt computes for
// it (§2.1). It is the only place in this module that performs I/O; every
// other package remains a pure function of its inputs.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pilpsolver/pilp/polyset"
	"github.com/pilpsolver/pilp/solver"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "pilp:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("pilp", flag.ContinueOnError)
	path := fs.String("f", "", "path to a YAML problem file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("missing -f <problem.yaml>")
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *path, err)
	}

	var p problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parsing %s: %w", *path, err)
	}

	dom, err := p.buildDomain()
	if err != nil {
		return err
	}
	bmap, err := p.buildMap()
	if err != nil {
		return err
	}

	var opts []solver.Option
	if p.Rational {
		opts = append(opts, solver.WithRational())
	}
	if p.MaxSplits > 0 {
		opts = append(opts, solver.WithMaxSplits(p.MaxSplits))
	}

	rel, err := solver.PartialLexopt(bmap, dom, p.Max, opts...)
	if err != nil {
		return fmt.Errorf("solving: %w", err)
	}

	printer := polyset.NewPrinter(out)
	return printRelation(printer, &p, rel)
}
