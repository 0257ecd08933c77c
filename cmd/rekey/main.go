// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Command rekey renames the property names of a JSON document with the rules of a rule file.
//
// Usage:
//
//	rekey --rules rules.yaml [--strict] [--indent "  "] [--delimiter .] [input.json]
//
// It reads the document from stdin if no input file is given,
// and writes the renamed document to stdout.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/nil-go/rekey"
	"github.com/nil-go/rekey/provider/file"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			logger.Error("Could not rename the document.", "error", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	flags := pflag.NewFlagSet("rekey", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	rulesPath := flags.StringP("rules", "r", "", "path of the rule file (.yaml, .yml or .json)")
	strict := flags.Bool("strict", false, "fail if a renamed path meets a scalar value")
	indent := flags.String("indent", "", "indentation of the output, compact if empty")
	delimiter := flags.String("delimiter", ".", "delimiter between path segments of the rules")
	verbose := flags.BoolP("verbose", "v", false, "log debug messages")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if *rulesPath == "" {
		return errors.New("missing --rules flag")
	}
	if flags.NArg() > 1 {
		return fmt.Errorf("expect at most one input file, got %d", flags.NArg())
	}
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	opts := []rekey.Option{
		rekey.WithLogger(logger),
		rekey.WithDelimiter(*delimiter),
		rekey.WithIndent(*indent),
	}
	if *strict {
		opts = append(opts, rekey.WithStrictShape())
	}
	mapper, err := rekey.Load(file.New(*rulesPath, file.WithLogger(logger)), opts...)
	if err != nil {
		return err //nolint:wrapcheck
	}

	var input []byte
	if path := flags.Arg(0); path != "" && path != "-" {
		input, err = os.ReadFile(path)
	} else {
		input, err = io.ReadAll(stdin)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	output, err := mapper.Rename(input)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if _, err := fmt.Fprintln(stdout, string(output)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
