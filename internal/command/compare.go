// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/bitdiff/bitdiff/internal/compare"
	"github.com/bitdiff/bitdiff/internal/config"
	"github.com/bitdiff/bitdiff/internal/meta"
	"github.com/bitdiff/bitdiff/internal/output"
	"github.com/bitdiff/bitdiff/internal/prompt"
)

// compareCommandAction is the action handler for the "compare" subcommand. It
// takes the two messages from the positional arguments, or prompts for them
// when none are given, and writes the comparison report.
func compareCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	log.Debugf("Executing action for %v", cmd.Args().Slice())

	config.Config.Namespace = "compare"

	message1, message2, err := resolveMessages(ctx, cmd, meta)
	if err != nil {
		return err
	}

	if cmd.Bool("strict") {
		for i, m := range []string{message1, message2} {
			if err := compare.ValidateBinary(m); err != nil {
				return fmt.Errorf("message %d: %w", i+1, err)
			}
		}
	}

	report, err := compare.Compare(message1, message2)
	if err != nil {
		return err
	}
	log.Debugf("compare done: count=%d length=%d", report.Count, report.Length)

	return output.Spit(report, output.Options{
		Format: cmd.String("output"),
		Color:  cmd.Bool("color"),
		Stats:  cmd.Bool("stats"),
	}, meta.Out)
}

// resolveMessages returns the two messages to compare. Prompts go to the
// report stream for text output and to meta.Err otherwise, so json and yaml
// documents stay parseable.
func resolveMessages(ctx context.Context, cmd *cli.Command, meta meta.Meta) (string, string, error) {
	args := operands(cmd, meta.Args)
	switch len(args) {
	case 2:
		return args[0], args[1], nil
	case 0:
		promptOut := meta.Out
		if cmd.String("output") != "text" {
			promptOut = meta.Err
		}
		if promptOut == nil {
			promptOut = os.Stderr
		}
		in := meta.In
		if in == nil {
			in = os.Stdin
		}
		return prompt.Messages(ctx, in, promptOut)
	default:
		return "", "", fmt.Errorf("expected 2 messages, got %d", len(args))
	}
}

// operands returns the positional arguments that follow cmd's name in args.
// cmd.Args() drops empty strings, but "" is a valid message, so the raw
// arguments are walked instead, skipping flags and the values of non-bool
// flags. Everything after "--" is an operand.
func operands(cmd *cli.Command, args []string) []string {
	start := -1
	for i := 1; i < len(args); i++ {
		if args[i] == cmd.Name {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return cmd.Args().Slice()
	}

	valued := map[string]bool{}
	for _, f := range cmd.Flags {
		if _, ok := f.(*cli.BoolFlag); ok {
			continue
		}
		for _, name := range f.Names() {
			valued["-"+name] = true
			valued["--"+name] = true
		}
	}

	result := []string{}
	for i := start; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return append(result, args[i+1:]...)
		case len(a) > 1 && strings.HasPrefix(a, "-"):
			if valued[a] {
				i++
			}
		default:
			result = append(result, a)
		}
	}
	return result
}

// compareCommandBuilder constructs the "compare" subcommand.
func compareCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "compare two binary messages",
		UsageText: "bitdiff compare [options] [message1 message2]",
		Metadata:  map[string]any{"meta": meta},
		Flags: append(NewGlobalFlags("compare", meta.Config.Source), []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "reject symbols other than 0 and 1",
				Value: false,
			},
		}...),
		Action: compareCommandAction,
	}
}
