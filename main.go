// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bitdiff/bitdiff/internal/command"
	"github.com/bitdiff/bitdiff/internal/config"
	"github.com/bitdiff/bitdiff/internal/log"
	"github.com/bitdiff/bitdiff/internal/version"
)

var ctx = context.Background()

// commands are the subcommand names the root command knows about.
var commands = []string{"compare", "completion", "help", "h"}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleDefaultCommand inserts "compare" when no known subcommand is given, so
// a naked "bitdiff" prompts for two messages and "bitdiff 10 11" compares.
func handleDefaultCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "compare")
	}
	for _, c := range commands {
		if args[1] == c {
			return args
		}
	}
	if args[1] == "--help" || args[1] == "-h" {
		return args
	}
	return append(args[:1], append([]string{"compare"}, args[1:]...)...)
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleDefaultCommand(args)
	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	return initAndRunApp(args)
}

// processSetOnly handles the @set logic for all commands, expanding the
// config entries under "<command>.<set>" at the @set position.
func processSetOnly(args []string) []string {
	if len(args) < 3 {
		return args
	}

	for i, a := range args[2:] {
		if strings.HasPrefix(a, "@") && len(a) > 1 {
			setArgs, err := config.GetStringSlice(args[1] + "." + a[1:])
			if err != nil {
				log.Warnf("unknown set %s: %v", a, err)
			}
			return expandSet(args, 2+i, setArgs)
		}
	}
	return args
}

// expandSet replaces args[idx] with entries, each split on whitespace.
func expandSet(args []string, idx int, entries []string) []string {
	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	result := make([]string, 0, len(args)-1+len(expanded))
	result = append(result, args[:idx]...)
	result = append(result, expanded...)
	return append(result, args[idx+1:]...)
}
