// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/bitdiff/bitdiff/internal/config"
	"github.com/bitdiff/bitdiff/internal/log"
	"github.com/bitdiff/bitdiff/internal/meta"
)

// InitApp builds the root command. in and out are the streams commands read
// messages from and write reports to, and errOut takes prompts that must not
// mix with a report; nil means stdin, stdout and stderr.
func InitApp(ctx context.Context, args []string, in io.Reader, out io.Writer, errOut io.Writer) (*cli.Command, error) {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	// A missing config file is fine; flags fall back to env and defaults.
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("config not loaded: err=%v", err)
	}

	meta := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		In:      in,
		Out:     out,
		Err:     errOut,
	}

	app := &cli.Command{
		Name:      "bitdiff",
		Usage:     "Binary message comparison",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "bitdiff version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		compareCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
