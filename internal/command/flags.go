// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewGlobalFlags returns the flags shared by the comparison commands. When
// cfgPath names a config file, each flag also reads its default from
// "<ns>.<flag>" and then "<flag>" in that file, after any env var.
func NewGlobalFlags(ns string, cfgPath string) (flags []cli.Flag) {
	outputFlag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format (text, json, yaml)",
		Value:   "text",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("BITDIFF_OUTPUT"),
		),
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}

	colorFlag := &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored text output",
		Value:   false,
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("BITDIFF_COLOR"),
		),
	}

	statsFlag := &cli.BoolFlag{
		Name:    "stats",
		Aliases: []string{"s"},
		Usage:   "show the error rate with text output",
		Value:   false,
	}

	if cfgPath != "" {
		NameSpacedValueChainFromConfigFile(ns, cfgPath, outputFlag.Name, &outputFlag.Sources)
		NameSpacedValueChainFromConfigFile(ns, cfgPath, colorFlag.Name, &colorFlag.Sources)
		NameSpacedValueChainFromConfigFile(ns, cfgPath, statsFlag.Name, &statsFlag.Sources)
	}

	flags = []cli.Flag{outputFlag, colorFlag, statsFlag}
	return
}

// NameSpacedValueChainFromConfigFile adds namespaced and global config file
// sources for the named flag to chain.
func NameSpacedValueChainFromConfigFile(ns string, path string, name string, chain *cli.ValueSourceChain) {
	if ns != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(name, altsrc.StringSourcer(path)))
}
