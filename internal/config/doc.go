// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for bitdiff's user
// configuration. The configuration is expected to be a YAML document located
// in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/bitdiff.yaml or $HOME/.config/bitdiff.yaml
//   - macOS: $HOME/Library/Application Support/bitdiff.yaml
//   - Windows: %APPDATA%/bitdiff.yaml
//
// BITDIFF_CFG_FILE overrides the location. Keys may be namespaced by
// subcommand, so "compare.output" is preferred over "output" while the compare
// command runs.
package config
