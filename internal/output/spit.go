// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v2"

	"github.com/bitdiff/bitdiff/internal/compare"
	"github.com/bitdiff/bitdiff/internal/config"
	"github.com/bitdiff/bitdiff/internal/log"
)

// Formats lists the accepted values of Options.Format.
var Formats = []string{"text", "json", "yaml"}

// NoErrorsMessage is printed in text output when the messages match.
const NoErrorsMessage = "No errors detected."

// Options controls how a report is rendered.
type Options struct {
	// Format is one of Formats. Empty means text.
	Format string
	// Color styles mismatched symbols in text output.
	Color bool
	// Stats adds an error rate line to text output.
	Stats bool
}

// document is the shape written for json and yaml output.
type document struct {
	compare.Report `yaml:",inline"`
	Detected       bool    `json:"detected" yaml:"detected"`
	ErrorRate      float64 `json:"error_rate" yaml:"error_rate"`
}

// Spit writes r to w in the requested format. If w is nil, os.Stdout is used.
func Spit(r compare.Report, opts Options, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	format := opts.Format
	if format == "" {
		format = "text"
	}
	log.Debugf("rendering report: format=%s color=%t stats=%t", format, opts.Color, opts.Stats)

	doc := document{Report: r, Detected: r.Detected(), ErrorRate: r.ErrorRate()}

	switch format {
	case "text":
		return TextWriter(r, opts, w)
	case "json":
		jsonOutput, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonOutput))
		return err
	case "yaml":
		yamlOutput, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = w.Write(yamlOutput)
		return err
	default:
		return fmt.Errorf("unknown output format %q: must be one of %v", format, Formats)
	}
}

// TextWriter renders the annotated comparison. Mismatched symbols are always
// bracketed; with opts.Color they are also styled.
func TextWriter(r compare.Report, opts Options, w io.Writer) error {
	h1, h2 := r.Highlighted1, r.Highlighted2
	if opts.Color && r.Detected() {
		style := lipgloss.NewStyle().Bold(true).Foreground(mismatchColor())
		mark := func(symbol string) string {
			return style.Render(compare.Bracket(symbol))
		}
		h1 = compare.Highlight(r.Message1, r.Positions, mark)
		h2 = compare.Highlight(r.Message2, r.Positions, mark)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Binary Message 1: %s\n", h1)
	fmt.Fprintf(&sb, "Binary Message 2: %s\n", h2)
	fmt.Fprintf(&sb, "Number of errors: %d\n", r.Count)
	if r.Detected() {
		fmt.Fprintf(&sb, "Error positions: %s\n", FormatPositions(r.Positions))
	} else {
		fmt.Fprintln(&sb, NoErrorsMessage)
	}

	if opts.Stats {
		fmt.Fprintf(&sb, "Error rate: %s%% (%s of %s symbols)\n",
			humanize.FormatFloat("#,###.##", r.ErrorRate()*100),
			humanize.Comma(int64(r.Count)),
			humanize.Comma(int64(r.Length)))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatPositions renders positions as a bracketed, comma separated list,
// e.g. "[0, 3]".
func FormatPositions(positions []int) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = strconv.Itoa(p)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// mismatchColor returns the configured mismatch color. If none is configured,
// a red that reads well on the detected terminal background is used.
func mismatchColor() color.Color {
	if c, err := config.GetString("colors.mismatch"); err == nil {
		return lipgloss.Color(c)
	}

	if lipgloss.HasDarkBackground(os.Stdin, os.Stdout) {
		return lipgloss.Color("#ff5f5f")
	}
	return lipgloss.Color("#d70000")
}
