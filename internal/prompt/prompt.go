// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package prompt collects the two messages to compare when they are not given
// on the command line.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/bitdiff/bitdiff/internal/log"
)

// ErrAborted is returned when the user cancels the interactive prompt.
var ErrAborted = errors.New("input aborted")

var labels = []string{
	"Enter the first binary message: ",
	"Enter the second binary message: ",
}

// Messages reads the two messages to compare. An interactive terminal gets a
// two-field form; anything else is read as two lines.
func Messages(ctx context.Context, in io.Reader, out io.Writer) (string, string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		log.Debugf("prompting interactively on %s", f.Name())
		return interactive(ctx, f, out)
	}
	return Lines(in, out)
}

// Lines writes each prompt to out and reads one line per message from in.
// Only the line terminator is stripped; an empty line is an empty message.
func Lines(in io.Reader, out io.Writer) (string, string, error) {
	reader := bufio.NewReader(in)

	var messages [2]string
	for i, label := range labels {
		if out != nil {
			fmt.Fprint(out, label)
		}

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				return "", "", fmt.Errorf("missing message %d: unexpected end of input", i+1)
			}
			return "", "", fmt.Errorf("failed to read message %d: %w", i+1, err)
		}
		messages[i] = strings.TrimRight(line, "\r\n")
	}

	return messages[0], messages[1], nil
}

func interactive(ctx context.Context, in *os.File, out io.Writer) (string, string, error) {
	p := tea.NewProgram(newModel(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil {
		return "", "", fmt.Errorf("interactive prompt failed: %w", err)
	}

	m := final.(model)
	if m.aborted {
		return "", "", ErrAborted
	}
	return m.inputs[0].Value(), m.inputs[1].Value(), nil
}

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// model is the two-field Bubble Tea form behind the interactive prompt.
type model struct {
	inputs  []textinput.Model
	focus   int
	aborted bool
}

func newModel() model {
	m := model{inputs: make([]textinput.Model, len(labels))}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "0101..."
		ti.CharLimit = 0
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if m.focus == len(m.inputs)-1 {
				m.inputs[m.focus].Blur()
				return m, tea.Quit
			}
			m.inputs[m.focus].Blur()
			m.focus++
			return m, m.inputs[m.focus].Focus()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m model) View() string {
	var sb strings.Builder
	for i, ti := range m.inputs {
		sb.WriteString(labelStyle.Render(labels[i]))
		sb.WriteString(ti.View())
		sb.WriteString("\n")
	}
	sb.WriteString(helpStyle.Render("ENTER: next/compare, ESC: quit"))
	sb.WriteString("\n")
	return sb.String()
}
