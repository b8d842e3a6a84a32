// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package compare

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bitdiff/bitdiff/internal/log"
)

// ErrLengthMismatch is matched by every *LengthMismatchError.
var ErrLengthMismatch = errors.New("messages must be of the same length")

// LengthMismatchError reports the symbol counts of two sequences that cannot
// be compared.
type LengthMismatchError struct {
	Len1 int
	Len2 int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s (%d != %d)", ErrLengthMismatch, e.Len1, e.Len2)
}

// Is lets errors.Is(err, ErrLengthMismatch) succeed.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// Report is the result of comparing two sequences.
type Report struct {
	Message1     string `json:"message1" yaml:"message1"`
	Message2     string `json:"message2" yaml:"message2"`
	Highlighted1 string `json:"highlighted1" yaml:"highlighted1"`
	Highlighted2 string `json:"highlighted2" yaml:"highlighted2"`
	// Length is the number of symbols in each message.
	Length int `json:"length" yaml:"length"`
	Count  int `json:"count" yaml:"count"`
	// Positions holds the 0-based mismatch indices in ascending order. It is
	// never nil.
	Positions []int `json:"positions" yaml:"positions"`
}

// Detected reports whether any mismatch was found.
func (r Report) Detected() bool {
	return r.Count > 0
}

// ErrorRate returns the fraction of mismatched symbols, or 0 for empty
// messages.
func (r Report) ErrorRate() float64 {
	if r.Length == 0 {
		return 0
	}
	return float64(r.Count) / float64(r.Length)
}

// Bracket is the default marker applied to mismatched symbols.
func Bracket(symbol string) string {
	return "[" + symbol + "]"
}

// Compare walks both messages in lockstep and collects the positions where
// their symbols differ. Messages with different symbol counts yield a
// *LengthMismatchError and no Report.
func Compare(message1, message2 string) (Report, error) {
	s1, s2 := Symbols(message1), Symbols(message2)
	if len(s1) != len(s2) {
		log.Debugf("length mismatch: len1=%d len2=%d", len(s1), len(s2))
		return Report{}, &LengthMismatchError{Len1: len(s1), Len2: len(s2)}
	}

	positions := []int{}
	for i := range s1 {
		if s1[i] != s2[i] {
			positions = append(positions, i)
		}
	}
	log.Tracef("compared %d symbols: positions=%v", len(s1), positions)

	return Report{
		Message1:     message1,
		Message2:     message2,
		Highlighted1: Highlight(message1, positions, Bracket),
		Highlighted2: Highlight(message2, positions, Bracket),
		Length:       len(s1),
		Count:        len(positions),
		Positions:    positions,
	}, nil
}

// Highlight renders message with mark applied to every symbol whose index is
// in positions. positions must be ascending. A nil mark leaves the message
// untouched.
func Highlight(message string, positions []int, mark func(string) string) string {
	if mark == nil || len(positions) == 0 {
		return message
	}

	var sb strings.Builder
	sb.Grow(len(message) + 2*len(positions))

	next := 0
	for i, symbol := range Symbols(message) {
		if next < len(positions) && positions[next] == i {
			sb.WriteString(mark(symbol))
			next++
			continue
		}
		sb.WriteString(symbol)
	}

	return sb.String()
}

// Symbols splits message into its symbols. An invalid UTF-8 byte is a symbol
// of its own.
func Symbols(message string) []string {
	symbols := make([]string, 0, len(message))
	for len(message) > 0 {
		_, size := utf8.DecodeRuneInString(message)
		symbols = append(symbols, message[:size])
		message = message[size:]
	}
	return symbols
}
