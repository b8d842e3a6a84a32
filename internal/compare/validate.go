// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package compare

import "fmt"

// InvalidSymbolError names the first symbol of a message that is not a
// binary digit.
type InvalidSymbolError struct {
	Index  int
	Symbol string
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at position %d: want 0 or 1", e.Symbol, e.Index)
}

// ValidateBinary returns an *InvalidSymbolError when message holds anything
// other than '0' and '1'. Compare itself never calls it.
func ValidateBinary(message string) error {
	for i, symbol := range Symbols(message) {
		if symbol != "0" && symbol != "1" {
			return &InvalidSymbolError{Index: i, Symbol: symbol}
		}
	}
	return nil
}
