// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package compare holds the symbol-by-symbol comparator. It is pure: Compare
// takes two equal-length sequences and returns a Report describing where they
// differ. Rendering a Report to a terminal or document lives in package
// output.
//
// A symbol is one UTF-8 encoded character. Symbols are equal only when their
// encoded bytes are identical, so comparison is case-sensitive and does no
// normalization.
package compare
