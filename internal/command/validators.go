// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/bitdiff/bitdiff/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// OutputValidator accepts the formats package output can render.
func OutputValidator(value any) error {
	for _, v := range output.Formats {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", output.Formats)
}
