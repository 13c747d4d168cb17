// SPDX-License-Identifier: EPL-2.0

package cc

import "errors"

var (
	ErrUpsampleFactor = errors.New("upsample factor must be a positive integer")
	ErrLengthMismatch = errors.New("spectra differ in length")
	ErrEmptyInput     = errors.New("empty frequency-domain input")
)
