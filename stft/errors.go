// SPDX-License-Identifier: EPL-2.0

package stft

import "errors"

var (
	ErrWindowSize     = errors.New("window size must be positive")
	ErrHopSize        = errors.New("hop size must be positive")
	ErrEmptySpectrum  = errors.New("time-frequency signal has no frames")
	ErrRaggedSpectrum = errors.New("time-frequency frames differ in size")
)
