// SPDX-License-Identifier: EPL-2.0

package signal

import "errors"

var (
	ErrEmptySignal     = errors.New("signal has no channels")
	ErrRaggedSignal    = errors.New("signal channels differ in length")
	ErrChannelMismatch = errors.New("inputs differ in channel count")
)
