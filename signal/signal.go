// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Validate checks that sig is a well-formed (channels, samples) matrix:
// at least one channel, all channels of equal length.
func Validate(sig [][]float64) error {
	if len(sig) == 0 {
		return ErrEmptySignal
	}
	n := len(sig[0])
	for _, c := range sig[1:] {
		if len(c) != n {
			return ErrRaggedSignal
		}
	}
	return nil
}

// Power returns the mean square amplitude of each channel.
// A zero-length channel yields NaN.
func Power(sig [][]float64) []float64 {
	p := make([]float64, len(sig))
	for i, c := range sig {
		p[i] = floats.Dot(c, c) / float64(len(c))
	}
	return p
}

// SNR returns the signal-to-noise ratio of each channel in dB, given the
// signal with noise and the noise alone. The pure-signal power is estimated
// as Power(sandn) - Power(noise). A noise estimate louder than the mixture
// produces a NaN or -Inf entry; callers are responsible for valid inputs.
func SNR(sandn, noise [][]float64) ([]float64, error) {
	if len(sandn) != len(noise) {
		return nil, ErrChannelMismatch
	}
	pnos := Power(noise)
	psig := Power(sandn)
	out := make([]float64, len(sandn))
	for i := range out {
		out[i] = 10 * math.Log10((psig[i]-pnos[i])/pnos[i])
	}
	return out, nil
}

// MixToMono averages all channels into a single one.
// The signal must be well-formed (see Validate); a nil signal yields nil.
func MixToMono(sig [][]float64) []float64 {
	if len(sig) == 0 {
		return nil
	}
	if len(sig) == 1 {
		out := make([]float64, len(sig[0]))
		copy(out, sig[0])
		return out
	}

	inv := 1.0 / float64(len(sig))
	out := make([]float64, len(sig[0]))
	for _, c := range sig {
		floats.AddScaled(out, inv, c)
	}
	return out
}
