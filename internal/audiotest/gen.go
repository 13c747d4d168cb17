// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates deterministic multichannel test signals.
package audiotest

import (
	"math"
	"math/rand"
)

// Sine returns channels identical sinusoids of the given frequency, sample
// rate and amplitude.
func Sine(channels, samples int, freq, fs, amp float64) [][]float64 {
	sig := make([][]float64, channels)
	for ch := range sig {
		sig[ch] = make([]float64, samples)
		for i := range sig[ch] {
			sig[ch][i] = amp * math.Sin(2*math.Pi*freq*float64(i)/fs)
		}
	}
	return sig
}

// Noise returns channels of independent seeded white noise in [-amp, amp].
func Noise(channels, samples int, amp float64, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	sig := make([][]float64, channels)
	for ch := range sig {
		sig[ch] = make([]float64, samples)
		for i := range sig[ch] {
			sig[ch][i] = (rng.Float64()*2 - 1) * amp
		}
	}
	return sig
}

// Delayed returns one channel per delay, each holding the same seeded white
// noise shifted right by that many samples (zero padded at the start).
// Useful for exercising TDOA estimation with a known ground truth.
func Delayed(samples int, amp float64, seed int64, delays ...int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	base := make([]float64, samples)
	for i := range base {
		base[i] = (rng.Float64()*2 - 1) * amp
	}

	sig := make([][]float64, len(delays))
	for ch, d := range delays {
		sig[ch] = make([]float64, samples)
		for i := d; i < samples; i++ {
			sig[ch][i] = base[i-d]
		}
	}
	return sig
}
