// SPDX-License-Identifier: EPL-2.0

// Package cc computes generalized cross-correlations between frequency-
// domain signals, for time-difference-of-arrival (TDOA) estimation between
// microphone channels.
//
// # Correlation Functions
//
// GCCPHAT normalizes the cross-power spectral density by its per-bin
// magnitude (the phase transform), which sharpens the correlation peak and
// discards amplitude information:
//
//	corr, err := cc.GCCPHAT(x, y, 1)
//
// CrossCorrelation instead normalizes by the maximum magnitude of the
// cross-power spectrum, preserving relative amplitudes:
//
//	corr, err := cc.CrossCorrelation(x, y, 1)
//
// Both accept an integer upsampling factor; the spectrum is zero-padded in
// the frequency domain (FreqUpsample) so the correlation is interpolated by
// the same factor in the time domain.
//
// The resulting slice is indexed by lag in FFT bin order: non-negative lags
// first, then wraparound negative lags.
//
// # TDOA
//
// TDOA locates the correlation peak and maps wraparound indices back to
// negative lags:
//
//	lag, err := cc.TDOA(x, y, cc.PHAT(1))          // in samples
//	sec, err := cc.TDOASeconds(x, y, cc.PHAT(1), 16000)
//
// With an upsampling factor u, lags are expressed in upsampled sample
// units, i.e. pass fs*u to TDOASeconds.
//
// # Frames and Pairs
//
// AcrossTime applies a correlation Func frame by frame to two
// time-frequency signals, and Pairwise does so for every unordered channel
// pair of a multichannel time-frequency signal:
//
//	pw, err := cc.Pairwise(tf, cc.PHAT(4))
//	corr01 := pw[cc.Pair{I: 0, J: 1}]
package cc
