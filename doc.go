// SPDX-License-Identifier: EPL-2.0

// Package micarray provides signal-processing primitives for multichannel
// audio analysis, in particular microphone-array recordings: audio file
// I/O, short-time Fourier transforms, power and SNR measurement, and
// generalized cross-correlation (GCC-PHAT) for time-difference-of-arrival
// estimation between channels.
//
// # Signal Layout
//
// Throughout the library a time-domain signal is a [][]float64 in
// (channels, samples) layout with values normalized to [-1, 1], and a
// time-frequency signal is a [][][]complex128 in (channels, frames, bins)
// layout. See the signal package for details.
//
// # Quick Start
//
// The simplest way to estimate inter-channel delays in a recording:
//
//	// Decode a multichannel recording
//	fs, sig, _ := micarray.Load("array.wav")
//
//	// Per-frame GCC-PHAT correlations for every channel pair
//	pw, _ := micarray.PairwiseGCCPHAT(sig, 1024, 256, 1)
//
//	// pw[cc.Pair{I: 0, J: 1}] holds the lag-indexed correlation of
//	// channels 0 and 1 for each time frame
//
// # Building Blocks
//
// For more control, compose the subpackages directly:
//
//	tf, _ := stft.STFT(sig, stft.ColaHamming, 1024, 256)
//	pw, _ := cc.Pairwise(tf, cc.PHAT(4))
//	lag, _ := cc.TDOA(tf[0][t], tf[1][t], cc.PHAT(4))
//
// The stft package converts between the time and time-frequency domains,
// the cc package computes correlations and TDOA, and the signal package
// measures power and SNR.
//
// # File I/O
//
// Load picks a decoder by file extension; WAV, MP3, Ogg Vorbis and AIFF are
// registered by default. Save writes 16-bit PCM WAV:
//
//	fs, sig, err := micarray.Load("recording.ogg")
//	err = micarray.Save("out.wav", fs, sig)
//
// Each format also has its own decoder in formats/, all returning the same
// normalized (channels, samples) layout.
package micarray
