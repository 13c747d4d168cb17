// SPDX-License-Identifier: EPL-2.0

// Package stft converts signals between the time domain and the
// time-frequency domain using windowed, overlapping FFTs.
//
// # Forward Transform
//
//	tf, err := stft.STFT(sig, stft.ColaHamming, 1024, 256)
//
// STFT slides a window of winSize samples across each channel in steps of
// hopSize, multiplies each frame by the window coefficients and computes a
// full complex FFT per frame. The result is a (channels, frames, bins)
// tensor with bins == winSize; a trailing frame that does not fully fit is
// dropped.
//
// # Inverse Transform
//
//	sig, err := stft.ISTFT(tf, 256)
//
// ISTFT inverse-transforms every frame, takes the real part, and
// overlap-adds frames at multiples of hopSize. The output buffer has length
// (frames-1)*hopSize + bins.
//
// # Windows and COLA
//
// Exact reconstruction through STFT followed by ISTFT requires the forward
// window to satisfy the constant-overlap-add (COLA) property at the chosen
// hop: shifted copies of the window must sum to 1. ColaHamming is scaled for
// exactly that. ISTFT does not verify the property; with a non-COLA window
// the reconstruction error is the caller's responsibility.
package stft
