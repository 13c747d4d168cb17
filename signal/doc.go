// SPDX-License-Identifier: EPL-2.0

// Package signal defines the canonical multichannel signal representation
// and basic time-domain measurements.
//
// # Signal Layout
//
// A time-domain signal is a [][]float64 with one inner slice per channel:
//
//	sig[channel][sample]
//
// Sample values are normalized floats in [-1.0, 1.0]. All channels of a
// valid signal have the same length; Validate checks this at API boundaries.
// Note that on disk audio is usually stored interleaved, i.e. (samples,
// channels) — the formats packages transpose while decoding.
//
// # Measurements
//
//	p := signal.Power(sig)        // per-channel mean square amplitude
//	r, _ := signal.SNR(sandn, n)  // per-channel SNR in dB
//	mono := signal.MixToMono(sig) // averaging mixdown
//
// SNR estimates the pure-signal power as Power(sandn) - Power(noise); a
// noise estimate that is louder than the observed mixture yields a NaN or
// -Inf entry, which is passed through untouched.
//
// # Decoders
//
// The Decoder interface is implemented by the formats subpackages. A
// Registry maps format keys (e.g. "wav", "mp3") to decoders:
//
//	registry := signal.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, _ := registry.Get("wav")
//	fs, sig, err := dec.Decode(file)
package signal
