// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV file decoding and encoding for multichannel
// signals.
//
// It uses the github.com/go-audio library for WAV chunk handling. Decoding
// accepts whatever the codec exposes through its PCM buffer (integer PCM of
// common bit depths); samples are normalized to [-1, 1] by dividing by the
// magnitude of the smallest representable integer of the source bit depth,
// and deinterleaved into the (channels, samples) layout. Mono input yields
// a one-channel matrix.
//
// # Decoding
//
//	file, _ := os.Open("array.wav")
//	fs, sig, err := wav.Decoder{}.Decode(file)
//
// The decoder prefers an io.ReadSeeker; any other reader is buffered in
// memory first.
//
// # Encoding
//
// Encoding writes integer PCM at 16, 24 or 32 bits, interleaving the
// (channels, samples) matrix back to the on-disk (samples, channels) order:
//
//	out, _ := os.Create("out.wav")
//	err := wav.Encode(out, 16000, sig, 16)
//
// Save and Load wrap encoding and decoding with file handling; Save always
// writes 16-bit PCM.
package wav
