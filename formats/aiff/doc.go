// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding into
// the (channels, samples) layout.
//
// It uses github.com/go-audio/aiff for chunk handling. Integer PCM samples
// are normalized to [-1, 1] by the source bit depth, exactly as the wav
// package does.
//
//	file, _ := os.Open("recording.aif")
//	fs, sig, err := aiff.Decoder{}.Decode(file)
//
// The decoder prefers an io.ReadSeeker; any other reader is buffered in
// memory first.
package aiff
