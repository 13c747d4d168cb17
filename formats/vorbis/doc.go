// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding into the (channels, samples)
// layout.
//
// It uses github.com/jfreymuth/oggvorbis, which already produces normalized
// float samples; decoding only deinterleaves them per channel.
//
//	file, _ := os.Open("recording.ogg")
//	fs, sig, err := vorbis.Decoder{}.Decode(file)
package vorbis
