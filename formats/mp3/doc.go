// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding into the (channels, samples) layout.
//
// It uses github.com/hajimehoshi/go-mp3, which emits 16-bit little-endian
// stereo PCM regardless of the source channel layout, so decoded signals
// always have two channels.
//
//	file, _ := os.Open("recording.mp3")
//	fs, sig, err := mp3.Decoder{}.Decode(file)
package mp3
