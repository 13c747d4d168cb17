// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/micarray/signal"
	"github.com/ik5/micarray/utils"
)

// Encode writes a (channels, samples) signal as integer PCM WAV at the
// given sample rate and bit depth (16, 24 or 32). The matrix is interleaved
// back to the on-disk (samples, channels) order; values outside [-1, 1] are
// clamped.
func Encode(w io.WriteSeeker, fs int, sig [][]float64, bitDepth int) error {
	if err := signal.Validate(sig); err != nil {
		return fmt.Errorf("%w", err)
	}
	switch bitDepth {
	case 16, 24, 32:
	default:
		// 8-bit WAV is unsigned and has no |min int| normalization.
		return ErrBitDepth
	}

	flat := utils.Interleave(sig)
	data := make([]int, len(flat))
	for i, x := range flat {
		data[i] = utils.Float64ToInt(x, bitDepth)
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: len(sig),
			SampleRate:  fs,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	enc := gowav.NewEncoder(w, fs, bitDepth, len(sig), 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Save writes sig to path as a 16-bit PCM WAV file.
func Save(path string, fs int, sig [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := Encode(f, fs, sig, 16); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
