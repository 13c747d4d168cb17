// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

type Decoder struct{}

// Decode reads an entire MP3 stream. go-mp3 always outputs 16-bit LE
// stereo, so the result has two channels normalized to [-1, 1].
func (Decoder) Decode(r io.Reader) (int, [][]float64, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return 0, nil, fmt.Errorf("%w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return 0, nil, fmt.Errorf("%w", err)
	}
	if len(raw) == 0 {
		return 0, nil, ErrNoAudioData
	}

	// 4 bytes per frame: int16 LE left, int16 LE right.
	frames := len(raw) / 4
	sig := [][]float64{make([]float64, frames), make([]float64, frames)}
	for f := 0; f < frames; f++ {
		for ch := 0; ch < 2; ch++ {
			off := f*4 + ch*2
			v := int16(uint16(raw[off]) | uint16(raw[off+1])<<8)
			sig[ch][f] = float64(v) / 32768.0
		}
	}

	return dec.SampleRate(), sig, nil
}
