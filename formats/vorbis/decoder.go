// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/micarray/utils"
)

type Decoder struct{}

// Decode reads an entire Ogg Vorbis stream and deinterleaves it into the
// (channels, samples) layout. Vorbis samples are already normalized floats.
func (Decoder) Decode(r io.Reader) (int, [][]float64, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return 0, nil, fmt.Errorf("%w", err)
	}
	if format.Channels < 1 || len(data) == 0 {
		return 0, nil, ErrNoAudioData
	}

	flat := make([]float64, len(data))
	for i, v := range data {
		flat[i] = float64(v)
	}

	return format.SampleRate, utils.Deinterleave(flat, format.Channels), nil
}
