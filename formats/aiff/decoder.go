// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/micarray/utils"
)

type Decoder struct{}

// Decode reads an entire AIFF stream and returns its sample rate and the
// normalized (channels, samples) signal.
func (Decoder) Decode(r io.Reader) (int, [][]float64, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return 0, nil, fmt.Errorf("%w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return 0, nil, ErrNotAiffFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return 0, nil, fmt.Errorf("%w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 || len(buf.Data) == 0 {
		return 0, nil, ErrNoAudioData
	}

	depth := buf.SourceBitDepth
	if depth == 0 {
		depth = int(dec.BitDepth)
	}

	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels
	sig := make([][]float64, channels)
	for ch := range sig {
		sig[ch] = make([]float64, frames)
	}
	for f := 0; f < frames; f++ {
		for ch := 0; ch < channels; ch++ {
			sig[ch][f] = utils.IntToFloat64(buf.Data[f*channels+ch], depth)
		}
	}

	return buf.Format.SampleRate, sig, nil
}
