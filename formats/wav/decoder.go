// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"os"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/micarray/utils"
)

type Decoder struct{}

// Decode reads an entire WAV stream and returns its sample rate and the
// normalized (channels, samples) signal. Integer PCM samples are divided by
// the magnitude of the smallest representable value of the source bit
// depth.
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

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return 0, nil, ErrNotWavFile
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

// Load decodes the WAV file at path.
func Load(path string) (int, [][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return Decoder{}.Decode(f)
}
