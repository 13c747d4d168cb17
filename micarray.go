// SPDX-License-Identifier: EPL-2.0

package micarray

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/micarray/cc"
	"github.com/ik5/micarray/formats/aiff"
	"github.com/ik5/micarray/formats/mp3"
	"github.com/ik5/micarray/formats/vorbis"
	"github.com/ik5/micarray/formats/wav"
	"github.com/ik5/micarray/signal"
	"github.com/ik5/micarray/stft"
)

// defaultRegistry maps lower-case file extensions to format decoders.
var defaultRegistry = signal.NewRegistry()

func init() {
	defaultRegistry.Register("wav", wav.Decoder{})
	defaultRegistry.Register("mp3", mp3.Decoder{})
	defaultRegistry.Register("ogg", vorbis.Decoder{})
	defaultRegistry.Register("oga", vorbis.Decoder{})
	defaultRegistry.Register("aiff", aiff.Decoder{})
	defaultRegistry.Register("aif", aiff.Decoder{})
	defaultRegistry.Register("aifc", aiff.Decoder{})
}

// Load decodes the audio file at path into its sample rate and a normalized
// (channels, samples) signal. The decoder is chosen by file extension; see
// the formats subpackages for the supported set. An unrecognized extension
// yields ErrUnknownFormat.
func Load(path string) (int, [][]float64, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	dec, ok := defaultRegistry.Get(ext)
	if !ok {
		return 0, nil, fmt.Errorf("%q: %w", ext, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return dec.Decode(f)
}

// Save writes a (channels, samples) signal to path as a 16-bit PCM WAV file.
func Save(path string, fs int, sig [][]float64) error {
	return wav.Save(path, fs, sig)
}

// PairwiseGCCPHAT is the common analysis pipeline in one call: it converts
// the signal to the time-frequency domain with a COLA Hamming window and
// computes the per-frame GCC-PHAT correlation for every unordered channel
// pair. The upsample factor interpolates correlations for sub-sample lag
// resolution (1 = none).
func PairwiseGCCPHAT(sig [][]float64, winSize, hopSize, upsample int) (map[cc.Pair][][]float64, error) {
	tf, err := stft.STFT(sig, stft.ColaHamming, winSize, hopSize)
	if err != nil {
		return nil, err
	}
	return cc.Pairwise(tf, cc.PHAT(upsample))
}
