// SPDX-License-Identifier: EPL-2.0

package utils

// IntToFloat64 converts an integer PCM sample of the given bit depth to a
// normalized float in [-1, 1] by dividing by the magnitude of the smallest
// representable value (1 << (bitDepth-1)).
func IntToFloat64(v int, bitDepth int) float64 {
	return float64(v) / float64(int64(1)<<(bitDepth-1))
}

// Float64ToInt converts a normalized float in [-1, 1] to an integer PCM
// sample of the given bit depth.
func Float64ToInt(x float64, bitDepth int) int {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use max-1 for positive full scale to avoid overflow
	return int(x * float64(int64(1)<<(bitDepth-1)-1))
}

// Deinterleave splits interleaved PCM frames into per-channel slices.
// Trailing values that do not fill a whole frame are discarded.
func Deinterleave(data []float64, channels int) [][]float64 {
	frames := len(data) / channels
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, frames)
	}
	for f := 0; f < frames; f++ {
		for ch := 0; ch < channels; ch++ {
			out[ch][f] = data[f*channels+ch]
		}
	}
	return out
}

// Interleave merges per-channel slices into interleaved PCM frames.
// All channels must have the same length.
func Interleave(sig [][]float64) []float64 {
	if len(sig) == 0 {
		return nil
	}
	channels := len(sig)
	frames := len(sig[0])
	out := make([]float64, frames*channels)
	for f := 0; f < frames; f++ {
		for ch := 0; ch < channels; ch++ {
			out[f*channels+ch] = sig[ch][f]
		}
	}
	return out
}
