// SPDX-License-Identifier: EPL-2.0

package stft

import "math"

// WindowFunc produces winSize window coefficients for analysis at the given
// hop. Implementations are expected to fold any COLA normalization for the
// hop into the coefficients, as ColaHamming does.
type WindowFunc func(winSize, hopSize int) []float64

// ColaHamming returns a periodic Hamming window scaled so that copies
// shifted by hopSize sum to exactly 1 (constant overlap-add). The mean of
// the classic 0.54 - 0.46*cos periodic Hamming is 0.54 = 1.08/2, hence the
// scale factor 2*hop/(1.08*win).
func ColaHamming(winSize, hopSize int) []float64 {
	w := make([]float64, winSize)
	scale := 2.0 * float64(hopSize) / (1.08 * float64(winSize))
	for i := range w {
		w[i] = (0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(winSize))) * scale
	}
	return w
}
