// SPDX-License-Identifier: EPL-2.0

package stft

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/ik5/micarray/signal"
)

// STFT converts a (channels, samples) time-domain signal to the
// time-frequency domain. Each channel is cut into frames of winSize samples
// starting at multiples of hopSize, multiplied by the window coefficients
// and transformed with a full complex FFT, so the result has winSize bins
// per frame. A trailing frame that does not fully fit within the channel is
// dropped. A channel shorter than winSize yields zero frames.
func STFT(sig [][]float64, window WindowFunc, winSize, hopSize int) ([][][]complex128, error) {
	if err := signal.Validate(sig); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if winSize < 1 {
		return nil, ErrWindowSize
	}
	if hopSize < 1 {
		return nil, ErrHopSize
	}

	w := window(winSize, hopSize)
	fft := fourier.NewCmplxFFT(winSize)
	frame := make([]complex128, winSize)

	tf := make([][][]complex128, len(sig))
	for ch, c := range sig {
		nframes := 0
		if len(c) > winSize {
			nframes = (len(c) - winSize - 1) / hopSize
			nframes++
		}

		tf[ch] = make([][]complex128, nframes)
		for t := 0; t < nframes; t++ {
			start := t * hopSize
			for i := range frame {
				frame[i] = complex(c[start+i]*w[i], 0)
			}
			tf[ch][t] = fft.Coefficients(nil, frame)
		}
	}
	return tf, nil
}

// ISTFT converts a (channels, frames, bins) time-frequency signal back to
// the time domain by inverse-transforming each frame, taking the real part,
// and overlap-adding frames at multiples of hopSize. The output per channel
// has length (frames-1)*hopSize + bins. Reconstruction is exact only if the
// forward window satisfied COLA at this hop; no verification is performed.
func ISTFT(tf [][][]complex128, hopSize int) ([][]float64, error) {
	if hopSize < 1 {
		return nil, ErrHopSize
	}
	if len(tf) == 0 || len(tf[0]) == 0 {
		return nil, ErrEmptySpectrum
	}

	nframes := len(tf[0])
	nbins := len(tf[0][0])
	for _, ch := range tf {
		if len(ch) != nframes {
			return nil, ErrRaggedSpectrum
		}
		for _, f := range ch {
			if len(f) != nbins {
				return nil, ErrRaggedSpectrum
			}
		}
	}

	fft := fourier.NewCmplxFFT(nbins)
	seq := make([]complex128, nbins)
	inv := 1.0 / float64(nbins)

	sig := make([][]float64, len(tf))
	for ch := range tf {
		sig[ch] = make([]float64, (nframes-1)*hopSize+nbins)
		for t, f := range tf[ch] {
			seq = fft.Sequence(seq, f)
			for i, v := range seq {
				sig[ch][t*hopSize+i] += real(v) * inv
			}
		}
	}
	return sig, nil
}
