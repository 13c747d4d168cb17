// SPDX-License-Identifier: EPL-2.0

package cc

// FreqUpsample zero-pads a single-frame spectrum at the center and scales it
// by factor, so that an inverse FFT of the padded spectrum yields the
// time-domain signal interpolated by the same integer factor.
//
// A factor of 1 is the identity and returns s unchanged. For even-length
// spectra the Nyquist bin is split in half, with half placed at each end of
// the padding; odd-length spectra are padded without splitting. A factor
// below 1 is ErrUpsampleFactor.
func FreqUpsample(s []complex128, factor int) ([]complex128, error) {
	if factor == 1 {
		return s, nil
	}
	if factor < 1 {
		return nil, ErrUpsampleFactor
	}
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}

	l := len(s)
	f := complex(float64(factor), 0)
	out := make([]complex128, l*factor)

	if l%2 == 0 {
		h := l / 2
		for i := 0; i < h; i++ {
			out[i] = f * s[i]
		}
		// Split the Nyquist bin across both ends of the padding.
		out[h] = f * s[h] / 2
		out[l*factor-(l-h)] = f * s[h] / 2
		for i := h + 1; i < l; i++ {
			out[l*factor-l+i] = f * s[i]
		}
	} else {
		h := l/2 + 1
		for i := 0; i < h; i++ {
			out[i] = f * s[i]
		}
		for i := h; i < l; i++ {
			out[l*factor-l+i] = f * s[i]
		}
	}
	return out, nil
}
