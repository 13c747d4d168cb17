// SPDX-License-Identifier: EPL-2.0

package cc

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// Pair identifies an unordered channel pair (I, J) with I < J.
type Pair struct {
	I, J int
}

// Func computes the correlation of two single-frame spectra. The result is
// real-valued and indexed by lag in FFT bin order.
type Func func(x, y []complex128) ([]float64, error)

// PHAT returns a Func applying GCCPHAT with the given upsampling factor.
func PHAT(upsample int) Func {
	return func(x, y []complex128) ([]float64, error) {
		return GCCPHAT(x, y, upsample)
	}
}

// Plain returns a Func applying CrossCorrelation with the given upsampling
// factor.
func Plain(upsample int) Func {
	return func(x, y []complex128) ([]float64, error) {
		return CrossCorrelation(x, y, upsample)
	}
}

// GCCPHAT computes the generalized cross-correlation with phase transform
// of two frequency-domain signals: the cross-power spectral density
// x*conj(y) is normalized to unit magnitude per bin, upsampled, and
// inverse-transformed. Bins with zero cross-power produce NaN; callers are
// responsible for signals with energy in every bin.
func GCCPHAT(x, y []complex128, upsample int) ([]float64, error) {
	cpsd, err := crossPowerSpectrum(x, y)
	if err != nil {
		return nil, err
	}

	for i, v := range cpsd {
		cpsd[i] = v / complex(cmplx.Abs(v), 0)
	}

	cpsd, err = FreqUpsample(cpsd, upsample)
	if err != nil {
		return nil, err
	}
	return realInverseFFT(cpsd), nil
}

// CrossCorrelation computes the cross-correlation of two frequency-domain
// signals, normalized by the maximum magnitude of the (upsampled)
// cross-power spectrum so that relative amplitude information is preserved.
func CrossCorrelation(x, y []complex128, upsample int) ([]float64, error) {
	cpsd, err := crossPowerSpectrum(x, y)
	if err != nil {
		return nil, err
	}

	cpsd, err = FreqUpsample(cpsd, upsample)
	if err != nil {
		return nil, err
	}

	maxAbs := 0.0
	for _, v := range cpsd {
		if a := cmplx.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}

	corr := realInverseFFT(cpsd)
	for i := range corr {
		corr[i] /= maxAbs
	}
	return corr, nil
}

// TDOA estimates the time difference of arrival between two frequency-domain
// signals by locating the peak of fn's correlation output. Peaks past the
// midpoint are remapped to negative lags. The result is in samples (scaled
// by fn's upsampling factor if any).
func TDOA(x, y []complex128, fn Func) (int, error) {
	corr, err := fn(x, y)
	if err != nil {
		return 0, err
	}

	peak := floats.MaxIdx(corr)
	if peak > len(corr)/2 {
		peak -= len(corr)
	}
	return peak, nil
}

// TDOASeconds is TDOA converted to seconds at the given sample rate. With
// an upsampling Func, pass the upsampled rate (fs times the factor).
func TDOASeconds(x, y []complex128, fn Func, fs float64) (float64, error) {
	lag, err := TDOA(x, y, fn)
	if err != nil {
		return 0, err
	}
	return float64(lag) / fs, nil
}

// AcrossTime applies fn independently to each time frame of two
// time-frequency signals. If the inputs differ in frame count, the result is
// truncated to the shorter one.
func AcrossTime(tfx, tfy [][]complex128, fn Func) ([][]float64, error) {
	n := min(len(tfx), len(tfy))
	out := make([][]float64, n)
	for t := 0; t < n; t++ {
		corr, err := fn(tfx[t], tfy[t])
		if err != nil {
			return nil, err
		}
		out[t] = corr
	}
	return out, nil
}

// Pairwise computes AcrossTime for every unordered channel pair (i, j),
// i < j, of a (channels, frames, bins) time-frequency signal.
func Pairwise(tf [][][]complex128, fn Func) (map[Pair][][]float64, error) {
	out := make(map[Pair][][]float64, len(tf)*(len(tf)-1)/2)
	for i := range tf {
		for j := i + 1; j < len(tf); j++ {
			corr, err := AcrossTime(tf[i], tf[j], fn)
			if err != nil {
				return nil, err
			}
			out[Pair{I: i, J: j}] = corr
		}
	}
	return out, nil
}

func crossPowerSpectrum(x, y []complex128) ([]complex128, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	cpsd := make([]complex128, len(x))
	for i := range x {
		cpsd[i] = x[i] * cmplx.Conj(y[i])
	}
	return cpsd, nil
}

func realInverseFFT(spectrum []complex128) []float64 {
	n := len(spectrum)
	fft := fourier.NewCmplxFFT(n)
	seq := fft.Sequence(nil, spectrum)

	out := make([]float64, n)
	inv := 1.0 / float64(n)
	for i, v := range seq {
		out[i] = real(v) * inv
	}
	return out
}
