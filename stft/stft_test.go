// SPDX-License-Identifier: EPL-2.0

package stft

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/ik5/micarray/signal"
)

// testSignal generates a deterministic two-channel signal made of a few
// sinusoids so that spectra are non-trivial.
func testSignal(samples int) [][]float64 {
	sig := make([][]float64, 2)
	for ch := range sig {
		sig[ch] = make([]float64, samples)
		for i := range sig[ch] {
			t := float64(i)
			sig[ch][i] = 0.5*math.Sin(2*math.Pi*t/100) +
				0.3*math.Sin(2*math.Pi*t/37+float64(ch)) +
				0.1*math.Cos(2*math.Pi*t/11)
		}
	}
	return sig
}

func TestSTFT_Shape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		samples    int
		winSize    int
		hopSize    int
		wantFrames int
	}{
		{"exactly one window", 8, 8, 4, 0},
		{"one sample past window", 9, 8, 4, 1},
		{"one full hop", 12, 8, 4, 1},
		{"one hop plus one", 13, 8, 4, 2},
		{"long signal", 4096, 512, 128, 28},
		{"shorter than window", 100, 512, 128, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf, err := STFT(testSignal(tt.samples), ColaHamming, tt.winSize, tt.hopSize)
			if err != nil {
				t.Fatalf("STFT() error = %v", err)
			}

			if len(tf) != 2 {
				t.Fatalf("STFT() channels = %d, want 2", len(tf))
			}
			for ch := range tf {
				if len(tf[ch]) != tt.wantFrames {
					t.Errorf("STFT() frames[%d] = %d, want %d", ch, len(tf[ch]), tt.wantFrames)
				}
				for _, frame := range tf[ch] {
					if len(frame) != tt.winSize {
						t.Errorf("STFT() bins = %d, want %d", len(frame), tt.winSize)
					}
				}
			}
		})
	}
}

func TestSTFT_InputValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sig     [][]float64
		winSize int
		hopSize int
		wantErr error
	}{
		{"empty signal", [][]float64{}, 8, 4, signal.ErrEmptySignal},
		{"ragged signal", [][]float64{{1, 2, 3}, {1}}, 8, 4, signal.ErrRaggedSignal},
		{"zero window", [][]float64{{1, 2, 3}}, 0, 4, ErrWindowSize},
		{"zero hop", [][]float64{{1, 2, 3}}, 8, 0, ErrHopSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := STFT(tt.sig, ColaHamming, tt.winSize, tt.hopSize)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("STFT() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSTFT_SpectrumOfSinusoid(t *testing.T) {
	t.Parallel()

	// A sinusoid at an exact bin frequency concentrates energy in that bin
	// and its mirror.
	winSize, hopSize := 256, 64
	bin := 16
	sig := [][]float64{make([]float64, 1024)}
	for i := range sig[0] {
		sig[0][i] = math.Sin(2 * math.Pi * float64(bin) * float64(i) / float64(winSize))
	}

	tf, err := STFT(sig, ColaHamming, winSize, hopSize)
	if err != nil {
		t.Fatalf("STFT() error = %v", err)
	}

	frame := tf[0][0]
	peak := 0
	for i := range frame {
		if cmplx.Abs(frame[i]) > cmplx.Abs(frame[peak]) {
			peak = i
		}
	}
	if peak != bin && peak != winSize-bin {
		t.Errorf("spectral peak at bin %d, want %d or %d", peak, bin, winSize-bin)
	}
}

func TestISTFT_Reconstruction(t *testing.T) {
	t.Parallel()

	winSize, hopSize := 512, 128
	sig := testSignal(4096)

	tf, err := STFT(sig, ColaHamming, winSize, hopSize)
	if err != nil {
		t.Fatalf("STFT() error = %v", err)
	}

	rec, err := ISTFT(tf, hopSize)
	if err != nil {
		t.Fatalf("ISTFT() error = %v", err)
	}

	nframes := len(tf[0])
	wantLen := (nframes-1)*hopSize + winSize
	for ch := range rec {
		if len(rec[ch]) != wantLen {
			t.Fatalf("ISTFT() length[%d] = %d, want %d", ch, len(rec[ch]), wantLen)
		}
	}

	// Away from the edges every sample is covered by a full set of
	// overlapping windows, so COLA guarantees exact reconstruction.
	for ch := range rec {
		for i := winSize; i <= (nframes-2)*hopSize; i++ {
			if math.Abs(rec[ch][i]-sig[ch][i]) > 1e-9 {
				t.Fatalf("reconstruction drift at channel %d sample %d: got %v, want %v",
					ch, i, rec[ch][i], sig[ch][i])
			}
		}
	}
}

func TestISTFT_InputValidation(t *testing.T) {
	t.Parallel()

	valid := [][][]complex128{{{1, 2}, {3, 4}}}

	tests := []struct {
		name    string
		tf      [][][]complex128
		hopSize int
		wantErr error
	}{
		{"zero hop", valid, 0, ErrHopSize},
		{"no channels", [][][]complex128{}, 1, ErrEmptySpectrum},
		{"no frames", [][][]complex128{{}}, 1, ErrEmptySpectrum},
		{"ragged frames", [][][]complex128{{{1, 2}}, {{1, 2}, {3, 4}}}, 1, ErrRaggedSpectrum},
		{"ragged bins", [][][]complex128{{{1, 2}, {3}}}, 1, ErrRaggedSpectrum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ISTFT(tt.tf, tt.hopSize)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ISTFT() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
