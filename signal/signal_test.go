// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sig     [][]float64
		wantErr error
	}{
		{
			name:    "single channel",
			sig:     [][]float64{{1, 2, 3}},
			wantErr: nil,
		},
		{
			name:    "equal channels",
			sig:     [][]float64{{1, 2}, {3, 4}},
			wantErr: nil,
		},
		{
			name:    "no channels",
			sig:     [][]float64{},
			wantErr: ErrEmptySignal,
		},
		{
			name:    "ragged channels",
			sig:     [][]float64{{1, 2, 3}, {1, 2}},
			wantErr: ErrRaggedSignal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.sig)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPower_Zeros(t *testing.T) {
	t.Parallel()

	sig := [][]float64{make([]float64, 100), make([]float64, 100)}
	p := Power(sig)

	if len(p) != 2 {
		t.Fatalf("Power() returned %d channels, want 2", len(p))
	}
	for ch, v := range p {
		if v != 0 {
			t.Errorf("Power(zeros)[%d] = %v, want 0", ch, v)
		}
	}
}

func TestPower_Sine(t *testing.T) {
	t.Parallel()

	// A full-scale sine over whole periods has mean square 0.5.
	n := 1000
	c := make([]float64, n)
	for i := range c {
		c[i] = math.Sin(2 * math.Pi * 10 * float64(i) / float64(n))
	}

	p := Power([][]float64{c})
	if math.Abs(p[0]-0.5) > 1e-9 {
		t.Errorf("Power(sine)[0] = %v, want 0.5", p[0])
	}
}

func TestPower_NonNegative(t *testing.T) {
	t.Parallel()

	sig := [][]float64{{-0.5, 0.25, -0.125, 0.99}, {0.1, -0.9, 0.3, -0.2}}
	for ch, v := range Power(sig) {
		if v < 0 {
			t.Errorf("Power()[%d] = %v, want non-negative", ch, v)
		}
	}
}

func TestSNR(t *testing.T) {
	t.Parallel()

	// Construct a mixture whose power decomposes exactly: alternate the
	// signal and the noise on disjoint supports so cross terms vanish.
	n := 1000
	sig := make([]float64, n)
	noise := make([]float64, n)
	mix := make([]float64, n)
	for i := range sig {
		if i%2 == 0 {
			sig[i] = 0.8
		} else {
			noise[i] = 0.4
		}
		mix[i] = sig[i] + noise[i]
	}

	got, err := SNR([][]float64{mix}, [][]float64{noise})
	if err != nil {
		t.Fatalf("SNR() error = %v", err)
	}

	// power(sig)/power(noise) = (0.8^2)/(0.4^2) = 4 -> ~6.02 dB
	want := 10 * math.Log10(4)
	if math.Abs(got[0]-want) > 1e-9 {
		t.Errorf("SNR() = %v dB, want %v dB", got[0], want)
	}
}

func TestSNR_ChannelMismatch(t *testing.T) {
	t.Parallel()

	_, err := SNR([][]float64{{1}, {1}}, [][]float64{{1}})
	if !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("SNR() error = %v, want ErrChannelMismatch", err)
	}
}

func TestSNR_NonFinitePassThrough(t *testing.T) {
	t.Parallel()

	// Noise estimate louder than the mixture: negative power ratio.
	got, err := SNR([][]float64{{0.1, -0.1}}, [][]float64{{0.9, -0.9}})
	if err != nil {
		t.Fatalf("SNR() error = %v", err)
	}
	if !math.IsNaN(got[0]) {
		t.Errorf("SNR() = %v, want NaN for negative signal power", got[0])
	}
}

func TestMixToMono(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sig  [][]float64
		want []float64
	}{
		{
			name: "stereo average",
			sig:  [][]float64{{1, 0, -1}, {0, 1, -1}},
			want: []float64{0.5, 0.5, -1},
		},
		{
			name: "mono pass through",
			sig:  [][]float64{{0.25, -0.25}},
			want: []float64{0.25, -0.25},
		},
		{
			name: "four channels",
			sig:  [][]float64{{1, 1}, {1, 1}, {1, 1}, {-1, 1}},
			want: []float64{0.5, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MixToMono(tt.sig)
			if len(got) != len(tt.want) {
				t.Fatalf("MixToMono() length = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("MixToMono()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMixToMono_CopiesMonoInput(t *testing.T) {
	t.Parallel()

	src := [][]float64{{0.5}}
	out := MixToMono(src)
	out[0] = -0.5
	if src[0][0] != 0.5 {
		t.Error("MixToMono() aliased the input channel")
	}
}
