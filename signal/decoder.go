// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"io"
	"sync"
)

// Decoder decodes an entire audio stream into its sample rate and a
// normalized (channels, samples) signal. Mono input still yields a
// one-channel matrix.
type Decoder interface {
	Decode(r io.Reader) (fs int, sig [][]float64, err error)
}

// Registry maps format keys (e.g., "wav", "mp3", "ogg vorbis") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
