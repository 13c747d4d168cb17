package wav

import "errors"

var (
	ErrNotWavFile  = errors.New("not a WAV file")
	ErrNoAudioData = errors.New("WAV file contains no audio data")
	ErrBitDepth    = errors.New("bit depth must be 16, 24 or 32")
)
