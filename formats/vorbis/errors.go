package vorbis

import "errors"

var (
	ErrNoAudioData = errors.New("vorbis stream contains no audio data")
)
