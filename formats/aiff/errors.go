package aiff

import "errors"

var (
	ErrNotAiffFile = errors.New("not an AIFF file")
	ErrNoAudioData = errors.New("AIFF file contains no audio data")
)
