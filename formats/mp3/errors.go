package mp3

import "errors"

var (
	ErrNoAudioData = errors.New("MP3 stream contains no audio data")
)
