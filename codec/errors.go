package codec

import "errors"

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry
	ErrCodecNotFound = errors.New("codec not found")

	// ErrFileRead is returned when the input file cannot be read
	ErrFileRead = errors.New("file read error")

	// ErrFileWrite is returned when the output file cannot be written
	ErrFileWrite = errors.New("file write error")

	// ErrBadCompressionStream is returned when a compressed stream cannot be
	// decoded (e.g. no symbol matches a decoded count)
	ErrBadCompressionStream = errors.New("bad compression stream")
)
