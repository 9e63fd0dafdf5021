package codec

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// EncodeFile compresses infile to outfile with the named algorithm. The
// whole file is read into memory; there is no streaming mode.
func EncodeFile(algorithm, infile, outfile string, progress Progress) error {
	c, err := Get(algorithm)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(infile)
	if err != nil {
		return errors.Wrapf(ErrFileRead, "%s: %v", infile, err)
	}

	compressed, err := c.Encode(EncodeParams{Data: data, Progress: progress})
	if err != nil {
		return err
	}

	log.Debug().
		Str("algorithm", algorithm).
		Int("in", len(data)).
		Int("out", len(compressed)).
		Msg("encoded")

	if err := os.WriteFile(outfile, compressed, 0644); err != nil {
		return errors.Wrapf(ErrFileWrite, "%s: %v", outfile, err)
	}
	return nil
}

// DecodeFile reconstructs outfile from the compressed container in infile.
// Decode faults from the inner coder surface as ErrBadCompressionStream.
func DecodeFile(algorithm, infile, outfile string, progress Progress) error {
	c, err := Get(algorithm)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(infile)
	if err != nil {
		return errors.Wrapf(ErrFileRead, "%s: %v", infile, err)
	}

	result, err := c.Decode(DecodeParams{Data: data, Progress: progress})
	if err != nil {
		if !errors.Is(err, ErrBadCompressionStream) {
			err = errors.Wrapf(ErrBadCompressionStream, "%s: %v", infile, err)
		}
		return err
	}

	log.Debug().
		Str("algorithm", algorithm).
		Int("in", len(data)).
		Int("out", len(result.Data)).
		Msg("decoded")

	if err := os.WriteFile(outfile, result.Data, 0644); err != nil {
		return errors.Wrapf(ErrFileWrite, "%s: %v", outfile, err)
	}
	return nil
}
