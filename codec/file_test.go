package codec_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cocosip/go-entropy-codec/codec"
)

func TestFileRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("entropy coding round trip\n"), 500)

	for _, algorithm := range []string{"arith", "huffman"} {
		t.Run(algorithm, func(t *testing.T) {
			dir := t.TempDir()
			infile := filepath.Join(dir, "input.bin")
			packed := filepath.Join(dir, "packed.bin")
			unpacked := filepath.Join(dir, "unpacked.bin")

			if err := os.WriteFile(infile, data, 0644); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}

			if err := codec.EncodeFile(algorithm, infile, packed, nil); err != nil {
				t.Fatalf("EncodeFile failed: %v", err)
			}
			if err := codec.DecodeFile(algorithm, packed, unpacked, nil); err != nil {
				t.Fatalf("DecodeFile failed: %v", err)
			}

			restored, err := os.ReadFile(unpacked)
			if err != nil {
				t.Fatalf("ReadFile failed: %v", err)
			}
			if !bytes.Equal(restored, data) {
				t.Errorf("round-trip mismatch: got %d bytes, want %d bytes", len(restored), len(data))
			}
		})
	}
}

func TestFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing input", func(t *testing.T) {
		err := codec.EncodeFile("arith", filepath.Join(dir, "missing.bin"), filepath.Join(dir, "out.bin"), nil)
		if !errors.Is(err, codec.ErrFileRead) {
			t.Errorf("EncodeFile error = %v, want ErrFileRead", err)
		}
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		err := codec.EncodeFile("lzw", filepath.Join(dir, "in.bin"), filepath.Join(dir, "out.bin"), nil)
		if !errors.Is(err, codec.ErrCodecNotFound) {
			t.Errorf("EncodeFile error = %v, want ErrCodecNotFound", err)
		}
	})

	t.Run("bad stream", func(t *testing.T) {
		infile := filepath.Join(dir, "garbage.bin")
		if err := os.WriteFile(infile, []byte{0x01, 0x02, 0x03}, 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		err := codec.DecodeFile("huffman", infile, filepath.Join(dir, "out.bin"), nil)
		if !errors.Is(err, codec.ErrBadCompressionStream) {
			t.Errorf("DecodeFile error = %v, want ErrBadCompressionStream", err)
		}
	})
}
