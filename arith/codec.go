package arith

import (
	"github.com/pkg/errors"

	"github.com/cocosip/go-entropy-codec/bitstream"
	"github.com/cocosip/go-entropy-codec/codec"
)

// Container layout, offsets in bytes:
//
//	[0..8)        uint64 LE  uncompressed length
//	[8..1032)     256 x uint32 LE cumulative frequencies F[1..256]
//	[1032]        uint8      chosen bit shift (0..7)
//	[1033]        uint8      residual byte
//	[1034..]      arithmetic-coded bit payload, MSB-first, zero-padded
const (
	headerLen      = 8 + 256*4
	shiftOffset    = headerLen
	residualOffset = headerLen + 1
	payloadOffset  = headerLen + 2
)

// ArithmeticCodec implements the codec.Codec interface for the static
// order-0 arithmetic coder with best-shift model selection
type ArithmeticCodec struct{}

// NewArithmeticCodec creates a new arithmetic codec
func NewArithmeticCodec() *ArithmeticCodec {
	return &ArithmeticCodec{}
}

// Encode compresses data into an arithmetic container
func (c *ArithmeticCodec) Encode(params codec.EncodeParams) ([]byte, error) {
	m := &Model{}
	m.GenerateTable(params.Data)

	w := bitstream.NewWriter(headerLen)
	encodeBuffer(params.Data, m, w, params.Progress)

	buf := w.Bytes()
	bitstream.PutUint64(buf, 0, uint64(len(params.Data)))
	m.EncodeTo(buf)
	return buf, nil
}

// Decode reconstructs the original bytes from an arithmetic container
func (c *ArithmeticCodec) Decode(params codec.DecodeParams) (*codec.DecodeResult, error) {
	data := params.Data
	if len(data) < payloadOffset {
		return nil, errors.Wrap(codec.ErrBadCompressionStream, "container too short")
	}

	size := bitstream.Uint64(data, 0)
	if data[shiftOffset] > 7 {
		return nil, errors.Wrap(codec.ErrBadCompressionStream, "invalid bit shift")
	}

	m := &Model{}
	m.DecodeFrom(data)
	if size > 1 && m.Denom() == 0 {
		return nil, errors.Wrap(codec.ErrBadCompressionStream, "empty frequency table")
	}

	w := bitstream.NewWriter(0)
	if err := decodeBuffer(data, m, w, size, params.Progress); err != nil {
		return nil, err
	}
	w.TruncateOne()

	return &codec.DecodeResult{Data: w.Bytes()}, nil
}

// Name returns the registry name of the codec
func (c *ArithmeticCodec) Name() string {
	return "arith"
}

func init() {
	codec.Register(NewArithmeticCodec())
}
