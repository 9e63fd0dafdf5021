package huffman

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/cocosip/go-entropy-codec/bitstream"
	"github.com/cocosip/go-entropy-codec/codec"
)

// Container layout, offsets in bytes:
//
//	[0..2)        uint16 LE  mindex, offset at which the bit payload begins
//	[2..10)       uint64 LE  uncompressed length
//	[10..mindex)  packed (symbol uint8, frequency uint64 LE) pairs in
//	              ascending (frequency, symbol) order
//	[mindex..]    Huffman-coded bit payload, MSB-first, zero-padded
const (
	headerLen = 2 + 8
	pairLen   = 1 + 8
)

// progressStep is how often the coding loops report progress, in symbols.
const progressStep = 1 << 20

// HuffmanCodec implements the codec.Codec interface for the canonical
// Huffman coder over byte symbols
type HuffmanCodec struct{}

// NewHuffmanCodec creates a new Huffman codec
func NewHuffmanCodec() *HuffmanCodec {
	return &HuffmanCodec{}
}

// countFrequencies builds the (symbol, frequency) table of data in
// ascending (frequency, symbol) order. That order is both the serialization
// order and the tree build's seed order.
func countFrequencies(data []byte) []SymbolFreq {
	var counts [256]uint64
	for _, b := range data {
		counts[b]++
	}

	freqs := make([]SymbolFreq, 0)
	for i := 0; i < 256; i++ {
		if counts[i] > 0 {
			freqs = append(freqs, SymbolFreq{Sym: byte(i), Freq: counts[i]})
		}
	}

	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Freq != freqs[j].Freq {
			return freqs[i].Freq < freqs[j].Freq
		}
		return freqs[i].Sym < freqs[j].Sym
	})
	return freqs
}

// Encode compresses data into a Huffman container
func (c *HuffmanCodec) Encode(params codec.EncodeParams) ([]byte, error) {
	data := params.Data
	freqs := countFrequencies(data)
	mindex := headerLen + pairLen*len(freqs)

	tree := NewTree(freqs)
	codes := tree.Codes()

	w := bitstream.NewWriter(mindex)

	if params.Progress != nil {
		params.Progress.InitBar(int64(len(data)))
		defer params.Progress.ShutdownBar()
	}
	for i, sym := range data {
		if params.Progress != nil && i > 0 && i%progressStep == 0 {
			params.Progress.AddBar(progressStep)
		}
		for _, bit := range codes[sym] {
			w.WriteBit(bit)
		}
	}

	buf := w.Bytes()
	bitstream.PutUint16(buf, 0, uint16(mindex))
	bitstream.PutUint64(buf, 2, uint64(len(data)))
	off := headerLen
	for _, f := range freqs {
		buf[off] = f.Sym
		bitstream.PutUint64(buf, off+1, f.Freq)
		off += pairLen
	}
	return buf, nil
}

// Decode reconstructs the original bytes from a Huffman container
func (c *HuffmanCodec) Decode(params codec.DecodeParams) (*codec.DecodeResult, error) {
	data := params.Data
	if len(data) < headerLen {
		return nil, errors.Wrap(codec.ErrBadCompressionStream, "container too short")
	}

	mindex := int(bitstream.Uint16(data, 0))
	size := bitstream.Uint64(data, 2)

	if mindex < headerLen || mindex > len(data) || (mindex-headerLen)%pairLen != 0 {
		return nil, errors.Wrap(codec.ErrBadCompressionStream, "invalid symbol table bounds")
	}

	freqs := make([]SymbolFreq, 0, (mindex-headerLen)/pairLen)
	for off := headerLen; off < mindex; off += pairLen {
		freqs = append(freqs, SymbolFreq{
			Sym:  data[off],
			Freq: bitstream.Uint64(data, off+1),
		})
	}

	if size == 0 {
		return &codec.DecodeResult{Data: []byte{}}, nil
	}
	if len(freqs) == 0 {
		return nil, errors.Wrap(codec.ErrBadCompressionStream, "empty symbol table")
	}

	tree := NewTree(freqs)
	r := bitstream.NewReader(data, mindex)

	if params.Progress != nil {
		params.Progress.InitBar(int64(size))
		defer params.Progress.ShutdownBar()
	}

	capHint := size
	if capHint > 1<<20 {
		capHint = 1 << 20
	}
	out := make([]byte, 0, capHint)
	cur := tree.Root()
	for uint64(len(out)) < size {
		if r.Exhausted() {
			return nil, errors.Wrap(codec.ErrBadCompressionStream, "payload ends before all symbols are decoded")
		}
		cur = tree.Step(cur, r.ReadBit())
		if cur == nilNode {
			return nil, errors.Wrap(codec.ErrBadCompressionStream, "bit path leads outside the tree")
		}
		if tree.IsLeaf(cur) {
			out = append(out, tree.Symbol(cur))
			cur = tree.Root()
			if params.Progress != nil && len(out)%progressStep == 0 {
				params.Progress.AddBar(progressStep)
			}
		}
	}

	return &codec.DecodeResult{Data: out}, nil
}

// Name returns the registry name of the codec
func (c *HuffmanCodec) Name() string {
	return "huffman"
}

func init() {
	codec.Register(NewHuffmanCodec())
}
