package bitstream

// Writer appends individual bits and whole bytes to a growing byte buffer.
// Bits are placed MSB-first within each byte. The buffer always keeps one
// live scratch byte at the tail so a WriteByte may straddle the current bit
// position; callers that fill the buffer bit-by-bit end up with a trailing
// zero-padded byte, and decoders drop the unused scratch byte with
// TruncateOne.
//
// The pending-bit state implements the arithmetic coder's underflow
// bookkeeping: IncPending defers a bit whose value is unknown while the
// coding range straddles the midpoint, and WriteBitBuffered resolves all
// deferred bits as the opposite of the next real bit.
type Writer struct {
	data    []byte
	byteIdx int
	bitIdx  uint // next bit position within data[byteIdx], 7 = MSB
	pending int
}

// NewWriter creates a writer whose first baseLen bytes are a reserved header
// region, to be filled in later with PutUint32/PutUint64 style writes. Bit
// output starts at byte baseLen.
func NewWriter(baseLen int) *Writer {
	return &Writer{
		data:    make([]byte, baseLen+1),
		byteIdx: baseLen,
		bitIdx:  7,
	}
}

// WriteByte ORs the top bits of b into the current byte at positions at or
// below the bit cursor and spills the remainder into a fresh tail byte. The
// bit cursor keeps its position within the new tail byte.
func (w *Writer) WriteByte(b byte) {
	w.data[w.byteIdx] |= b >> (7 - w.bitIdx)
	w.data = append(w.data, b<<(w.bitIdx+1))
	w.byteIdx++
}

// WriteBit writes a single bit (0 or 1) at the cursor.
func (w *Writer) WriteBit(bit byte) {
	w.data[w.byteIdx] |= bit << w.bitIdx
	if w.bitIdx == 0 {
		w.data = append(w.data, 0)
		w.byteIdx++
		w.bitIdx = 7
	} else {
		w.bitIdx--
	}
}

// WriteBitBuffered writes bit, then flushes every pending bit as its
// complement.
func (w *Writer) WriteBitBuffered(bit byte) {
	w.WriteBit(bit)
	bit ^= 1
	for w.pending > 0 {
		w.WriteBit(bit)
		w.pending--
	}
}

// IncPending defers one underflow bit.
func (w *Writer) IncPending() {
	w.pending++
}

// TruncateOne discards the trailing scratch byte and re-aligns the cursor to
// the MSB of the new last byte.
func (w *Writer) TruncateOne() {
	w.data = w.data[:len(w.data)-1]
	w.byteIdx--
	w.bitIdx = 7
}

// Bytes returns the underlying buffer, including the reserved header region
// and the live tail byte.
func (w *Writer) Bytes() []byte {
	return w.data
}

// Len returns the current buffer length in bytes.
func (w *Writer) Len() int {
	return len(w.data)
}
