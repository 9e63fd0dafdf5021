package arith

import (
	"github.com/cocosip/go-entropy-codec/bitstream"
	"github.com/cocosip/go-entropy-codec/codec"
)

// Range coding constants. The coder keeps high, low and value in [0, 2^32)
// and does all intermediate products in 64-bit arithmetic, so range*freq
// never overflows.
const (
	maxCode       uint64 = 1<<32 - 1
	quarter       uint64 = 1 << 30
	half          uint64 = 2 * quarter
	threeQuarters uint64 = 3 * quarter
)

// progressStep is how often the coding loops report progress, in symbols.
const progressStep = 1 << 20

// encodeBuffer arithmetic-codes data into w using the model's cumulative
// frequencies. The chosen shift and the residual byte are emitted first as
// straddling whole bytes; the coded payload follows as raw bits.
//
// Only the symbols the model counted are coded: min(effectiveSize, len-1).
// At shift 0 the shifted view has one more element than the histogram
// covered, and that trailing element is already carried by the residual
// byte, so coding it would feed the coder a zero-frequency symbol.
func encodeBuffer(data []byte, m *Model, w *bitstream.Writer, progress codec.Progress) {
	shift := m.Shift()
	w.WriteByte(byte(shift))
	if len(data) == 0 {
		w.WriteByte(0)
		return
	}
	w.WriteByte(bitstream.Residual(data, shift))

	denom := uint64(m.Denom())
	if denom == 0 {
		// one-byte input: the residual byte reconstructs it on its own
		return
	}

	view := bitstream.NewShifted(data, shift)
	n := view.Size()
	if n > len(data)-1 {
		n = len(data) - 1
	}

	if progress != nil {
		progress.InitBar(int64(n))
		defer progress.ShutdownBar()
	}

	high := maxCode
	low := uint64(0)

	for i := 0; i < n; i++ {
		if progress != nil && i > 0 && i%progressStep == 0 {
			progress.AddBar(progressStep)
		}

		rng := high - low + 1
		pLow, pUp, _ := m.Probability(view.At(i))
		high = low + rng*uint64(pUp)/denom - 1
		low = low + rng*uint64(pLow)/denom

		for {
			if high < half {
				w.WriteBitBuffered(0)
			} else if low >= half {
				w.WriteBitBuffered(1)
			} else if high < threeQuarters && low >= quarter {
				w.IncPending()
				low -= quarter
				high -= quarter
			} else {
				break
			}
			high = high<<1 + 1
			low <<= 1
			high &= maxCode
			low &= maxCode
		}
	}

	// Flush at least two bits so the final interval is unambiguous.
	w.IncPending()
	if low < quarter {
		w.WriteBitBuffered(0)
	} else {
		w.WriteBitBuffered(1)
	}
}
