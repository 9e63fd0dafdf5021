package arith

import (
	"github.com/pkg/errors"

	"github.com/cocosip/go-entropy-codec/bitstream"
	"github.com/cocosip/go-entropy-codec/codec"
)

// decodeBuffer reconstructs size bytes into w from the container payload.
// The decode loop emits size-1 symbols; the residual byte supplies its low
// shift bits before the loop and its high 8-shift bits after it, so the
// concatenation reproduces the original bit stream exactly.
func decodeBuffer(data []byte, m *Model, w *bitstream.Writer, size uint64, progress codec.Progress) error {
	if size == 0 {
		return nil
	}

	shift := uint(data[shiftOffset])
	residual := data[residualOffset]
	r := bitstream.NewReader(data, payloadOffset)

	if shift != 0 {
		for i := uint(0); i < shift; i++ {
			w.WriteBit((residual >> (shift - i - 1)) & 1)
		}
	}

	var value uint64
	for i := 0; i < 32; i++ {
		value = value<<1 + uint64(r.ReadBit())
	}

	denom := uint64(m.Denom())
	high := maxCode
	low := uint64(0)

	if progress != nil {
		progress.InitBar(int64(size))
		defer progress.ShutdownBar()
	}

	for remaining := size; remaining > 1; remaining-- {
		if progress != nil && remaining%progressStep == 0 {
			progress.AddBar(progressStep)
		}

		rng := high - low + 1
		if rng == 0 {
			return errors.Wrap(codec.ErrBadCompressionStream, "empty coding range")
		}
		count := ((value-low+1)*denom - 1) / rng
		pLow, pUp, sym, err := m.DecodeFromCount(count)
		if err != nil {
			return err
		}
		w.WriteByte(sym)
		high = low + rng*uint64(pUp)/denom - 1
		low = low + rng*uint64(pLow)/denom

		for {
			if high < half {
				// shifts only
			} else if low >= half {
				value -= half
				low -= half
				high -= half
			} else if high < threeQuarters && low >= quarter {
				value -= quarter
				low -= quarter
				high -= quarter
			} else {
				break
			}
			low <<= 1
			high = high<<1 + 1
			value = value<<1 + uint64(r.ReadBit())
		}
	}

	for i := uint(0); i < 8-shift; i++ {
		w.WriteBit((residual >> (7 - i)) & 1)
	}
	return nil
}
