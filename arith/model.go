package arith

import (
	"math"

	"github.com/pkg/errors"

	"github.com/cocosip/go-entropy-codec/bitstream"
	"github.com/cocosip/go-entropy-codec/codec"
)

const (
	numPhases   = 8
	tableOffset = 8
)

// Model is a static order-0 cumulative frequency table over byte symbols,
// built from the input under the most skewed of the 8 possible bit-shift
// phases. freqs[0] is always 0 and freqs[256] is the denominator.
type Model struct {
	freqs [257]uint32
	shift uint
}

// histogram counts byte values of the shifted view of buf. The iteration
// bound is min(len(buf)-1, 2^32-1) for every phase, so the counts for all
// phases cover the same number of symbols.
func histogram(buf []byte, shift uint) [256]uint32 {
	var counts [256]uint32

	n := len(buf) - 1
	if n > math.MaxUint32 {
		n = math.MaxUint32
	}

	view := bitstream.NewShifted(buf, shift)
	for i := 0; i < n; i++ {
		counts[view.At(i)]++
	}
	return counts
}

func arithmeticMean(counts []uint32) float64 {
	sum := 0.0
	for _, c := range counts {
		sum += float64(c)
	}
	return sum / float64(len(counts))
}

// standardDeviation is the sample standard deviation (divisor n-1) of the
// bucket counts. A more skewed histogram deviates further from its mean.
func standardDeviation(counts []uint32) float64 {
	m := arithmeticMean(counts)
	sum := 0.0
	for _, c := range counts {
		d := float64(c) - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(counts)-1))
}

// GenerateTable scans buf under all 8 bit-shift phases, keeps the phase with
// the largest frequency dispersion, and cumulates its histogram. Ties go to
// the lowest shift (strict > comparison).
func (m *Model) GenerateTable(buf []byte) {
	var tables [numPhases][256]uint32
	var deviations [numPhases]float64

	for s := uint(0); s < numPhases; s++ {
		tables[s] = histogram(buf, s)
		deviations[s] = standardDeviation(tables[s][:])
	}

	best := uint(0)
	pmax := 0.0
	for s := uint(0); s < numPhases; s++ {
		if deviations[s] > pmax {
			pmax = deviations[s]
			best = s
		}
	}

	m.freqs[0] = 0
	for i := 1; i < 257; i++ {
		m.freqs[i] = m.freqs[i-1] + tables[best][i-1]
	}
	m.shift = best
}

// Shift returns the chosen bit-shift phase.
func (m *Model) Shift() uint {
	return m.shift
}

// Denom returns the frequency denominator, i.e. the number of counted
// symbols.
func (m *Model) Denom() uint32 {
	return m.freqs[256]
}

// Probability returns the cumulative interval [low, up) of b and the
// denominator.
func (m *Model) Probability(b byte) (low, up, denom uint32) {
	return m.freqs[b], m.freqs[int(b)+1], m.freqs[256]
}

// DecodeFromCount finds the unique symbol whose cumulative interval contains
// count. A count at or beyond the denominator has no symbol and means the
// stream is corrupt.
func (m *Model) DecodeFromCount(count uint64) (low, up uint32, sym byte, err error) {
	for i := 0; i < 256; i++ {
		if uint64(m.freqs[i+1]) > count {
			return m.freqs[i], m.freqs[i+1], byte(i), nil
		}
	}
	return 0, 0, 0, errors.Wrap(codec.ErrBadCompressionStream, "no symbol matches count")
}

// EncodeTo serializes freqs[1..256] as little-endian uint32 values into the
// container header region of buf.
func (m *Model) EncodeTo(buf []byte) {
	for i := 1; i < 257; i++ {
		bitstream.PutUint32(buf, tableOffset+4*(i-1), m.freqs[i])
	}
}

// DecodeFrom reads freqs[1..256] back from a container header. freqs[0] is
// implicitly 0.
func (m *Model) DecodeFrom(buf []byte) {
	m.freqs[0] = 0
	for i := 1; i < 257; i++ {
		m.freqs[i] = bitstream.Uint32(buf, tableOffset+4*(i-1))
	}
}
