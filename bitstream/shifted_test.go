package bitstream

import (
	"math/rand"
	"testing"
)

func TestShiftedView(t *testing.T) {
	buf := []byte{0b10110001, 0b01100110, 0b11110000}

	tests := []struct {
		shift    uint
		wantSize int
		want     []byte
	}{
		{shift: 0, wantSize: 3, want: []byte{0b10110001, 0b01100110, 0b11110000}},
		{shift: 1, wantSize: 2, want: []byte{0b01100010, 0b11001101}},
		{shift: 4, wantSize: 2, want: []byte{0b00010110, 0b01101111}},
		{shift: 7, wantSize: 2, want: []byte{0b10110011, 0b01111000}},
	}

	for _, tt := range tests {
		v := NewShifted(buf, tt.shift)
		if v.Size() != tt.wantSize {
			t.Errorf("shift %d: Size() = %d, want %d", tt.shift, v.Size(), tt.wantSize)
		}
		for k, want := range tt.want {
			if got := v.At(k); got != want {
				t.Errorf("shift %d: At(%d) = %#08b, want %#08b", tt.shift, k, got, want)
			}
		}
	}
}

func TestResidual(t *testing.T) {
	buf := []byte{0b10110001, 0b01100110, 0b11110000}

	tests := []struct {
		shift uint
		want  byte
	}{
		{shift: 0, want: 0b11110000},
		{shift: 3, want: 0b10000101},
		{shift: 5, want: 0b00010110},
	}

	for _, tt := range tests {
		if got := Residual(buf, tt.shift); got != tt.want {
			t.Errorf("shift %d: Residual = %#08b, want %#08b", tt.shift, got, tt.want)
		}
	}
}

// bitsOf expands bytes to individual bits, MSB first.
func bitsOf(data []byte) []byte {
	bits := make([]byte, 0, 8*len(data))
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1)
		}
	}
	return bits
}

// The residual byte carries exactly the bits every shifted view elides:
// prepending its low shift bits and appending its high 8-shift bits to the
// counted view elements reproduces the original bit stream.
func TestShiftedResidualReconstruction(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	buf := make([]byte, 32)
	rng.Read(buf)

	for shift := uint(0); shift < 8; shift++ {
		v := NewShifted(buf, shift)
		residual := Residual(buf, shift)

		n := v.Size()
		if n > len(buf)-1 {
			n = len(buf) - 1
		}

		bits := make([]byte, 0, 8*len(buf))
		for i := uint(0); i < shift; i++ {
			bits = append(bits, (residual>>(shift-i-1))&1)
		}
		for k := 0; k < n; k++ {
			bits = append(bits, bitsOf([]byte{v.At(k)})...)
		}
		for i := uint(0); i < 8-shift; i++ {
			bits = append(bits, (residual>>(7-i))&1)
		}

		want := bitsOf(buf)
		if len(bits) != len(want) {
			t.Fatalf("shift %d: reconstructed %d bits, want %d", shift, len(bits), len(want))
		}
		for i := range want {
			if bits[i] != want[i] {
				t.Fatalf("shift %d: bit %d = %d, want %d", shift, i, bits[i], want[i])
			}
		}
	}
}
