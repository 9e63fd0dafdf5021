package bitstream

// Shifted presents a byte buffer as the same byte stream started shift bits
// later: element k is the byte formed by the low 8-shift bits of buf[k]
// followed by the high shift bits of buf[k+1]. For shift 0 the view is the
// identity. For shift 1..7 the final logical byte would need bits past the
// end of the buffer, so the effective length is one less; those elided bits
// travel separately in the container's residual byte.
type Shifted struct {
	buf   []byte
	shift uint
	size  int
}

// NewShifted creates a view of buf re-phased by shift bits. shift must be in
// 0..7. The view holds a reference; buf must outlive it.
func NewShifted(buf []byte, shift uint) *Shifted {
	size := len(buf)
	if shift != 0 {
		size--
	}
	return &Shifted{buf: buf, shift: shift, size: size}
}

// At returns element k of the view.
func (s *Shifted) At(k int) byte {
	if s.shift == 0 {
		return s.buf[k]
	}
	return s.buf[k]<<s.shift | s.buf[k+1]>>(8-s.shift)
}

// Size returns the effective length of the view.
func (s *Shifted) Size() int {
	return s.size
}

// Residual returns the byte carrying the bits the view elides: its high
// 8-shift bits are the low 8-shift bits of the last original byte, and its
// low shift bits are the high shift bits of the first. For shift 0 this is
// simply the last byte. buf must be non-empty.
func Residual(buf []byte, shift uint) byte {
	if shift == 0 {
		return buf[len(buf)-1]
	}
	return buf[len(buf)-1]<<shift | buf[0]>>(8-shift)
}
