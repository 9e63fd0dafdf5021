// Package console implements progress reporting for interactive use.
package console

import (
	"github.com/cheggaaa/pb"

	"github.com/cocosip/go-entropy-codec/codec"
)

// Check interface
var (
	_ codec.Progress = (*Progress)(nil)
)

// Progress renders a terminal progress bar with byte units and transfer
// speed while a codec works through its input.
type Progress struct {
	bar *pb.ProgressBar
}

// NewProgress creates a new progress instance
func NewProgress() *Progress {
	return &Progress{}
}

// InitBar starts the progress bar for total bytes
func (p *Progress) InitBar(total int64) {
	if p.bar != nil {
		panic("bar already initialized")
	}
	p.bar = pb.New64(total)
	p.bar.SetUnits(pb.U_BYTES)
	p.bar.ShowSpeed = true
	p.bar.Start()
}

// AddBar increments progress by count bytes
func (p *Progress) AddBar(count int) {
	if p.bar != nil {
		p.bar.Add(count)
	}
}

// ShutdownBar finishes the progress bar and drops it, so a later InitBar
// can start a new one
func (p *Progress) ShutdownBar() {
	if p.bar == nil {
		return
	}
	p.bar.Finish()
	p.bar = nil
}
