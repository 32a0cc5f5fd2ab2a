package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// FrameClock stamps rendered frames sent to live viewers with the board's
// site id and a sequence number, so viewers can drop stale or foreign frames.
type FrameClock struct {
	site string
	seq  atomic.Uint64
}

func NewFrameClock() *FrameClock {
	return &FrameClock{site: uuid.NewString()}
}

func (c *FrameClock) Site() string { return c.site }

// Tick returns the next sequence number, starting at 1.
func (c *FrameClock) Tick() uint64 {
	return c.seq.Add(1)
}
