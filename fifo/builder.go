package fifo

import (
	"log"

	"github.com/sarchlab/syncfifo/counting"
	"github.com/sarchlab/syncfifo/sim/naming"
)

// A Builder can build FIFO cores.
type Builder struct {
	capacity  int
	wordWidth int
}

// MakeBuilder creates a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		capacity:  16,
		wordWidth: 8,
	}
}

// WithCapacity sets the number of words the FIFO can hold.
func (b Builder) WithCapacity(n int) Builder {
	b.capacity = n
	return b
}

// WithWordWidth sets the bit width of each stored word.
func (b Builder) WithWordWidth(n int) Builder {
	b.wordWidth = n
	return b
}

// Build builds a FIFO core. The capacity and word width are fixed for the
// lifetime of the core. Invalid parameters panic here rather than during
// ticking.
func (b Builder) Build(name string) *Core {
	naming.MustBeValid(name)

	if b.capacity < 1 {
		log.Panicf("FIFO capacity must be at least 1, got %d", b.capacity)
	}

	if b.wordWidth < 1 || b.wordWidth > 64 {
		log.Panicf("FIFO word width must be in [1, 64], got %d", b.wordWidth)
	}

	c := &Core{
		name:      name,
		capacity:  b.capacity,
		wordWidth: b.wordWidth,
		storage:   make([]uint64, b.capacity),
		writePtr:  counting.MakeCounter(counting.WidthFor(b.capacity)),
		readPtr:   counting.MakeCounter(counting.WidthFor(b.capacity)),
		occupancy: counting.MakeCounter(counting.WidthFor(b.capacity + 1)),
	}

	if b.wordWidth == 64 {
		c.wordMask = ^uint64(0)
	} else {
		c.wordMask = (uint64(1) << b.wordWidth) - 1
	}

	return c
}
