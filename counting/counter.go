// Package counting provides the wraparound counter primitive that pointer and
// occupancy registers are built from.
package counting

import (
	"log"
	"math/bits"
)

// WidthFor returns the number of bits a counter needs to represent the values
// 0 through n-1. A counter for a single value needs 0 bits.
func WidthFor(n int) int {
	if n < 1 {
		log.Panicf("cannot size a counter for %d values", n)
	}

	return bits.Len(uint(n - 1))
}

// A Counter is an up/down register of a fixed bit width. Increment and
// decrement wrap modulo 2^width. There is no saturation and no overflow
// signal. The counter performs no legality checking of its own; whoever owns
// it decides which updates make sense.
type Counter struct {
	width int
	mask  uint64
	value uint64
}

// MakeCounter creates a counter of the given bit width, starting at 0. A
// 0-width counter is legal and always reads 0.
func MakeCounter(width int) Counter {
	if width < 0 || width > 64 {
		log.Panicf("counter width %d out of range [0, 64]", width)
	}

	c := Counter{width: width}
	if width == 64 {
		c.mask = ^uint64(0)
	} else {
		c.mask = (uint64(1) << width) - 1
	}

	return c
}

// Width returns the bit width of the counter.
func (c *Counter) Width() int {
	return c.width
}

// Value returns the current value of the counter.
func (c *Counter) Value() uint64 {
	return c.value
}

// Reset forces the counter to 0, regardless of any other input.
func (c *Counter) Reset() {
	c.value = 0
}

// Tick advances the counter by one clock edge. Increment takes priority over
// decrement: when both are asserted, the counter increments and the decrement
// is skipped. This is a priority-encoded update, not an arithmetic +1-1.
func (c *Counter) Tick(increment, decrement bool) {
	switch {
	case increment:
		c.value = (c.value + 1) & c.mask
	case decrement:
		c.value = (c.value - 1) & c.mask
	}
}
