// Package fifo models a synchronous, depth-parameterized FIFO queue, cycle by
// cycle. The model consists of a register file for storage, a write pointer,
// a read pointer, and an occupancy counter one bit wider than the pointers.
// Full, empty, and the output word are derived from that state.
package fifo

import (
	"github.com/sarchlab/syncfifo/counting"
	"github.com/sarchlab/syncfifo/sim/hooking"
)

// HookPosTick marks the completion of one clock edge. Item carries the Input,
// Detail carries the Output.
var HookPosTick = &hooking.HookPos{Name: "FIFO Tick"}

// HookPosPush marks a push request taking effect. Item carries the word
// written.
var HookPosPush = &hooking.HookPos{Name: "FIFO Push"}

// HookPosPop marks a pop request taking effect. Item carries the word that
// was at the front when the pop was issued.
var HookPosPop = &hooking.HookPos{Name: "FIFO Pop"}

// HookPosPushOnFull marks a push requested while the FIFO is full.
var HookPosPushOnFull = &hooking.HookPos{Name: "FIFO Push On Full"}

// HookPosPopOnEmpty marks a pop requested while the FIFO is empty.
var HookPosPopOnEmpty = &hooking.HookPos{Name: "FIFO Pop On Empty"}

// Input carries the control and data signals sampled at one clock edge.
type Input struct {
	// Reset, when asserted, forces the pointers and the occupancy counter to
	// 0 on this edge. Push and pop requests are ignored while reset is
	// asserted.
	Reset bool

	// PushRequest asks to enqueue PushData on this edge.
	PushRequest bool

	// PushData is the word to enqueue. Only sampled when PushRequest is
	// asserted. Bits above the word width are discarded.
	PushData uint64

	// PopRequest asks to dequeue on this edge.
	PopRequest bool
}

// Output carries the signals observable after a clock edge.
type Output struct {
	// Word is the storage content at the updated read pointer. When a pop
	// takes effect on an edge, Word shows the item after the one consumed.
	// Its content is meaningless while Empty is asserted.
	Word uint64

	// Occupancy is the raw value of the occupancy counter.
	Occupancy uint64

	Full  bool
	Empty bool

	// PushOnFull and PopOnEmpty report caller contract violations on this
	// edge. They are diagnostics only; the state update proceeds regardless.
	PushOnFull bool
	PopOnEmpty bool
}

// A Core is the cycle-accurate FIFO state machine. It must be advanced by
// exactly one Tick per clock edge, from a single goroutine.
type Core struct {
	hooking.HookableBase

	name      string
	capacity  int
	wordWidth int
	wordMask  uint64

	storage   []uint64
	writePtr  counting.Counter
	readPtr   counting.Counter
	occupancy counting.Counter
}

// Name returns the name of the FIFO.
func (c *Core) Name() string {
	return c.name
}

// Capacity returns the number of words the FIFO can hold.
func (c *Core) Capacity() int {
	return c.capacity
}

// WordWidth returns the bit width of each stored word.
func (c *Core) WordWidth() int {
	return c.wordWidth
}

// Occupancy returns the raw value of the occupancy counter. Under legal use
// it equals the number of stored words. Illegal pushes and pops let the
// counter wrap, as the ungated hardware counter would.
func (c *Core) Occupancy() uint64 {
	return c.occupancy.Value()
}

// Full reports whether the occupancy counter reads the capacity.
func (c *Core) Full() bool {
	return c.occupancy.Value() == uint64(c.capacity)
}

// Empty reports whether the occupancy counter reads 0.
func (c *Core) Empty() bool {
	return c.occupancy.Value() == 0
}

// OutputWord returns the storage content at the read pointer. This is the
// combinational output: it changes immediately when the read pointer moves.
// Its content is meaningless while the FIFO is empty.
func (c *Core) OutputWord() uint64 {
	return c.storage[c.readPtr.Value()]
}

// Reset forces the pointers and the occupancy counter to 0. Storage contents
// are left as they are; they are never exposed while the FIFO reads empty.
func (c *Core) Reset() {
	c.writePtr.Reset()
	c.readPtr.Reset()
	c.occupancy.Reset()
}

// Tick advances the FIFO by one clock edge and returns the signals observable
// after the edge.
//
// Push-on-full and pop-on-empty are judged against the state before the edge
// and reported through the returned Output and through hooks. They do not
// gate the update: the pointers and the occupancy counter advance exactly as
// requested, as they would in hardware with assertion-only protection.
func (c *Core) Tick(in Input) Output {
	if in.Reset {
		c.Reset()

		out := c.observe(false, false)

		if c.NumHooks() > 0 {
			c.InvokeHook(hooking.HookCtx{
				Domain: c,
				Pos:    HookPosTick,
				Item:   in,
				Detail: out,
			})
		}

		return out
	}

	pushOnFull := c.Full() && in.PushRequest
	popOnEmpty := c.Empty() && in.PopRequest
	front := c.storage[c.readPtr.Value()]

	if in.PushRequest {
		c.storage[c.writePtr.Value()] = in.PushData & c.wordMask
		c.advance(&c.writePtr)
	}

	if in.PopRequest {
		c.advance(&c.readPtr)
	}

	// A push and a pop on the same edge cancel out before reaching the
	// occupancy counter, so simultaneous push+pop leaves the count
	// unchanged.
	c.occupancy.Tick(
		in.PushRequest && !in.PopRequest,
		in.PopRequest && !in.PushRequest,
	)

	out := c.observe(pushOnFull, popOnEmpty)

	if c.NumHooks() > 0 {
		c.invokeTickHooks(in, out, front)
	}

	return out
}

// advance moves a pointer forward modulo the capacity. A pointer counter is
// wide enough to count to the capacity, so for a non-power-of-two capacity it
// would otherwise run past the last storage slot before its own width wraps
// it.
func (c *Core) advance(ptr *counting.Counter) {
	ptr.Tick(true, false)

	if ptr.Value() == uint64(c.capacity) {
		ptr.Reset()
	}
}

func (c *Core) observe(pushOnFull, popOnEmpty bool) Output {
	return Output{
		Word:       c.storage[c.readPtr.Value()],
		Occupancy:  c.occupancy.Value(),
		Full:       c.Full(),
		Empty:      c.Empty(),
		PushOnFull: pushOnFull,
		PopOnEmpty: popOnEmpty,
	}
}

func (c *Core) invokeTickHooks(in Input, out Output, front uint64) {
	if in.PushRequest {
		c.InvokeHook(hooking.HookCtx{
			Domain: c,
			Pos:    HookPosPush,
			Item:   in.PushData & c.wordMask,
		})
	}

	if in.PopRequest {
		c.InvokeHook(hooking.HookCtx{
			Domain: c,
			Pos:    HookPosPop,
			Item:   front,
		})
	}

	if out.PushOnFull {
		c.InvokeHook(hooking.HookCtx{
			Domain: c,
			Pos:    HookPosPushOnFull,
			Item:   in,
			Detail: out,
		})
	}

	if out.PopOnEmpty {
		c.InvokeHook(hooking.HookCtx{
			Domain: c,
			Pos:    HookPosPopOnEmpty,
			Item:   in,
			Detail: out,
		})
	}

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosTick,
		Item:   in,
		Detail: out,
	})
}
