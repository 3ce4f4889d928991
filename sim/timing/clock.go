// Package timing advances a hardware model through discrete clock cycles.
package timing

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/sarchlab/syncfifo/sim/hooking"
	"github.com/sarchlab/syncfifo/sim/naming"
)

// Cycle counts clock edges since the beginning of a run.
type Cycle uint64

// A CycleTeller can be used to get the current cycle.
type CycleTeller interface {
	Now() Cycle
}

// A ClockedDevice is an element that updates its state once per clock edge.
type ClockedDevice interface {
	// CycleTick advances the device by one clock edge.
	CycleTick(now Cycle)
}

// HookPosBeforeCycle is a hook position that triggers before a clock edge is
// delivered to the devices.
var HookPosBeforeCycle = &hooking.HookPos{Name: "BeforeCycle"}

// HookPosAfterCycle is a hook position that triggers after all devices have
// seen a clock edge.
var HookPosAfterCycle = &hooking.HookPos{Name: "AfterCycle"}

// A Clock drives a set of clocked devices in lockstep. Every step delivers
// exactly one clock edge to every registered device, always in registration
// order.
type Clock struct {
	hooking.HookableBase

	name string

	// now is read by hooks and devices while a step is in flight, so it
	// lives outside the step lock.
	now atomic.Uint64

	lock    sync.Mutex
	devices []ClockedDevice
}

// NewClock creates a clock with no devices attached.
func NewClock(name string) *Clock {
	naming.MustBeValid(name)

	return &Clock{name: name}
}

// Name returns the name of the clock.
func (c *Clock) Name() string {
	return c.name
}

// RegisterDevice attaches a device to the clock. The order of registration is
// the order in which devices see each clock edge.
func (c *Clock) RegisterDevice(d ClockedDevice) {
	if d == nil {
		log.Panic("cannot register a nil device")
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	for _, registered := range c.devices {
		if registered == d {
			log.Panic("device already registered")
		}
	}

	c.devices = append(c.devices, d)
}

// Now returns the number of clock edges delivered so far. It is safe to call
// from hooks and devices while an edge is being delivered.
func (c *Clock) Now() Cycle {
	return Cycle(c.now.Load())
}

// StepOne delivers one clock edge to every registered device.
func (c *Clock) StepOne() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.stepOneLocked()
}

// Step delivers n clock edges.
func (c *Clock) Step(n uint64) {
	c.lock.Lock()
	defer c.lock.Unlock()

	for i := uint64(0); i < n; i++ {
		c.stepOneLocked()
	}
}

func (c *Clock) stepOneLocked() {
	now := c.Now()

	if c.NumHooks() > 0 {
		c.InvokeHook(hooking.HookCtx{
			Domain: c,
			Pos:    HookPosBeforeCycle,
			Item:   now,
		})
	}

	for _, d := range c.devices {
		d.CycleTick(now)
	}

	if c.NumHooks() > 0 {
		c.InvokeHook(hooking.HookCtx{
			Domain: c,
			Pos:    HookPosAfterCycle,
			Item:   now,
		})
	}

	c.now.Add(1)
}
