package fifo

import (
	"sync"

	"github.com/sarchlab/syncfifo/sim/hooking"
)

// A ViolationCounter is a hook that counts caller contract violations
// reported by a Core: pushes while full and pops while empty.
type ViolationCounter struct {
	lock sync.Mutex

	pushOnFull uint64
	popOnEmpty uint64
}

// NewViolationCounter creates a counter with all counts at 0.
func NewViolationCounter() *ViolationCounter {
	return &ViolationCounter{}
}

// Func counts the violation hook invocations. Other positions are ignored.
func (v *ViolationCounter) Func(ctx hooking.HookCtx) {
	v.lock.Lock()
	defer v.lock.Unlock()

	switch ctx.Pos {
	case HookPosPushOnFull:
		v.pushOnFull++
	case HookPosPopOnEmpty:
		v.popOnEmpty++
	}
}

// PushOnFullCount returns the number of pushes requested while full.
func (v *ViolationCounter) PushOnFullCount() uint64 {
	v.lock.Lock()
	defer v.lock.Unlock()

	return v.pushOnFull
}

// PopOnEmptyCount returns the number of pops requested while empty.
func (v *ViolationCounter) PopOnEmptyCount() uint64 {
	v.lock.Lock()
	defer v.lock.Unlock()

	return v.popOnEmpty
}

// TotalCount returns the total number of violations observed.
func (v *ViolationCounter) TotalCount() uint64 {
	v.lock.Lock()
	defer v.lock.Unlock()

	return v.pushOnFull + v.popOnEmpty
}
