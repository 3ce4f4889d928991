// Package driving feeds per-cycle stimulus into a FIFO core and collects what
// comes out. It is demo and experiment plumbing, not a verification harness.
package driving

import (
	"math/rand"

	"github.com/sarchlab/syncfifo/fifo"
	"github.com/sarchlab/syncfifo/sim/timing"
)

// A Stimulus decides the FIFO input signals for each clock edge.
type Stimulus interface {
	// NextInput produces the signals for the edge at cycle now, given the
	// outputs observed after the previous edge.
	NextInput(now timing.Cycle, prev fifo.Output) fifo.Input
}

// A Script replays a fixed sequence of inputs, one per edge, then idles.
type Script struct {
	inputs []fifo.Input
	next   int
}

// NewScript creates a stimulus that replays the given inputs.
func NewScript(inputs []fifo.Input) *Script {
	return &Script{inputs: inputs}
}

// NextInput returns the next scripted input, or an all-deasserted input once
// the script has run out.
func (s *Script) NextInput(_ timing.Cycle, _ fifo.Output) fifo.Input {
	if s.next >= len(s.inputs) {
		return fifo.Input{}
	}

	in := s.inputs[s.next]
	s.next++

	return in
}

// Remaining returns the number of scripted inputs not yet replayed.
func (s *Script) Remaining() int {
	return len(s.inputs) - s.next
}

// RandomTraffic pushes and pops with fixed probabilities. Pushed words carry
// a running sequence number, so the order of popped words can be checked
// downstream. With respectFlags set, the traffic never pushes into a full
// FIFO or pops from an empty one; without it, the traffic exercises the
// contract-violation diagnostics as well.
type RandomTraffic struct {
	rng          *rand.Rand
	pushChance   float64
	popChance    float64
	respectFlags bool

	nextWord uint64
}

// NewRandomTraffic creates a seeded random stimulus. Chances are
// probabilities in [0, 1] applied independently to push and pop on every
// edge.
func NewRandomTraffic(
	seed int64,
	pushChance, popChance float64,
	respectFlags bool,
) *RandomTraffic {
	return &RandomTraffic{
		rng:          rand.New(rand.NewSource(seed)),
		pushChance:   pushChance,
		popChance:    popChance,
		respectFlags: respectFlags,
	}
}

// NextInput rolls for a push and a pop on this edge.
func (t *RandomTraffic) NextInput(
	_ timing.Cycle,
	prev fifo.Output,
) fifo.Input {
	in := fifo.Input{}

	wantPush := t.rng.Float64() < t.pushChance
	wantPop := t.rng.Float64() < t.popChance

	if t.respectFlags {
		wantPush = wantPush && !prev.Full
		wantPop = wantPop && !prev.Empty
	}

	if wantPush {
		in.PushRequest = true
		in.PushData = t.nextWord
		t.nextWord++
	}

	in.PopRequest = wantPop

	return in
}
