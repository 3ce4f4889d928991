package driving

import (
	"log"

	"github.com/sarchlab/syncfifo/fifo"
	"github.com/sarchlab/syncfifo/sim/naming"
	"github.com/sarchlab/syncfifo/sim/timing"
)

// Stats summarizes what a driver has pushed through its FIFO.
type Stats struct {
	// NumPushes and NumPops count requests that took effect while legal.
	NumPushes uint64
	NumPops   uint64

	// NumPushOnFull and NumPopOnEmpty count contract violations reported by
	// the FIFO.
	NumPushOnFull uint64
	NumPopOnEmpty uint64
}

// A Driver is a clocked device that owns a FIFO core, feeds it one input per
// clock edge from a stimulus source, and records what comes out.
type Driver struct {
	name     string
	core     *fifo.Core
	stimulus Stimulus

	last        fifo.Output
	poppedWords []uint64
	stats       Stats
}

// Name returns the name of the driver.
func (d *Driver) Name() string {
	return d.name
}

// Core returns the FIFO the driver owns.
func (d *Driver) Core() *fifo.Core {
	return d.core
}

// Stats returns the counts accumulated so far.
func (d *Driver) Stats() Stats {
	return d.stats
}

// PoppedWords returns the words popped so far, in pop order. Words from pops
// issued while empty are not included; they carry no data.
func (d *Driver) PoppedWords() []uint64 {
	return d.poppedWords
}

// LastOutput returns the FIFO outputs observed after the most recent edge.
func (d *Driver) LastOutput() fifo.Output {
	return d.last
}

// CycleTick asks the stimulus for this edge's input, samples the word a pop
// would consume, and advances the FIFO. The output word is sampled before the
// edge because a pop exposes the following word once the edge has passed.
func (d *Driver) CycleTick(now timing.Cycle) {
	in := d.stimulus.NextInput(now, d.last)

	if !in.Reset {
		if in.PushRequest && !d.core.Full() {
			d.stats.NumPushes++
		}

		if in.PopRequest && !d.core.Empty() {
			d.poppedWords = append(d.poppedWords, d.core.OutputWord())
			d.stats.NumPops++
		}
	}

	out := d.core.Tick(in)

	if out.PushOnFull {
		d.stats.NumPushOnFull++
	}

	if out.PopOnEmpty {
		d.stats.NumPopOnEmpty++
	}

	d.last = out
}

// A Builder can build drivers.
type Builder struct {
	core     *fifo.Core
	stimulus Stimulus
}

// MakeBuilder creates a default builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithCore sets the FIFO the driver drives.
func (b Builder) WithCore(c *fifo.Core) Builder {
	b.core = c
	return b
}

// WithStimulus sets the stimulus source.
func (b Builder) WithStimulus(s Stimulus) Builder {
	b.stimulus = s
	return b
}

// Build builds a driver.
func (b Builder) Build(name string) *Driver {
	naming.MustBeValid(name)

	if b.core == nil {
		log.Panic("a driver needs a FIFO core")
	}

	if b.stimulus == nil {
		log.Panic("a driver needs a stimulus source")
	}

	d := &Driver{
		name:     name,
		core:     b.core,
		stimulus: b.stimulus,
	}

	d.last = fifo.Output{
		Word:      b.core.OutputWord(),
		Occupancy: b.core.Occupancy(),
		Full:      b.core.Full(),
		Empty:     b.core.Empty(),
	}

	return d
}
