package fifo

import (
	"github.com/sarchlab/syncfifo/datarecording"
	"github.com/sarchlab/syncfifo/sim/hooking"
	"github.com/sarchlab/syncfifo/sim/timing"
)

// TickRecord is the row stored for each clock edge of a traced FIFO.
type TickRecord struct {
	Cycle       uint64
	PushRequest bool
	PushData    uint64
	PopRequest  bool
	Word        uint64
	Occupancy   uint64
	Full        bool
	Empty       bool
	PushOnFull  bool
	PopOnEmpty  bool
}

// A TickTracer is a hook that records the signals of every clock edge of a
// FIFO into a DataRecorder table.
type TickTracer struct {
	cycleTeller timing.CycleTeller
	recorder    datarecording.DataRecorder
	tableName   string
}

// NewTickTracer creates a tracer writing to the given table. The table is
// created immediately.
func NewTickTracer(
	tableName string,
	cycleTeller timing.CycleTeller,
	recorder datarecording.DataRecorder,
) *TickTracer {
	recorder.CreateTable(tableName, TickRecord{})

	return &TickTracer{
		cycleTeller: cycleTeller,
		recorder:    recorder,
		tableName:   tableName,
	}
}

// Func records one row per tick hook invocation. Other positions are ignored.
func (t *TickTracer) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosTick {
		return
	}

	in := ctx.Item.(Input)
	out := ctx.Detail.(Output)

	t.recorder.InsertData(t.tableName, TickRecord{
		Cycle:       uint64(t.cycleTeller.Now()),
		PushRequest: in.PushRequest,
		PushData:    in.PushData,
		PopRequest:  in.PopRequest,
		Word:        out.Word,
		Occupancy:   out.Occupancy,
		Full:        out.Full,
		Empty:       out.Empty,
		PushOnFull:  out.PushOnFull,
		PopOnEmpty:  out.PopOnEmpty,
	})
}
