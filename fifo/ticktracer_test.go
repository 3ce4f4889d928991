package fifo

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/syncfifo/sim/timing"
)

type recorderStub struct {
	tables map[string][]any
}

func newRecorderStub() *recorderStub {
	return &recorderStub{tables: make(map[string][]any)}
}

func (r *recorderStub) CreateTable(tableName string, _ any) {
	r.tables[tableName] = nil
}

func (r *recorderStub) InsertData(tableName string, entry any) {
	r.tables[tableName] = append(r.tables[tableName], entry)
}

func (r *recorderStub) ListTables() []string {
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}

	return names
}

func (r *recorderStub) Flush() {}

type cycleTellerStub struct {
	now timing.Cycle
}

func (t *cycleTellerStub) Now() timing.Cycle {
	return t.now
}

type pushingDevice struct {
	c *Core
}

func (d *pushingDevice) CycleTick(now timing.Cycle) {
	d.c.Tick(Input{PushRequest: true, PushData: uint64(now)})
}

var _ = Describe("TickTracer", func() {
	var (
		recorder *recorderStub
		teller   *cycleTellerStub
		c        *Core
	)

	BeforeEach(func() {
		recorder = newRecorderStub()
		teller = &cycleTellerStub{}

		c = MakeBuilder().
			WithCapacity(2).
			WithWordWidth(8).
			Build("Fifo")
		c.AcceptHook(NewTickTracer("fifo_trace", teller, recorder))
	})

	It("should create the table up front", func() {
		Expect(recorder.ListTables()).To(ContainElement("fifo_trace"))
	})

	It("should record one row per edge", func() {
		c.Tick(Input{PushRequest: true, PushData: 7})
		teller.now++
		c.Tick(Input{PopRequest: true})

		rows := recorder.tables["fifo_trace"]
		Expect(rows).To(HaveLen(2))

		first := rows[0].(TickRecord)
		Expect(first.Cycle).To(Equal(uint64(0)))
		Expect(first.PushRequest).To(BeTrue())
		Expect(first.PushData).To(Equal(uint64(7)))
		Expect(first.Occupancy).To(Equal(uint64(1)))

		second := rows[1].(TickRecord)
		Expect(second.Cycle).To(Equal(uint64(1)))
		Expect(second.PopRequest).To(BeTrue())
		Expect(second.Occupancy).To(Equal(uint64(0)))
		Expect(second.Empty).To(BeTrue())
	})

	It("should record reset edges", func() {
		c.Tick(Input{PushRequest: true, PushData: 7})
		c.Tick(Input{Reset: true})

		rows := recorder.tables["fifo_trace"]
		Expect(rows).To(HaveLen(2))
		Expect(rows[1].(TickRecord).Occupancy).To(Equal(uint64(0)))
	})

	It("should record diagnostics", func() {
		c.Tick(Input{PopRequest: true})

		rows := recorder.tables["fifo_trace"]
		Expect(rows[0].(TickRecord).PopOnEmpty).To(BeTrue())
	})
})

var _ = Describe("TickTracer on a clock", func() {
	// The tracer asks the clock for the cycle from inside an edge the
	// clock itself is delivering, so the clock must answer mid-step.
	It("should stamp rows with the cycle of the driving clock", func() {
		recorder := newRecorderStub()
		clock := timing.NewClock("Clock")

		c := MakeBuilder().
			WithCapacity(4).
			WithWordWidth(8).
			Build("Fifo")
		c.AcceptHook(NewTickTracer("fifo_trace", clock, recorder))
		clock.RegisterDevice(&pushingDevice{c: c})

		clock.Step(3)

		rows := recorder.tables["fifo_trace"]
		Expect(rows).To(HaveLen(3))

		for i, row := range rows {
			Expect(row.(TickRecord).Cycle).To(Equal(uint64(i)))
			Expect(row.(TickRecord).PushData).To(Equal(uint64(i)))
		}
	})
})
