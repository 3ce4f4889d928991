package timing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/sarchlab/syncfifo/sim/hooking"
)

type hookRecorder struct {
	ctxs []hooking.HookCtx
}

func (h *hookRecorder) Func(ctx hooking.HookCtx) {
	h.ctxs = append(h.ctxs, ctx)
}

var _ = Describe("Clock", func() {
	var (
		mockCtrl *gomock.Controller
		clock    *Clock
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		clock = NewClock("Clock")
	})

	It("should start at cycle 0", func() {
		Expect(clock.Now()).To(Equal(Cycle(0)))
	})

	It("should deliver one edge per step to every device", func() {
		d1 := NewMockClockedDevice(mockCtrl)
		d2 := NewMockClockedDevice(mockCtrl)
		clock.RegisterDevice(d1)
		clock.RegisterDevice(d2)

		d1.EXPECT().CycleTick(Cycle(0))
		d2.EXPECT().CycleTick(Cycle(0))

		clock.StepOne()

		Expect(clock.Now()).To(Equal(Cycle(1)))
	})

	It("should deliver edges in registration order", func() {
		d1 := NewMockClockedDevice(mockCtrl)
		d2 := NewMockClockedDevice(mockCtrl)
		clock.RegisterDevice(d1)
		clock.RegisterDevice(d2)

		gomock.InOrder(
			d1.EXPECT().CycleTick(Cycle(0)),
			d2.EXPECT().CycleTick(Cycle(0)),
			d1.EXPECT().CycleTick(Cycle(1)),
			d2.EXPECT().CycleTick(Cycle(1)),
		)

		clock.Step(2)

		Expect(clock.Now()).To(Equal(Cycle(2)))
	})

	It("should invoke hooks around each cycle", func() {
		d := NewMockClockedDevice(mockCtrl)
		d.EXPECT().CycleTick(gomock.Any()).AnyTimes()
		clock.RegisterDevice(d)

		hook := &hookRecorder{}
		clock.AcceptHook(hook)

		clock.StepOne()

		Expect(hook.ctxs).To(HaveLen(2))
		Expect(hook.ctxs[0].Pos).To(Equal(HookPosBeforeCycle))
		Expect(hook.ctxs[0].Item).To(Equal(Cycle(0)))
		Expect(hook.ctxs[1].Pos).To(Equal(HookPosAfterCycle))
	})

	It("should answer Now from a device during a step", func() {
		var seen []Cycle

		d := NewMockClockedDevice(mockCtrl)
		d.EXPECT().
			CycleTick(gomock.Any()).
			Do(func(Cycle) {
				// Tracers call back into the clock while an edge is in
				// flight. This must not block on the step lock.
				seen = append(seen, clock.Now())
			}).
			Times(2)
		clock.RegisterDevice(d)

		clock.Step(2)

		Expect(seen).To(Equal([]Cycle{0, 1}))
	})

	It("should reject nil devices", func() {
		Expect(func() { clock.RegisterDevice(nil) }).To(Panic())
	})

	It("should reject duplicate devices", func() {
		d := NewMockClockedDevice(mockCtrl)
		clock.RegisterDevice(d)

		Expect(func() { clock.RegisterDevice(d) }).To(Panic())
	})

	It("should reject invalid names", func() {
		Expect(func() { NewClock("clock") }).To(Panic())
	})
})
