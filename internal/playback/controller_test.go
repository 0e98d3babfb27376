package playback_test

import (
	"errors"
	"io"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/autochess/internal/playback"
)

var _ = Describe("Controller", func() {
	var (
		eng   *countingEngine
		sched *manualScheduler
		ctrl  *playback.Controller
	)

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	BeforeEach(func() {
		eng = &countingEngine{}
		sched = &manualScheduler{}
		ctrl = playback.New(eng, sched, 4, playback.WithLogger(quiet))
	})

	It("starts running with nothing scheduled", func() {
		Expect(ctrl.State()).To(Equal(playback.Running))
		Expect(ctrl.Pending()).To(BeNil())
		Expect(sched.pending).To(BeEmpty())
	})

	It("schedules the first tick on start", func() {
		ctrl.Start()
		Expect(sched.pending).To(HaveLen(1))
		Expect(sched.lastDelay()).To(Equal(250 * time.Millisecond))
		Expect(ctrl.Pending()).NotTo(BeNil())
		Expect(eng.steps).To(BeZero())
	})

	Describe("toggle", func() {
		DescribeTable("two toggles restore the prior state",
			func(toggleFirst bool) {
				if toggleFirst {
					ctrl.Toggle()
				}
				before := ctrl.Playing()
				ctrl.Toggle()
				Expect(ctrl.Playing()).To(Equal(!before))
				ctrl.Toggle()
				Expect(ctrl.Playing()).To(Equal(before))
			},
			Entry("from running", false),
			Entry("from paused", true),
		)

		It("never calls the engine", func() {
			ctrl.Toggle()
			ctrl.Toggle()
			Expect(eng.resets + eng.steps + eng.renders).To(BeZero())
		})
	})

	Describe("reset", func() {
		DescribeTable("forces running with one engine reset",
			func(paused bool) {
				if paused {
					ctrl.Toggle()
				}
				Expect(ctrl.Reset()).To(Succeed())
				Expect(ctrl.Playing()).To(BeTrue())
				Expect(eng.resets).To(Equal(1))
			},
			Entry("when running", false),
			Entry("when paused", true),
		)

		It("returns the engine error and keeps the state", func() {
			boom := errors.New("boom")
			eng.resetErr = boom
			ctrl.Toggle()
			Expect(ctrl.Reset()).To(MatchError(boom))
			Expect(ctrl.Playing()).To(BeFalse())
		})

		It("does not cancel an already scheduled tick", func() {
			ctrl.Start()
			pending := ctrl.Pending()
			Expect(ctrl.Reset()).To(Succeed())
			Expect(sched.pending).To(HaveLen(1))
			Expect(pending.Cancel()).To(BeTrue())
		})
	})

	Describe("tick", func() {
		It("steps while running and reschedules", func() {
			ctrl.Start()
			Expect(sched.fire()).To(Succeed())
			Expect(eng.steps).To(Equal(1))
			Expect(eng.renders).To(BeZero())
			Expect(sched.pending).To(HaveLen(1))
			Expect(ctrl.Ticks()).To(Equal(1))
		})

		It("pauses when the engine finishes", func() {
			eng.finishAt = 2
			ctrl.Start()
			Expect(sched.fire()).To(Succeed())
			Expect(ctrl.Playing()).To(BeTrue())
			Expect(sched.fire()).To(Succeed())
			Expect(ctrl.State()).To(Equal(playback.Paused))

			for i := 0; i < 5; i++ {
				Expect(sched.fire()).To(Succeed())
			}
			Expect(eng.steps).To(Equal(2))
			Expect(eng.renders).To(Equal(5))
		})

		It("resumes stepping after a reset following completion", func() {
			eng.finishAt = 1
			ctrl.Start()
			Expect(sched.fire()).To(Succeed())
			Expect(ctrl.Playing()).To(BeFalse())
			Expect(ctrl.Reset()).To(Succeed())
			Expect(sched.fire()).To(Succeed())
			Expect(eng.steps).To(Equal(2))
		})

		It("resumes stepping after a toggle following completion", func() {
			eng.finishAt = 1
			ctrl.Start()
			Expect(sched.fire()).To(Succeed())
			Expect(ctrl.Playing()).To(BeFalse())
			Expect(sched.fire()).To(Succeed())
			Expect(eng.steps).To(Equal(1))

			ctrl.Toggle()
			Expect(ctrl.Playing()).To(BeTrue())
			Expect(sched.fire()).To(Succeed())
			Expect(eng.steps).To(Equal(2))
			Expect(eng.resets).To(BeZero())
		})

		It("renders without advancing while paused", func() {
			ctrl.Start()
			ctrl.Toggle()
			for i := 0; i < 10; i++ {
				Expect(sched.fire()).To(Succeed())
			}
			Expect(eng.steps).To(BeZero())
			Expect(eng.position).To(BeZero())
			Expect(eng.renders).To(Equal(10))
		})

		It("stops the chain on a step error", func() {
			boom := errors.New("step failed")
			eng.stepErr = boom
			ctrl.Start()
			Expect(sched.fire()).To(MatchError(boom))
			Expect(sched.pending).To(BeEmpty())
		})

		It("stops the chain on a render error", func() {
			boom := errors.New("render failed")
			eng.renderErr = boom
			ctrl.Start()
			ctrl.Toggle()
			Expect(sched.fire()).To(MatchError(boom))
			Expect(sched.pending).To(BeEmpty())
		})
	})

	Describe("rate", func() {
		It("applies to the next schedule, not the pending one", func() {
			ctrl.Start()
			first := sched.pending[0]
			ctrl.SetRate(10)
			Expect(first.delay).To(Equal(250 * time.Millisecond))
			Expect(sched.fire()).To(Succeed())
			Expect(sched.lastDelay()).To(Equal(100 * time.Millisecond))
		})

		It("accepts non-positive rates as zero delay", func() {
			ctrl.Start()
			ctrl.SetRate(0)
			Expect(ctrl.Rate()).To(BeZero())
			Expect(sched.fire()).To(Succeed())
			Expect(sched.lastDelay()).To(BeZero())

			ctrl.SetRate(-3)
			Expect(sched.fire()).To(Succeed())
			Expect(sched.lastDelay()).To(BeZero())
		})
	})

	It("plays the four frames per second scenario", func() {
		ctrl.Start()

		Expect(sched.fire()).To(Succeed())
		Expect(eng.steps).To(Equal(1))
		Expect(ctrl.Playing()).To(BeTrue())
		Expect(sched.lastDelay()).To(Equal(250 * time.Millisecond))

		ctrl.Toggle()
		Expect(sched.fire()).To(Succeed())
		Expect(eng.steps).To(Equal(1))
		Expect(eng.renders).To(Equal(1))
		Expect(sched.lastDelay()).To(Equal(250 * time.Millisecond))

		Expect(ctrl.Reset()).To(Succeed())
		Expect(ctrl.Playing()).To(BeTrue())
		Expect(eng.resets).To(Equal(1))
		Expect(sched.fire()).To(Succeed())
		Expect(eng.steps).To(Equal(2))
	})

	It("tags the session with an id", func() {
		s := ctrl.Session()
		Expect(s.ID.String()).NotTo(BeEmpty())
		Expect(s.Rate).To(Equal(4.0))
		Expect(s.Playing).To(BeTrue())
	})
})
