package autoplay_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cubelife/internal/autoplay"
)

var _ = Describe("Player", func() {
	var p *autoplay.Player

	BeforeEach(func() {
		p = autoplay.New(time.Millisecond)
	})

	It("starts stopped", func() {
		Expect(p.State()).To(Equal(autoplay.Stopped))
		Expect(p.Running()).To(BeFalse())
	})

	It("falls back to the default interval", func() {
		Expect(autoplay.New(0).Interval()).To(Equal(autoplay.DefaultInterval))
	})

	Describe("Toggle", func() {
		It("starts the timer from Stopped", func() {
			Expect(p.Toggle()).NotTo(BeNil())
			Expect(p.State()).To(Equal(autoplay.Running))
		})

		It("stops instead of starting twice", func() {
			p.Toggle()
			Expect(p.Toggle()).To(BeNil())
			Expect(p.State()).To(Equal(autoplay.Stopped))
		})
	})

	Describe("Stop", func() {
		It("is idempotent", func() {
			p.Stop()
			p.Stop()
			Expect(p.State()).To(Equal(autoplay.Stopped))

			p.Toggle()
			p.Stop()
			p.Stop()
			Expect(p.State()).To(Equal(autoplay.Stopped))
		})
	})

	Describe("Handle", func() {
		It("fires for ticks of the current run and reschedules", func() {
			msg := p.Toggle()().(autoplay.TickMsg)

			fire, next := p.Handle(msg)
			Expect(fire).To(BeTrue())
			Expect(next).NotTo(BeNil())
			Expect(next().(autoplay.TickMsg).Run).To(Equal(msg.Run))
		})

		It("drops ticks after a stop", func() {
			msg := p.Toggle()().(autoplay.TickMsg)
			p.Stop()

			fire, next := p.Handle(msg)
			Expect(fire).To(BeFalse())
			Expect(next).To(BeNil())
		})

		It("drops ticks from an earlier run", func() {
			stale := p.Toggle()().(autoplay.TickMsg)
			p.Toggle()
			p.Toggle()

			fire, _ := p.Handle(stale)
			Expect(fire).To(BeFalse())
			Expect(p.Running()).To(BeTrue())
		})
	})

	Describe("Due", func() {
		var t0 time.Time

		BeforeEach(func() {
			p = autoplay.New(500 * time.Millisecond)
			t0 = time.Unix(1000, 0)
		})

		It("never fires while stopped", func() {
			Expect(p.Due(t0)).To(BeFalse())
			Expect(p.Due(t0.Add(time.Hour))).To(BeFalse())
		})

		It("fires once per elapsed interval", func() {
			p.Toggle()
			Expect(p.Due(t0)).To(BeFalse())
			Expect(p.Due(t0.Add(200 * time.Millisecond))).To(BeFalse())
			Expect(p.Due(t0.Add(500 * time.Millisecond))).To(BeTrue())
			Expect(p.Due(t0.Add(600 * time.Millisecond))).To(BeFalse())
			Expect(p.Due(t0.Add(1000 * time.Millisecond))).To(BeTrue())
		})

		It("does not burst after a long pause", func() {
			p.Toggle()
			p.Due(t0)
			Expect(p.Due(t0.Add(10 * time.Second))).To(BeTrue())
			Expect(p.Due(t0.Add(10*time.Second + time.Millisecond))).To(BeFalse())
		})
	})
})
