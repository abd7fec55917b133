package events_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"simpleui/events"
)

var _ = Describe("Dispatcher", func() {
	var d *events.Dispatcher

	BeforeEach(func() {
		d = events.NewDispatcher()
	})

	It("reports events without handlers as unhandled", func() {
		Expect(d.Dispatch(events.Event{Type: events.KeyPress, Key: "A"})).To(BeFalse())
	})

	It("only delivers events of the registered type", func() {
		var got []events.Event
		d.On(events.Click, func(ev events.Event) bool {
			got = append(got, ev)
			return true
		})

		Expect(d.Dispatch(events.Event{Type: events.KeyPress, Key: "A"})).To(BeFalse())
		Expect(d.Dispatch(events.Event{Type: events.Click, Target: "enviar"})).To(BeTrue())
		Expect(got).To(Equal([]events.Event{{Type: events.Click, Target: "enviar"}}))
	})

	It("stops at the first handler that consumes the event", func() {
		var calls []string
		d.On(events.KeyPress, func(events.Event) bool {
			calls = append(calls, "first")
			return false
		})
		d.On(events.KeyPress, func(events.Event) bool {
			calls = append(calls, "second")
			return true
		})
		d.On(events.KeyPress, func(events.Event) bool {
			calls = append(calls, "third")
			return true
		})

		Expect(d.Dispatch(events.Event{Type: events.KeyPress, Key: "A"})).To(BeTrue())
		Expect(calls).To(Equal([]string{"first", "second"}))
	})

	Describe("OnKey", func() {
		var presses int

		BeforeEach(func() {
			presses = 0
			d.OnKey("A", func() { presses++ })
		})

		It("handles the registered key", func() {
			Expect(d.Dispatch(events.Event{Type: events.KeyPress, Key: "A"})).To(BeTrue())
			Expect(presses).To(Equal(1))
		})

		It("lets other keys fall through", func() {
			var fallthroughKey string
			d.On(events.KeyPress, func(ev events.Event) bool {
				fallthroughKey = ev.Key
				return false
			})

			Expect(d.Dispatch(events.Event{Type: events.KeyPress, Key: "B"})).To(BeFalse())
			Expect(presses).To(BeZero())
			Expect(fallthroughKey).To(Equal("B"))
		})
	})

	Describe("OnClick", func() {
		It("matches on target", func() {
			clicked := 0
			d.OnClick("enviar", func() { clicked++ })

			Expect(d.Dispatch(events.Event{Type: events.Click, Target: "outro"})).To(BeFalse())
			Expect(d.Dispatch(events.Event{Type: events.Click, Target: "enviar"})).To(BeTrue())
			Expect(clicked).To(Equal(1))
		})
	})
})

var _ = DescribeTable("Type.String",
	func(t events.Type, want string) {
		Expect(t.String()).To(Equal(want))
	},
	Entry("activate", events.Activate, "activate"),
	Entry("click", events.Click, "click"),
	Entry("keypress", events.KeyPress, "keypress"),
	Entry("unknown", events.Type(42), "Type(42)"),
)
