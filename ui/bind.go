package ui

import (
	"simpleui/definition"
	"simpleui/events"
	"simpleui/form"
	"simpleui/loop"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

// window holds what every program window shares: the widgets placed from
// the definition and the handlers bound to them through the dispatcher.
type window struct {
	Window fyne.Window

	def      *definition.Window
	objects  map[string]fyne.CanvasObject
	bindings []loop.Binding
	events   *events.Dispatcher
	log      *zap.Logger
}

func newWindow(a fyne.App, def *definition.Window, d *events.Dispatcher, log *zap.Logger) *window {
	content, objects := place(def)
	w := &window{
		Window:   a.NewWindow(def.Title),
		def:      def,
		objects:  objects,
		bindings: def.Bindings(),
		events:   d,
		log:      log,
	}

	for _, el := range def.Elements {
		if b, ok := objects[el.ID].(*widget.Button); ok {
			id := el.ID
			b.OnTapped = func() {
				w.events.Dispatch(events.Event{Type: events.Click, Target: id})
			}
		}
	}
	for _, c := range def.Clicks {
		w.bindClick(c.Button, c.Target, c.Parts())
	}
	for _, key := range loop.Keys(w.bindings) {
		d.OnKey(key, func() { w.move(key) })
	}
	d.On(events.KeyPress, w.unhandled)

	w.Window.SetContent(content)
	w.Window.Resize(fyne.NewSize(float32(def.Width), float32(def.Height)))
	// Fyne names letter keys by their upper-case KeyName with or without
	// Shift, so a binding for "A" also fires on an unshifted a.
	w.Window.Canvas().SetOnTypedKey(func(k *fyne.KeyEvent) {
		w.HandleKey(k.Name)
	})
	return w
}

// HandleKey dispatches a key press and reports whether any handler took it.
func (w *window) HandleKey(name fyne.KeyName) bool {
	return w.events.Dispatch(events.Event{Type: events.KeyPress, Key: string(name)})
}

// bindClick makes clicks on button render parts into the target label.
// Element texts are read when the click happens.
func (w *window) bindClick(button, target string, parts []form.Part) {
	label := w.objects[target].(*widget.Label)
	el, _ := w.def.Element(target)

	w.events.OnClick(button, func() {
		text := form.Render(parts, w.text)
		label.SetText(text)
		fit(label, el.Width)
		w.log.Debug("label updated", zap.String("button", button), zap.String("target", target), zap.Int("length", len(text)))
	})
}

func (w *window) text(id string) string {
	switch obj := w.objects[id].(type) {
	case *widget.Entry:
		return obj.Text
	case *widget.Label:
		return obj.Text
	}
	return ""
}

// move applies every binding for key in order. The position is read back
// from the container before each shift, so nothing is cached.
func (w *window) move(key string) {
	for _, b := range loop.Matching(key, w.bindings) {
		obj := w.objects[b.Target]
		to := b.Apply(positionOf(obj))
		moveTo(obj, to)
		w.log.Debug("element moved", zap.String("id", b.Target), zap.Int("x", to.X), zap.Int("y", to.Y))
	}
}

func (w *window) unhandled(ev events.Event) bool {
	w.log.Debug("key not bound", zap.String("key", ev.Key))
	return false
}
