package ui

import (
	"simpleui/definition"
	"simpleui/events"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

const loopLabel = "coisa"

// LoopWindow is the state the key handlers work on. Positions are not
// cached: each press reads the current one from the container.
type LoopWindow struct {
	*window

	Label *widget.Label
}

func checkLoop(def *definition.Window) error {
	return def.Require(definition.Label, loopLabel)
}

func NewLoopWindow(a fyne.App, def *definition.Window, d *events.Dispatcher, log *zap.Logger) (*LoopWindow, error) {
	if err := checkLoop(def); err != nil {
		return nil, err
	}

	w := newWindow(a, def, d, log)
	lw := &LoopWindow{
		window: w,
		Label:  w.objects[loopLabel].(*widget.Label),
	}

	log.Debug("loop window built", zap.String("title", def.Title), zap.Int("bindings", len(w.bindings)))
	return lw, nil
}
