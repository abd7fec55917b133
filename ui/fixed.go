package ui

import (
	"math"

	"simpleui/definition"
	"simpleui/loop"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// place creates the widgets of def at their literal positions inside a
// container without layout, keyed by element ID.
func place(def *definition.Window) (*fyne.Container, map[string]fyne.CanvasObject) {
	content := container.NewWithoutLayout()
	objects := make(map[string]fyne.CanvasObject, len(def.Elements))

	for _, el := range def.Elements {
		obj := newElement(el)
		obj.Move(fyne.NewPos(float32(el.X), float32(el.Y)))
		fit(obj, el.Width)
		content.Add(obj)
		objects[el.ID] = obj
	}
	return content, objects
}

func newElement(el definition.Element) fyne.CanvasObject {
	switch el.Type {
	case definition.Input:
		entry := widget.NewEntry()
		entry.SetPlaceHolder(el.Placeholder)
		return entry
	case definition.Button:
		return widget.NewButton(el.Text, nil)
	default:
		return widget.NewLabel(el.Text)
	}
}

// fit sizes obj to its minimum size, widened to width when that is larger.
// Nothing else sizes children of a container without layout.
func fit(obj fyne.CanvasObject, width int) {
	size := obj.MinSize()
	if w := float32(width); w > size.Width {
		size.Width = w
	}
	obj.Resize(size)
}

func positionOf(obj fyne.CanvasObject) loop.Position {
	p := obj.Position()
	return loop.Position{
		X: int(math.Round(float64(p.X))),
		Y: int(math.Round(float64(p.Y))),
	}
}

func moveTo(obj fyne.CanvasObject, p loop.Position) {
	obj.Move(fyne.NewPos(float32(p.X), float32(p.Y)))
}
