// Package definition describes windows declaratively: title, size, widgets
// at absolute positions, click actions that fill a label from a template and
// key bindings that shift widgets around.
package definition

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"simpleui/apperr"
	"simpleui/form"
	"simpleui/loop"
)

//go:embed windows/*.yaml
var builtin embed.FS

type ElementType string

const (
	Input  ElementType = "input"
	Button ElementType = "button"
	Label  ElementType = "label"
)

type Element struct {
	ID          string      `yaml:"id"`
	Type        ElementType `yaml:"type"`
	X           int         `yaml:"x"`
	Y           int         `yaml:"y"`
	Width       int         `yaml:"width,omitempty"`
	Text        string      `yaml:"text,omitempty"`
	Placeholder string      `yaml:"placeholder,omitempty"`
}

// KeyBinding shifts Target by (DX, DY) when Key is pressed.
type KeyBinding struct {
	Key    string `yaml:"key"`
	Target string `yaml:"target"`
	DX     int    `yaml:"dx"`
	DY     int    `yaml:"dy"`
}

// ClickAction sets the text of the Target label when Button is clicked.
type ClickAction struct {
	Button   string         `yaml:"button"`
	Target   string         `yaml:"target"`
	Template []TemplatePart `yaml:"template"`
}

// TemplatePart is literal text or a reference to an element whose current
// text is read at click time. Exactly one of the two is set.
type TemplatePart struct {
	Text    string `yaml:"text,omitempty"`
	Element string `yaml:"element,omitempty"`
}

type Window struct {
	Title    string        `yaml:"title"`
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Elements []Element     `yaml:"elements"`
	Clicks   []ClickAction `yaml:"click,omitempty"`
	Keys     []KeyBinding  `yaml:"keypress,omitempty"`
}

// Load returns the definition called name. A file <dir>/<name>.yaml takes
// precedence over the built-in definition when dir is set.
func Load(name, dir string) (*Window, error) {
	if dir != "" {
		path := filepath.Join(dir, name+".yaml")
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			w, err := Parse(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			return w, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, apperr.Wrap(apperr.Configuration, "read window definition "+path, err)
		}
	}

	data, err := builtin.ReadFile("windows/" + name + ".yaml")
	if err != nil {
		return nil, apperr.Wrap(apperr.Configuration, "unknown window definition "+name, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML window definition.
func Parse(data []byte) (*Window, error) {
	var w Window
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, apperr.Wrap(apperr.Configuration, "decode window definition", err)
	}
	if err := w.validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

func (w *Window) validate() error {
	invalid := func(format string, args ...any) error {
		e := apperr.New(apperr.Configuration, "invalid window definition")
		e.Details = fmt.Sprintf(format, args...)
		return e
	}

	if w.Title == "" {
		return invalid("empty title")
	}
	if w.Width <= 0 || w.Height <= 0 {
		return invalid("window size %dx%d", w.Width, w.Height)
	}

	types := make(map[string]ElementType, len(w.Elements))
	for _, el := range w.Elements {
		if el.ID == "" {
			return invalid("element without id")
		}
		if _, ok := types[el.ID]; ok {
			return invalid("duplicate element %q", el.ID)
		}
		types[el.ID] = el.Type

		switch el.Type {
		case Input, Button, Label:
		default:
			return invalid("element %q has unknown type %q", el.ID, el.Type)
		}
	}

	clicked := make(map[string]bool, len(w.Clicks))
	for _, c := range w.Clicks {
		if types[c.Button] != Button {
			return invalid("click on %q, which is not a button", c.Button)
		}
		if clicked[c.Button] {
			return invalid("button %q has more than one click action", c.Button)
		}
		clicked[c.Button] = true

		if types[c.Target] != Label {
			return invalid("click on %q sets %q, which is not a label", c.Button, c.Target)
		}
		for i, p := range c.Template {
			if (p.Text == "") == (p.Element == "") {
				return invalid("click on %q: template part %d needs exactly one of text or element", c.Button, i)
			}
			if p.Element == "" {
				continue
			}
			if t := types[p.Element]; t != Input && t != Label {
				return invalid("click on %q reads %q, which is not an input or label", c.Button, p.Element)
			}
		}
	}

	for _, k := range w.Keys {
		if k.Key == "" {
			return invalid("key binding without key")
		}
		if _, ok := types[k.Target]; !ok {
			return invalid("key %s targets unknown element %q", k.Key, k.Target)
		}
	}
	return nil
}

// Element returns the element with the given ID.
func (w *Window) Element(id string) (Element, bool) {
	for _, el := range w.Elements {
		if el.ID == id {
			return el, true
		}
	}
	return Element{}, false
}

// Require checks that each id names an element of the given type.
func (w *Window) Require(t ElementType, ids ...string) error {
	for _, id := range ids {
		el, ok := w.Element(id)
		if !ok {
			e := apperr.New(apperr.Configuration, "invalid window definition")
			e.Details = fmt.Sprintf("%q needs element %q", w.Title, id)
			return e
		}
		if el.Type != t {
			e := apperr.New(apperr.Configuration, "invalid window definition")
			e.Details = fmt.Sprintf("element %q is %s, want %s", id, el.Type, t)
			return e
		}
	}
	return nil
}

// Parts converts the template for use with form.Render.
func (c ClickAction) Parts() []form.Part {
	parts := make([]form.Part, 0, len(c.Template))
	for _, p := range c.Template {
		parts = append(parts, form.Part{Text: p.Text, Element: p.Element})
	}
	return parts
}

// Bindings converts the key bindings for use with loop.Matching.
func (w *Window) Bindings() []loop.Binding {
	bs := make([]loop.Binding, 0, len(w.Keys))
	for _, k := range w.Keys {
		bs = append(bs, loop.Binding{Key: k.Key, Target: k.Target, DX: k.DX, DY: k.DY})
	}
	return bs
}
