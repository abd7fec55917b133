package ui

import (
	"simpleui/definition"
	"simpleui/events"
	"simpleui/form"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

// element IDs the form handlers are bound to
const (
	formName   = form.NameField
	formEmail  = form.EmailField
	formSubmit = "enviar"
	formResult = "resultado"
)

// FormWindow is the state the form's handlers work on.
type FormWindow struct {
	*window

	Name   *widget.Entry
	Email  *widget.Entry
	Submit *widget.Button
	Result *widget.Label
}

func checkForm(def *definition.Window) error {
	if err := def.Require(definition.Input, formName, formEmail); err != nil {
		return err
	}
	if err := def.Require(definition.Button, formSubmit); err != nil {
		return err
	}
	return def.Require(definition.Label, formResult)
}

// NewFormWindow builds the form. A definition without click actions gets
// the default submit template on the submit button.
func NewFormWindow(a fyne.App, def *definition.Window, d *events.Dispatcher, log *zap.Logger) (*FormWindow, error) {
	if err := checkForm(def); err != nil {
		return nil, err
	}

	w := newWindow(a, def, d, log)
	fw := &FormWindow{
		window: w,
		Name:   w.objects[formName].(*widget.Entry),
		Email:  w.objects[formEmail].(*widget.Entry),
		Submit: w.objects[formSubmit].(*widget.Button),
		Result: w.objects[formResult].(*widget.Label),
	}

	if len(def.Clicks) == 0 {
		w.bindClick(formSubmit, formResult, form.Template)
	}
	if fw.Result.Text == "" {
		fw.Result.SetText(form.Waiting)
		el, _ := def.Element(formResult)
		fit(fw.Result, el.Width)
	}

	log.Debug("form window built", zap.String("title", def.Title), zap.Int("elements", len(def.Elements)), zap.Int("clicks", len(def.Clicks)))
	return fw, nil
}
