package ui

import (
	"fmt"

	"simpleui/apperr"
	"simpleui/definition"
	"simpleui/events"
	"simpleui/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"
)

type (
	// Properties related to UI.
	UI struct {
		Fyne   fyne.App
		log    *zap.Logger
		events *events.Dispatcher
		run    func()
	}

	// Program is one of the demo applications: the window definition it is
	// built from and the builder that binds its handlers.
	Program struct {
		Name  string
		check func(def *definition.Window) error
		build func(a fyne.App, def *definition.Window, d *events.Dispatcher, log *zap.Logger) (fyne.Window, error)
	}
)

var (
	Form = Program{
		Name:  "formulario",
		check: checkForm,
		build: func(a fyne.App, def *definition.Window, d *events.Dispatcher, log *zap.Logger) (fyne.Window, error) {
			fw, err := NewFormWindow(a, def, d, log)
			if err != nil {
				return nil, err
			}
			return fw.Window, nil
		},
	}
	Loop = Program{
		Name:  "loop",
		check: checkLoop,
		build: func(a fyne.App, def *definition.Window, d *events.Dispatcher, log *zap.Logger) (fyne.Window, error) {
			lw, err := NewLoopWindow(a, def, d, log)
			if err != nil {
				return nil, err
			}
			return lw.Window, nil
		},
	}
)

// Check verifies that def has every element the program binds a handler to.
func (p Program) Check(def *definition.Window) error {
	return p.check(def)
}

func New(appID string, log *zap.Logger) *UI {
	myApp := app.NewWithID(appID)
	myApp.SetIcon(theme.AppIcon)
	return &UI{
		Fyne:   myApp,
		log:    log,
		events: events.NewDispatcher(),
		run:    myApp.Run,
	}
}

// Run builds the program's window once the application starts and blocks
// until the last window is closed.
func (u *UI) Run(p Program, def *definition.Window) (err error) {
	if err := p.Check(def); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			u.log.Error("toolkit failure", zap.String("program", p.Name), zap.Any("panic", r))
			err = apperr.New(apperr.Toolkit, fmt.Sprintf("toolkit failure: %v", r))
		}
	}()

	var buildErr error
	u.Fyne.Lifecycle().SetOnStarted(func() {
		w, err := u.activate(p, def)
		if err != nil {
			buildErr = err
			u.log.Error("window build failed", zap.String("program", p.Name), zap.Error(err))
			u.Fyne.Quit()
			return
		}
		u.log.Debug("window shown", zap.String("program", p.Name), zap.String("title", w.Title()))
	})

	u.log.Debug("starting event loop", zap.String("program", p.Name))
	u.run()
	u.log.Debug("event loop finished", zap.String("program", p.Name))
	return buildErr
}

// activate dispatches the activation event that builds and shows the window.
func (u *UI) activate(p Program, def *definition.Window) (fyne.Window, error) {
	var (
		shown    fyne.Window
		buildErr error
	)
	u.events.On(events.Activate, func(events.Event) bool {
		w, err := p.build(u.Fyne, def, u.events, u.log)
		if err != nil {
			buildErr = err
			return true
		}
		shown = w
		w.Show()
		return true
	})
	u.events.Dispatch(events.Event{Type: events.Activate})
	return shown, buildErr
}
