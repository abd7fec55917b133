package theme

import (
	_ "embed"
)

//go:embed icon.svg
var icon []byte

// AppIcon is shown in the title bar and task switcher of both demos.
var AppIcon = appIcon{}

type appIcon struct{}

func (appIcon) Name() string {
	return "simpleui.svg"
}

func (appIcon) Content() []byte {
	return icon
}
