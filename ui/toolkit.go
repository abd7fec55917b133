package ui

import (
	"strings"

	"simpleui/apperr"
)

// CheckDisplay fails on X11/Wayland platforms when no display is reachable,
// so the problem is reported once before the toolkit tries to start.
func CheckDisplay(goos string, getenv func(string) string) error {
	switch goos {
	case "windows", "darwin", "android", "ios", "js", "wasip1":
		return nil
	}
	if getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != "" {
		return nil
	}
	err := apperr.New(apperr.Configuration, "no display available")
	err.Details = "neither DISPLAY nor WAYLAND_DISPLAY is set"
	return err
}

// ApplyToolkitArgs honours the standard --display argument by exporting
// DISPLAY for the toolkit backend. Other arguments are left alone.
func ApplyToolkitArgs(args []string, setenv func(key, value string) error) error {
	for i := 0; i < len(args); i++ {
		var display string
		switch arg := args[i]; {
		case arg == "--display":
			if i+1 >= len(args) {
				return apperr.New(apperr.Configuration, "--display needs a value")
			}
			i++
			display = args[i]
		case strings.HasPrefix(arg, "--display="):
			display = strings.TrimPrefix(arg, "--display=")
		default:
			continue
		}
		if err := setenv("DISPLAY", display); err != nil {
			return apperr.Wrap(apperr.Configuration, "set DISPLAY", err)
		}
	}
	return nil
}
