package main

import (
	"os"

	"simpleui/cli"
	"simpleui/ui"
)

func main() {
	os.Exit(cli.Main(cli.NewCommand(ui.Loop, "Label that moves left each time A is pressed")))
}
