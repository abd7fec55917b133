package main

import (
	"os"

	"simpleui/cli"
	"simpleui/ui"
)

func main() {
	os.Exit(cli.Main(cli.NewCommand(ui.Form, "Form that echoes a name and e-mail into a label")))
}
