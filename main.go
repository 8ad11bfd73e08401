package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/Pinarr/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Pinarr"), kong.Description("Pinarr is a wine cellar management tool."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
