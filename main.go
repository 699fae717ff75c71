package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/BreweryStats/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Brewery Stats"), kong.Description("Brewery Stats serves aggregate brewery counts to the breweries dashboard."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
