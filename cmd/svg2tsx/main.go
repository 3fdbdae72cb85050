// Package main is the entry point for the svg2tsx CLI.
package main

import (
	"os"

	"github.com/jmylchreest/svg2tsx/cmd/svg2tsx/commands"
)

func main() {
	os.Exit(commands.Execute())
}
