package main

import (
	"os"

	"github.com/macropower/fivesquare/internal/cli"
)

const (
	cmdName = "fivesquare"

	shortDesc = "Square a multiple of five."
	longDesc  = `Reads an integer from input.txt, checks that it is a multiple of 5 in the
range [5, 400000], and writes its square to output.txt.

Any failure is reported on standard error and exits with status 1.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	os.Exit(cli.Report(os.Stderr, cmd.Execute()))
}
