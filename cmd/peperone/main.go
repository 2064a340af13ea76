package main

import (
	"os"

	"github.com/psantana5/peperone/cmd/peperone/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
