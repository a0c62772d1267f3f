package main

import (
	"os"

	"github.com/ariel-frischer/clgen/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
