// Command gildedrose advances a Gilded Rose inventory day by day.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/gildedrose/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
