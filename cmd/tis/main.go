// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/tis/translate"
)

var f = translate.From

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tis",
	Short: "Lock-step grid of nodes simulator",
	Long: `Tis assembles and runs programs on a grid of tiny nodes, which only
communicate with their neighbors through blocking ports.

A program file holds the program of each node, after an '@<index>'
marker line. A puzzle script describes the grid layout, the input
streams fed into the top row, and the expected output streams drained
from the bottom row.
`,
	SilenceUsage: true,
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
