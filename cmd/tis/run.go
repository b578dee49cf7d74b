package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/tis/grid"
	"github.com/ezrec/tis/io"
	"github.com/ezrec/tis/loader"
	"github.com/ezrec/tis/puzzle"
)

var runPuzzle string
var runLimit int
var runSeed int64
var runInputs []string
var runVerbose bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run -p puzzle.star program.tis",
	Short: "Run a program file against a puzzle, and verify its outputs",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		ld := &puzzle.Loader{
			Verbose: runVerbose,
			Seed:    runSeed,
		}
		p, err := ld.Load(runPuzzle, nil)
		if err != nil {
			log.Fatalf("%v", err)
		}

		config := p.Config()
		for _, input := range runInputs {
			err = overrideInput(&config, input)
			if err != nil {
				log.Fatalf("%v: %v", input, err)
			}
		}

		g, err := grid.NewGrid(config)
		if err != nil {
			log.Fatalf("%v: %v", runPuzzle, err)
		}
		g.Verbose = runVerbose

		sources, err := loader.ReadFile(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}

		err = g.Load(sources)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}

		err = g.FirstPass()
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}

		result, err := g.Run(runLimit)
		if err != nil {
			if runVerbose {
				log.Print(g.String())
			}
			log.Fatalf("%v: %v", path, err)
		}

		w := cmd.OutOrStdout()
		verdicts, passed := g.Verify()
		for _, verdict := range verdicts {
			status := "PASS"
			if !verdict.Passed {
				status = fmt.Sprintf("FAIL at %d", verdict.Mismatch)
			}
			fmt.Fprintf(w, "%v: %v\n", verdict.Name, status)
			err = io.WriteTape(w, verdict.Values)
			if err != nil {
				log.Fatalf("%v", err)
			}
		}

		stats := g.Stats()
		fmt.Fprintf(w, "%v: ticks %d, nodes %d, instructions %d\n", p.Name, stats.Ticks, stats.Nodes, stats.Instructions)

		if !result.Done {
			log.Fatalf("%v: not done after %d ticks", p.Name, result.Ticks)
		}
		if !passed {
			log.Fatalf("%v: failed", p.Name)
		}
	},
}

// overrideInput replaces the values of an input stream from a tape
// file, given as 'name=path'.
func overrideInput(config *grid.Config, input string) (err error) {
	name, path, ok := strings.Cut(input, "=")
	if !ok {
		err = errors.New(f("expected name=path"))
		return
	}

	for n := range config.Inputs {
		stream := &config.Inputs[n]
		if stream.Name != name {
			continue
		}

		var inf *os.File
		inf, err = os.Open(path)
		if err != nil {
			return
		}
		defer inf.Close()

		stream.Values, err = io.ReadTape(inf)

		return
	}

	err = errors.New(f("no input stream '%v'", name))

	return
}

func init() {
	runCmd.Flags().StringVarP(&runPuzzle, "puzzle", "p", "", "Puzzle script")
	runCmd.Flags().IntVarP(&runLimit, "limit", "n", 100000, "Tick limit, none if 0")
	runCmd.Flags().Int64VarP(&runSeed, "seed", "s", puzzle.DEFAULT_SEED, "Puzzle random seed")
	runCmd.Flags().StringArrayVarP(&runInputs, "input", "i", nil, "Input stream tape override, as name=path")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Verbose mode")
	_ = runCmd.MarkFlagRequired("puzzle")

	rootCmd.AddCommand(runCmd)
}
