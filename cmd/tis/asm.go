package main

import (
	"fmt"
	"log"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/tis/loader"
	"github.com/ezrec/tis/node"
)

var asmComment string
var asmVerbose bool

// asmCmd represents the asm command
var asmCmd = &cobra.Command{
	Use:   "asm program.tis",
	Short: "Assemble a program file, and print the listing of each node",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		sources, err := loader.ReadFile(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}

		asm := &node.Assembler{
			Verbose:       asmVerbose,
			CommentMarker: asmComment,
		}

		w := cmd.OutOrStdout()
		for _, index := range slices.Sorted(maps.Keys(sources)) {
			prog, err := asm.Assemble(strings.NewReader(sources[index]))
			if err != nil {
				log.Fatalf("%v: node %d: %v", path, index, err)
			}
			fmt.Fprintf(w, "@%d\n%v\n", index, prog.Listing())
		}
	},
}

func init() {
	asmCmd.Flags().StringVarP(&asmComment, "comment", "c", node.DEFAULT_COMMENT, "Line comment marker")
	asmCmd.Flags().BoolVarP(&asmVerbose, "verbose", "v", false, "Verbose mode")

	rootCmd.AddCommand(asmCmd)
}
