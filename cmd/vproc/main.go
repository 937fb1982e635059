// Command vproc is a minimal example caller of the isa and core packages:
// it assembles a line-oriented mnemonic listing into the binary
// instruction encoding, disassembles a binary blob back to mnemonic
// lines, and runs a binary program against a Core. None of this is part
// of the codec or execution core itself — it is the kind of front end
// that stays outside the core as an external collaborator.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "vproc",
		Short: "Assemble, disassemble, and run programs against the processor core",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print a step trace while running")

	root.AddCommand(assembleCmd())
	root.AddCommand(disassembleCmd())
	root.AddCommand(runCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func assembleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assemble <in.txt> <out.bin>",
		Short: "Assemble a mnemonic listing into the binary instruction encoding",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssemble(args[0], args[1])
		},
	}
}

func disassembleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disassemble <in.bin>",
		Short: "Disassemble a binary blob into mnemonic lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDisassemble(args[0])
		},
	}
}

func runCmd() *cobra.Command {
	var memorySize int
	var portCount int

	cmd := &cobra.Command{
		Use:   "run <in.bin>",
		Short: "Load a binary program at address 0 and execute it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(args[0], memorySize, portCount)
		},
	}
	cmd.Flags().IntVar(&memorySize, "memory", 1<<16, "memory size in bytes")
	cmd.Flags().IntVar(&portCount, "ports", 16, "number of ports")
	return cmd
}
