package main

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"tinkasm/pkg/asm"
	"tinkasm/pkg/utils"
)

var (
	showSymbols bool
	verbose     bool
)

// rootCmd is the whole CLI: assemble one Tinker source file into its
// resolved text form.
var rootCmd = &cobra.Command{
	Use:   "tinkasm sourceFile [outputFile]",
	Short: "Two-pass assembler for the Tinker instruction set",
	Long: `Tinkasm translates Tinker assembly into a fully resolved instruction
stream: labels become concrete addresses or relative branch offsets, and
the pseudo-instructions (ld, push, pop, in, out, clr, halt) are expanded
into their primitive sequences. The output is text, one instruction or
data cell per line, ready for a separate encoder.

When outputFile is omitted, the result is written next to the source file
with its extension swapped for .out.
`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		run(args)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&showSymbols, "symbols", false, "dump the label table to stderr after assembly")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace every emitted line to stderr")
}

func run(args []string) {
	inPath := args[0]

	source, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read input file %q: %v\n", inPath, err)
		os.Exit(1)
	}

	assembler := asm.NewAssembler()
	prog, err := assembler.Assemble(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "assembly failed: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		for _, ln := range prog.Lines {
			pp.Fprintf(os.Stderr, "%v\n", ln)
		}
	}
	if showSymbols {
		pp.Fprintf(os.Stderr, "Symbols: %v\n", assembler.Symbols().Labels())
	}

	outPath := utils.OutputPath(inPath, ".out")
	if len(args) == 2 {
		outPath = args[1]
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output file %q: %v\n", outPath, err)
		os.Exit(1)
	}
	if _, err := prog.WriteTo(out); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "failed to write output file %q: %v\n", outPath, err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write output file %q: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("assembled %d lines -> %s\n", len(prog.Lines), outPath)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
