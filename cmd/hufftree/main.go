// Command hufftree builds the Huffman tree for the characters of a string and
// prints it.
//
// Usage:
//
//	hufftree [--mode diagram|table|dump|steps] TEXT
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/hufftree"
)

const usage = "usage: hufftree [--mode diagram|table|dump|steps] TEXT"

type printFunc func(io.Writer, *hufftree.Forest[rune], map[rune]hufftree.Frequency) error

var printFuncs = map[string]printFunc{
	"diagram": printDiagram,
	"table":   printTable,
	"dump":    printDump,
	"steps":   printSteps,
}

// runtimeError marks a failure that happened after the arguments were
// accepted.  Every other error out of Execute is a usage error.
type runtimeError struct {
	err error
}

func (e runtimeError) Error() string { return e.err.Error() }
func (e runtimeError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "hufftree: ", 0)

	var mode string
	cmd := &cobra.Command{
		Use:           "hufftree TEXT",
		Short:         "Build the Huffman tree for the characters of TEXT",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, found := printFuncs[mode]
			if !found {
				return fmt.Errorf("unknown mode %q", mode)
			}
			text := args[0]
			forest := hufftree.NewForestFromString(text)
			if err := fn(cmd.OutOrStdout(), forest, hufftree.CountRunes(text)); err != nil {
				return runtimeError{err}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "diagram", "output mode: diagram, table, dump or steps")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	// cobra falls back to os.Args when given a nil slice.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	var rtErr runtimeError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &rtErr):
		logger.Printf("%v", rtErr.err)
		return 1
	default:
		logger.Printf("%v", err)
		fmt.Fprintln(stderr, usage)
		fmt.Fprint(stderr, cmd.Flags().FlagUsages())
		return 2
	}
}

func printDiagram(w io.Writer, forest *hufftree.Forest[rune], _ map[rune]hufftree.Frequency) error {
	forest.Build()
	_, err := forest.WriteDiagram(w, hufftree.RuneLabel)
	return err
}

func printTable(w io.Writer, forest *hufftree.Forest[rune], freqs map[rune]hufftree.Frequency) error {
	forest.Build()
	table, err := forest.GenerateCodeTable()
	if err != nil {
		return err
	}
	if _, err := table.Dump(w, quoteRune); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "WeightedLength() = %d\n", table.WeightedLength(freqs))
	return err
}

func printDump(w io.Writer, forest *hufftree.Forest[rune], _ map[rune]hufftree.Frequency) error {
	forest.Build()
	_, err := forest.Dump(w, quoteRune)
	return err
}

func printSteps(w io.Writer, forest *hufftree.Forest[rune], _ map[rune]hufftree.Frequency) error {
	for {
		if _, err := forest.Dump(w, quoteRune); err != nil {
			return err
		}
		err := forest.Step()
		if errors.Is(err, hufftree.ErrNotEnoughNodes) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func quoteRune(r rune) string {
	return fmt.Sprintf("%q", r)
}
