// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dalzilio/rudd/v2/dfa"
)

// ErrRejected is returned by the accept command when at least one word is
// rejected by the automaton.
var ErrRejected = errors.New("word rejected")

var (
	acceptedStyle = color.New(color.FgGreen, color.Bold)
	rejectedStyle = color.New(color.FgRed, color.Bold)
	wordStyle     = color.New(color.FgCyan)
)

type acceptOptions struct {
	symbols bool
}

// NewAcceptCommand creates the accept command.
func NewAcceptCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &acceptOptions{}
	cmd := &cobra.Command{
		Use:   "accept <file> [words...]",
		Short: "Test if words are accepted by an automaton",
		Long: `Test if words are accepted by the automaton in file, one line per word.

Each character of a word is a symbol, unless --symbols is set, in which case a
word is a comma-separated list of symbols. The exit status is 1 if some word
is rejected.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccept(rootOpts, opts, cmd, args[0], args[1:])
		},
	}
	cmd.Flags().BoolVarP(&opts.symbols, "symbols", "s", false, "words are comma-separated lists of symbols")
	return cmd
}

func runAccept(rootOpts *RootOptions, opts *acceptOptions, cmd *cobra.Command, filename string, words []string) error {
	e, err := rootOpts.encode(filename)
	if err != nil {
		return err
	}
	defer rootOpts.done(e)
	out := cmd.OutOrStdout()
	rejected := 0
	for _, w := range words {
		var ok bool
		if opts.symbols {
			ok = e.Accepts(dfa.Symbols(w))
		} else {
			ok = e.AcceptsWord(w)
		}
		if ok {
			fmt.Fprintf(out, "%s: %s\n", wordStyle.Sprintf("%q", w), acceptedStyle.Sprint("accepted"))
			continue
		}
		rejected++
		fmt.Fprintf(out, "%s: %s\n", wordStyle.Sprintf("%q", w), rejectedStyle.Sprint("rejected"))
	}
	if rejected > 0 {
		return fmt.Errorf("%w: %d out of %d", ErrRejected, rejected, len(words))
	}
	return nil
}
