// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dalzilio/rudd/v2"
	"github.com/dalzilio/rudd/v2/dfa"
)

// Names accepted by the --root flag.
var rootNames = []string{"T", "I", "F", "R"}

type exportOptions struct {
	root   string
	output string
}

// selectRoot returns the node named by root: the transition relation (T), the
// initial (I) or final (F) predicates, or the reachable states (R).
func selectRoot(e *dfa.Encoding, root string) (rudd.Node, error) {
	switch strings.ToUpper(root) {
	case "T":
		return e.T, nil
	case "I":
		return e.I, nil
	case "F":
		return e.F, nil
	case "R":
		return e.Reachable(), nil
	}
	return 0, fmt.Errorf("invalid root %q: must be one of %v", root, rootNames)
}

// NewDotCommand creates the dot command.
func NewDotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "dot <file>",
		Short: "Output the BDD of an automaton in DOT format",
		Long: `Output, in Graphviz's DOT format, the BDD of the transition relation
(T), the initial states (I), the final states (F) or the reachable states (R)
of the automaton in file.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.encode(args[0])
			if err != nil {
				return err
			}
			defer rootOpts.done(e)
			n, err := selectRoot(e, opts.root)
			if err != nil {
				return err
			}
			if opts.output != "" {
				return e.BDD().FPrintDot(opts.output, n)
			}
			return e.BDD().PrintDot(cmd.OutOrStdout(), n)
		},
	}
	cmd.Flags().StringVar(&opts.root, "root", "T", "node to export (T|I|F|R)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// NewDiagramCommand creates the diagram command.
func NewDiagramCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "diagram <file>",
		Short: "Output the nodes and edges of a BDD in JSON",
		Long: `Output the list of nodes and edges of the BDD for one of the roots T, I, F
or R of the automaton in file, with a layered position for every node.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.encode(args[0])
			if err != nil {
				return err
			}
			defer rootOpts.done(e)
			n, err := selectRoot(e, opts.root)
			if err != nil {
				return err
			}
			g, err := e.BDD().Diagram(n)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(g)
		},
	}
	cmd.Flags().StringVar(&opts.root, "root", "T", "node to export (T|I|F|R)")
	return cmd
}
