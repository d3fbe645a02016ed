// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package cmd implements the dfabdd command line tool, used to query the
// relational encoding of an automaton described in a YAML or JSON file.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dalzilio/rudd/v2/dfa"
)

// defaultConfigFile is read, when it exists, if no --config flag is given.
const defaultConfigFile = ".dfabdd.yaml"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	ConfigFile string

	config *Config
	logger *zap.Logger
}

// NewRootCommand creates the root command for dfabdd.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "dfabdd",
		Short: "dfabdd - symbolic queries on finite automata",
		Long: `Encode a finite automaton as a Binary Decision Diagram and query it.

The automaton is given as a YAML or JSON file with a list of nodes (id,
isInitial, isFinal) and a list of links (source, target, label), where a label
is a comma-separated list of symbols. Use "-" to read from standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug traces on stderr")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "configuration file (default "+defaultConfigFile+" if present)")

	cmd.AddCommand(NewAcceptCommand(opts))
	cmd.AddCommand(NewDotCommand(opts))
	cmd.AddCommand(NewDiagramCommand(opts))
	cmd.AddCommand(NewReachCommand(opts))

	return cmd
}

// Execute runs the root command with the arguments of the program.
func Execute() error {
	return NewRootCommand().Execute()
}

// prepare reads the configuration and builds the logger, once.
func (o *RootOptions) prepare() error {
	if o.logger == nil {
		var err error
		if o.Verbose {
			o.logger, err = zap.NewDevelopment()
		} else {
			o.logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
	}
	if o.config != nil {
		return nil
	}
	filename := o.ConfigFile
	if filename == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			o.config = &Config{}
			return nil
		}
		filename = defaultConfigFile
	}
	c, err := LoadConfig(filename)
	if err != nil {
		return err
	}
	o.logger.Debug("configuration loaded", zap.String("file", filename))
	o.config = c
	return nil
}

// encode loads the automaton in filename and computes its encoding.
func (o *RootOptions) encode(filename string) (*dfa.Encoding, error) {
	if err := o.prepare(); err != nil {
		return nil, err
	}
	s, err := dfa.LoadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		if o.config.Strict {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		for _, e := range unjoin(err) {
			o.logger.Warn("ignoring inconsistent automaton", zap.String("file", filename), zap.Error(e))
		}
	}
	e, err := dfa.Encode(s, o.config.options(o.logger)...)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("automaton encoded",
		zap.String("file", filename),
		zap.Strings("states", e.States()),
		zap.Strings("symbols", e.Symbols()))
	return e, nil
}

// done logs the statistics of the BDD used by a command.
func (o *RootOptions) done(e *dfa.Encoding) {
	e.BDD().LogStats(false)
	_ = o.logger.Sync()
}

// unjoin returns the list of errors joined with errors.Join.
func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

// IsSilent reports whether err should be reported only through the exit
// status of the program.
func IsSilent(err error) bool {
	return errors.Is(err, ErrRejected)
}
