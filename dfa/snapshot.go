// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dfa

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownState is reported by Validate when a link uses a state that is not
// declared in the list of nodes.
var ErrUnknownState = errors.New("unknown state")

// ErrDuplicateState is reported by Validate when the same state id is declared
// twice.
var ErrDuplicateState = errors.New("duplicate state")

// State is a node of an automaton, as given by the editor.
type State struct {
	ID        string `yaml:"id" json:"id"`
	IsInitial bool   `yaml:"isInitial" json:"isInitial"`
	IsFinal   bool   `yaml:"isFinal" json:"isFinal"`
}

// Link is an edge of an automaton. Label is a comma-separated list of
// symbols; an edge with several symbols stands for one transition per symbol.
type Link struct {
	Source string `yaml:"source" json:"source"`
	Target string `yaml:"target" json:"target"`
	Label  string `yaml:"label" json:"label"`
}

// Snapshot is the description of an automaton at the time of a query.
type Snapshot struct {
	Nodes []State `yaml:"nodes" json:"nodes"`
	Links []Link  `yaml:"links" json:"links"`
}

// Symbols returns the list of symbols in a label, with surrounding spaces
// removed and empty items dropped.
func Symbols(label string) []string {
	res := []string{}
	for _, s := range strings.Split(label, ",") {
		if s = strings.TrimSpace(s); s != "" {
			res = append(res, s)
		}
	}
	return res
}

// Alphabet returns the set of symbols used in the links of s, in the order of
// their first occurrence.
func (s *Snapshot) Alphabet() []string {
	seen := make(map[string]bool)
	res := []string{}
	for _, l := range s.Links {
		for _, a := range Symbols(l.Label) {
			if !seen[a] {
				seen[a] = true
				res = append(res, a)
			}
		}
	}
	return res
}

// Initial returns the id of the first state flagged as initial, and false if
// there are none.
func (s *Snapshot) Initial() (string, bool) {
	for _, q := range s.Nodes {
		if q.IsInitial {
			return q.ID, true
		}
	}
	return "", false
}

// Validate checks that state ids are unique and that every link uses declared
// states. It does not check that the automaton is deterministic or complete.
func (s *Snapshot) Validate() error {
	var errs []error
	declared := make(map[string]bool, len(s.Nodes))
	for _, q := range s.Nodes {
		if declared[q.ID] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateState, q.ID))
		}
		declared[q.ID] = true
	}
	for k, l := range s.Links {
		if !declared[l.Source] {
			errs = append(errs, fmt.Errorf("%w: %q (source of link %d)", ErrUnknownState, l.Source, k))
		}
		if !declared[l.Target] {
			errs = append(errs, fmt.Errorf("%w: %q (target of link %d)", ErrUnknownState, l.Target, k))
		}
	}
	return errors.Join(errs...)
}

// Load decodes a snapshot in YAML or JSON format.
func Load(r io.Reader) (*Snapshot, error) {
	s := &Snapshot{}
	if err := yaml.NewDecoder(r).Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return s, nil
}

// LoadFile decodes the snapshot stored in file filename, or read from the
// standard input if filename is "-".
func LoadFile(filename string) (*Snapshot, error) {
	if filename == "-" {
		return Load(os.Stdin)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}
