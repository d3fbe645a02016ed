// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/dalzilio/rudd/v2"
)

// Config is the content of the configuration file. Sizes are passed to the
// BDD of every encoding; a zero value keeps the default.
type Config struct {
	Nodesize   int  `yaml:"nodesize"`
	Cachesize  int  `yaml:"cachesize"`
	Checkorder bool `yaml:"checkorder"`
	// Strict makes commands fail on automata with undeclared or duplicate
	// states instead of logging a warning.
	Strict bool `yaml:"strict"`
}

// LoadConfig reads the configuration in file filename.
func LoadConfig(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c := &Config{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	if c.Nodesize < 0 || c.Cachesize < 0 {
		return nil, fmt.Errorf("config %s: negative size", filename)
	}
	return c, nil
}

func (c *Config) options(logger *zap.Logger) []rudd.Option {
	res := []rudd.Option{rudd.Logger(logger), rudd.Checkorder(c.Checkorder)}
	if c.Nodesize > 0 {
		res = append(res, rudd.Nodesize(c.Nodesize))
	}
	if c.Cachesize > 0 {
		res = append(res, rudd.Cachesize(c.Cachesize))
	}
	return res
}
