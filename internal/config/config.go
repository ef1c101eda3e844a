// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

// Package config loads and saves named ROM offset tables.
//
// A table is a YAML (or JSON) document:
//
//	version: 1
//	offsets:
//	  ItemTable: 0x3DB028
//	  MapHeaders: 0x352004
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/gbahl/rom"
)

// CurrentVersion is the table format version written by Save.
const CurrentVersion = 1

var (
	// ErrUnsupportedVersion indicates a table version this package cannot read.
	ErrUnsupportedVersion = errors.New("config: unsupported version")
	// ErrInvalidOffset indicates an offset outside the ROM address range.
	ErrInvalidOffset = errors.New("config: invalid offset")
	// ErrUnknownName indicates a name that is neither in the table nor a number.
	ErrUnknownName = errors.New("config: unknown name")
)

// Config is a named offset table.
type Config struct {
	Version int              `yaml:"version"`
	Offsets map[string]int64 `yaml:"offsets"`
}

// New returns an empty table at CurrentVersion.
func New() *Config {
	return &Config{Version: CurrentVersion, Offsets: map[string]int64{}}
}

// Parse decodes and validates a table. A missing version is read as CurrentVersion.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if cfg.Version == 0 {
		cfg.Version = CurrentVersion
	}
	if cfg.Offsets == nil {
		cfg.Offsets = map[string]int64{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads a table from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the version and every offset.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, c.Version)
	}

	for _, name := range c.Names() {
		if off := c.Offsets[name]; off < 0 || off > rom.MaxOffset {
			return fmt.Errorf("%w: %s = 0x%X", ErrInvalidOffset, name, off)
		}
	}
	return nil
}

// Names returns the table names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Offsets))
	for name := range c.Offsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set adds or replaces a named offset.
func (c *Config) Set(name string, offset int64) error {
	if offset < 0 || offset > rom.MaxOffset {
		return fmt.Errorf("%w: %s = 0x%X", ErrInvalidOffset, name, offset)
	}
	if c.Offsets == nil {
		c.Offsets = map[string]int64{}
	}

	c.Offsets[name] = offset
	return nil
}

// Resolve returns the offset named arg, or arg parsed as an integer literal
// (decimal, 0x hex, 0o octal, 0b binary). A nil table resolves literals only.
func (c *Config) Resolve(arg string) (int64, error) {
	if c != nil {
		if off, ok := c.Offsets[arg]; ok {
			return off, nil
		}
	}

	off, err := strconv.ParseInt(arg, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownName, arg)
	}
	return off, nil
}

// Save writes the table as YAML with names sorted and offsets in hex.
func (c *Config) Save(w io.Writer) error {
	offsets := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range c.Names() {
		offsets.Content = append(offsets.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("0x%06X", c.Offsets[name])},
		)
	}

	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: "version"},
		{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(c.Version)},
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: "offsets"},
		offsets,
	}}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}
