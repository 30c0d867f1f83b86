package config

import (
	_ "embed"
	"errors"
)

// defaultConfig is the lowest configuration layer: formatter on with no
// script, 0644 output files and the manifest discovery globs. It is also the
// source of `itergen config init`.
//
//go:embed embedded/defaults.toml
var defaultConfig []byte

// bytesProvider feeds an in-memory TOML document to koanf.
type bytesProvider struct{ data []byte }

func (p *bytesProvider) ReadBytes() ([]byte, error) { return p.data, nil }

// Read is unused; koanf calls ReadBytes when a parser is given.
func (p *bytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("bytesProvider: use ReadBytes with a parser")
}
