package mathdown

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for symbol table loading.
var (
	ErrSymbolsNotFound = errors.New("symbols file not found")
	ErrSymbolsParse    = errors.New("failed to parse symbols file")
	ErrSymbolsEmpty    = errors.New("symbols file defines no symbols")
)

// symbolsFile is the on-disk YAML shape:
//
//	symbols:
//	  \hbar: "ℏ"
//	  \aleph: "ℵ"
type symbolsFile struct {
	Symbols map[string]string `yaml:"symbols"`
}

// LoadSymbolsFile reads a YAML symbol table for WithExtraSymbols.
//
// Keys are literal LaTeX commands (including the backslash), values are
// their Unicode replacements.
func LoadSymbolsFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSymbolsNotFound, path)
		}
		return nil, fmt.Errorf("read symbols file: %w", err)
	}

	var f symbolsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSymbolsParse, err)
	}
	if len(f.Symbols) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSymbolsEmpty, path)
	}
	return f.Symbols, nil
}
