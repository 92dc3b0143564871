/*
File    : numexpr/cmd/numexpr/consts.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)
*/
package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rverma/numexpr"
)

// loadConsts reads a YAML mapping of name -> value and turns it into
// scalar Symbols for preloading the CLI/REPL's symbol table. An empty
// path returns an empty table, not an error.
func loadConsts(path string) ([]numexpr.Symbol, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	symbols := make([]numexpr.Symbol, 0, len(raw))
	for name, value := range raw {
		v := value
		symbols = append(symbols, numexpr.Symbol{
			Name:   name,
			Kind:   numexpr.KindScalar,
			Scalar: &v,
		})
	}
	return symbols, nil
}
