package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/colorize/pkg/narray"
)

type array struct {
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// WriteJSON encodes an array as JSON and writes it to w.
// The output holds the shape and the row-major flattened data. This format
// can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(arr *narray.Dense, w io.Writer) error {
	out := array{
		Shape: arr.Shape(),
		Data:  arr.Data(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes an array to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(arr *narray.Dense, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(arr, f)
}
