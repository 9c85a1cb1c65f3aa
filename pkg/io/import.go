package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/colorize/pkg/narray"
)

// ReadJSON decodes a JSON array from r.
//
// The input must be a JSON object with "shape" and "data" fields:
//
//	{"shape": [2, 3], "data": [1, 2, 3, 4, 5, 6]}
//
// The shape must be non-empty with strictly positive dimensions, and the
// data length must equal the product of the shape.
//
// ReadJSON returns an error if the JSON is malformed or the shape and data
// disagree. The returned array is independent of r and can be modified
// safely after ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*narray.Dense, error) {
	var data array
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if len(data.Shape) == 0 {
		return nil, fmt.Errorf("shape is missing or empty")
	}
	for _, s := range data.Shape {
		if s <= 0 {
			return nil, fmt.Errorf("shape %v has a non-positive extent", data.Shape)
		}
	}

	arr, err := narray.FromData(data.Data, data.Shape...)
	if err != nil {
		return nil, fmt.Errorf("shape %v: %w", data.Shape, err)
	}
	return arr, nil
}

// ImportJSON reads a JSON file at path and returns the decoded array.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. If the file cannot be opened, or if decoding fails, ImportJSON
// returns an error describing the failure. The error wraps the underlying
// cause with the file path for context.
func ImportJSON(path string) (*narray.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
