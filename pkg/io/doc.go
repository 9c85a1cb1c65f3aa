// Package io provides JSON import and export for dense numerical arrays.
//
// # Overview
//
// This package enables serialization of arrays to and from a simple JSON
// format. The format is designed for:
//
//   - Moving data between the colorize pipeline and external tools
//   - Saving colorized RGB results alongside their shape
//   - Round-trip preservation: export, re-import, and transform identically
//
// # JSON Format
//
// The format has two required top-level fields:
//
//	{
//	  "shape": [3, 2, 2],
//	  "data": [0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0, 0.5]
//	}
//
// The data array holds the values flattened in row-major order; its length
// must equal the product of the shape. Shapes follow the colorize package's
// conventions: a leading channel axis for multi-channel inputs, a trailing
// axis of 3 for RGB outputs.
package io
