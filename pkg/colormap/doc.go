// Package colormap provides colormap objects for mapping normalized scalar
// values onto colors.
//
// # Overview
//
// A colormap is a function from a value in [0, 1] to a color. Two concrete
// kinds are provided:
//
//   - [Linear]: a gradient defined by ordered keypoints, interpolating
//     linearly in RGB between neighbors. This is the continuous analog of a
//     segmented colormap.
//   - [Listed]: a discrete, order-preserving lookup table of colors. Values
//     select an entry by index; no interpolation happens between entries.
//
// [Ramp] builds the black-to-color gradients used when blending indexed
// channels into a single image.
//
// # Registry
//
// The package maintains a registry of standard named maps (rainbow, gray,
// jet, viridis, and friends) resolved with [Get]. Custom maps can be added
// with [Register], either constructed in code or decoded from TOML
// definitions via [ParseTOML]:
//
//	[[colormap]]
//	name = "icefire"
//	kind = "linear"
//	colors = ["#75aadb", "#101010", "#e06c4b"]
//
// # Basic Usage
//
//	cm, err := colormap.Get("viridis")
//	if err != nil {
//	    return err
//	}
//	c := cm.At(0.5) // colorful.Color with R, G, B in [0, 1]
//
// Colors are represented as [colorful.Color] values, giving callers access
// to the full go-colorful conversion and blending toolkit.
package colormap
