// Package colorize turns numerical array data into RGB color images.
//
// # Overview
//
// A [Colorizer] converts an n-dimensional data array into an RGB array using
// one of several encoding schemes:
//
//   - [RGB]: channels 0, 1, 2 become the R, G, B planes verbatim
//   - [HSV]: channels 0, 1, 2 are hue, saturation, value, converted per pixel
//   - [Polar]: channels 0, 1 are two orthogonal vector components; hue encodes
//     the angle, brightness the magnitude
//   - [Indexed]: each channel is mapped through a black-to-color ramp and the
//     channels are combined by per-pixel, per-component maximum
//   - [FromColormap] / [Named]: a single-channel array is looked up through a
//     colormap from the registry
//
// Scheme resolution happens once, at construction. Multi-channel schemes
// expect input of shape (c, x, y) or (c, x, y, z); colormap lookup expects
// (x, y) or (x, y, z). The output keeps the spatial shape and appends a
// trailing axis of 3, with every value in [0, 1].
//
// Input values are min-max normalized before colorization, either against
// explicit VMin/VMax bounds or auto-scaled from the data. An optional mask
// multiplies the output's luminance and an optional background is added as a
// grayscale overlay; both must match the image's spatial shape.
//
// # Basic Usage
//
//	img, _ := narray.FromData(data, 3, height, width)
//	c := colorize.New(colorize.RGB())
//	out, err := c.Transform(img)
//
// Colormap lookup by name:
//
//	scheme, err := colorize.Named("viridis")
//	if err != nil {
//	    return err
//	}
//	out, err := colorize.New(scheme).Transform(img2d)
//
// # Errors
//
// All validation happens before any per-pixel work: unrecognized schemes and
// channel-cardinality mismatches surface as configuration errors, and
// mask/background arrays that disagree with the image's spatial shape as
// shape-mismatch errors. See the errors package for codes. A call either
// fully succeeds or fails; there is no partial output.
package colorize
