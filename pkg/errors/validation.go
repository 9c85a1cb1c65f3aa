package errors

// ValidateScale validates a brightness scale factor.
// Scale multiplies the colorized output, so it must be strictly positive;
// zero almost always means an uninitialized configuration rather than an
// intentionally black image.
func ValidateScale(scale float64) error {
	if scale <= 0 {
		return New(ErrCodeInvalidConfig, "scale must be positive, got %v", scale)
	}
	return nil
}

// ValidateBounds validates optional normalization bounds. A nil bound means
// auto-scaling from the data; when both are set, vmin must be strictly below
// vmax for the linear rescale to be well-defined.
func ValidateBounds(vmin, vmax *float64) error {
	if vmin != nil && vmax != nil && *vmin >= *vmax {
		return New(ErrCodeInvalidConfig, "vmin (%v) must be less than vmax (%v)", *vmin, *vmax)
	}
	return nil
}

// ValidateColorCount validates the color list supplied for an indexed scheme
// against the input's channel-axis cardinality.
func ValidateColorCount(colors, channels int) error {
	if colors == 0 {
		return New(ErrCodeInvalidConfig, "indexed scheme requires a non-empty color list")
	}
	if colors != channels {
		return New(ErrCodeInvalidConfig,
			"first dimension must be %d for indexed conversion with %d colors, got %d",
			colors, colors, channels)
	}
	return nil
}
