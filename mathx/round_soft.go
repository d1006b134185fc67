package mathx

// truncSoft rounds toward zero by converting through int32.
//
// Values with |value| >= 2^23 are already integers and are returned as-is, as
// are ±0, ±Inf and NaN. This keeps the int32 conversion in range, where Go
// leaves out-of-range float-to-int conversion implementation-defined.
func truncSoft(value float32) float32 {
	if !(Abs(value) < truncExact) || value == 0 {
		return value
	}
	return float32(int32(value))
}

func floorSoft(value float32) float32 {
	t := truncSoft(value)
	if t == value {
		return t
	}
	if value < 0 {
		return t - 1
	}
	return t
}

func ceilSoft(value float32) float32 {
	t := truncSoft(value)
	if t == value {
		return t
	}
	if value < 0 {
		return t
	}
	return t + 1
}

// fracSoft returns value - floor(value), in [0, 1) for finite input.
func fracSoft(value float32) float32 {
	return value - floorSoft(value)
}
