package logic

// Clamp returns us limited to [l.Min, l.Max].
func (l Limits) Clamp(us PulseWidth) PulseWidth {
	if us < l.Min {
		return l.Min
	}
	if us > l.Max {
		return l.Max
	}
	return us
}

// Contains reports whether us lies within the limits.
func (l Limits) Contains(us PulseWidth) bool {
	return us >= l.Min && us <= l.Max
}

// MapRaw maps a raw analog sample in [0, rawMax] linearly onto the limits.
// Samples above rawMax are treated as rawMax.
func MapRaw(raw, rawMax uint16, l Limits) PulseWidth {
	if rawMax == 0 {
		return l.Min
	}
	if raw > rawMax {
		raw = rawMax
	}
	span := int(l.Max - l.Min)
	return l.Min + PulseWidth(int(raw)*span/int(rawMax))
}
