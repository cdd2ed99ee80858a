package core

// normalizeCost maps a raw annual cost onto the common 0-10 scale. Lower
// cost scores higher; costs at or above the ceiling floor to 0. The ceiling
// is validated positive before any record is scored, so no division by zero
// can happen here.
func normalizeCost(cost, maxCost float64) float64 {
	ratio := cost / maxCost
	if ratio > 1.0 {
		ratio = 1.0
	}
	return 10.0 * (1.0 - ratio)
}

// normalizeUsage maps a raw usage count onto the common 0-10 scale. More
// usage scores higher, capped at the ceiling.
func normalizeUsage(usage, maxUsage float64) float64 {
	ratio := usage / maxUsage
	if ratio > 1.0 {
		ratio = 1.0
	}
	return 10.0 * ratio
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
