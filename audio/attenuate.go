package audio

// Attenuate computes linear distance falloff: full gain inside minDist,
// silence beyond maxDist. Degenerate ranges (max <= min) switch hard at
// minDist.
func Attenuate(distance, minDist, maxDist float32) float32 {
	if distance <= minDist {
		return 1
	}
	if distance >= maxDist {
		return 0
	}
	if maxDist <= minDist {
		return 0
	}
	return 1 - (distance-minDist)/(maxDist-minDist)
}
