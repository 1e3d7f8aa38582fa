package sim

// ir is the range reading observer gets of target: the center distance
// when the observer's heading falls inside the angular span of the
// target's corners as seen from the tatami origin, zero otherwise.
// A crude forward-cone check rather than a traced beam. Non finite
// corner bearings fail the span comparisons and simply read as zero.
func ir(observer, target SumoState, dist float64) float64 {
	minb := target.Corners[0].OriginDir()
	maxb := minb
	for _, c := range target.Corners[1:] {
		b := c.OriginDir()
		if b < minb {
			minb = b
		}
		if b > maxb {
			maxb = b
		}
	}
	if observer.Dir >= minb && observer.Dir <= maxb {
		return dist
	}
	return 0
}

// senseFor computes the ir reading robot i gets of its opponent.
func (e *Engine) senseFor(i int, bots [2]SumoState) float64 {
	dist := bots[0].Center.Dist(bots[1].Center)
	return ir(bots[i], bots[1-i], dist)
}
