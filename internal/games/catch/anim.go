package catch

import "math"

// animator advances a looping sprite frame on a fixed-rate accumulator,
// independent of how the owner moves.
type animator struct {
	elapsed float64
	frame   int
}

func (a *animator) advance(dt, fps float64, frames int) {
	if frames <= 1 {
		return
	}
	frameDt := 1.0 / math.Max(fps, 1)
	a.elapsed += dt
	for a.elapsed >= frameDt {
		a.elapsed -= frameDt
		a.frame = (a.frame + 1) % frames
	}
}
