package main

// intPoint represents an integer cell coordinate on a terminal screen.
type intPoint struct {
	x int
	y int
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// plotLine visits every cell on the segment from a to b, endpoints included,
// using Bresenham's integer algorithm.
func plotLine(a, b intPoint, plot func(x, y int)) {
	x0, y0, x1, y1 := a.x, a.y, b.x, b.y
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
