package gamemath

import "math"

// Point is a 2D position in screen pixels.
type Point struct {
	X, Y float64
}

// HomingVelocity returns velocity components that move (fromX, fromY) toward
// (targetX, targetY) at the given speed.
func HomingVelocity(fromX, fromY, targetX, targetY, speed float64) (velX, velY float64) {
	dirX := targetX - fromX
	dirY := targetY - fromY
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velY = (dirY / dist) * speed
	}
	return velX, velY
}

// StepToward moves (fromX, fromY) toward the target by at most step pixels and
// never past the target.
func StepToward(fromX, fromY, targetX, targetY, step float64) (x, y float64) {
	dx := targetX - fromX
	dy := targetY - fromY
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 || step <= 0 {
		return fromX, fromY
	}
	if step >= dist {
		return targetX, targetY
	}
	return fromX + dx/dist*step, fromY + dy/dist*step
}

// Distance returns the Euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}
