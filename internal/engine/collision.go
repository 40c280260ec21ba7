package engine

import (
	"math"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// MaxBounceAngle is the widest deflection from vertical a paddle hit can
// produce (75 degrees).
const MaxBounceAngle = 5 * math.Pi / 12

// PaddleBounce returns the ball velocity after striking the paddle. The angle
// grows with the distance between the ball center and the paddle center; the
// result always points upward and has magnitude speed (before rounding).
func PaddleBounce(ball, paddle core.Rect, speed int) Velocity {
	ballCX := float64(ball.X) + float64(ball.W)/2
	paddleCX := float64(paddle.X) + float64(paddle.W)/2

	half := float64(paddle.W) / 2
	norm := 0.0
	if half > 0 {
		norm = core.ClampF((ballCX-paddleCX)/half, -1, 1)
	}
	angle := norm * MaxBounceAngle

	s := float64(speed)
	return Velocity{
		X: int(math.Round(s * -math.Sin(angle))),
		Y: int(math.Round(-s * math.Cos(angle))),
	}
}

// brickEdges reports which brick edges the ball crossed during its last step.
// arrival is the velocity that carried the ball to its current position.
// A fast ball can cross a thin brick entirely in one step; that case is not
// detected here.
func brickEdges(ball core.Rect, arrival Velocity, brick core.Rect) (horizontal, vertical bool) {
	prev := ball.Translate(-arrival.X, -arrival.Y)

	fromLeft := arrival.X > 0 && prev.Right() < brick.X
	fromRight := arrival.X < 0 && prev.X > brick.Right()
	fromTop := arrival.Y > 0 && prev.Bottom() < brick.Y
	fromBottom := arrival.Y < 0 && prev.Y > brick.Bottom()

	return fromLeft || fromRight, fromTop || fromBottom
}

// ReflectFromBrick returns v after bouncing off brick. The reflected axis is
// the one whose edge was crossed; a ball that was already overlapping the brick
// on both axes bounces vertically. Reflection is relative to the arrival
// direction, so several bricks hit in the same frame agree on the result.
func ReflectFromBrick(ball core.Rect, arrival, v Velocity, brick core.Rect) Velocity {
	horizontal, vertical := brickEdges(ball, arrival, brick)
	if !horizontal && !vertical {
		vertical = true
	}
	if horizontal {
		v.X = -arrival.X
	}
	if vertical {
		v.Y = -arrival.Y
	}
	return v
}

// reflectFromWalls bounces the ball off the side walls and the ceiling.
// Only velocity components heading out of the field are flipped, unlike an
// unconditional flip whenever the ball is out of bounds, so a ball still
// overlapping a wall after a bounce is not turned back into it.
func reflectFromWalls(ball core.Rect, v Velocity, windowW int) Velocity {
	if (ball.X < 0 && v.X < 0) || (ball.Right() > windowW && v.X > 0) {
		v.X = -v.X
	}
	if ball.Y <= 0 && v.Y < 0 {
		v.Y = -v.Y
	}
	return v
}
