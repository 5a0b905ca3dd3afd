// This file is part of Shapemotion.
//
// Shapemotion is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Shapemotion is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Shapemotion.  If not, see <https://www.gnu.org/licenses/>.

package game

import "github.com/jetsetilly/shapemotion/shape"

// reflect the velocity of the moving layer on the axis and move the position
// by twice the new velocity.
func (ml *MovingLayer) reflect(axis int, pos *shape.Vec2) {
	v := -ml.Velocity.Axis(axis)
	ml.Velocity.SetAxis(axis, v)
	pos.SetAxis(axis, pos.Axis(axis)+2*v)
}

// overlapping rows. the edges of the regions must not be touching
func overlapY(a, b shape.Region) bool {
	return a.TopLeft.Y < b.BotRight.Y && a.BotRight.Y > b.TopLeft.Y
}

// AdvanceBall calculates the next position of the ball.
//
// The tentative positions of the ball and both paddles are the pending
// positions plus velocity. Each axis is then tested in turn, first for
// collisions with the paddles and then with the fence. Every collision
// reflects the ball's velocity on the axis being tested.
//
// A collision with the left or right edge of the fence is a miss and scores
// a point for the opposing player.
func (g *Game) AdvanceBall() {
	ball := g.Layer(g.Ball)
	left := g.Layer(g.Left)
	right := g.Layer(g.Right)

	newPos := ball.PosNext.Add(g.Ball.Velocity)

	bb := ball.Shape.Bounds(newPos)
	lb := left.Shape.Bounds(left.PosNext.Add(g.Left.Velocity))
	rb := right.Shape.Bounds(right.PosNext.Add(g.Right.Velocity))

	// paddle hits do not depend on the axis
	hitLeft := bb.TopLeft.X+7 < lb.BotRight.X && overlapY(bb, lb)
	hitRight := bb.BotRight.X > rb.TopLeft.X-4 && overlapY(bb, rb)

	for axis := shape.AxisX; axis <= shape.AxisY; axis++ {
		if hitLeft {
			g.Ball.reflect(axis, &newPos)
			g.StateSound = SoundPaddle
		}

		if hitRight {
			g.Ball.reflect(axis, &newPos)
			g.StateSound = SoundPaddle
		}

		if bb.TopLeft.Axis(axis) < g.Fence.TopLeft.Axis(axis) ||
			bb.BotRight.Axis(axis) > g.Fence.BotRight.Axis(axis) {
			g.Ball.reflect(axis, &newPos)
			g.StateSound = SoundWall

			if axis == shape.AxisX {
				if bb.TopLeft.X < g.Fence.TopLeft.X {
					g.Scores[PlayerRight].Increment()
				}
				if bb.BotRight.X > g.Fence.BotRight.X {
					g.Scores[PlayerLeft].Increment()
				}
			}
		}
	}

	ball.PosNext = newPos
}

// AdvancePaddle moves the paddle one step up or down from its current
// position. The move is abandoned if the paddle would leave the fence.
// Returns true if the move was made.
func (g *Game) AdvancePaddle(ml *MovingLayer, down bool) bool {
	l := g.Layer(ml)

	newPos := l.Pos
	if down {
		newPos.Y += ml.Velocity.Y
	} else {
		newPos.Y -= ml.Velocity.Y
	}

	if !l.Shape.Bounds(newPos).Within(g.Fence) {
		return false
	}

	l.PosNext = newPos
	return true
}
