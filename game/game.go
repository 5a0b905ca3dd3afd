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

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/shapemotion/hardware"
	"github.com/jetsetilly/shapemotion/hardware/lcd"
	"github.com/jetsetilly/shapemotion/shape"
)

// Indexes of the layers in the layer list. The order of the list is the paint
// priority.
const (
	LayerBall = iota
	LayerRight
	LayerField
	LayerLeft
	NumLayers
)

// Player indexes into the Scores array.
const (
	PlayerLeft = iota
	PlayerRight
)

// Sound is a request for a one tick sound effect made by the physics.
type Sound int

// List of valid Sound values.
const (
	SoundNone Sound = iota
	SoundPaddle
	SoundWall
)

func (s Sound) String() string {
	switch s {
	case SoundNone:
		return "none"
	case SoundPaddle:
		return "paddle"
	case SoundWall:
		return "wall"
	}
	return fmt.Sprintf("sound(%d)", int(s))
}

// Period returns the buzzer period for the sound.
func (s Sound) Period() uint16 {
	switch s {
	case SoundPaddle:
		return 2000
	case SoundWall:
		return 4000
	}
	return 0
}

// Score is a two digit ASCII score.
type Score [2]byte

// NewScore returns a score of zero.
func NewScore() Score {
	return Score{'0', '0'}
}

// Increment the score by one. The tens digit is not checked for overflow and
// will continue with the characters following '9'.
func (s *Score) Increment() {
	s[1]++
	if s[1] == '9'+1 {
		s[1] = '0'
		s[0]++
	}
}

func (s Score) String() string {
	return string(s[:])
}

// MovingLayer associates a velocity with a layer in the layer list.
type MovingLayer struct {
	Layer    int
	Velocity shape.Vec2
}

func (ml *MovingLayer) String() string {
	return fmt.Sprintf("layer %d v%s", ml.Layer, ml.Velocity)
}

// Initial layout of the screen.
var (
	fieldHalfSize  = shape.Vec2{X: lcd.Width/2 - 5, Y: lcd.Height/2 - 10}
	fieldCenter    = shape.Vec2{X: lcd.Width / 2, Y: lcd.Height/2 + 5}
	paddleHalfSize = shape.Vec2{X: 4, Y: 17}
	leftStart      = shape.Vec2{X: 12, Y: 38}
	rightStart     = shape.Vec2{X: 115, Y: 130}
	ballStart      = shape.Vec2{X: lcd.Width/2 + 10, Y: lcd.Height/2 + 5}
	ballRadius     = 6
	ballVelocity   = shape.Vec2{X: 2, Y: 2}
	paddleVelocity = shape.Vec2{X: 8, Y: 8}
)

// Text positions.
const (
	scoreRow      = 0
	leftLabelCol  = 10
	rightLabelCol = 80
	leftScoreCol  = 35
	rightScoreCol = 105
)

// Game is the firmware. Create with NewGame() and attach to a board with
// hardware.Board.AttachFirmware().
type Game struct {
	brd     *hardware.Board
	display lcd.Display

	Layers shape.Layers

	Ball  *MovingLayer
	Left  *MovingLayer
	Right *MovingLayer

	// the region the ball and paddles must stay inside. set to the bounds of
	// the field on boot
	Fence shape.Region

	Background lcd.Color

	Scores [2]Score

	// sound requested by the physics during the current tick. cleared when
	// the sound is applied to the buzzer
	StateSound Sound

	// number of interrupts since the last tick
	count int

	// the most recent value of the switch register
	switches uint16

	redraw atomic.Bool
}

// NewGame is the preferred method of initialisation for the Game type.
func NewGame(brd *hardware.Board) *Game {
	g := &Game{
		brd:     brd,
		display: brd.LCD,
		Layers: shape.Layers{
			LayerBall:  {Shape: shape.NewCircle(ballRadius), Pos: ballStart, Color: lcd.Red},
			LayerRight: {Shape: shape.Rect{HalfSize: paddleHalfSize}, Pos: rightStart, Color: lcd.Blue},
			LayerField: {Shape: shape.RectOutline{HalfSize: fieldHalfSize}, Pos: fieldCenter, Color: lcd.Pink},
			LayerLeft:  {Shape: shape.Rect{HalfSize: paddleHalfSize}, Pos: leftStart, Color: lcd.Green},
		},
		Ball:   &MovingLayer{Layer: LayerBall, Velocity: ballVelocity},
		Left:   &MovingLayer{Layer: LayerLeft, Velocity: paddleVelocity},
		Right:  &MovingLayer{Layer: LayerRight, Velocity: paddleVelocity},
		Scores: [2]Score{NewScore(), NewScore()},
	}
	return g
}

func (g *Game) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("P1: %s P2: %s", g.Scores[PlayerLeft], g.Scores[PlayerRight]))
	s.WriteString(fmt.Sprintf(" ball %s", &g.Layers[g.Ball.Layer]))
	return s.String()
}

// Board returns the board the game is running on.
func (g *Game) Board() *hardware.Board {
	return g.brd
}

// Layer returns the layer moved by the MovingLayer.
func (g *Game) Layer(ml *MovingLayer) *shape.Layer {
	return &g.Layers[ml.Layer]
}

// Boot implements the hardware.Firmware interface.
func (g *Game) Boot() {
	g.Background = lcd.Color(g.brd.Env().Prefs.Background())
	g.brd.LCD.Clear(g.Background)

	g.Layers.Init()
	g.layerDraw()

	g.Fence = g.Layers[LayerField].Bounds()
	g.Scores = [2]Score{NewScore(), NewScore()}
	g.StateSound = SoundNone
	g.count = 0

	// the first read of the switch register
	g.switches = g.brd.Switches.Read()

	g.drawText(g.Scores)
}
