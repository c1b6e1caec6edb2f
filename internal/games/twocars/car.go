package twocars

import (
	"math"
	"time"

	"github.com/ddrozdov/twocars/internal/core"
)

// Car is one of the two player cars. It sits at a fixed Y and slides
// horizontally between its two lanes over a short animation, tilting as it
// goes. Both animations are sampled against wall-clock time so they look the
// same regardless of tick jitter.
type Car struct {
	Side  Side
	X, Y  int
	Angle float64 // tilt in degrees, 0 when at rest

	restX, altX int

	moving    bool
	targetX   int
	moveStart time.Time

	rotating bool
	rotStart time.Time

	duration time.Duration
	tilt     float64
}

func newCar(side Side, restX, altX int, duration time.Duration, tilt float64) *Car {
	return &Car{
		Side:     side,
		X:        restX,
		Y:        CarY,
		restX:    restX,
		altX:     altX,
		duration: duration,
		tilt:     tilt,
	}
}

// resetPosition puts the car back in its rest lane and cancels any animation.
func (c *Car) resetPosition() {
	c.X = c.restX
	c.Angle = 0
	c.moving = false
	c.rotating = false
}

// ToggleLane starts a slide toward the other lane. Any car not sitting
// exactly on its rest lane heads back to it, so toggling mid-slide reverses
// the car.
func (c *Car) ToggleLane(now time.Time) {
	if c.X == c.restX {
		c.targetX = c.altX
	} else {
		c.targetX = c.restX
	}
	c.moving = true
	c.moveStart = now
	c.rotating = true
	c.rotStart = now
}

// Update advances the slide and tilt animations to now. At the end of the
// slide the car snaps exactly onto the target lane.
func (c *Car) Update(now time.Time) {
	if c.rotating {
		elapsed := now.Sub(c.rotStart)
		if elapsed < c.duration {
			c.Angle = c.tilt * math.Sin(math.Pi*float64(elapsed)/float64(c.duration))
		} else {
			c.Angle = 0
			c.rotating = false
		}
	}
	if c.moving {
		elapsed := now.Sub(c.moveStart)
		if elapsed < c.duration {
			t := float64(elapsed) / float64(c.duration)
			c.X += int(t * float64(c.targetX-c.X))
		} else {
			c.X = c.targetX
			c.moving = false
		}
	}
}

func (c *Car) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, CarWidth, CarHeight)
}
