package twocars

import "github.com/ddrozdov/twocars/internal/core"

// Side distinguishes the two halves of the road.
type Side int

const (
	SideBlue Side = iota
	SideRed
)

func (s Side) String() string {
	if s == SideRed {
		return "red"
	}
	return "blue"
}

// Kind identifies an obstacle. Boxes kill the matching car on contact,
// circles must be collected by it.
type Kind int

const (
	KindRedBox Kind = iota
	KindRedCircle
	KindBlueBox
	KindBlueCircle
)

func (k Kind) IsBox() bool    { return k == KindRedBox || k == KindBlueBox }
func (k Kind) IsCircle() bool { return k == KindRedCircle || k == KindBlueCircle }

// Side reports which car the obstacle interacts with.
func (k Kind) Side() Side {
	if k == KindRedBox || k == KindRedCircle {
		return SideRed
	}
	return SideBlue
}

func (k Kind) String() string {
	switch k {
	case KindRedBox:
		return "red-box"
	case KindRedCircle:
		return "red-circle"
	case KindBlueBox:
		return "blue-box"
	default:
		return "blue-circle"
	}
}

// Entity is a falling obstacle.
type Entity struct {
	Kind Kind
	X, Y int
}

func (e Entity) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, ObstacleSize, ObstacleSize)
}
