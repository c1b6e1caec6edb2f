// Package twocars implements the Two Cars game: two lane-locked cars dodge
// falling boxes and collect falling circles while the pace ramps up.
//
// The simulation runs in a fixed 405x720 virtual pixel space; the renderer
// scales that space onto the terminal. All rates are per 60 Hz tick.
package twocars

import "github.com/ddrozdov/twocars/internal/core"

// Virtual playfield geometry. Four lanes of equal width: the blue car owns
// lanes 1-2 on the left, the red car owns lanes 3-4 on the right. Lane
// constants are the x positions a car or obstacle occupies when centered in
// that lane.
const (
	VirtualWidth  = 405
	VirtualHeight = 720

	CarWidth  = VirtualWidth / 10
	CarHeight = VirtualHeight / 11
	LaneWidth = VirtualWidth / 4

	Lane1 = LaneWidth/2 - CarWidth/2
	Lane2 = LaneWidth + LaneWidth/2 - CarWidth/2
	Lane3 = 2*LaneWidth + LaneWidth/2 - CarWidth/2
	Lane4 = 3*LaneWidth + LaneWidth/2 - CarWidth/2

	ObstacleSize = VirtualWidth / 10

	// CarY is the fixed vertical position of both cars.
	CarY = VirtualHeight - 100

	// MinSpawnGap is the minimum vertical separation between consecutively
	// spawned obstacles, so a car can always thread between them.
	MinSpawnGap = CarHeight + 10
)

// Game-over button regions, in virtual-pixel space.
var (
	RestartButton = core.NewRect(VirtualWidth/2-50, VirtualHeight/2-20, 100, 40)
	HomeButton    = core.NewRect(VirtualWidth/2-50, VirtualHeight/2+30, 100, 40)
)
