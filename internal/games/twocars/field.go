package twocars

import (
	"math/rand"

	"github.com/ddrozdov/twocars/internal/core"
)

// Field owns the falling obstacles and the spawn countdown. All randomness
// flows through its seeded rng so a session replays deterministically.
type Field struct {
	obstacles []Entity
	countdown int
	rng       *rand.Rand
}

func NewField(seed int64) *Field {
	return &Field{rng: rand.New(rand.NewSource(seed))}
}

// Reset clears the field and reseeds the rng. The countdown starts at zero
// so the first pair spawns on the first tick.
func (f *Field) Reset(seed int64) {
	f.obstacles = f.obstacles[:0]
	f.countdown = 0
	f.rng = rand.New(rand.NewSource(seed))
}

// Obstacles exposes the live obstacle slice for rendering. Callers must not
// mutate it.
func (f *Field) Obstacles() []Entity {
	return f.obstacles
}

// Spawn ticks the countdown and, when it hits zero, emits one spawn pair:
// a random permutation of the four lanes picks one lane per side, and each
// side draws a kind such that the pair never holds two boxes or two circles
// of the same color.
func (f *Field) Spawn(spawnRate int) {
	if f.countdown > 0 {
		f.countdown--
		return
	}
	f.countdown = spawnRate

	lanes := [4]int{Lane1, Lane2, Lane3, Lane4}
	perm := f.rng.Perm(4)

	var boxUsed, circleUsed [2]bool
	for _, i := range perm[:2] {
		x := lanes[i]
		side := SideBlue
		if x == Lane3 || x == Lane4 {
			side = SideRed
		}
		kind := f.chooseKind(side, &boxUsed[side], &circleUsed[side])
		f.place(Entity{Kind: kind, X: x, Y: -ObstacleSize})
	}
}

// chooseKind flips a coin between box and circle, falling back to whichever
// kind the pair has not used yet for that side.
func (f *Field) chooseKind(side Side, boxUsed, circleUsed *bool) Kind {
	wantBox := f.rng.Intn(2) == 0
	if wantBox && !*boxUsed {
		*boxUsed = true
		if side == SideRed {
			return KindRedBox
		}
		return KindBlueBox
	}
	if !*circleUsed {
		*circleUsed = true
		if side == SideRed {
			return KindRedCircle
		}
		return KindBlueCircle
	}
	*boxUsed = true
	if side == SideRed {
		return KindRedBox
	}
	return KindBlueBox
}

// place appends the entity, pushing it further above the top edge if it
// would spawn too close to the previously spawned one.
func (f *Field) place(e Entity) {
	if n := len(f.obstacles); n > 0 {
		last := f.obstacles[n-1]
		if last.Y < MinSpawnGap {
			e.Y = last.Y - MinSpawnGap
		}
	}
	f.obstacles = append(f.obstacles, e)
}

// Advance moves every obstacle down by speed pixels.
func (f *Field) Advance(speed int) {
	for i := range f.obstacles {
		f.obstacles[i].Y += speed
	}
}

// Cull drops obstacles that left the bottom of the field. A circle exiting
// uncollected is a miss and ends the run.
func (f *Field) Cull() (missed bool) {
	kept := f.obstacles[:0]
	for _, e := range f.obstacles {
		if e.Y > VirtualHeight {
			if e.Kind.IsCircle() {
				missed = true
			}
			continue
		}
		kept = append(kept, e)
	}
	f.obstacles = kept
	return missed
}

// Resolve tests each obstacle against its own car. Overlapping circles are
// collected and removed; an overlapping box crashes the run. Every obstacle
// is examined even after a crash, so a circle scooped up on the fatal tick
// still counts.
func (f *Field) Resolve(blueRect, redRect core.Rect) (picked int, crashed bool) {
	kept := f.obstacles[:0]
	for _, e := range f.obstacles {
		car := blueRect
		if e.Kind.Side() == SideRed {
			car = redRect
		}
		if e.Rect().Intersects(car) {
			if e.Kind.IsBox() {
				crashed = true
			} else {
				picked++
				continue
			}
		}
		kept = append(kept, e)
	}
	f.obstacles = kept
	return picked, crashed
}
