// Package audio plays short synthesized tones for game events. Everything is
// generated at runtime; there are no sound assets to ship.
package audio

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/ddrozdov/twocars/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// tone is one synthesized sound: a sine burst at freq with a linear decay
// envelope over duration.
type tone struct {
	freq     float64
	duration time.Duration
	gain     float64
}

var eventTones = map[core.Event]tone{
	core.EventPickup: {freq: 880, duration: 90 * time.Millisecond, gain: 0.35},
	core.EventCrash:  {freq: 110, duration: 350 * time.Millisecond, gain: 0.55},
	core.EventMiss:   {freq: 220, duration: 250 * time.Millisecond, gain: 0.45},
}

// Player plays event sounds through the default output device. When the
// device cannot be opened the player stays silent instead of failing: sound
// is garnish, not gameplay.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. Initialization failure is logged and
// produces a silent player.
func NewPlayer() *Player {
	p := &Player{}
	if err := speaker.Init(sampleRate, sampleRate.N(20*time.Millisecond)); err != nil {
		log.Warn("audio unavailable, running silent", "err", err)
		return p
	}
	p.enabled = true
	return p
}

// Silent returns a player that never makes a sound.
func Silent() *Player {
	return &Player{}
}

// Enabled reports whether the output device was opened.
func (p *Player) Enabled() bool {
	return p.enabled
}

// Play queues the tone for the given event. Unknown events are ignored.
func (p *Player) Play(e core.Event) {
	if !p.enabled {
		return
	}
	t, ok := eventTones[e]
	if !ok {
		return
	}
	speaker.Play(newTone(t))
}

// Close shuts the output device down.
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

// newTone builds the streamer for one tone. It ends on its own once the
// burst has played out.
func newTone(t tone) beep.Streamer {
	total := sampleRate.N(t.duration)
	pos := 0
	step := 2 * math.Pi * t.freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1 - float64(pos)/float64(total)
			v := t.gain * env * math.Sin(step*float64(pos))
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}
