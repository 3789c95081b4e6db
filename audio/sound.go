// Package audio plays short tones for game events.
package audio

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"statue-snake/game"
	"statue-snake/game/manager"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a sound worth playing after a tick
type Cue int

const (
	CueNone Cue = iota
	CueEat
	CueRecord
	CueCrumble
	CueGameOver
)

// CueFor picks the most important cue for a tick
func CueFor(r game.TickResult) Cue {
	switch {
	case r.Collision != manager.NoCollision:
		return CueGameOver
	case r.AteFood && r.NewHighScore:
		return CueRecord
	case r.AteFood:
		return CueEat
	case r.Shattered:
		return CueCrumble
	default:
		return CueNone
	}
}

type tone struct {
	freq     float64
	duration time.Duration
}

// tones lists the notes of each cue, played in sequence
var tones = map[Cue][]tone{
	CueEat:      {{880, 60 * time.Millisecond}},
	CueRecord:   {{880, 50 * time.Millisecond}, {1320, 80 * time.Millisecond}},
	CueCrumble:  {{330, 40 * time.Millisecond}},
	CueGameOver: {{440, 120 * time.Millisecond}, {220, 250 * time.Millisecond}},
}

// Player plays cues through the system speaker. A zero Player is silent.
type Player struct {
	enabled bool
}

// NewPlayer opens the speaker unless muted. Failure to open it is logged and
// yields a silent player.
func NewPlayer(muted bool) *Player {
	if muted {
		return &Player{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		return &Player{}
	}
	return &Player{enabled: true}
}

func (p *Player) Enabled() bool {
	return p.enabled
}

// Play queues the cue without blocking
func (p *Player) Play(cue Cue) {
	if !p.enabled || cue == CueNone {
		return
	}
	streamer, err := cueStreamer(cue)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	speaker.Play(streamer)
}

func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

func cueStreamer(cue Cue) (beep.Streamer, error) {
	notes, ok := tones[cue]
	if !ok {
		return nil, fmt.Errorf("no tones for cue %d", cue)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("sine tone %.0f Hz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), sine))
	}
	return beep.Seq(parts...), nil
}
