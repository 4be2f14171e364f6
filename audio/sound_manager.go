// Package audio plays short synthesized cues for game events.
// Audio is optional: every Play call is a no-op until Initialize succeeds.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDurationMs = 100

	chimeDurationMs  = 350
	chimeLowHz       = 523.25 // C5
	chimeHighHz      = 783.99 // G5
	chimeAmplitude   = 0.25
	chimeSwitchRatio = 0.4

	buzzDurationMs    = 150
	buzzFrequencyHz   = 120
	buzzAmplitude     = 0.2
	buzzAttackSeconds = 0.02

	gameOverDurationMs     = 600
	gameOverDecayRate      = 5
	gameOverNoiseAmplitude = 0.2
	gameOverRumbleAmp      = 0.3
	gameOverRumbleHz       = 80
)

// SoundManager mixes game cues onto the system speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences pending cues
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close; clearing the mixer stops all output
	sm.initialized = false
}

// PlayCorrect plays a rising two-note chime
func (sm *SoundManager) PlayCorrect() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*chimeDurationMs), NewChimeGenerator(sampleRate)))
}

// PlayWrong plays a short low-pitched buzz
func (sm *SoundManager) PlayWrong() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*buzzDurationMs), NewBuzzGenerator(sampleRate, buzzFrequencyHz)))
}

// PlayGameOver plays a decaying rumble
func (sm *SoundManager) PlayGameOver() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*gameOverDurationMs), NewDecayGenerator(sampleRate)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ChimeGenerator plays a low note then a high note
type ChimeGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
}

// NewChimeGenerator creates a chime generator
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{
		sr:    sr,
		total: sr.N(time.Millisecond * chimeDurationMs),
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.total)

		freq := chimeLowHz
		if progress >= chimeSwitchRatio {
			freq = chimeHighHz
		}

		// Linear fade out across the whole cue
		envelope := math.Max(0, 1-progress)
		sample := chimeAmplitude * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics for a harsh edge
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/buzzAttackSeconds, 1.0)
		sample *= envelope * buzzAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// DecayGenerator generates a fading crackle over a low rumble
type DecayGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewDecayGenerator creates a decay sound generator
func NewDecayGenerator(sr beep.SampleRate) *DecayGenerator {
	return &DecayGenerator{
		sr:   sr,
		seed: time.Now().UnixNano(),
	}
}

func (g *DecayGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, exponential decay
		envelope := math.Exp(-t * gameOverDecayRate)

		// LCG noise
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := gameOverRumbleAmp * math.Sin(2*math.Pi*gameOverRumbleHz*t)

		sample := envelope * (gameOverNoiseAmplitude*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *DecayGenerator) Err() error {
	return nil
}
