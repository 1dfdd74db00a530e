package rhythm

import (
	"math"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

const defaultTempo = 120.0

// Metronome keeps a beat clock at a given tempo.
// Originally based on https://github.com/Deep-Symmetry/electro/blob/main/src/main/java/org/deepsymmetry/electro/Metronome.java#L449
type Metronome struct {
	mu        sync.Mutex
	clock     clock.PassiveClock
	startTime time.Time
	tempo     float64
}

// NewMetronome creates a new Metronome at 120 bpm whose first beat is now.
func NewMetronome(clk clock.PassiveClock) *Metronome {
	return &Metronome{
		clock:     clk,
		startTime: clk.Now(),
		tempo:     defaultTempo,
	}
}

func (m *Metronome) GetTempo() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tempo
}

// SetTempo sets a new tempo for the Metronome. The start time will be adjusted so that the current beat and phase are
// unaffected by the tempo change.
func (m *Metronome) SetTempo(bpm float64) {
	if bpm <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	instant := m.clock.Now()
	interval := beatsToMilliseconds(1, m.tempo)
	beat := markerNumber(instant, m.startTime, interval)
	phase := markerPhase(instant, m.startTime, interval)
	newInterval := beatsToMilliseconds(1, bpm)
	elapsedMs := math.Round(newInterval * (phase + float64(beat) - 1))
	m.startTime = instant.Add(-time.Duration(elapsedMs) * time.Millisecond)
	m.tempo = bpm
}

// Downbeat restarts the beat grid at the current instant, keeping the tempo.
func (m *Metronome) Downbeat() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startTime = m.clock.Now()
}

// GetBeatInterval returns the number of milliseconds a beat lasts.
func (m *Metronome) GetBeatInterval() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return beatsToMilliseconds(1, m.tempo)
}

// Snapshot returns the beat metadata the render pipeline consumes.
func (m *Metronome) Snapshot() BeatMetadata {
	m.mu.Lock()
	defer m.mu.Unlock()
	return BeatMetadata{
		LengthMs: beatsToMilliseconds(1, m.tempo),
		OffsetMs: m.startTime.UnixMilli(),
	}
}

// beatsToMilliseconds calculates milliseconds for given beats and tempo
func beatsToMilliseconds(beats int, tempo float64) float64 {
	return (60000.0 / tempo) * float64(beats)
}

// markerNumber calculates the marker number
func markerNumber(instant, start time.Time, interval float64) int {
	return int(math.Floor(instant.Sub(start).Seconds()*1000/interval)) + 1
}

// markerPhase calculates the phase of a marker
func markerPhase(instant, start time.Time, interval float64) float64 {
	ratio := instant.Sub(start).Seconds() * 1000 / interval
	return ratio - math.Floor(ratio)
}
