// Package audio provides engine.Audio sinks for environments without sound
// output. The log sink records every cue through a structured logger so that
// music and effects can be followed in a log file or an SSH server log.
package audio

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadrush/internal/engine"
)

// LogSink reports audio cues to a logger and remembers the music state.
type LogSink struct {
	logger *log.Logger

	mu      sync.Mutex
	music   engine.MusicPreset
	playing bool
	played  map[engine.SfxPreset]int
}

// NewLogSink creates a sink writing to logger. A nil logger discards the cues
// but still tracks state.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{
		logger: logger,
		played: make(map[engine.SfxPreset]int),
	}
}

// PlayMusic starts (or replaces) the looping background track.
func (s *LogSink) PlayMusic(m engine.MusicPreset, volume float64) {
	s.mu.Lock()
	s.music = m
	s.playing = true
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug("music started", "track", string(m), "volume", volume)
	}
}

// StopMusic stops the background track. Stopping silence is a no-op.
func (s *LogSink) StopMusic() {
	s.mu.Lock()
	was := s.playing
	s.playing = false
	s.mu.Unlock()

	if was && s.logger != nil {
		s.logger.Debug("music stopped")
	}
}

// PlaySFX fires a one-shot sound effect.
func (s *LogSink) PlaySFX(sfx engine.SfxPreset, volume float64) {
	s.mu.Lock()
	s.played[sfx]++
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug("sfx", "preset", string(sfx), "volume", volume)
	}
}

// Music returns the current track and whether it is playing.
func (s *LogSink) Music() (engine.MusicPreset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.music, s.playing
}

// Played returns how many times sfx has been played.
func (s *LogSink) Played(sfx engine.SfxPreset) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.played[sfx]
}
