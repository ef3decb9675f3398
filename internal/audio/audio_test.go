package audio

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/roadrush/internal/engine"
)

func TestLogSinkTracksMusic(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel, Prefix: "audio"})
	s := NewLogSink(logger)

	_, playing := s.Music()
	assert.False(t, playing)

	s.PlayMusic(engine.MusicWhimsicalPopsicle, 0.2)
	track, playing := s.Music()
	assert.True(t, playing)
	assert.Equal(t, engine.MusicWhimsicalPopsicle, track)
	assert.Contains(t, buf.String(), "whimsical_popsicle")

	s.StopMusic()
	_, playing = s.Music()
	assert.False(t, playing)
	assert.Contains(t, buf.String(), "music stopped")

	buf.Reset()
	s.StopMusic()
	assert.Empty(t, buf.String(), "stopping silence logs nothing")
}

func TestLogSinkCountsEffects(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := NewLogSink(logger)

	s.PlaySFX(engine.SfxImpact, 1)
	s.PlaySFX(engine.SfxImpact, 1)
	s.PlaySFX(engine.SfxJingle, 1)

	assert.Equal(t, 2, s.Played(engine.SfxImpact))
	assert.Equal(t, 1, s.Played(engine.SfxJingle))
	assert.Contains(t, buf.String(), "impact3")
}

func TestLogSinkWithoutLogger(t *testing.T) {
	s := NewLogSink(nil)
	var a engine.Audio = s

	a.PlayMusic(engine.MusicWhimsicalPopsicle, 0.2)
	a.PlaySFX(engine.SfxJingle, 1)
	a.StopMusic()

	assert.Equal(t, 1, s.Played(engine.SfxJingle))
}
