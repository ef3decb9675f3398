package engine

// MusicPreset identifies a background music track.
type MusicPreset string

// SfxPreset identifies a one-shot sound effect.
type SfxPreset string

const (
	MusicWhimsicalPopsicle MusicPreset = "whimsical_popsicle"

	SfxImpact SfxPreset = "impact3"
	SfxJingle SfxPreset = "jingle3"
)

// Audio is the fire-and-forget sound interface the game calls into.
type Audio interface {
	PlayMusic(track MusicPreset, volume float64)
	StopMusic()
	PlaySFX(sfx SfxPreset, volume float64)
}

// NopAudio discards every call.
type NopAudio struct{}

func (NopAudio) PlayMusic(MusicPreset, float64) {}
func (NopAudio) StopMusic()                     {}
func (NopAudio) PlaySFX(SfxPreset, float64)     {}
