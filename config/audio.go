package config

// SoundID represents a logical sound cue emitted by the simulation
type SoundID int

const (
	SoundNone SoundID = iota
	// Player
	SoundMeleeSwing
	SoundSlamImpact
	SoundBurst
	SoundMissileHit
	SoundPlayerDefeated
	// Boss
	SoundPhase2Transition
	SoundBossDefeated
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to cue names and mix levels
type SoundConfig struct {
	CueNames          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

// CueName returns the external cue identifier for a sound.
func (s SoundID) CueName() string {
	if name, ok := Sound.CueNames[s]; ok {
		return name
	}
	return ""
}

func (s SoundID) String() string {
	if name := s.CueName(); name != "" {
		return name
	}
	return "none"
}

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		CueNames: map[SoundID]string{
			SoundMeleeSwing:       "melee-swing",
			SoundSlamImpact:       "slam-impact",
			SoundBurst:            "burst",
			SoundMissileHit:       "missile-hit",
			SoundPlayerDefeated:   "player-defeated",
			SoundPhase2Transition: "phase2-transition",
			SoundBossDefeated:     "boss-defeated",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundMissileHit:       0.5,
			SoundPhase2Transition: 1.2,
		},
	}
}
