package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundPlayerShot
	SoundAlienShot
	SoundHit
	SoundExplosion
	SoundPlayerHit
	// Pickups and flow
	SoundBonus
	SoundLevelStart
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// Waveform is the oscillator a tone is synthesized from.
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveSine
	WaveNoise
)

// Tone describes one synthesized effect: a frequency sweep from StartHz to
// EndHz under a linear decay.
type Tone struct {
	Wave    Waveform
	StartHz float64
	EndHz   float64
	Seconds float64
	Volume  float64 // 0.0 - 1.0
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	MaxPending    int // SFX queued per frame beyond this are dropped
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
		MaxPending:    8,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundPlayerShot:   {Wave: WaveSquare, StartHz: 880, EndHz: 440, Seconds: 0.08, Volume: 0.25},
			SoundAlienShot:    {Wave: WaveSquare, StartHz: 330, EndHz: 220, Seconds: 0.1, Volume: 0.15},
			SoundHit:          {Wave: WaveNoise, StartHz: 0, EndHz: 0, Seconds: 0.05, Volume: 0.3},
			SoundExplosion:    {Wave: WaveNoise, StartHz: 0, EndHz: 0, Seconds: 0.35, Volume: 0.5},
			SoundPlayerHit:    {Wave: WaveSquare, StartHz: 200, EndHz: 60, Seconds: 0.4, Volume: 0.5},
			SoundBonus:        {Wave: WaveSine, StartHz: 520, EndHz: 1040, Seconds: 0.2, Volume: 0.4},
			SoundLevelStart:   {Wave: WaveSine, StartHz: 262, EndHz: 524, Seconds: 0.5, Volume: 0.4},
			SoundMenuNavigate: {Wave: WaveSquare, StartHz: 660, EndHz: 660, Seconds: 0.04, Volume: 0.2},
			SoundMenuSelect:   {Wave: WaveSine, StartHz: 660, EndHz: 990, Seconds: 0.1, Volume: 0.3},
		},
	}
}
