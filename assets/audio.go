package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	cfg "github.com/automoto/starlane/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes sound effects and caches the PCM for reuse
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone for sound %d", id)
	}
	// Fixed seed so noise effects sound the same every run
	l.sfxCache[id] = Synthesize(tone, l.context.SampleRate(), rand.New(rand.NewSource(int64(id))))
	return nil
}

// LoadSFX returns a new player for the sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

// sweep is an oscillator whose frequency slides linearly from start to end
// over its length, then stops.
type sweep struct {
	tone     cfg.Tone
	rate     beep.SampleRate
	length   int
	position int
	phase    float64
	rng      *rand.Rand
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}
		t := float64(o.position) / float64(o.length)

		var val float64
		switch o.tone.Wave {
		case cfg.WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case cfg.WaveNoise:
			val = o.rng.Float64()*2 - 1
		default:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		}
		// Linear decay to silence
		val *= 1 - t

		samples[i][0] = val
		samples[i][1] = val

		freq := o.tone.StartHz + (o.tone.EndHz-o.tone.StartHz)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// newVolume scales a stream linearly; zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Synthesize renders a tone as 16-bit little endian stereo PCM, the format
// audio.Context players expect.
func Synthesize(tone cfg.Tone, sampleRate int, rng *rand.Rand) []byte {
	rate := beep.SampleRate(sampleRate)
	n := rate.N(time.Duration(tone.Seconds * float64(time.Second)))
	if n <= 0 {
		return nil
	}
	stream := beep.Take(n, newVolume(&sweep{tone: tone, rate: rate, length: n, rng: rng}, tone.Volume))

	buf := make([]byte, 0, n*4)
	chunk := make([][2]float64, 512)
	for {
		got, ok := stream.Stream(chunk)
		for _, frame := range chunk[:got] {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(toPCM(frame[0])))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(toPCM(frame[1])))
		}
		if !ok || got == 0 {
			return buf
		}
	}
}

func toPCM(v float64) int16 {
	return int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
}
