// Package sfx synthesizes the encounter's sound cues and plays them.
package sfx

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"

	cfg "github.com/automoto/bossfight/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator is a fixed-length tone whose pitch glides linearly from freq
// to endFreq.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	position      int
	length        int
	wave          Wave
	rate          beep.SampleRate
	rng           *rand.Rand
}

// NewOscillator returns a tone of the given shape. Noise draws from a
// fixed seed so every render of a cue is identical.
func NewOscillator(freq, endFreq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:    freq,
		endFreq: endFreq,
		length:  rate.N(d),
		wave:    wave,
		rate:    rate,
		rng:     rand.New(rand.NewPCG(uint64(freq), 0x5f0)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.length)
		freq := o.freq + (o.endFreq-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.release > 0 && e.position >= start {
			vol = math.Min(vol, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// gain scales linearly; zero or less is silent.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type voice struct {
	from, to        float64
	wave            Wave
	d               time.Duration
	attack, release time.Duration
	vol             float64
}

func (v voice) streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(v.from, v.to, v.d, v.wave, rate)
	return gain(NewEnvelope(osc, v.d, v.attack, v.release, rate), v.vol)
}

func chord(rate beep.SampleRate, voices ...voice) beep.Streamer {
	s := make([]beep.Streamer, len(voices))
	for i, v := range voices {
		s[i] = v.streamer(rate)
	}
	return beep.Mix(s...)
}

func arpeggio(rate beep.SampleRate, voices ...voice) beep.Streamer {
	s := make([]beep.Streamer, len(voices))
	for i, v := range voices {
		s[i] = v.streamer(rate)
	}
	return beep.Seq(s...)
}

const ms = time.Millisecond

// Synthesize builds the streamer for a cue, or nil for SoundNone and
// unknown ids.
func Synthesize(id cfg.SoundID, rate beep.SampleRate) beep.Streamer {
	switch id {
	case cfg.SoundMeleeSwing:
		return chord(rate,
			voice{0, 0, WaveNoise, 120 * ms, 5 * ms, 100 * ms, 0.35},
			voice{520, 180, WaveSaw, 120 * ms, 5 * ms, 100 * ms, 0.15},
		)
	case cfg.SoundSlamImpact:
		return chord(rate,
			voice{90, 35, WaveSine, 350 * ms, 2 * ms, 300 * ms, 0.6},
			voice{0, 0, WaveNoise, 150 * ms, 1 * ms, 140 * ms, 0.3},
		)
	case cfg.SoundBurst:
		return chord(rate,
			voice{440, 880, WaveSaw, 500 * ms, 20 * ms, 300 * ms, 0.25},
			voice{880, 1760, WaveSine, 500 * ms, 20 * ms, 300 * ms, 0.25},
		)
	case cfg.SoundMissileHit:
		return voice{180, 90, WaveSquare, 100 * ms, 2 * ms, 80 * ms, 0.3}.streamer(rate)
	case cfg.SoundPlayerDefeated:
		return arpeggio(rate,
			voice{440, 440, WaveSine, 200 * ms, 5 * ms, 50 * ms, 0.5},
			voice{330, 330, WaveSine, 200 * ms, 5 * ms, 50 * ms, 0.5},
			voice{220, 180, WaveSine, 400 * ms, 5 * ms, 300 * ms, 0.5},
		)
	case cfg.SoundPhase2Transition:
		return chord(rate,
			voice{110, 55, WaveSaw, time.Second, 100 * ms, 400 * ms, 0.3},
			voice{55, 40, WaveSquare, time.Second, 100 * ms, 400 * ms, 0.2},
		)
	case cfg.SoundBossDefeated:
		return arpeggio(rate,
			voice{523, 523, WaveSine, 150 * ms, 5 * ms, 40 * ms, 0.5},
			voice{659, 659, WaveSine, 150 * ms, 5 * ms, 40 * ms, 0.5},
			voice{784, 784, WaveSine, 150 * ms, 5 * ms, 40 * ms, 0.5},
			voice{1046, 1046, WaveSine, 400 * ms, 5 * ms, 300 * ms, 0.5},
		)
	}
	return nil
}

// Render drains s into signed 16-bit little-endian stereo PCM, the layout
// ebiten's audio players read.
func Render(s beep.Streamer) []byte {
	if s == nil {
		return nil
	}
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok {
			return out
		}
	}
}
