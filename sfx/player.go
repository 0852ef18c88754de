package sfx

import (
	"fmt"

	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/simulation"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Bank holds every cue rendered to PCM at one sample rate.
type Bank map[cfg.SoundID][]byte

// NewBank renders all known cues.
func NewBank(rate int) Bank {
	b := Bank{}
	for id := range cfg.Sound.CueNames {
		if pcm := Render(Synthesize(id, beep.SampleRate(rate))); len(pcm) > 0 {
			b[id] = pcm
		}
	}
	return b
}

// Player plays cues through ebiten's audio context. It implements
// simulation.Sink and ignores everything but cues.
type Player struct {
	simulation.NopSink

	ctx    *audio.Context
	bank   Bank
	Volume float64
}

// NewPlayer opens (or reuses) the process-wide audio context.
func NewPlayer() (*Player, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(cfg.Audio.SampleRate)
	} else if ctx.SampleRate() != cfg.Audio.SampleRate {
		return nil, fmt.Errorf("sfx: open audio: context runs at %d Hz, want %d", ctx.SampleRate(), cfg.Audio.SampleRate)
	}
	return &Player{
		ctx:    ctx,
		bank:   NewBank(ctx.SampleRate()),
		Volume: cfg.Audio.DefaultSFXVol,
	}, nil
}

// Cue starts the sound for id. Unknown ids are ignored.
func (p *Player) Cue(id cfg.SoundID) {
	pcm, ok := p.bank[id]
	if !ok {
		return
	}
	vol := p.Volume
	if m, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		vol *= m
	}
	ap := p.ctx.NewPlayerFromBytes(pcm)
	ap.SetVolume(min(1, vol))
	ap.Play()
}
