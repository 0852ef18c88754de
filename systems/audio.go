package systems

import (
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/events"
	"github.com/yohamta/donburi/ecs"
)

// PlaySFX queues a sound cue. Cues reach the audio player when the frame's
// events are flushed.
func PlaySFX(ecs *ecs.ECS, sound cfg.SoundID) {
	if sound == cfg.SoundNone {
		return
	}
	events.CueEvent.Publish(ecs.World, events.Cue{ID: sound})
}
