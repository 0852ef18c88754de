package scenes

import (
	"log"

	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/simulation"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Setup is shared by every scene of a session.
type Setup struct {
	Arena *components.ArenaData
	// Audio receives cues; nil runs silent.
	Audio simulation.Sink
	// Tuning is the optional hot-reload watcher for the gameplay constants.
	Tuning *cfg.TuningWatcher
}

// pollTuning applies any reloaded tuning without blocking.
func (s *Setup) pollTuning() {
	if s.Tuning == nil {
		return
	}
	select {
	case t, ok := <-s.Tuning.Updates:
		if ok {
			t.Apply()
			log.Println("tuning reloaded")
		}
	case err, ok := <-s.Tuning.Errors:
		if ok {
			log.Printf("tuning: %v", err)
		}
	default:
	}
}
