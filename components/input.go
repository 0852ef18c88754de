package components

import "github.com/yohamta/donburi"

// Trigger is a discrete action event delivered with an input snapshot.
type Trigger int

const (
	TriggerAttack Trigger = iota
	TriggerBurst
)

func (t Trigger) String() string {
	switch t {
	case TriggerAttack:
		return "attack"
	case TriggerBurst:
		return "burst"
	}
	return "unknown"
}

// InputSnapshot is the per-frame input record the simulation consumes.
// CameraYaw is the orbit camera's yaw; movement keys are mapped relative
// to it.
type InputSnapshot struct {
	MoveForward bool
	MoveBack    bool
	MoveLeft    bool
	MoveRight   bool
	SprintHeld  bool
	JumpHeld    bool
	CameraYaw   float64
	Triggers    []Trigger
}

// Has reports whether the trigger was queued this frame.
func (s *InputSnapshot) Has(t Trigger) bool {
	for _, q := range s.Triggers {
		if q == t {
			return true
		}
	}
	return false
}

// Moving reports whether any movement key is held.
func (s *InputSnapshot) Moving() bool {
	return s.MoveForward || s.MoveBack || s.MoveLeft || s.MoveRight
}

var Input = donburi.NewComponentType[InputSnapshot]()
