package client

import (
	"github.com/automoto/bossfight/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// ActionState is the per-frame state of one action.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputState is the client's polled input for the current and previous
// frame plus the mouse and right stick used by the orbit camera.
type InputState struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool

	MouseX, MouseY   int
	MouseHeld        bool
	MouseJustPressed bool
	WheelY           float64
	StickX           float64
}

// Action returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func (s *InputState) Action(id ActionID) ActionState {
	curr := s.Current[id]
	prev := s.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// UpdateInput polls keyboard, mouse and gamepads into s.
func UpdateInput(s *InputState) {
	// Swap buffers: current becomes previous, then zero out current
	s.Previous = s.Current
	s.Current = [ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				s.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					s.Current[actionID] = true
				}
			}
		}
	}

	left, right, up, down, stickX := analogSticks(gamepadIDs)
	s.Current[ActionMoveLeft] = s.Current[ActionMoveLeft] || left
	s.Current[ActionMoveRight] = s.Current[ActionMoveRight] || right
	s.Current[ActionMoveForward] = s.Current[ActionMoveForward] || up
	s.Current[ActionMoveBack] = s.Current[ActionMoveBack] || down
	s.StickX = stickX

	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.MouseJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	_, s.WheelY = ebiten.Wheel()
}

// analogSticks reads the left stick as directions and the right stick's
// horizontal axis for orbiting.
func analogSticks(gamepads []ebiten.GamepadID) (left, right, up, down bool, stickX float64) {
	deadzone := Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone

		if rx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal); rx < -deadzone || rx > deadzone {
			stickX = rx
		}
	}
	return
}

// Snapshot converts the polled state into the simulation's input for one
// frame. Attack and burst fire once per press.
func Snapshot(s *InputState, cam *components.CameraData) components.InputSnapshot {
	in := components.InputSnapshot{
		MoveForward: s.Current[ActionMoveForward],
		MoveBack:    s.Current[ActionMoveBack],
		MoveLeft:    s.Current[ActionMoveLeft],
		MoveRight:   s.Current[ActionMoveRight],
		SprintHeld:  s.Current[ActionSprint],
		JumpHeld:    s.Current[ActionJump],
	}
	if cam != nil {
		in.CameraYaw = cam.Yaw
	}
	if s.Action(ActionAttack).JustPressed {
		in.Triggers = append(in.Triggers, components.TriggerAttack)
	}
	if s.Action(ActionBurst).JustPressed {
		in.Triggers = append(in.Triggers, components.TriggerBurst)
	}
	return in
}
