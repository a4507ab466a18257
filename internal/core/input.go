package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone Action = iota

	// Movement: forward, back, then turn (2D) or strafe (3D).
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	// Fire shoots the selected weapon; Weapon1-4 select pistol, shotgun,
	// machine gun and sniper.
	ActionFire
	ActionWeapon1
	ActionWeapon2
	ActionWeapon3
	ActionWeapon4

	// 3D only: vertical flight and keyboard look.
	ActionAscend
	ActionDescend
	ActionLookLeft
	ActionLookRight
	ActionLookUp
	ActionLookDown

	// Session control.
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionFire:      "Fire",
	ActionWeapon1:   "Weapon1",
	ActionWeapon2:   "Weapon2",
	ActionWeapon3:   "Weapon3",
	ActionWeapon4:   "Weapon4",
	ActionAscend:    "Ascend",
	ActionDescend:   "Descend",
	ActionLookLeft:  "LookLeft",
	ActionLookRight: "LookRight",
	ActionLookUp:    "LookUp",
	ActionLookDown:  "LookDown",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// LookDX and LookDY are pointer deltas accumulated since the previous
	// frame, in pointer pixels. Only the 3D arena reads them.
	LookDX, LookDY float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddLook accumulates a pointer delta.
func (f *InputFrame) AddLook(dx, dy float64) {
	f.LookDX += dx
	f.LookDY += dy
}

// Clear resets all actions and look deltas for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.LookDX, f.LookDY = 0, 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.LookDX, clone.LookDY = f.LookDX, f.LookDY
	return clone
}
