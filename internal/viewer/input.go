package viewer

// Key is a logical viewer control, independent of the platform key code.
type Key int

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyRotateLeft
	KeyRotateRight
	KeyRed
	KeyGreen
	KeyBlue
	KeyToggleMode

	keyCount
)

var keyNames = [keyCount]string{
	KeyForward:     "forward",
	KeyBack:        "back",
	KeyLeft:        "left",
	KeyRight:       "right",
	KeyUp:          "up",
	KeyDown:        "down",
	KeyRotateLeft:  "rotate_left",
	KeyRotateRight: "rotate_right",
	KeyRed:         "red",
	KeyGreen:       "green",
	KeyBlue:        "blue",
	KeyToggleMode:  "toggle_mode",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Button is a logical pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Action is a key or button transition.
type Action int

const (
	Press Action = iota
	Release
	Repeat
)

// inputState is the "held" record written by handlers and read by Update.
// ToggleMode and, in camera mode, the buttons are consumed by Update.
type inputState struct {
	keys      [keyCount]bool
	primary   bool
	secondary bool
}

// HandleKey records a key transition. Repeats carry no new information.
func (v *Viewer) HandleKey(key Key, action Action) {
	if key < 0 || key >= keyCount {
		return
	}
	switch action {
	case Press:
		v.input.keys[key] = true
	case Release:
		v.input.keys[key] = false
	}
}

// HandleButton records a pointer button transition.
func (v *Viewer) HandleButton(button Button, action Action) {
	var held *bool
	switch button {
	case ButtonPrimary:
		held = &v.input.primary
	case ButtonSecondary:
		held = &v.input.secondary
	default:
		return
	}
	switch action {
	case Press:
		*held = true
	case Release:
		*held = false
	}
}

// HandleCursor applies an absolute cursor sample to the look direction.
// This runs in both modes: the rig's front is shared by whichever entity
// currently owns the view position.
func (v *Viewer) HandleCursor(x, y float64) {
	v.rig.Look(x, y)
}

// HandleResize stores the new viewport size. Only the projection aspect
// depends on it.
func (v *Viewer) HandleResize(width, height int) {
	v.width = width
	v.height = height
}

func (v *Viewer) held(k Key) bool {
	return v.input.keys[k]
}

// axis folds a pair of opposing keys into -1, 0 or 1.
func (v *Viewer) axis(neg, pos Key) float32 {
	var a float32
	if v.held(pos) {
		a++
	}
	if v.held(neg) {
		a--
	}
	return a
}
