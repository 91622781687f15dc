package app

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/prismview/internal/engine/input"
	"github.com/Faultbox/prismview/internal/viewer"
)

// keyBindings maps physical keys to viewer controls.
var keyBindings = map[sdl.Scancode]viewer.Key{
	sdl.SCANCODE_W:      viewer.KeyForward,
	sdl.SCANCODE_S:      viewer.KeyBack,
	sdl.SCANCODE_A:      viewer.KeyLeft,
	sdl.SCANCODE_D:      viewer.KeyRight,
	sdl.SCANCODE_SPACE:  viewer.KeyUp,
	sdl.SCANCODE_LSHIFT: viewer.KeyDown,
	sdl.SCANCODE_Q:      viewer.KeyRotateLeft,
	sdl.SCANCODE_E:      viewer.KeyRotateRight,
	sdl.SCANCODE_1:      viewer.KeyRed,
	sdl.SCANCODE_2:      viewer.KeyGreen,
	sdl.SCANCODE_3:      viewer.KeyBlue,
	sdl.SCANCODE_TAB:    viewer.KeyToggleMode,
}

var buttonBindings = map[uint8]viewer.Button{
	sdl.BUTTON_LEFT:  viewer.ButtonPrimary,
	sdl.BUTTON_RIGHT: viewer.ButtonSecondary,
}

// controls is the part of the viewer driven by input events.
type controls interface {
	HandleKey(key viewer.Key, action viewer.Action)
	HandleButton(button viewer.Button, action viewer.Action)
	HandleCursor(x, y float64)
}

// command is an application-level request raised by an input event.
type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdResize
	cmdScreenshot
)

// route forwards ev to c and reports any application command it carries.
// Auto-repeated key presses reach the viewer as Repeat and never trigger
// commands.
func route(ev input.Event, c controls) command {
	switch ev.Type {
	case input.EventQuit:
		return cmdQuit

	case input.EventWindowResize:
		return cmdResize

	case input.EventKeyDown:
		if key, ok := keyBindings[ev.Key]; ok {
			action := viewer.Press
			if ev.Repeat {
				action = viewer.Repeat
			}
			c.HandleKey(key, action)
			return cmdNone
		}
		if ev.Repeat {
			return cmdNone
		}
		switch ev.Key {
		case sdl.SCANCODE_ESCAPE:
			return cmdQuit
		case sdl.SCANCODE_F12:
			return cmdScreenshot
		}

	case input.EventKeyUp:
		if key, ok := keyBindings[ev.Key]; ok {
			c.HandleKey(key, viewer.Release)
		}

	case input.EventMouseMove:
		c.HandleCursor(ev.MouseX, ev.MouseY)

	case input.EventMouseDown:
		if b, ok := buttonBindings[ev.Button]; ok {
			c.HandleButton(b, viewer.Press)
		}

	case input.EventMouseUp:
		if b, ok := buttonBindings[ev.Button]; ok {
			c.HandleButton(b, viewer.Release)
		}
	}
	return cmdNone
}

// pixelScale is the framebuffer to window width ratio of a resize event,
// 2 on a typical high-DPI display. It is 1 when the event has no size.
func pixelScale(ev input.Event, fbWidth int) float64 {
	if ev.Width <= 0 {
		return 1
	}
	return float64(fbWidth) / float64(ev.Width)
}
