// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for viewer use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Event represents a processed input event. For EventMouseMove, MouseX and
// MouseY hold the accumulated virtual cursor, not the window position.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
	MouseX float64
	MouseY float64
	Button uint8
}

// Input handles all input processing.
type Input struct {
	events  []Event
	cursorX float64
	cursorY float64
}

// New creates an input handler whose virtual cursor starts at (x, y).
func New(x, y float64) *Input {
	return &Input{
		events:  make([]Event, 0, 16),
		cursorX: x,
		cursorY: y,
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the window was closed.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.resize(e.Data1, e.Data2)
			}

		case *sdl.KeyboardEvent:
			i.key(e.Type, e.Keysym.Scancode, e.Repeat != 0)

		case *sdl.MouseMotionEvent:
			i.move(e.XRel, e.YRel)

		case *sdl.MouseButtonEvent:
			i.button(e.Type, e.Button)
		}
	}

	return quit
}

// resize records a window size change in screen coordinates.
func (i *Input) resize(width, height int32) {
	i.events = append(i.events, Event{
		Type:   EventWindowResize,
		Width:  int(width),
		Height: int(height),
	})
}

func (i *Input) key(typ uint32, code sdl.Scancode, repeat bool) {
	switch typ {
	case sdl.KEYDOWN:
		i.events = append(i.events, Event{Type: EventKeyDown, Key: code, Repeat: repeat})
	case sdl.KEYUP:
		i.events = append(i.events, Event{Type: EventKeyUp, Key: code})
	}
}

// move accumulates relative motion. In relative mouse mode SDL reports
// only deltas, and the camera expects an absolute position.
func (i *Input) move(dx, dy int32) {
	i.cursorX += float64(dx)
	i.cursorY += float64(dy)
	i.events = append(i.events, Event{
		Type:   EventMouseMove,
		MouseX: i.cursorX,
		MouseY: i.cursorY,
	})
}

func (i *Input) button(typ uint32, button uint8) {
	ev := Event{MouseX: i.cursorX, MouseY: i.cursorY, Button: button}
	switch typ {
	case sdl.MOUSEBUTTONDOWN:
		ev.Type = EventMouseDown
	case sdl.MOUSEBUTTONUP:
		ev.Type = EventMouseUp
	default:
		return
	}
	i.events = append(i.events, ev)
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
