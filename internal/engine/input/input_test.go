package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestMoveAccumulatesVirtualCursor(t *testing.T) {
	in := New(800, 450)

	in.move(10, -5)
	in.move(-3, 20)

	events := in.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	last := events[1]
	if last.Type != EventMouseMove || last.MouseX != 807 || last.MouseY != 465 {
		t.Errorf("last event = %+v", last)
	}
}

func TestButtonCarriesCursor(t *testing.T) {
	in := New(100, 200)
	in.button(sdl.MOUSEBUTTONDOWN, sdl.BUTTON_LEFT)
	in.button(sdl.MOUSEBUTTONUP, sdl.BUTTON_LEFT)
	in.button(sdl.MOUSEWHEEL, sdl.BUTTON_LEFT)

	events := in.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Type != EventMouseDown || events[1].Type != EventMouseUp {
		t.Errorf("types = %v, %v", events[0].Type, events[1].Type)
	}
	if events[0].MouseX != 100 || events[0].MouseY != 200 {
		t.Errorf("button position = (%v, %v)", events[0].MouseX, events[0].MouseY)
	}
}

func TestResizeEventCarriesSize(t *testing.T) {
	in := New(0, 0)
	in.resize(1280, 720)

	e := in.Events()[0]
	if e.Type != EventWindowResize || e.Width != 1280 || e.Height != 720 {
		t.Errorf("event = %+v", e)
	}
}

func TestKeyUpNeverRepeats(t *testing.T) {
	in := New(0, 0)
	in.key(sdl.KEYUP, sdl.SCANCODE_W, true)

	e := in.Events()[0]
	if e.Type != EventKeyUp || e.Repeat {
		t.Errorf("event = %+v", e)
	}
}
