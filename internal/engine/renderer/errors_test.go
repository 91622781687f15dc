package renderer

import "testing"

func TestErrorName(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{0x0500, "invalid enum"},
		{0x0501, "invalid value"},
		{0x0502, "invalid operation"},
		{0x0505, "out of memory"},
		{0x0506, "invalid framebuffer operation"},
		{0x1234, "unknown 0x1234"},
	}

	for _, tt := range tests {
		if got := errorName(tt.code); got != tt.want {
			t.Errorf("errorName(0x%04X) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

// queue returns a GetError stand-in that yields codes, then NO_ERROR.
func queue(codes ...uint32) func() uint32 {
	return func() uint32 {
		if len(codes) == 0 {
			return 0
		}
		code := codes[0]
		codes = codes[1:]
		return code
	}
}

func TestDrainErrors(t *testing.T) {
	got := drainErrors(queue(0x0500, 0x0502))
	if len(got) != 2 || got[0] != 0x0500 || got[1] != 0x0502 {
		t.Errorf("drained %v, want [0x0500 0x0502]", got)
	}

	if got := drainErrors(queue()); len(got) != 0 {
		t.Errorf("empty queue drained %v", got)
	}
}

func TestDrainErrorsIsBounded(t *testing.T) {
	calls := 0
	lost := func() uint32 {
		calls++
		return 0x0505
	}

	got := drainErrors(lost)
	if len(got) != maxErrorsPerCheck {
		t.Errorf("drained %d codes, want %d", len(got), maxErrorsPerCheck)
	}
	if calls != maxErrorsPerCheck {
		t.Errorf("GetError called %d times, want %d", calls, maxErrorsPerCheck)
	}
}
