package narration

import "testing"

func TestEmptyCommandDisables(t *testing.T) {
	n := New("", true, nil)
	if n.Enabled() {
		t.Fatalf("narrator enabled without a TTS command")
	}
	// Speaking while disabled must be a silent no-op.
	n.Speak("hello")
	n.Stop()
}

func TestToggle(t *testing.T) {
	n := New("espeak", true, nil)
	if !n.Enabled() {
		t.Fatalf("expected enabled narrator")
	}
	if on := n.Toggle(); on {
		t.Fatalf("Toggle()=true, want false")
	}
	if n.Enabled() {
		t.Fatalf("narrator still enabled after toggle off")
	}
	if on := n.Toggle(); !on {
		t.Fatalf("Toggle()=false, want true")
	}
}

func TestRateClampAndArgs(t *testing.T) {
	n := New("espeak", false, nil)

	n.SetRate(10)
	if n.rate != minRate {
		t.Fatalf("rate=%d, want clamp to %d", n.rate, minRate)
	}
	n.SetRate(9000)
	if n.rate != maxRate {
		t.Fatalf("rate=%d, want clamp to %d", n.rate, maxRate)
	}
	n.SetRate(180)

	args := n.args("hi")
	if len(args) != 3 || args[0] != "-s" || args[1] != "180" || args[2] != "hi" {
		t.Fatalf("espeak args=%v", args)
	}

	say := New("say", false, nil)
	say.SetRate(200)
	args = say.args("hi")
	if len(args) != 3 || args[0] != "-r" || args[1] != "200" {
		t.Fatalf("say args=%v", args)
	}
}
