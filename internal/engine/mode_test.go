package engine

import (
	"errors"
	"testing"
)

func TestModeDefaults(t *testing.T) {
	var m Mode
	if m.IsThreaded() || m.Workers() != 1 {
		t.Fatalf("zero Mode should be sequential with one worker, got %v", m)
	}
	if err := Threaded(0).Validate(); !errors.Is(err, ErrInvalidWorkers) {
		t.Fatalf("Threaded(0) should be invalid, got %v", err)
	}
	if err := Threaded(3).Validate(); err != nil {
		t.Fatalf("Threaded(3) should be valid, got %v", err)
	}
	if got := Threaded(3).String(); got != "threaded(3)" {
		t.Fatalf("unexpected String: %q", got)
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"seq":          Sequential(),
		"Sequential":   Sequential(),
		"4":            Threaded(4),
		"threads=2":    Threaded(2),
		"threaded(16)": Threaded(16),
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil {
			t.Fatalf("ParseMode(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMode(%q): got %v want %v", in, got, want)
		}
	}
	if _, err := ParseMode("0"); !errors.Is(err, ErrInvalidWorkers) {
		t.Fatalf("expected ErrInvalidWorkers for 0, got %v", err)
	}
	if _, err := ParseMode("lots"); err == nil {
		t.Fatal("expected error for malformed mode")
	}
}

func TestConfigFromMap(t *testing.T) {
	if c := FromMap(nil); c.Workers != DefaultWorkers {
		t.Fatalf("expected default workers %d, got %d", DefaultWorkers, c.Workers)
	}
	c := FromMap(map[string]string{"workers": "8"})
	if c.Mode() != Threaded(8) {
		t.Fatalf("expected threaded(8), got %v", c.Mode())
	}
	c = FromMap(map[string]string{"workers": "0"})
	if c.Mode().IsThreaded() {
		t.Fatalf("workers=0 should select sequential, got %v", c.Mode())
	}
	c = FromMap(map[string]string{"workers": "-3"})
	if c.Workers != DefaultWorkers {
		t.Fatalf("negative workers should be ignored, got %d", c.Workers)
	}
}
