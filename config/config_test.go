package config

import (
	"errors"
	"testing"

	"msphal/core"
)

func TestLoadConfigDefaults(t *testing.T) {
	data := []byte(`{
		"pins": {
			"led":    {"pin": "P1.0", "mode": "output"},
			"button": {"pin": "p1.3", "edge": "falling"}
		}
	}`)

	board, err := LoadConfig(data)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if board.Name != "msp430g2553" {
		t.Errorf("Expected default name, got %q", board.Name)
	}
	if led := board.Pins["led"]; led.Initial != "low" {
		t.Errorf("Expected default initial level low, got %q", led.Initial)
	}
	if button := board.Pins["button"]; button.Mode != ModeInput {
		t.Errorf("Expected default mode input, got %q", button.Mode)
	}
}

func TestLoadConfigFullBoard(t *testing.T) {
	core.Reset()

	data := []byte(`{
		"name": "launchpad",
		"pins": {
			"led2": {"pin": "P1.6", "mode": "output", "initial": "high"},
			"s2":   {"pin": "P1.3", "mode": "input", "edge": "falling"},
			"sense": {"pin": "P2.3", "mode": "input_pulldown"}
		}
	}`)

	board, err := LoadConfig(data)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if board.Name != "launchpad" {
		t.Errorf("Expected launchpad, got %q", board.Name)
	}

	lines, err := Apply(board)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if led2 := lines["led2"]; led2.Output == nil || led2.State() != core.High {
		t.Error("led2 should be an output driven high")
	}
	if s2 := lines["s2"]; s2.IRQ == nil {
		t.Error("s2 should have interrupt control")
	}
	if sense := lines["sense"]; sense.Input == nil || sense.State() != core.Low {
		t.Error("sense should be a pulled-down input")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	testCases := []struct {
		name string
		data string
		err  error
	}{
		{"bad label", `{"pins": {"x": {"pin": "P4.0"}}}`, ErrInvalidPin},
		{"bad index", `{"pins": {"x": {"pin": "P1.8"}}}`, ErrInvalidPin},
		{"bad mode", `{"pins": {"x": {"pin": "P1.0", "mode": "analog"}}}`, ErrInvalidMode},
		{"bad level", `{"pins": {"x": {"pin": "P1.0", "mode": "output", "initial": "maybe"}}}`, ErrInvalidLevel},
		{"bad edge", `{"pins": {"x": {"pin": "P1.0", "edge": "both"}}}`, ErrInvalidEdge},
		{"port3 edge", `{"pins": {"x": {"pin": "P3.0", "edge": "falling"}}}`, ErrNoInterrupt},
		{"duplicate", `{"pins": {"a": {"pin": "P2.1"}, "b": {"pin": "p2.1"}}}`, ErrDuplicate},
	}

	for _, tc := range testCases {
		_, err := LoadConfig([]byte(tc.data))
		if !errors.Is(err, tc.err) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.err, err)
		}
	}

	if _, err := LoadConfig([]byte(`{`)); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestApplyDefaultBoard(t *testing.T) {
	core.Reset()

	lines, err := Apply(DefaultBoard())
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	led1 := lines["led1"]
	if led1 == nil || led1.Output == nil {
		t.Fatal("led1 should be an output")
	}
	if led1.Label() != "P1.0" {
		t.Errorf("Expected P1.0, got %s", led1.Label())
	}
	led1.Output.High()
	if led1.State() != core.High {
		t.Error("led1 should read high")
	}

	s2 := lines["s2"]
	if s2 == nil || s2.Input == nil || s2.IRQ == nil {
		t.Fatal("s2 should be an interrupt-capable input")
	}
	if s2.State() != core.High {
		t.Error("s2 should be pulled up")
	}
	if s2.IRQ.Pending() {
		t.Error("s2 flag should be clear after arming")
	}

	core.Drive(core.Port1, core.Pin3, core.Low)
	if !s2.IRQ.Pending() {
		t.Error("Pressing s2 should latch its flag")
	}
}

func TestNewLinePort3(t *testing.T) {
	core.Reset()

	line, err := NewLine("relay", PinConfig{Pin: "P3.2", Mode: ModeOutput, Initial: "high"})
	if err != nil {
		t.Fatalf("NewLine failed: %v", err)
	}
	if line.IRQ != nil {
		t.Error("Port3 lines have no interrupt control")
	}
	if line.State() != core.High {
		t.Error("Expected initial level high")
	}

	_, err = NewLine("x", PinConfig{Pin: "P3.3", Mode: ModeInput, Edge: "rising"})
	if !errors.Is(err, ErrNoInterrupt) {
		t.Errorf("Expected ErrNoInterrupt, got %v", err)
	}
}

func TestParsePin(t *testing.T) {
	testCases := []struct {
		label string
		port  core.PortID
		index core.Pin
		ok    bool
	}{
		{"P1.0", core.Port1, core.Pin0, true},
		{" p2.7 ", core.Port2, core.Pin7, true},
		{"P3.5", core.Port3, core.Pin5, true},
		{"P0.1", 0, 0, false},
		{"P1.9", 0, 0, false},
		{"P10", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tc := range testCases {
		port, index, err := ParsePin(tc.label)
		if (err == nil) != tc.ok {
			t.Errorf("ParsePin(%q): unexpected error %v", tc.label, err)
			continue
		}
		if tc.ok && (port != tc.port || index != tc.index) {
			t.Errorf("ParsePin(%q) = %s, %d", tc.label, port, index)
		}
	}
}

func TestParseLevelAndEdge(t *testing.T) {
	if s, err := ParseLevel("HIGH"); err != nil || s != core.High {
		t.Errorf("ParseLevel(HIGH) = %v, %v", s, err)
	}
	if s, err := ParseLevel("0"); err != nil || s != core.Low {
		t.Errorf("ParseLevel(0) = %v, %v", s, err)
	}
	if e, err := ParseEdge("rising"); err != nil || e != core.RisingEdge {
		t.Errorf("ParseEdge(rising) = %v, %v", e, err)
	}
	if _, err := ParseEdge("sideways"); !errors.Is(err, ErrInvalidEdge) {
		t.Errorf("Expected ErrInvalidEdge, got %v", err)
	}
}
