package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"msphal/core"
)

var (
	ErrInvalidPin   = errors.New("invalid pin label")
	ErrInvalidMode  = errors.New("invalid pin mode")
	ErrInvalidEdge  = errors.New("invalid interrupt edge")
	ErrInvalidLevel = errors.New("invalid level")
	ErrNoInterrupt  = errors.New("port has no interrupt registers")
	ErrDuplicate    = errors.New("pin used twice")
)

// LoadConfig parses a JSON board description, applies defaults and
// validates every pin
func LoadConfig(jsonData []byte) (*Board, error) {
	var board Board

	if err := json.Unmarshal(jsonData, &board); err != nil {
		return nil, err
	}

	applyDefaults(&board)

	if err := Validate(&board); err != nil {
		return nil, err
	}

	return &board, nil
}

// applyDefaults fills in missing configuration values
func applyDefaults(board *Board) {
	if board.Name == "" {
		board.Name = "msp430g2553"
	}

	for name, pin := range board.Pins {
		// Inputs are the safe power-on choice
		if pin.Mode == "" {
			pin.Mode = ModeInput
		}
		if pin.Mode == ModeOutput && pin.Initial == "" {
			pin.Initial = "low"
		}
		board.Pins[name] = pin
	}
}

// Validate checks labels, modes, levels and edges of a board
func Validate(board *Board) error {
	used := make(map[string]string)

	for _, name := range sortedNames(board) {
		pin := board.Pins[name]

		port, index, err := ParsePin(pin.Pin)
		if err != nil {
			return fmt.Errorf("pin %s: %w", name, err)
		}

		label := Label(port, index)
		if other, dup := used[label]; dup {
			return fmt.Errorf("pin %s: %s already used by %s: %w", name, label, other, ErrDuplicate)
		}
		used[label] = name

		switch pin.Mode {
		case ModeOutput:
			if _, err := ParseLevel(pin.Initial); err != nil {
				return fmt.Errorf("pin %s: %w", name, err)
			}
		case ModeInput, ModeInputPullDown:
		default:
			return fmt.Errorf("pin %s: %q: %w", name, pin.Mode, ErrInvalidMode)
		}

		if pin.Edge != "" {
			if _, err := ParseEdge(pin.Edge); err != nil {
				return fmt.Errorf("pin %s: %w", name, err)
			}
			if !core.Capable(port) {
				return fmt.Errorf("pin %s: %s: %w", name, port, ErrNoInterrupt)
			}
		}
	}

	return nil
}

// Apply builds the handles of a validated board in name order
func Apply(board *Board) (map[string]*Line, error) {
	lines := make(map[string]*Line, len(board.Pins))

	for _, name := range sortedNames(board) {
		line, err := NewLine(name, board.Pins[name])
		if err != nil {
			return nil, err
		}
		lines[name] = line
	}

	return lines, nil
}

// NewLine configures one pin and returns its line
func NewLine(name string, pin PinConfig) (*Line, error) {
	port, index, err := ParsePin(pin.Pin)
	if err != nil {
		return nil, fmt.Errorf("pin %s: %w", name, err)
	}

	line := &Line{Name: name, Port: port, Index: index}

	switch pin.Mode {
	case ModeOutput:
		level, err := ParseLevel(pin.Initial)
		if err != nil {
			return nil, fmt.Errorf("pin %s: %w", name, err)
		}
		out := core.NewOutputState(port, index, level)
		line.Output = &out
	case ModeInput, ModeInputPullDown, "":
		pull := core.PullUp
		if pin.Mode == ModeInputPullDown {
			pull = core.PullDown
		}
		in := core.NewInputPull(port, index, pull)
		line.Input = &in
	default:
		return nil, fmt.Errorf("pin %s: %q: %w", name, pin.Mode, ErrInvalidMode)
	}

	if irqPort, ok := core.IRQPortOf(port); ok {
		irq := core.InterruptFor(irqPort, index)
		line.IRQ = &irq
	}

	if pin.Edge != "" {
		edge, err := ParseEdge(pin.Edge)
		if err != nil {
			return nil, fmt.Errorf("pin %s: %w", name, err)
		}
		if line.IRQ == nil {
			return nil, fmt.Errorf("pin %s: %s: %w", name, port, ErrNoInterrupt)
		}
		line.IRQ.Arm(edge)
	}

	return line, nil
}

// ParsePin parses a label such as "P1.0" or "p2.7"
func ParsePin(label string) (core.PortID, core.Pin, error) {
	s := strings.ToUpper(strings.TrimSpace(label))
	if len(s) != 4 || s[0] != 'P' || s[2] != '.' {
		return 0, 0, fmt.Errorf("%q: %w", label, ErrInvalidPin)
	}
	if s[1] < '1' || s[1] > '3' || s[3] < '0' || s[3] > '7' {
		return 0, 0, fmt.Errorf("%q: %w", label, ErrInvalidPin)
	}
	return core.PortID(s[1] - '0'), core.Pin(s[3] - '0'), nil
}

// Label formats a port pin as "P1.0"
func Label(port core.PortID, index core.Pin) string {
	return fmt.Sprintf("%s.%d", port, index)
}

// ParseLevel parses "high"/"low" (also "1"/"0", "on"/"off")
func ParseLevel(s string) (core.State, error) {
	switch strings.ToLower(s) {
	case "high", "1", "on":
		return core.High, nil
	case "low", "0", "off":
		return core.Low, nil
	}
	return core.Low, fmt.Errorf("%q: %w", s, ErrInvalidLevel)
}

// ParseEdge parses "falling"/"rising"
func ParseEdge(s string) (core.Edge, error) {
	switch strings.ToLower(s) {
	case "falling", "fall", "hl":
		return core.FallingEdge, nil
	case "rising", "rise", "lh":
		return core.RisingEdge, nil
	}
	return core.FallingEdge, fmt.Errorf("%q: %w", s, ErrInvalidEdge)
}

func sortedNames(board *Board) []string {
	names := make([]string, 0, len(board.Pins))
	for name := range board.Pins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultBoard returns the pin map of the MSP-EXP430G2 LaunchPad
func DefaultBoard() *Board {
	return &Board{
		Name: "launchpad",
		Pins: map[string]PinConfig{
			"led1": {Pin: "P1.0", Mode: ModeOutput, Initial: "low"},
			"led2": {Pin: "P1.6", Mode: ModeOutput, Initial: "low"},
			"s2":   {Pin: "P1.3", Mode: ModeInput, Edge: "falling"},
		},
	}
}
