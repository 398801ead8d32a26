// Package board models the declarative definition of one board: the chip
// fits it ships with, the features its builds may enable, and the silkscreen
// alias table. Definitions are external configuration, one YAML file per
// board; nothing in here is board-specific.
package board

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is one board's YAML document.
type Definition struct {
	Board     string        `yaml:"board"`
	Package   string        `yaml:"package,omitempty"`   // Go package name, defaults to Board
	TagPrefix string        `yaml:"tagPrefix,omitempty"` // feature build-tag prefix, defaults to Board
	Variants  []string      `yaml:"variants"`            // chip variant tags the board ships with
	Features  []string      `yaml:"features,omitempty"`  // feature flags the board wires
	Pins      []PinEntry    `yaml:"pins,omitempty"`
	Periphs   []PeriphEntry `yaml:"periphs,omitempty"`
}

// PinEntry maps one silkscreen name to a port pin. Mode is optional; an
// entry without a mode stays a raw machine.Pin.
type PinEntry struct {
	Name       string   `yaml:"name"`
	Pin        string   `yaml:"pin"` // e.g. "PA23"
	Mode       Mode     `yaml:"mode,omitempty"`
	Capability string   `yaml:"capability,omitempty"` // gate; name from the capability universe
	Variants   []string `yaml:"variants,omitempty"`   // restrict to a subset of the board's fits
	Doc        string   `yaml:"doc,omitempty"`
}

// PeriphEntry maps one board name to a machine peripheral handle.
type PeriphEntry struct {
	Name       string   `yaml:"name"`
	Periph     string   `yaml:"periph"` // instance name under machine, e.g. "UART1"
	Type       string   `yaml:"type"`   // handle type, e.g. "*machine.UART"
	Capability string   `yaml:"capability,omitempty"`
	Variants   []string `yaml:"variants,omitempty"`
	Doc        string   `yaml:"doc,omitempty"`
}

// Mode is the electrical mode an alias entry fixes for its pin.
type Mode string

const (
	ModeNone          Mode = ""
	ModeInput         Mode = "input"
	ModeInputPullup   Mode = "input-pullup"
	ModeInputPulldown Mode = "input-pulldown"
	ModeOutput        Mode = "output"
	ModeAnalog        Mode = "analog"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeNone, ModeInput, ModeInputPullup, ModeInputPulldown, ModeOutput, ModeAnalog:
		return true
	}
	return false
}

// ViewType returns the generated pin view type carrying the mode, or "" for
// raw pins.
func (m Mode) ViewType() string {
	switch m {
	case ModeInput:
		return "InputPin"
	case ModeInputPullup:
		return "InputPullupPin"
	case ModeInputPulldown:
		return "InputPulldownPin"
	case ModeOutput:
		return "OutputPin"
	case ModeAnalog:
		return "AnalogPin"
	}
	return ""
}

// Decode reads one strict-YAML board definition.
func Decode(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("decoding board definition: %w", err)
	}
	return &def, nil
}

// Load reads a board definition file.
func Load(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	def, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}
