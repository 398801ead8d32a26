package board

import (
	"errors"
	"strings"
	"testing"

	"boardcode-go/boardgen/feature"
)

func base() *Definition {
	return &Definition{
		Board:    "testboard",
		Variants: []string{"atsamd51g19", "atsamd51p19"},
		Features: []string{"dma", "usb"},
		Pins: []PinEntry{
			{Name: "d13", Pin: "PA23", Mode: ModeOutput, Doc: "onboard LED"},
			{Name: "a0", Pin: "PA02", Mode: ModeAnalog},
			{Name: "sda", Pin: "PA12"},
			{Name: "usb_dm", Pin: "PA24", Capability: "usb"},
		},
		Periphs: []PeriphEntry{
			{Name: "uart_sercom", Periph: "UART1", Type: "*machine.UART"},
		},
	}
}

func TestDecodeStrict(t *testing.T) {
	doc := `
board: testboard
variants: [atsamd51p19]
pins:
  - name: d13
    pin: PA23
    mode: output
`
	def, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if def.Board != "testboard" || len(def.Pins) != 1 || def.Pins[0].Mode != ModeOutput {
		t.Fatalf("decoded: %+v", def)
	}

	if _, err := Decode(strings.NewReader("board: x\nbogusfield: 1\n")); err == nil {
		t.Fatal("unknown fields should be rejected")
	}
}

func TestValidateOK(t *testing.T) {
	if err := Validate(base()); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateNoVariant(t *testing.T) {
	def := base()
	def.Variants = nil
	err := Validate(def)
	if err == nil || !strings.Contains(err.Error(), "no chip variant selected") {
		t.Fatalf("want no-variant error, got %v", err)
	}
}

func TestValidateDuplicateVariant(t *testing.T) {
	def := base()
	def.Variants = []string{"atsamd51p19", "atsamd51p19"}
	err := Validate(def)
	if err == nil || !strings.Contains(err.Error(), "conflicting chip variants") {
		t.Fatalf("want conflicting-variant error, got %v", err)
	}
}

func TestValidateUnknownVariant(t *testing.T) {
	def := base()
	def.Variants = []string{"atsamd99x"}
	err := Validate(def)
	if err == nil || !strings.Contains(err.Error(), `unknown chip variant "atsamd99x"`) {
		t.Fatalf("want unknown-variant error, got %v", err)
	}
}

func TestValidateDuplicateAlias(t *testing.T) {
	def := base()
	def.Pins = append(def.Pins, PinEntry{Name: "D13", Pin: "PA22"})
	err := Validate(def)
	if err == nil || !strings.Contains(err.Error(), "duplicate alias name") {
		t.Fatalf("want duplicate-alias error, got %v", err)
	}
}

func TestValidatePinModeConflict(t *testing.T) {
	// Same pad, same mode: fine (LED/D13 style doubling).
	def := base()
	def.Pins = append(def.Pins, PinEntry{Name: "led", Pin: "PA23", Mode: ModeOutput})
	if err := Validate(def); err != nil {
		t.Fatalf("same-mode doubling should validate: %v", err)
	}

	// Same pad, raw view next to a moded view: rejected.
	def = base()
	def.Pins = append(def.Pins, PinEntry{Name: "d8", Pin: "PA23"})
	err := Validate(def)
	if err == nil || !strings.Contains(err.Error(), `pin PA23 mode conflicts with alias "d13"`) {
		t.Fatalf("want mode-conflict error, got %v", err)
	}
}

func TestValidatePinMissingOnVariant(t *testing.T) {
	def := base()
	// PB16 is absent from the 48-pin fit.
	def.Pins = append(def.Pins, PinEntry{Name: "d20", Pin: "PB16"})
	err := Validate(def)
	if err == nil || !strings.Contains(err.Error(), "pin PB16 does not exist on ATSAMD51G19A") {
		t.Fatalf("want missing-pin error, got %v", err)
	}

	// Restricting the entry to the 128-pin fit resolves it.
	def.Pins[len(def.Pins)-1].Variants = []string{"atsamd51p19"}
	if err := Validate(def); err != nil {
		t.Fatalf("restricted entry should validate: %v", err)
	}
}

func TestValidateRestrictionOutsideFits(t *testing.T) {
	def := base()
	def.Pins = append(def.Pins, PinEntry{Name: "d20", Pin: "PC16", Variants: []string{"atsamd51n19"}})
	err := Validate(def)
	if err == nil || !strings.Contains(err.Error(), "not one of the board's fits") {
		t.Fatalf("want restriction error, got %v", err)
	}
}

func TestValidateMissingFeatureDependency(t *testing.T) {
	def := base()
	def.Features = []string{"max-channels"}
	err := Validate(def)
	if !errors.Is(err, feature.ErrMissingDependency) {
		t.Fatalf("want ErrMissingDependency, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), `"dma"`) {
		t.Fatalf("error should name dma: %v", err)
	}
}

func TestValidateGateErrors(t *testing.T) {
	def := base()
	def.Pins = append(def.Pins, PinEntry{Name: "x1", Pin: "PA04", Capability: "ghost"})
	err := Validate(def)
	if err == nil || !strings.Contains(err.Error(), `unknown capability "ghost"`) {
		t.Fatalf("want unknown-capability error, got %v", err)
	}

	def = base()
	def.Features = []string{"dma"}
	err = Validate(def)
	if err == nil || !strings.Contains(err.Error(), `capability "usb" is not enabled`) {
		t.Fatalf("want disabled-gate error, got %v", err)
	}
}

func TestValidateMalformedPinAndMode(t *testing.T) {
	def := base()
	def.Pins = append(def.Pins,
		PinEntry{Name: "x1", Pin: "A23"},
		PinEntry{Name: "x2", Pin: "PA04", Mode: "wiggle"},
	)
	err := Validate(def)
	if err == nil {
		t.Fatal("want errors")
	}
	if !strings.Contains(err.Error(), `malformed pin name "A23"`) {
		t.Fatalf("want malformed-pin error, got %v", err)
	}
	if !strings.Contains(err.Error(), `unknown pin mode "wiggle"`) {
		t.Fatalf("want unknown-mode error, got %v", err)
	}
}

func TestValidatePeriph(t *testing.T) {
	def := base()
	def.Periphs = append(def.Periphs, PeriphEntry{Name: "spare_uart", Periph: "UART7", Type: "*machine.UART"})
	err := Validate(def)
	// UART7 exceeds the 48-pin fit's SERCOM budget.
	if err == nil || !strings.Contains(err.Error(), "peripheral UART7 does not exist on ATSAMD51G19A") {
		t.Fatalf("want missing-peripheral error, got %v", err)
	}

	def = base()
	def.Periphs[0].Type = ""
	err = Validate(def)
	if err == nil || !strings.Contains(err.Error(), "need a handle type") {
		t.Fatalf("want missing-type error, got %v", err)
	}
}
