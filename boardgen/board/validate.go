package board

import (
	"errors"
	"fmt"

	"boardcode-go/boardgen/feature"
	"boardcode-go/boardgen/variant"
	"boardcode-go/x/strx"
)

// Caps resolves the board's feature list into its enabled capability set.
func Caps(def *Definition) (feature.Caps, error) {
	set, err := feature.Resolve(feature.Flags(), def.Features)
	if err != nil {
		return feature.Caps{}, err
	}
	return feature.Compose(set, feature.Capabilities())
}

// Validate checks a definition against the chip catalog and the feature
// rules. Every violation is reported; the result joins them all.
func Validate(def *Definition) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if !strx.IsIdent(def.Board) {
		fail("board name %q is not usable as an identifier", def.Board)
	}

	// Variant selection: zero fits and duplicate fits are both definition
	// errors; two fits active in one build is left to the generated guard
	// files.
	variants := make(map[string]variant.Variant, len(def.Variants))
	if len(def.Variants) == 0 {
		fail("board %s: no chip variant selected", def.Board)
	}
	for _, tag := range def.Variants {
		if _, dup := variants[tag]; dup {
			fail("board %s: conflicting chip variants selected: %q listed twice", def.Board, tag)
			continue
		}
		v, ok := variant.ByTag(tag)
		if !ok {
			fail("board %s: unknown chip variant %q", def.Board, tag)
			continue
		}
		variants[tag] = v
	}

	caps, err := Caps(def)
	if err != nil {
		errs = append(errs, err)
	}

	knownCap := make(map[string]bool)
	for _, c := range feature.Capabilities() {
		knownCap[c.Name] = true
	}

	// scope returns the variants an entry is emitted for.
	scope := func(name string, restrict []string) []variant.Variant {
		if len(restrict) == 0 {
			out := make([]variant.Variant, 0, len(def.Variants))
			for _, tag := range def.Variants {
				if v, ok := variants[tag]; ok {
					out = append(out, v)
				}
			}
			return out
		}
		var out []variant.Variant
		for _, tag := range restrict {
			v, ok := variants[tag]
			if !ok {
				fail("alias %q: variant %q is not one of the board's fits", name, tag)
				continue
			}
			out = append(out, v)
		}
		return out
	}

	checkGate := func(name, gate string) {
		if gate == "" {
			return
		}
		if !knownCap[gate] {
			fail("alias %q: unknown capability %q", name, gate)
			return
		}
		if !caps.Enabled(gate) {
			fail("alias %q: capability %q is not enabled for board %s", name, gate, def.Board)
		}
	}

	seen := make(map[string]string) // generated name -> table name
	checkName := func(name string) {
		if !strx.IsIdent(name) {
			fail("alias %q is not usable as an identifier", name)
			return
		}
		gen := strx.ConstName(name)
		if prev, dup := seen[gen]; dup {
			fail("duplicate alias name %q (collides with %q)", name, prev)
			return
		}
		seen[gen] = name
	}

	// A pad may carry several aliases (LED/D13), but they must agree on the
	// mode; one raw and one moded view of the same pin is a wiring mistake.
	type pinUse struct {
		name string
		mode Mode
	}
	byPin := make(map[string]pinUse)

	for _, e := range def.Pins {
		checkName(e.Name)
		checkGate(e.Name, e.Capability)
		if !e.Mode.Valid() {
			fail("alias %q: unknown pin mode %q", e.Name, e.Mode)
		}
		if prev, ok := byPin[e.Pin]; ok {
			if prev.mode != e.Mode {
				fail("alias %q: pin %s mode conflicts with alias %q", e.Name, e.Pin, prev.name)
			}
		} else {
			byPin[e.Pin] = pinUse{name: e.Name, mode: e.Mode}
		}
		if _, _, ok := variant.ParsePin(e.Pin); !ok {
			fail("alias %q: malformed pin name %q", e.Name, e.Pin)
			continue
		}
		for _, v := range scope(e.Name, e.Variants) {
			if !v.HasPin(e.Pin) {
				fail("alias %q: pin %s does not exist on %s", e.Name, e.Pin, v.Part)
			}
		}
	}

	for _, e := range def.Periphs {
		checkName(e.Name)
		checkGate(e.Name, e.Capability)
		if e.Type == "" {
			fail("alias %q: peripheral entries need a handle type", e.Name)
		}
		for _, v := range scope(e.Name, e.Variants) {
			if !v.HasPeriph(e.Periph) {
				fail("alias %q: peripheral %s does not exist on %s", e.Name, e.Periph, v.Part)
			}
		}
	}

	return errors.Join(errs...)
}
