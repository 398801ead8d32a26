// Package feature resolves build-time feature flags into the set of
// capabilities a board package may wire. Everything here runs on the host at
// generation time; the generated board files turn the same rules into build
// tags so violations stay compile errors in the firmware build.
package feature

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	ErrUnknownFlag       = errors.New("unknown feature flag")
	ErrFlagConflict      = errors.New("conflicting feature flags")
	ErrUnknownCapability = errors.New("unknown capability")
	ErrMissingDependency = errors.New("missing capability dependency")
	ErrDependencyCycle   = errors.New("capability dependency cycle")
)

// Flag is a named boolean build-time switch. Flags never change at runtime;
// Resolve computes their closure once per generation.
type Flag struct {
	Name      string
	Default   bool
	Implies   []string // flags force-enabled alongside this one
	Conflicts []string // flags that may not be enabled together with this one
}

// Capability is a derived build-time fact (DMA available, USB available, ...)
// computed from the resolved flag set. A capability whose Requires list is
// unmet is an error, never a silent downgrade.
type Capability struct {
	Name     string
	Flag     string   // flag that requests the capability
	Tag      string   // build-tag suffix the generator gates files on
	Requires []string // capabilities that must also be enabled
}

// Set is a resolved flag set.
type Set struct {
	on map[string]bool
}

// Enabled reports whether the named flag is on.
func (s Set) Enabled(name string) bool { return s.on[name] }

// Names returns the enabled flag names, sorted.
func (s Set) Names() []string { return slices.Sorted(maps.Keys(s.on)) }

// Resolve computes the full flag set: defaults, the requested flags, and the
// implication closure. Unknown or mutually conflicting flags are errors.
func Resolve(flags []Flag, enabled []string) (Set, error) {
	byName := make(map[string]Flag, len(flags))
	for _, f := range flags {
		if _, dup := byName[f.Name]; dup {
			return Set{}, fmt.Errorf("flag %q declared twice", f.Name)
		}
		byName[f.Name] = f
	}

	on := make(map[string]bool)
	for _, f := range flags {
		if f.Default {
			on[f.Name] = true
		}
	}
	for _, name := range enabled {
		if _, ok := byName[name]; !ok {
			return Set{}, fmt.Errorf("%w: %q", ErrUnknownFlag, name)
		}
		on[name] = true
	}

	// Implication closure, to a fixpoint.
	for changed := true; changed; {
		changed = false
		for _, name := range slices.Sorted(maps.Keys(on)) {
			for _, imp := range byName[name].Implies {
				if _, ok := byName[imp]; !ok {
					return Set{}, fmt.Errorf("%w: %q implied by %q", ErrUnknownFlag, imp, name)
				}
				if !on[imp] {
					on[imp] = true
					changed = true
				}
			}
		}
	}

	for _, name := range slices.Sorted(maps.Keys(on)) {
		for _, c := range byName[name].Conflicts {
			if on[c] {
				return Set{}, fmt.Errorf("%w: %q and %q", ErrFlagConflict, name, c)
			}
		}
	}

	return Set{on: on}, nil
}

// Caps is the set of enabled capabilities.
type Caps struct {
	on map[string]Capability
}

// Enabled reports whether the named capability is on.
func (c Caps) Enabled(name string) bool {
	_, ok := c.on[name]
	return ok
}

// Get returns the named enabled capability.
func (c Caps) Get(name string) (Capability, bool) {
	v, ok := c.on[name]
	return v, ok
}

// Names returns the enabled capability names, sorted.
func (c Caps) Names() []string { return slices.Sorted(maps.Keys(c.on)) }

// Compose derives capabilities from a resolved flag set. Dependencies are
// evaluated before their dependents; a requested capability with a
// dependency whose flag is off fails naming the missing dependency.
func Compose(set Set, caps []Capability) (Caps, error) {
	byName := make(map[string]Capability, len(caps))
	for _, c := range caps {
		if _, dup := byName[c.Name]; dup {
			return Caps{}, fmt.Errorf("capability %q declared twice", c.Name)
		}
		byName[c.Name] = c
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(caps))
	enabled := make(map[string]Capability)

	var eval func(c Capability) (bool, error)
	eval = func(c Capability) (bool, error) {
		switch state[c.Name] {
		case visiting:
			return false, fmt.Errorf("%w involving %q", ErrDependencyCycle, c.Name)
		case done:
			_, on := enabled[c.Name]
			return on, nil
		}
		state[c.Name] = visiting

		on := set.Enabled(c.Flag)
		for _, req := range c.Requires {
			rc, ok := byName[req]
			if !ok {
				return false, fmt.Errorf("%w: %q required by %q", ErrUnknownCapability, req, c.Name)
			}
			reqOn, err := eval(rc)
			if err != nil {
				return false, err
			}
			if on && !reqOn {
				return false, fmt.Errorf("%w: %q requires %q (enable the %q feature)",
					ErrMissingDependency, c.Name, req, rc.Flag)
			}
		}

		state[c.Name] = done
		if on {
			enabled[c.Name] = c
		}
		return on, nil
	}

	for _, c := range caps {
		if _, err := eval(c); err != nil {
			return Caps{}, err
		}
	}
	return Caps{on: enabled}, nil
}
