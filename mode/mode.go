// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mode holds the CalculationMode settings bundle consulted by
// simplifier rules: radix, angular mode, index origin, and debug
// flags. It is modeled directly on ivy's config.Config — a small
// struct of settings with getter/setter pairs and a
// zero-value-is-default contract — generalized with the angular mode
// and origin settings that ivy itself has no use for.
package mode

// Angular selects the unit trigonometric evaluation cases interpret
// their arguments in.
type Angular int

const (
	Radians Angular = iota
	Degrees
)

func (a Angular) String() string {
	if a == Degrees {
		return "degrees"
	}
	return "radians"
}

// Mode is the calculator's CalculationMode. The zero value is ready
// to use: base 10 radix, radians, origin 1.
type Mode struct {
	radix   int
	angular Angular
	origin  int
	debug   map[string]bool
}

// New returns a Mode with the documented defaults.
func New() *Mode {
	return &Mode{radix: 10, angular: Radians, origin: 1}
}

// Radix returns the preferred output radix, 2-36.
func (m *Mode) Radix() int {
	if m == nil || m.radix == 0 {
		return 10
	}
	return m.radix
}

// SetRadix sets the preferred output radix; it must be in [2,36].
func (m *Mode) SetRadix(r int) {
	if r < 2 || r > 36 {
		panic("mode: radix out of range [2,36]")
	}
	m.radix = r
}

// Angular returns the angular mode used by trigonometric cases.
func (m *Mode) Angular() Angular {
	if m == nil {
		return Radians
	}
	return m.angular
}

// SetAngular sets the angular mode.
func (m *Mode) SetAngular(a Angular) { m.angular = a }

// Origin returns the index origin (0 or 1) consulted by index-style
// vector operations, grounded on ivy's config.Config.Origin.
func (m *Mode) Origin() int {
	if m == nil || m.origin == 0 {
		return 1
	}
	return m.origin
}

// SetOrigin sets the index origin; it must be 0 or 1.
func (m *Mode) SetOrigin(o int) {
	if o != 0 && o != 1 {
		panic("mode: origin must be 0 or 1")
	}
	m.origin = o
}

// Debug reports whether the named debug flag is set, grounded on
// ivy's config.Config.Debug(string) bool.
func (m *Mode) Debug(name string) bool {
	if m == nil {
		return false
	}
	return m.debug[name]
}

// SetDebug sets or clears the named debug flag.
func (m *Mode) SetDebug(name string, state bool) {
	if m.debug == nil {
		m.debug = make(map[string]bool)
	}
	m.debug[name] = state
}

// Clone returns a deep-enough copy of m suitable for undo snapshots:
// the debug map is copied so mutating one Mode's flags never affects
// the other.
func (m *Mode) Clone() *Mode {
	if m == nil {
		return New()
	}
	c := &Mode{radix: m.radix, angular: m.angular, origin: m.origin}
	if m.debug != nil {
		c.debug = make(map[string]bool, len(m.debug))
		for k, v := range m.debug {
			c.debug[k] = v
		}
	}
	return c
}
