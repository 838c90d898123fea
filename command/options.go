// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package command implements the DispatchTable, the Command and
// Subcommand contracts, the transactional dispatch protocol, and the
// family of higher-order stack commands (VectorApply, VectorMap,
// VectorReduce, the Pack/Unpack pair, and the dataset-driven and
// incomplete-object closer commands).
//
// Ivy has no equivalent layer: its commands are parser productions
// acting directly on a value stack, with no keep modifier, no undo,
// and no higher-order subcommand references. This package is grounded
// on ivy's `exec.Context` (a bundle of read-only, process-wide
// dispatch tables passed by reference — `exec/context.go`) for the
// shape of "construct once, share by immutable reference", and on
// the Rust reference implementation's `subcommand.call_or_panic`
// signature for the exact (args, simplifier, mode, errors) calling
// convention a Callable exposes.
package command

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"symcalc/calcerr"
)

// Options is the Command Options record: an optional numerical prefix
// argument and the keep modifier.
type Options struct {
	Argument     *int
	KeepModifier bool
}

// Subcommand is a first-class reference to a Command together with
// its Options, serialized to the small JSON record higher-order
// commands receive as a textual argument.
type Subcommand struct {
	Name    string
	Options Options
}

// Serialize renders s as the JSON record {"name":..., "options":
// {"argument":..., "keep_modifier":...}}, using sjson the way the
// reference pack's JSON-producing commands build their output
// incrementally rather than via struct marshaling.
func (s Subcommand) Serialize() string {
	doc := "{}"
	doc, _ = sjson.Set(doc, "name", s.Name)
	doc, _ = sjson.Set(doc, "options.keep_modifier", s.Options.KeepModifier)
	if s.Options.Argument != nil {
		doc, _ = sjson.Set(doc, "options.argument", *s.Options.Argument)
	}
	return doc
}

// ParseSubcommand parses a textual argument into a Subcommand
// reference, using gjson for tolerant field extraction the way the
// reference pack reads loosely-structured JSON without a full schema.
func ParseSubcommand(text string) (Subcommand, error) {
	if !gjson.Valid(text) {
		return Subcommand{}, calcerr.New(calcerr.Schema, "subcommand reference is not valid JSON: %q", text)
	}
	name := gjson.Get(text, "name").String()
	if name == "" {
		return Subcommand{}, calcerr.New(calcerr.Schema, "subcommand reference missing a name: %q", text)
	}
	opts := Options{KeepModifier: gjson.Get(text, "options.keep_modifier").Bool()}
	if arg := gjson.Get(text, "options.argument"); arg.Exists() {
		v := int(arg.Int())
		opts.Argument = &v
	}
	return Subcommand{Name: name, Options: opts}, nil
}

// Schema validates a command's textual arguments before any mutation
// is attempted, the first step of the transactional dispatch
// protocol.
type Schema interface {
	Validate(args []string) error
}

// NullarySchema accepts no textual arguments.
type NullarySchema struct{}

func (NullarySchema) Validate(args []string) error {
	if len(args) != 0 {
		return calcerr.New(calcerr.Schema, "expected no textual arguments, got %d", len(args))
	}
	return nil
}

// UnaryTextSchema accepts exactly one textual argument, of any
// content (callers that need it parsed, e.g. as a Subcommand
// reference, do so themselves).
type UnaryTextSchema struct{}

func (UnaryTextSchema) Validate(args []string) error {
	if len(args) != 1 {
		return calcerr.New(calcerr.Schema, "expected exactly one textual argument, got %d", len(args))
	}
	return nil
}
