// Package diag implements the checker and engine's diagnostic contract
// (spec.md §4.4, §7): severities, a single formatted message type, and
// the abort-vs-continue policy each severity carries.
package diag

import (
	"fmt"

	"github.com/ikle/enigma/block"
)

// Severity distinguishes a fatal rule violation from an advisory note.
type Severity int

const (
	// Error is fatal to the block: the checker rejects the block and
	// the engine never runs it.
	Error Severity = iota
	// Warning is advisory: the block is still accepted.
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Kind categorizes a Diagnostic, following spec.md §7's taxonomy.
type Kind int

const (
	KindSyntax   Kind = iota // missing/malformed word, out of range
	KindModal                // incompatible active codes in one block
	KindPrecond              // operation illegal in current modal state
	KindInternal             // unrecognized code reaching dispatch
	KindRedundant            // warning: semantically useless input
	KindDevice               // failure reported by the device sink
)

// Diagnostic is the single error/warning type produced by the checker
// and the engine. It carries enough context (severity, kind, message,
// source position) to be rendered by a host without the core needing to
// know anything about output formatting (spec.md §1: diagnostic
// formatting and sinks are an external collaborator — Diagnostic is the
// data contract handed to one, not the formatter itself).
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Message  string
	Pos      block.Position
	Wrapped  error
}

// Error implements the error interface so a Diagnostic can be returned
// and compared with errors.As/errors.Is like any other Go error.
func (d *Diagnostic) Error() string {
	loc := ""
	if d.Pos.Filename != "" {
		loc = fmt.Sprintf("%s:%d: ", d.Pos.Filename, d.Pos.Line)
	} else if d.Pos.Line > 0 {
		loc = fmt.Sprintf("line %d: ", d.Pos.Line)
	}

	if d.Wrapped != nil {
		return fmt.Sprintf("%s%s: %s: %v", loc, d.Severity, d.Message, d.Wrapped)
	}
	return fmt.Sprintf("%s%s: %s", loc, d.Severity, d.Message)
}

// Unwrap supports errors.Is/As against a wrapped device error.
func (d *Diagnostic) Unwrap() error {
	return d.Wrapped
}

// Errorf builds a fatal Diagnostic of the given kind at pos.
func Errorf(pos block.Position, kind Kind, format string, args ...any) *Diagnostic {
	return &Diagnostic{Severity: Error, Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// Warnf builds an advisory Diagnostic of kind KindRedundant at pos.
func Warnf(pos block.Position, format string, args ...any) *Diagnostic {
	return &Diagnostic{Severity: Warning, Kind: KindRedundant, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// Wrap turns a device-reported failure into a fatal KindDevice
// Diagnostic, preserving err for errors.Is/As via Unwrap.
func Wrap(pos block.Position, err error) *Diagnostic {
	if err == nil {
		return nil
	}
	return &Diagnostic{Severity: Error, Kind: KindDevice, Message: "device call failed", Pos: pos, Wrapped: err}
}

// Internal builds a fatal KindInternal Diagnostic: dispatch reached a
// code the taxonomy does not recognize, which is a bug indicator rather
// than a malformed program.
func Internal(pos block.Position, format string, args ...any) *Diagnostic {
	return &Diagnostic{Severity: Error, Kind: KindInternal, Message: fmt.Sprintf(format, args...), Pos: pos}
}
