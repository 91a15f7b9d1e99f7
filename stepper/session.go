// Package stepper is an interactive TUI for walking a parsed block list
// through the Execution Ordering Engine one block at a time, watching
// modal state and the device-call trace change as each block runs.
// Grounded on the teacher's debugger package: Session plays the role of
// debugger.Debugger (execution control plus breakpoint management), and
// TUI (tui.go) plays the equivalent tview/tcell role, traded for panes
// over blocks/state/trace instead of registers/memory/disassembly.
package stepper

import (
	"fmt"

	"github.com/ikle/enigma/block"
	"github.com/ikle/enigma/checker"
	"github.com/ikle/enigma/device"
	"github.com/ikle/enigma/diag"
	"github.com/ikle/enigma/engine"
	"github.com/ikle/enigma/state"
)

// Session holds one stepping run over a fixed block list: the modal
// state, the device it drives, the current position, and the
// breakpoints set against it. It is the non-UI half of the package —
// TUI wraps one of these and never touches state/engine/checker
// directly itself.
type Session struct {
	Blocks      []*block.Block
	State       *state.State
	Device      *device.Recorder
	Breakpoints *BreakpointManager

	// Index is the next block to execute; len(Blocks) once the program
	// has run off the end.
	Index int

	// Halted is set once Index reaches len(Blocks) or a block produces
	// a fatal diagnostic.
	Halted bool

	// LastDiag holds the diagnostic from the most recent Step, nil if it
	// succeeded or nothing has run yet.
	LastDiag *diag.Diagnostic

	// LastWarnings holds the checker's warnings for the most recently
	// checked block (cleared on each Step).
	LastWarnings []*diag.Diagnostic
}

// NewSession builds a Session over blocks, starting from a fresh NIST
// default state and a Recorder sink.
func NewSession(blocks []*block.Block) *Session {
	return &Session{
		Blocks:      blocks,
		State:       state.New(),
		Device:      &device.Recorder{},
		Breakpoints: NewBreakpointManager(),
	}
}

// Current returns the block Step would execute next, or nil if the
// program has run off the end.
func (s *Session) Current() *block.Block {
	if s.Index >= len(s.Blocks) {
		return nil
	}
	return s.Blocks[s.Index]
}

// Step checks and executes exactly one block, advancing Index. It
// returns the diagnostic from either phase (nil on success), mirroring
// one call of checker.Check followed by engine.Exec in the teacher's
// check-then-execute pipeline (spec.md §4.4-§4.6).
func (s *Session) Step() *diag.Diagnostic {
	b := s.Current()
	if b == nil {
		s.Halted = true
		return nil
	}

	fatal, warnings := checker.Check(b, s.State)
	s.LastWarnings = warnings
	if fatal != nil {
		s.LastDiag = fatal
		s.Halted = true
		return fatal
	}

	if fatal := engine.Exec(b, s.State, s.Device); fatal != nil {
		s.LastDiag = fatal
		s.Halted = true
		return fatal
	}

	s.LastDiag = nil
	s.Index++
	if s.Index >= len(s.Blocks) {
		s.Halted = true
	}
	return nil
}

// Run steps until the program halts or a breakpoint is reached at the
// block about to execute, whichever comes first.
func (s *Session) Run() *diag.Diagnostic {
	for !s.Halted {
		if s.Breakpoints.At(s.Index) {
			return nil
		}
		if fatal := s.Step(); fatal != nil {
			return fatal
		}
	}
	return nil
}

// Reset rewinds the session to the first block with a fresh state and
// device trace, as if the program were being loaded for the first time.
func (s *Session) Reset() {
	s.Index = 0
	s.Halted = false
	s.LastDiag = nil
	s.State = state.New()
	s.Device = &device.Recorder{}
}

// TraceLines renders the device call trace recorded so far, one call per
// line, for display in the trace pane.
func (s *Session) TraceLines() []string {
	lines := make([]string, len(s.Device.Calls))
	for i, c := range s.Device.Calls {
		lines[i] = fmt.Sprintf("%3d  %-8s %s", i, c.Op, c.Args)
	}
	return lines
}
