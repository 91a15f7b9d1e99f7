// Package engine implements the Execution Ordering Engine (spec.md §4.6,
// §5): the fixed 21-phase sequence that turns one checked Block into
// calls against a device.Sink, mutating state.State as it goes.
//
// Each phase is independent of block order within the RS274/NGC standard
// itself; the engine supplies the order. A phase that has nothing to do
// for this block (its modal group, or the relevant word, is absent)
// leaves state and the sink untouched and moves on.
package engine

import (
	"github.com/ikle/enigma/block"
	"github.com/ikle/enigma/code"
	"github.com/ikle/enigma/device"
	"github.com/ikle/enigma/diag"
	"github.com/ikle/enigma/state"
)

// phase is one step of the canonical execution order. It returns a fatal
// diagnostic if the device sink failed or the block's resolved state is
// internally inconsistent; nil means "this phase is a no-op for this
// block, or it completed".
type phase func(b *block.Block, s *state.State, dev device.Sink) *diag.Diagnostic

// phases lists the canonical order from spec.md §5, table-driven so the
// sequence stays auditable against the standard (the phase numbers in
// each comment match the standard's own numbering, not slice indices).
var phases = []phase{
	execComment,              // 1
	execFeedRateMode,         // 2
	execFeedRate,             // 3
	execSpindleSpeed,         // 4
	execChangeTool,           // 5, 6
	execSpindle,              // 7
	execCoolant,              // 8
	execOverrides,            // 9
	execDwell,                // 10
	execActivePlane,          // 11
	execUnits,                // 12
	execCutterRadiusComp,     // 13
	execCutterLengthComp,     // 14
	execSelectCoordSystem,    // 15
	execPathMode,             // 16
	execDistanceMode,         // 17
	execRetractMode,          // 18
	execOffsets,              // 19
	execMotion,               // 20
	execStop,                 // 21
}

// Exec runs every phase against b in canonical order, mutating s and
// issuing calls to dev. It stops at the first phase that returns a fatal
// diagnostic (spec.md §7: the engine never partially executes a phase
// and continues past its failure). On success, s.Axis and s.HasPrev are
// advanced so the next block in the program sees this one as its
// predecessor.
func Exec(b *block.Block, s *state.State, dev device.Sink) *diag.Diagnostic {
	for _, p := range phases {
		if err := p(b, s, dev); err != nil {
			return err
		}
	}

	// Group-1 (and every other group's) modal persistence: a group this
	// block left unset keeps whatever code was active before it, so
	// s.Active only advances for the groups this block actually named.
	for g := 0; g < code.GroupCount; g++ {
		if b.G[g] != code.None {
			s.Active[g] = b.G[g]
		}
	}

	// M2 and M30 already gave s.Axis/s.HasPrev their post-lifecycle
	// values (EndProgram/Reset); don't clobber those with this block's
	// own position.
	switch b.G[code.GroupM4] {
	case code.M02, code.M30:
	default:
		s.Axis = b.Axis
		s.HasPrev = true
	}

	return nil
}

// prevAxis returns the axis vector the incremental/absolute resolution
// in phase 19 treats as "where the tool already is": the last executed
// block's resolved position, or the zero vector for the first block of
// a program (spec.md §4.6).
func prevAxis(s *state.State) [6]float64 {
	if !s.HasPrev {
		return [6]float64{}
	}
	return s.Axis
}
