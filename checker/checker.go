// Package checker implements the Block Checker (spec.md §4.5): per-code
// validation rules, cross-group conflict detection, and useless-word
// warnings. It is read-only with respect to state.State.
package checker

import (
	"math"

	"github.com/ikle/enigma/block"
	"github.com/ikle/enigma/code"
	"github.com/ikle/enigma/diag"
	"github.com/ikle/enigma/state"
)

// rule validates one active code against a block and the prior modal
// state. It may append warnings to w and must return a fatal
// *diag.Diagnostic (nil on success).
type rule func(b *block.Block, s *state.State, w *[]*diag.Diagnostic) *diag.Diagnostic

// rules is the code -> rule dispatch table (spec.md §4.5 "Algorithm":
// "For each non-empty b.g[group], dispatch to that code's rule").
// Table-driven per DESIGN NOTES §9: encode each code's rule as data so
// the dispatch stays exhaustive and auditable against the standard.
var rules = map[code.Code]rule{
	code.G00: checkMotion("G0"),
	code.G01: checkG01,
	code.G02: checkArc("G2"),
	code.G03: checkArc("G3"),
	code.G04: checkDelay("G4"),
	code.G10: checkG10,
	code.G17: noPrecondition,
	code.G18: noPrecondition,
	code.G19: noPrecondition,
	code.G20: noPrecondition,
	code.G21: noPrecondition,
	code.G28: checkNoMotion("G28"),
	code.G30: checkNoMotion("G30"),
	code.G38_2: checkG38_2,
	code.G40:   noPrecondition,
	code.G41:   checkComp("Tool number for cutter radius compensation on left"),
	code.G42:   checkComp("Tool number for cutter radius compensation on right"),
	code.G43:   checkG43,
	code.G49:   noPrecondition,
	code.G53:   checkG53,
	code.G54:   checkCoordSelect("G54"),
	code.G55:   checkCoordSelect("G55"),
	code.G56:   checkCoordSelect("G56"),
	code.G57:   checkCoordSelect("G57"),
	code.G58:   checkCoordSelect("G58"),
	code.G59:   checkCoordSelect("G59"),
	code.G59_1: checkCoordSelect("G59.1"),
	code.G59_2: checkCoordSelect("G59.2"),
	code.G59_3: checkCoordSelect("G59.3"),
	code.G61:   noPrecondition,
	code.G61_1: noPrecondition,
	code.G64:   noPrecondition,
	code.G80:   checkG80,
	code.G81:   checkCanned("G81"),
	code.G82:   checkCannedWithDelay("G82"),
	code.G83:   checkCanned("G83"),
	code.G84:   checkCanned("G84"),
	code.G85:   checkCanned("G85"),
	code.G86:   checkCannedWithDelay("G86"),
	code.G87:   checkCanned("G87"),
	code.G88:   checkCannedWithDelay("G88"),
	code.G89:   checkCannedWithDelay("G89"),
	code.G90:   noPrecondition,
	code.G91:   noPrecondition,
	code.G92:   checkG92,
	code.G92_1: noPrecondition,
	code.G92_2: noPrecondition,
	code.G92_3: noPrecondition,
	code.G93:   noPrecondition,
	code.G94:   noPrecondition,
	code.G98:   noPrecondition,
	code.G99:   noPrecondition,

	code.M00: noPrecondition,
	code.M01: noPrecondition,
	code.M02: noPrecondition,
	code.M30: noPrecondition,
	code.M60: noPrecondition,
	code.M06: noPrecondition,
	code.M03: noPrecondition,
	code.M04: noPrecondition,
	code.M05: noPrecondition,
	code.M07: noPrecondition,
	code.M08: noPrecondition,
	code.M09: noPrecondition,
	code.M48: noPrecondition,
	code.M49: noPrecondition,
}

// Check validates b against the modal state s. It returns the first
// fatal diagnostic encountered (nil if the block is accepted) and any
// warnings collected along the way, regardless of the final outcome
// (spec.md §4.5 "Outcome"). Check never mutates s.
func Check(b *block.Block, s *state.State) (fatal *diag.Diagnostic, warnings []*diag.Diagnostic) {
	for g := 0; g < code.GroupCount; g++ {
		c := b.G[g]
		if c == code.None {
			continue
		}

		r, ok := rules[c]
		if !ok {
			return diag.Internal(b.Pos, "unknown G/M-code reaching dispatch (code %d)", c), warnings
		}

		if err := r(b, s, &warnings); err != nil {
			return err, warnings
		}
	}

	return nil, warnings
}

func noPrecondition(_ *block.Block, _ *state.State, _ *[]*diag.Diagnostic) *diag.Diagnostic {
	return nil
}

// isInt reports whether x lies within the NGC integer tolerance of the
// nearest signed integer (spec.md §4.5 "Integer predicate").
const intTolerance = 0.0001

func isInt(x float64) bool {
	return math.Abs(x-math.Round(x)) < intTolerance
}

func checkMotion(cmd string) rule {
	return func(b *block.Block, _ *state.State, w *[]*diag.Diagnostic) *diag.Diagnostic {
		if !b.HasAny(code.Axis) {
			*w = append(*w, diag.Warnf(b.Pos, "No axis word for %s", cmd))
		}
		return nil
	}
}

func checkFeed(b *block.Block, s *state.State, cmd string) *diag.Diagnostic {
	if s.InverseTime() && !b.Has(code.F) {
		return diag.Errorf(b.Pos, diag.KindPrecond,
			"No F word in inverse time feed rate mode for %s", cmd)
	}
	return nil
}

func checkG01(b *block.Block, s *state.State, w *[]*diag.Diagnostic) *diag.Diagnostic {
	if err := checkFeed(b, s, "G1"); err != nil {
		return err
	}
	return checkMotion("G1")(b, s, w)
}

func checkArc(cmd string) rule {
	return func(b *block.Block, s *state.State, _ *[]*diag.Diagnostic) *diag.Diagnostic {
		if err := checkFeed(b, s, cmd); err != nil {
			return err
		}

		var endWant, centerWant code.Word
		switch s.Plane() {
		case state.PlaneXY:
			endWant, centerWant = code.XY, code.IJ
		case state.PlaneXZ:
			endWant, centerWant = code.XZ, code.IK
		case state.PlaneYZ:
			endWant, centerWant = code.YZ, code.JK
		}

		if !b.HasAny(endWant) {
			return diag.Errorf(b.Pos, diag.KindSyntax,
				"No end point coordinate in active plane for %s", cmd)
		}

		if b.Has(code.R) {
			// Radius form: center-offset consistency and the coincident
			// end-point case are deferred to the device (spec.md §4.5).
			return nil
		}

		if !b.HasAny(centerWant) {
			return diag.Errorf(b.Pos, diag.KindSyntax,
				"No center coordinate in active plane for %s", cmd)
		}

		// Radius deviation is deferred to the device (spec.md §4.5, §4.6).
		return nil
	}
}

func checkDelay(cmd string) rule {
	return func(b *block.Block, _ *state.State, _ *[]*diag.Diagnostic) *diag.Diagnostic {
		if b.WordOf(code.P) < 0 {
			return diag.Errorf(b.Pos, diag.KindSyntax, "Negative period for %s", cmd)
		}
		return nil
	}
}

func checkInt(b *block.Block, letter code.Word, lo, hi float64, name string) *diag.Diagnostic {
	if !b.Has(letter) {
		return diag.Errorf(b.Pos, diag.KindSyntax, "%s required", name)
	}
	v := b.WordOf(letter)
	if !isInt(v) {
		return diag.Errorf(b.Pos, diag.KindSyntax, "%s must be an integer", name)
	}
	if v < lo || v > hi {
		return diag.Errorf(b.Pos, diag.KindSyntax, "%s must be in range from %g to %g", name, lo, hi)
	}
	return nil
}

func checkNoMotion(cmd string) rule {
	return func(b *block.Block, _ *state.State, _ *[]*diag.Diagnostic) *diag.Diagnostic {
		if b.G[code.Group1] != code.None {
			return diag.Errorf(b.Pos, diag.KindModal,
				"%s cannot be used with any motion command", cmd)
		}
		return nil
	}
}

func checkG10(b *block.Block, _ *state.State, _ *[]*diag.Diagnostic) *diag.Diagnostic {
	if err := checkInt(b, code.L, 0, 1000, "Subcommand"); err != nil {
		return err
	}
	if b.G[code.Group1] != code.None {
		return diag.Errorf(b.Pos, diag.KindModal, "G10 cannot be used with any motion command")
	}

	switch l := int(b.WordOf(code.L)); l {
	case 2:
		return checkInt(b, code.P, 1, 9, "Coordinate system number")
	default:
		return diag.Errorf(b.Pos, diag.KindSyntax, "Unknown command G10 L%d", l)
	}
}

func checkG38_2(b *block.Block, s *state.State, _ *[]*diag.Diagnostic) *diag.Diagnostic {
	if !b.HasAny(code.XYZ) {
		return diag.Errorf(b.Pos, diag.KindSyntax, "No X, Y, or Z-axis word for G38.2")
	}
	if s.InverseTime() {
		return diag.Errorf(b.Pos, diag.KindPrecond, "Cannot run G38.2 in inverse time feed rate mode")
	}
	// Minimum movement and rotation conditions deferred to the device.
	return nil
}

func checkComp(name string) rule {
	return func(b *block.Block, s *state.State, _ *[]*diag.Diagnostic) *diag.Diagnostic {
		if s.CutterCompActive() {
			return diag.Errorf(b.Pos, diag.KindPrecond, "The cutter compensation active already")
		}
		if err := checkInt(b, code.D, 0, math.MaxInt64, name); err != nil {
			return err
		}
		if s.Plane() != state.PlaneXY {
			return diag.Errorf(b.Pos, diag.KindPrecond,
				"The XY-plane is not active for cutter compensation")
		}
		// Tool availability is checked at execution time.
		return nil
	}
}

func checkG43(b *block.Block, _ *state.State, _ *[]*diag.Diagnostic) *diag.Diagnostic {
	return checkInt(b, code.H, 0, 1000, "Tool number to get tool offset length")
}

func checkG53(b *block.Block, s *state.State, _ *[]*diag.Diagnostic) *diag.Diagnostic {
	g1 := b.G[code.Group1]
	if g1 != code.G00 && g1 != code.G01 {
		return diag.Errorf(b.Pos, diag.KindModal, "G53 is used without G0 or G1 being active")
	}
	if s.CutterCompActive() {
		return diag.Errorf(b.Pos, diag.KindPrecond,
			"Cannot use absolute coordinates while cutter compensation is active")
	}
	return nil
}

func checkCoordSelect(name string) rule {
	return func(b *block.Block, s *state.State, _ *[]*diag.Diagnostic) *diag.Diagnostic {
		if s.CutterCompActive() {
			return diag.Errorf(b.Pos, diag.KindPrecond,
				"Cannot select coordinate system while cutter compensation is active")
		}
		return nil
	}
}

func checkG80(b *block.Block, _ *state.State, w *[]*diag.Diagnostic) *diag.Diagnostic {
	g0 := b.G[code.Group0]
	axisConsuming := g0 == code.G10 || g0 == code.G28 || g0 == code.G30 || g0 == code.G92

	if !axisConsuming && b.HasAny(code.Axis) {
		*w = append(*w, diag.Warnf(b.Pos, "Useless axis word specified for G80"))
	}
	return nil
}

func checkCanned(cmd string) rule {
	return func(b *block.Block, s *state.State, _ *[]*diag.Diagnostic) *diag.Diagnostic {
		return cannedCheck(b, s, cmd)
	}
}

func checkCannedWithDelay(cmd string) rule {
	return func(b *block.Block, s *state.State, w *[]*diag.Diagnostic) *diag.Diagnostic {
		if err := checkDelay(cmd)(b, s, w); err != nil {
			return err
		}
		return cannedCheck(b, s, cmd)
	}
}

func cannedCheck(b *block.Block, s *state.State, cmd string) *diag.Diagnostic {
	if !b.HasAny(code.XYZ) {
		return diag.Errorf(b.Pos, diag.KindSyntax, "No X, Y, or Z-axis word for %s", cmd)
	}

	if b.Has(code.L) {
		if err := checkInt(b, code.L, 1, math.MaxInt64, "The number of repeats"); err != nil {
			return err
		}
	}

	prevG1 := code.None
	if b.Prev != nil {
		prevG1 = b.Prev.G[code.Group1]
	}
	firstInvocation := b.G[code.Group1] != prevG1

	var perpLetter code.Word
	var perpName string
	switch s.Plane() {
	case state.PlaneXY:
		perpLetter, perpName = code.Z, "Z"
	case state.PlaneXZ:
		perpLetter, perpName = code.Y, "Y"
	case state.PlaneYZ:
		perpLetter, perpName = code.X, "X"
	}

	if !b.Has(perpLetter) && firstInvocation {
		return diag.Errorf(b.Pos, diag.KindSyntax, "No %s word for first %s", perpName, cmd)
	}

	if b.WordOf(code.R) < b.WordOf(perpLetter) {
		return diag.Errorf(b.Pos, diag.KindSyntax,
			"R < %s for canned cycle in active plane for %s", perpName, cmd)
	}

	if s.InverseTime() {
		return diag.Errorf(b.Pos, diag.KindPrecond,
			"Cannot run canned cycle in inverse time feed rate mode for %s", cmd)
	}
	if s.CutterCompActive() {
		return diag.Errorf(b.Pos, diag.KindPrecond,
			"Cannot run canned cycle while cutter compensation is active for %s", cmd)
	}

	// Rotation-axis movement is checked at execution time.
	return nil
}

func checkG92(b *block.Block, _ *state.State, _ *[]*diag.Diagnostic) *diag.Diagnostic {
	if b.G[code.Group1] != code.None {
		return diag.Errorf(b.Pos, diag.KindModal, "G92 cannot be used with any motion command")
	}
	// Per spec.md §4.5 "Motion presence", G92 errors (rather than warns,
	// as G0/G1 do) when no axis word is present.
	if !b.HasAny(code.Axis) {
		return diag.Errorf(b.Pos, diag.KindSyntax, "No axis word for G92")
	}
	return nil
}
