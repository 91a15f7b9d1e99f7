package engine

import (
	"errors"
	"testing"

	"github.com/ikle/enigma/block"
	"github.com/ikle/enigma/code"
	"github.com/ikle/enigma/device"
	"github.com/ikle/enigma/state"
)

var errFake = errors.New("boom")

func callOps(r *device.Recorder) []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

func containsInOrder(ops []string, want ...string) bool {
	i := 0
	for _, op := range ops {
		if i < len(want) && op == want[i] {
			i++
		}
	}
	return i == len(want)
}

// Scenario 6 (spec.md §8): G20 G90 G0 X1 F50 S200 M3 M8 on a fresh state.
func TestWorkedExampleTrace(t *testing.T) {
	s := state.New()
	r := &device.Recorder{}

	b := block.New(block.Position{Line: 1}).
		Code(code.G20).
		Code(code.G90).
		Code(code.G00).
		Set(code.X, 1).
		Set(code.F, 50).
		Set(code.S, 200).
		Code(code.M03).
		Code(code.M08).
		Build()

	if fatal := Exec(b, s, r); fatal != nil {
		t.Fatalf("unexpected failure: %v", fatal)
	}

	// Call order follows the canonical 21-phase sequence (spec.md §4.6),
	// not the prose order spec.md §8 lists its worked example in: F/S
	// (phases 3-4) and spindle/coolant (phases 7-8) all precede units
	// (phase 12), which precedes distance mode (phase 17) and motion
	// (phase 20).
	ops := callOps(r)
	want := []string{"conf", "conf", "spindle", "coolant", "mode", "opt", "move"}
	if !containsInOrder(ops, want...) {
		t.Fatalf("expected ops to contain %v in order, got %v", want, ops)
	}

	var moveCall *device.Call
	for i := range r.Calls {
		if r.Calls[i].Op == "move" {
			moveCall = &r.Calls[i]
		}
	}
	if moveCall == nil {
		t.Fatalf("no move call recorded")
	}
	if moveCall.Args != "abs=false,[1 0 0 0 0 0]" {
		t.Fatalf("unexpected move args: %q", moveCall.Args)
	}
}

func TestG92SetsOffsetToMakeCurrentPositionTheAxisWords(t *testing.T) {
	s := state.New()
	r := &device.Recorder{}

	// First move the tool to X10 Y5 so there is a non-zero prior position.
	first := block.New(block.Position{Line: 1}).
		Code(code.G00).
		Set(code.X, 10).
		Set(code.Y, 5).
		Build()
	if fatal := Exec(first, s, r); fatal != nil {
		t.Fatalf("unexpected failure: %v", fatal)
	}

	r.ClearTrace()

	// G92 X0 Y0: the current position becomes the new programmed origin,
	// so the offset must absorb exactly the prior position.
	second := block.New(block.Position{Line: 2}).
		Code(code.G92).
		Set(code.X, 0).
		Set(code.Y, 0).
		Prev(first).
		Build()
	if fatal := Exec(second, s, r); fatal != nil {
		t.Fatalf("unexpected failure: %v", fatal)
	}

	if !s.OffsetOn() {
		t.Fatalf("expected G92 offset to be engaged")
	}
	// offset accumulates (prior position - new axis word): prior was
	// (10, 5), the new G92 words are (0, 0), so the offset absorbs the
	// difference the device applies to keep the physical position fixed.
	if got := s.GetParam(state.OffsetSlot(0)); got != 10 {
		t.Fatalf("expected X offset 10, got %v", got)
	}
	if got := s.GetParam(state.OffsetSlot(1)); got != 5 {
		t.Fatalf("expected Y offset 5, got %v", got)
	}
}

func TestG92_1ClearsOffsetAndDisables(t *testing.T) {
	s := state.New()
	r := &device.Recorder{}

	shift := block.New(block.Position{Line: 1}).Code(code.G92).Set(code.X, 3).Build()
	if fatal := Exec(shift, s, r); fatal != nil {
		t.Fatalf("unexpected failure: %v", fatal)
	}
	if !s.OffsetOn() {
		t.Fatalf("expected offset engaged after G92")
	}

	cancel := block.New(block.Position{Line: 2}).Code(code.G92_1).Prev(shift).Build()
	if fatal := Exec(cancel, s, r); fatal != nil {
		t.Fatalf("unexpected failure: %v", fatal)
	}

	if s.OffsetOn() {
		t.Fatalf("expected G92.1 to disable the offset")
	}
	if got := s.GetParam(state.OffsetSlot(0)); got != 0 {
		t.Fatalf("expected G92.1 to zero the offset, got %v", got)
	}
}

func TestG53UsesMachineCoordinatesForThisBlockOnly(t *testing.T) {
	s := state.New()
	r := &device.Recorder{}

	b := block.New(block.Position{}).
		Code(code.G53).
		Code(code.G01).
		Set(code.X, 1).
		Build()

	if fatal := Exec(b, s, r); fatal != nil {
		t.Fatalf("unexpected failure: %v", fatal)
	}

	var lineCall *device.Call
	for i := range r.Calls {
		if r.Calls[i].Op == "line" {
			lineCall = &r.Calls[i]
		}
	}
	if lineCall == nil {
		t.Fatalf("no line call recorded")
	}
	if lineCall.Args != "abs=true,[1 0 0 0 0 0]" {
		t.Fatalf("expected G53 line call to use machine coordinates, got %q", lineCall.Args)
	}
}

func TestGroup1ModalPersistence(t *testing.T) {
	s := state.New()
	r := &device.Recorder{}

	first := block.New(block.Position{Line: 1}).Code(code.G01).Set(code.X, 1).Build()
	if fatal := Exec(first, s, r); fatal != nil {
		t.Fatalf("unexpected failure: %v", fatal)
	}

	r.ClearTrace()

	// No group-1 code in this block: G1 (linear) should still apply.
	second := block.New(block.Position{Line: 2}).Set(code.X, 2).Prev(first).Build()
	if fatal := Exec(second, s, r); fatal != nil {
		t.Fatalf("unexpected failure: %v", fatal)
	}

	if len(r.Calls) != 1 || r.Calls[0].Op != "line" {
		t.Fatalf("expected inherited G1 to produce a line call, got %v", r.Calls)
	}
}

func TestCoordinateSystemSelectionRecomputesOffset(t *testing.T) {
	s := state.New()
	r := &device.Recorder{}

	s.SetParam(state.CSSlot(2, 0), 100) // CS2 X origin

	b := block.New(block.Position{}).Code(code.G55).Build()
	if fatal := Exec(b, s, r); fatal != nil {
		t.Fatalf("unexpected failure: %v", fatal)
	}

	if len(r.Calls) != 1 || r.Calls[0].Op != "offset" {
		t.Fatalf("expected a single offset call, got %v", r.Calls)
	}
	if s.GetParam(state.CS) != 2 {
		t.Fatalf("expected CS=2 after G55, got %v", s.GetParam(state.CS))
	}
}

func TestM30ResetsStateButM2OnlyDropsPrev(t *testing.T) {
	s := state.New()
	r := &device.Recorder{}

	s.SetParam(state.ToolX, 12.5)

	m2 := block.New(block.Position{}).Code(code.M02).Build()
	if fatal := Exec(m2, s, r); fatal != nil {
		t.Fatalf("unexpected failure: %v", fatal)
	}
	if s.HasPrev {
		t.Fatalf("expected M2 to clear HasPrev")
	}
	if got := s.GetParam(state.ToolX); got != 12.5 {
		t.Fatalf("M2 must not touch numbered parameters, got %v", got)
	}

	m30 := block.New(block.Position{}).Code(code.M30).Build()
	if fatal := Exec(m30, s, r); fatal != nil {
		t.Fatalf("unexpected failure: %v", fatal)
	}
	if s.Active[code.Group2] != code.G17 {
		t.Fatalf("expected M30 to restore NIST modal defaults")
	}
}

func TestArcRadiusFormCallsRArc(t *testing.T) {
	s := state.New()
	r := &device.Recorder{}

	b := block.New(block.Position{}).
		Code(code.G02).
		Set(code.X, 5).
		Set(code.R, 3).
		Build()

	if fatal := Exec(b, s, r); fatal != nil {
		t.Fatalf("unexpected failure: %v", fatal)
	}
	if len(r.Calls) != 1 || r.Calls[0].Op != "rarc" {
		t.Fatalf("expected a single rarc call, got %v", r.Calls)
	}
}

func TestArcCenterFormCallsCArc(t *testing.T) {
	s := state.New()
	r := &device.Recorder{}

	b := block.New(block.Position{}).
		Code(code.G03).
		Set(code.X, 5).
		Set(code.I, 1).
		Set(code.J, 1).
		Build()

	if fatal := Exec(b, s, r); fatal != nil {
		t.Fatalf("unexpected failure: %v", fatal)
	}
	if len(r.Calls) != 1 || r.Calls[0].Op != "carc" {
		t.Fatalf("expected a single carc call, got %v", r.Calls)
	}
}

func TestToolSelectAndChangeAreIndependent(t *testing.T) {
	s := state.New()
	r := &device.Recorder{}

	b := block.New(block.Position{}).
		Set(code.T, 4).
		Code(code.M06).
		Build()

	if fatal := Exec(b, s, r); fatal != nil {
		t.Fatalf("unexpected failure: %v", fatal)
	}
	if len(r.Calls) != 2 || r.Calls[0].Op != "tool" || r.Calls[1].Op != "tool" {
		t.Fatalf("expected two tool calls (select, change), got %v", r.Calls)
	}
}

func TestDeviceFailurePropagatesAsDiagnostic(t *testing.T) {
	s := state.New()
	r := &device.Recorder{Fail: errFake, FailOp: "move"}

	b := block.New(block.Position{}).Code(code.G00).Set(code.X, 1).Build()

	fatal := Exec(b, s, r)
	if fatal == nil {
		t.Fatalf("expected device failure to surface as a diagnostic")
	}
}
