package device

import (
	"errors"
	"testing"
)

func TestRecorderRecordsCallsInOrder(t *testing.T) {
	r := &Recorder{}

	_ = r.Mode(ModeUnits, int(UnitsInches))
	_ = r.Conf(ConfRate, 50)
	_ = r.Move(false, Vec6{1, 0, 0, 0, 0, 0})

	if len(r.Calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(r.Calls))
	}
	if r.Calls[0].Op != "mode" || r.Calls[1].Op != "conf" || r.Calls[2].Op != "move" {
		t.Fatalf("unexpected call order: %v", r.Calls)
	}
}

func TestRecorderFailInjection(t *testing.T) {
	r := &Recorder{Fail: errors.New("boom"), FailOp: "dwell"}

	if err := r.Mode(ModeUnits, 0); err != nil {
		t.Fatalf("unrelated op must not fail: %v", err)
	}
	if err := r.Dwell(1.5); err == nil {
		t.Fatalf("expected injected failure on dwell")
	}
	if err := r.Dwell(1.5); err != nil {
		t.Fatalf("failure injection must be one-shot, got %v", err)
	}
}

func TestRecorderClearTrace(t *testing.T) {
	r := &Recorder{}
	_ = r.Comment("x")
	r.ClearTrace()

	if len(r.Calls) != 0 {
		t.Fatalf("ClearTrace did not clear calls: %v", r.Calls)
	}
}
