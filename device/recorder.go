package device

import "fmt"

// Call is one recorded device invocation: the name of the Sink operation
// ("mode", "move", ...) and a human-readable rendering of its arguments. Recorder keeps these
// in issue order, which is exactly the trace spec.md §8's "phase-order
// property" asserts is a subsequence of the 21-phase canonical order.
type Call struct {
	Op   string
	Args string
}

func (c Call) String() string {
	return fmt.Sprintf("%s(%s)", c.Op, c.Args)
}

// Recorder is a reference Sink that records every call instead of
// driving real hardware. It stands in for "the physical device driver
// behind the sink interface", which spec.md places out of scope: tests,
// the stepper, and the monitor all drive the engine against a Recorder.
type Recorder struct {
	Calls []Call

	// Fail, if set, is returned by the next matching operation (whose
	// call is still recorded, like any other) and then cleared, so tests can exercise
	// the engine's device-error propagation (spec.md §7).
	Fail   error
	FailOp string
}

// ClearTrace clears the recorded trace, keeping any pending Fail
// injection. It is separate from Reset, the Sink program-reset call,
// which is recorded like every other operation.
func (r *Recorder) ClearTrace() {
	r.Calls = r.Calls[:0]
}

func (r *Recorder) record(op, args string) error {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
	if r.Fail != nil && (r.FailOp == "" || r.FailOp == op) {
		err := r.Fail
		r.Fail = nil
		return err
	}
	return nil
}

func (r *Recorder) Mode(target Mode, value int) error {
	return r.record("mode", fmt.Sprintf("%d,%d", target, value))
}

func (r *Recorder) Conf(target Conf, value float64) error {
	return r.record("conf", fmt.Sprintf("%d,%g", target, value))
}

func (r *Recorder) Offset(vec Vec6) error {
	return r.record("offset", fmt.Sprintf("%v", vec))
}

func (r *Recorder) Move(absolute bool, end Vec6) error {
	return r.record("move", fmt.Sprintf("abs=%v,%v", absolute, end))
}

func (r *Recorder) Home(index HomeIndex) error {
	return r.record("home", fmt.Sprintf("%d", index))
}

func (r *Recorder) Line(absolute bool, end Vec6) error {
	return r.record("line", fmt.Sprintf("abs=%v,%v", absolute, end))
}

func (r *Recorder) CArc(end Vec6, centerOffsets [3]float64, cw bool) error {
	return r.record("carc", fmt.Sprintf("end=%v,offs=%v,cw=%v", end, centerOffsets, cw))
}

func (r *Recorder) RArc(end Vec6, radius float64, cw bool) error {
	return r.record("rarc", fmt.Sprintf("end=%v,r=%g,cw=%v", end, radius, cw))
}

func (r *Recorder) Dwell(seconds float64) error {
	return r.record("dwell", fmt.Sprintf("%g", seconds))
}

func (r *Recorder) Probe(end Vec6) error {
	return r.record("probe", fmt.Sprintf("%v", end))
}

func (r *Recorder) Stop(optional bool) error {
	return r.record("stop", fmt.Sprintf("optional=%v", optional))
}

func (r *Recorder) Spindle(cmd SpindleCmd, arg float64) error {
	return r.record("spindle", fmt.Sprintf("%d,%g", cmd, arg))
}

func (r *Recorder) Tool(cmd ToolCmd, slot int) error {
	return r.record("tool", fmt.Sprintf("%d,%d", cmd, slot))
}

func (r *Recorder) Cutter(pos CutterPos, slot int) error {
	return r.record("cutter", fmt.Sprintf("%d,%d", pos, slot))
}

func (r *Recorder) Comment(text string) error {
	return r.record("comment", text)
}

func (r *Recorder) Message(text string) error {
	return r.record("message", text)
}

func (r *Recorder) Opt(mask Opt, on bool) error {
	return r.record("opt", fmt.Sprintf("%d,%v", mask, on))
}

func (r *Recorder) Coolant(mask Coolant, on bool) error {
	return r.record("coolant", fmt.Sprintf("%d,%v", mask, on))
}

func (r *Recorder) Reset() error {
	return r.record("reset", "")
}

func (r *Recorder) PalletShuttle() error {
	return r.record("pallet_shuttle", "")
}

var _ Sink = (*Recorder)(nil)
