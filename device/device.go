// Package device defines the capability surface the Execution Ordering
// Engine drives (spec.md §4.7, §6): the boundary between interpretation
// and physical machine control. The physical driver behind this
// interface is explicitly out of scope (spec.md §1); this package only
// specifies the contract.
package device

// Mode identifies a mode-setter target for Sink.Mode.
type Mode int

const (
	ModeUnits Mode = iota
	ModePlane
	ModePath
	ModeRate
)

// Units is the value set by Sink.Mode(ModeUnits, ...).
type Units int

const (
	UnitsMM Units = iota
	UnitsInches
)

// PlaneSel is the value set by Sink.Mode(ModePlane, ...).
type PlaneSel int

const (
	PlaneXY PlaneSel = iota
	PlaneXZ
	PlaneYZ
)

// PathMode is the value set by Sink.Mode(ModePath, ...).
type PathMode int

const (
	PathExact PathMode = iota
	PathStop
	PathContinuous
)

// RateMode is the value set by Sink.Mode(ModeRate, ...).
type RateMode int

const (
	RateUPM RateMode = iota // units per minute
	RateCPM                 // inverse time ("cycles" per minute)
)

// Conf identifies a numeric configuration target for Sink.Conf.
type Conf int

const (
	ConfRate Conf = iota
	ConfSpeed
)

// HomeIndex selects which stored home position Sink.Home returns to.
type HomeIndex int

const (
	HomeG28 HomeIndex = iota
	HomeG30
)

// SpindleCmd identifies a spindle action for Sink.Spindle.
type SpindleCmd int

const (
	SpindleStop SpindleCmd = iota
	SpindleCW
	SpindleCCW
	SpindleOrient
)

// ToolCmd identifies a tool action for Sink.Tool.
type ToolCmd int

const (
	ToolSelect ToolCmd = iota
	ToolChange
	ToolComp
)

// CutterPos identifies a cutter-compensation side for Sink.Cutter.
type CutterPos int

const (
	CutterCenter CutterPos = iota
	CutterLeft
	CutterRight
)

// Opt is a bitmask of boolean device options for Sink.Opt.
type Opt int

const (
	OptRelative Opt = 1 << iota
	OptOverrideFeed
	OptOverrideSpeed
	OptRetractBack
	OptFeedSync
)

// Coolant is a bitmask of coolant channels for Sink.Coolant.
type Coolant int

const (
	CoolantFlood Coolant = 1 << iota
	CoolantMist
	CoolantThroughTool
)

// Vec6 is an X,Y,Z,A,B,C vector, in the order state.AxisX..state.AxisC.
type Vec6 = [6]float64

// Sink is the capability surface the engine drives (spec.md §6). Every
// operation returns ok or a failure the engine propagates verbatim,
// terminating execution of the current block at the phase where it
// occurred (spec.md §7).
//
// Implementations are never driven concurrently with themselves: the
// engine issues calls to exactly one Sink strictly sequentially, one
// block's phases run to completion (or first failure) before the next
// phase begins, and no block begins before the prior block's calls have
// all returned (spec.md §5).
type Sink interface {
	// Mode and Conf: §4.3.3/§4.3.5 representation and machining attributes.
	Mode(target Mode, value int) error
	Conf(target Conf, value float64) error
	Offset(vec Vec6) error

	// Free-space motion: §4.3.4.
	Move(absolute bool, end Vec6) error
	Home(index HomeIndex) error

	// Machining functions: §4.3.6.
	Line(absolute bool, end Vec6) error
	CArc(end Vec6, centerOffsets [3]float64, cw bool) error
	RArc(end Vec6, radius float64, cw bool) error
	Dwell(seconds float64) error
	Probe(end Vec6) error
	Stop(optional bool) error

	// Spindle: §4.3.7.
	Spindle(cmd SpindleCmd, arg float64) error

	// Tool: §4.3.8. slot == -1 means "disable compensation".
	Tool(cmd ToolCmd, slot int) error

	// Cutter radius compensation: §4.3.11. slot == -1 means "off".
	Cutter(pos CutterPos, slot int) error

	// Comments: §4.3.9.
	Comment(text string) error
	Message(text string) error

	// Flags: §4.3.9.
	Opt(mask Opt, on bool) error
	Coolant(mask Coolant, on bool) error

	// Program: §4.3.10.
	Reset() error
	PalletShuttle() error
}
