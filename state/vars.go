package state

// Var identifies one numbered-parameter slot. Slot numbers match NIST
// IR 6556 plus the documented EMC2 extensions and are part of the
// external contract (spec.md §6): a host inspecting State.Var must see
// the same numbering a real NGC controller would report.
type Var int

// Probe result (G38.2), slots 5061-5070.
const (
	ProbeX Var = 5061 + iota
	ProbeY
	ProbeZ
	ProbeA
	ProbeB
	ProbeC
)

// ProbeOK reports whether the last probe move made contact (EMC2).
const ProbeOK Var = 5070

// Home position recorded by G28, slots 5161-5169.
const (
	HomeX Var = 5161 + iota
	HomeY
	HomeZ
	HomeA
	HomeB
	HomeC
)

// Secondary home position recorded by G30, slots 5181-5189.
const (
	WorkX Var = 5181 + iota
	WorkY
	WorkZ
	WorkA
	WorkB
	WorkC
)

// G92 axis-offset family, slots 5210-5219.
const OffsetOn Var = 5210

const (
	OffsetX Var = 5211 + iota
	OffsetY
	OffsetZ
	OffsetA
	OffsetB
	OffsetC
)

// offsetBase is the first of the six contiguous OffsetX..OffsetC slots.
const offsetBase Var = OffsetX

// OffsetSlot returns the Var for axis component i (0=X..5=C) of the G92
// offset vector.
func OffsetSlot(i int) Var { return offsetBase + Var(i) }

// CS is the active coordinate-system index, 1..9 (slot 5220).
const CS Var = 5220

// csBase is the first slot (X component) of coordinate system 1.
const csBase Var = 5221

// csStride is the slot spacing between consecutive coordinate systems,
// matching the C source's `NGC_CS1_X + cs * 20`.
const csStride Var = 20

// CSSlot returns the Var for axis component i (0=X..5=C) of coordinate
// system cs (1..9).
func CSSlot(cs, i int) Var {
	return csBase + Var(cs-1)*csStride + Var(i)
}

// Input holds the result of M66 (EMC2), slot 5399.
const Input Var = 5399

// Tool holds the currently selected tool slot (EMC2), slot 5400.
const Tool Var = 5400

// Tool offset and geometry slots (EMC2), 5401-5413.
const (
	ToolX Var = 5401 + iota
	ToolY
	ToolZ
	ToolA
	ToolB
	ToolC
)

const (
	ToolD  Var = 5410 // diameter
	ToolFA Var = 5411 // front angle
	ToolBA Var = 5412 // back angle
	ToolO  Var = 5413 // orientation
)

// Logical (non-NIST-numbered) slots used internally by the interpreter:
// incremental-distance flag, inverse-time flag, cutter-comp-active flag,
// and the current plane selector. These have no wire-protocol slot number
// and live past the NIST range so varCount stays a dense array size.
const (
	relBase Var = 6000 + iota
	invBase
	compBase
	planeBase
)

// varCount is the size of the dense parameter array backing State.Var.
const varCount = int(planeBase) + 1

// Plane identifies the active plane selector.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)
