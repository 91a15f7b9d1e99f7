// Package state implements the NGC Modal State: the interpreter state
// that persists across blocks within one program and, for numbered
// parameters, across programs (spec.md §3, §4.3).
package state

import "github.com/ikle/enigma/code"

// Axis indices into a 6-element axis vector (X, Y, Z, A, B, C).
const (
	AxisX = iota
	AxisY
	AxisZ
	AxisA
	AxisB
	AxisC
	AxisCount
)

// State is the modal state of one interpreter. It is owned by the host
// (never ambient/global — see DESIGN.md) and passed explicitly to the
// checker and the engine, so multiple interpreters can coexist.
type State struct {
	// Active holds, for each modal group, the currently active code, or
	// code.None if the group has never been set (Group0 and the M-code
	// groups have no default and stay None until a block names them; the
	// other G-code groups get NIST defaults from Reset).
	Active [code.GroupCount]code.Code

	// Var is the dense numbered-parameter array, indexed by Var.
	Var []float64

	// Axis is the axis vector of the last block executed: the origin of
	// incremental moves and the implicit "from" of every motion.
	Axis [AxisCount]float64

	// HasPrev reports whether a prior block exists in this program. It is
	// cleared on M2 (program end) per spec.md §3 "Lifecycle".
	HasPrev bool
}

// New returns a State initialized with NIST defaults: G21 (millimeters),
// XY plane, absolute distance mode, units-per-minute feed, and coordinate
// system 1. (G21 over G20 is the implementation default, stated here;
// either is compliant.)
func New() *State {
	s := &State{Var: make([]float64, varCount)}
	s.Reset()
	return s
}

// Reset performs the full M30 reset: numbered parameters return to their
// persisted values (the caller is expected to have already loaded those
// into s.Var via paramstore before calling Reset, or to leave them as
// the zero value for a fresh program), and modal groups return to NIST
// defaults. HasPrev is cleared: the first block of the next program has
// no predecessor.
func (s *State) Reset() {
	for i := range s.Active {
		s.Active[i] = code.None
	}
	s.Active[code.Group1] = code.G00
	s.Active[code.Group2] = code.G17
	s.Active[code.Group3] = code.G90
	s.Active[code.Group5] = code.G94
	s.Active[code.Group6] = code.G21
	s.Active[code.Group7] = code.G40
	s.Active[code.Group8] = code.G49
	s.Active[code.Group10] = code.G98
	s.Active[code.Group12] = code.G54
	s.Active[code.Group13] = code.G64

	s.Var[CS] = 1
	s.Var[relBase] = 0
	s.Var[invBase] = 0
	s.Var[compBase] = 0
	s.Var[planeBase] = float64(PlaneXY)

	s.Axis = [AxisCount]float64{}
	s.HasPrev = false
}

// EndProgram implements M2: drop the prev-block link but otherwise leave
// modal state and numbered parameters untouched (spec.md §3 Lifecycle).
func (s *State) EndProgram() {
	s.HasPrev = false
}

// ActiveIn reports the code currently active for group g, or code.None.
func (s *State) ActiveIn(g code.Group) code.Code {
	return s.Active[g]
}

// GetParam returns the value stored at numbered-parameter slot v.
func (s *State) GetParam(v Var) float64 {
	return s.Var[v]
}

// SetParam stores value at numbered-parameter slot v.
func (s *State) SetParam(v Var, value float64) {
	s.Var[v] = value
}

// Incremental reports whether group 3 (distance mode) is G91.
func (s *State) Incremental() bool {
	return s.Var[relBase] != 0
}

// SetIncremental sets or clears the REL flag backing Incremental.
func (s *State) SetIncremental(on bool) {
	s.Var[relBase] = boolToFloat(on)
}

// InverseTime reports whether group 5 (feed-rate mode) is G93.
func (s *State) InverseTime() bool {
	return s.Var[invBase] != 0
}

// SetInverseTime sets or clears the INV flag backing InverseTime.
func (s *State) SetInverseTime(on bool) {
	s.Var[invBase] = boolToFloat(on)
}

// CutterCompActive reports whether cutter-radius compensation (group 7)
// is currently engaged (G41 or G42).
func (s *State) CutterCompActive() bool {
	return s.Var[compBase] != 0
}

// SetCutterCompActive sets or clears the COMP flag.
func (s *State) SetCutterCompActive(on bool) {
	s.Var[compBase] = boolToFloat(on)
}

// Plane returns the active plane selector.
func (s *State) Plane() Plane {
	return Plane(s.Var[planeBase])
}

// SetPlane sets the active plane selector.
func (s *State) SetPlane(p Plane) {
	s.Var[planeBase] = float64(p)
}

// OffsetOn reports whether the G92 offset is currently applied to the
// effective coordinate offset.
func (s *State) OffsetOn() bool {
	return s.Var[OffsetOn] != 0
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
