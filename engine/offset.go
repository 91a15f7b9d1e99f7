package engine

import (
	"github.com/ikle/enigma/block"
	"github.com/ikle/enigma/code"
	"github.com/ikle/enigma/device"
	"github.com/ikle/enigma/diag"
	"github.com/ikle/enigma/state"
)

// axisLetters is the X,Y,Z,A,B,C letter order shared by every axis
// vector in this package (block.Block.Axis, state.State.Axis, and the
// per-coordinate-system parameter slots all agree on it).
var axisLetters = [6]code.Word{code.X, code.Y, code.Z, code.A, code.B, code.C}

// resolveAxis implements ngc_axis_prepare (spec.md §4.6): the end point
// this block intends to reach for each axis. In absolute distance mode,
// a missing axis word carries over the previous block's resolved
// position; in incremental mode a missing word is 0 and a present word
// is the displacement itself, so the vector this returns is meant for
// dev.Move/dev.Line/... together with the active distance mode flag.
func resolveAxis(b *block.Block, s *state.State) [6]float64 {
	var base [6]float64
	if !s.Incremental() {
		base = prevAxis(s)
	}

	var out [6]float64
	for i, letter := range axisLetters {
		if b.Has(letter) {
			out[i] = b.WordOf(letter)
		} else {
			out[i] = base[i]
		}
	}
	return out
}

// execOffset implements phase 15's ngc_exec_offset half: push the
// active coordinate system's stored origin, plus the G92 offset when
// engaged, to the device as the current work-to-machine translation.
func execOffset(b *block.Block, s *state.State, dev device.Sink) *diag.Diagnostic {
	cs := int(s.GetParam(state.CS))

	var vec device.Vec6
	for i := range vec {
		vec[i] = s.GetParam(state.CSSlot(cs, i))
	}
	if s.OffsetOn() {
		for i := range vec {
			vec[i] += s.GetParam(state.OffsetSlot(i))
		}
	}

	return diag.Wrap(b.Pos, dev.Offset(vec))
}

// execSelectCoordSystem implements phase 15: coordinate system
// selection (G54-G59.3). Only a block that actually carries one of
// these codes recomputes and pushes the offset; every other block
// leaves the device's last-pushed offset in place.
func execSelectCoordSystem(b *block.Block, s *state.State, dev device.Sink) *diag.Diagnostic {
	cs := code.CoordSystem(b.G[code.Group12])
	if cs == 0 {
		return nil
	}

	s.SetParam(state.CS, float64(cs))
	return execOffset(b, s, dev)
}

// setCSAxisWords stores each axis word present in b into coordinate
// system cs's stored origin, leaving the system's other axes untouched
// (G10 L2 semantics, spec.md §4.5 "G10").
func setCSAxisWords(b *block.Block, s *state.State, cs int) {
	for i, letter := range axisLetters {
		if b.Has(letter) {
			s.SetParam(state.CSSlot(cs, i), b.WordOf(letter))
		}
	}
}

// zeroOffset clears the G92 offset vector (not the flag).
func zeroOffset(s *state.State) {
	for i := range axisLetters {
		s.SetParam(state.OffsetSlot(i), 0)
	}
}

// execShift implements G92: fold the displacement between the prior
// position and the resolved axis vector into the G92 offset, then
// engage it, so that the device's offset-adjusted position becomes
// exactly the new axis words (spec.md §8 scenario 4: from (0,0,0),
// "G92 X1 Y2" sets OFFSET=(-1,-2,0,...)). The duplicate offset
// recompute at the end (via execOffset, same as phase 15) is
// deliberate: it is the call that actually propagates the new offset
// to the device in the same block that changed it.
func execShift(b *block.Block, s *state.State, dev device.Sink) *diag.Diagnostic {
	if !s.OffsetOn() {
		zeroOffset(s)
	}

	prev := prevAxis(s)
	for i := range axisLetters {
		var delta float64
		if s.Incremental() {
			delta = -b.Axis[i]
		} else {
			delta = prev[i] - b.Axis[i]
		}
		s.SetParam(state.OffsetSlot(i), s.GetParam(state.OffsetSlot(i))+delta)
	}

	s.SetParam(state.OffsetOn, 1)
	return execOffset(b, s, dev)
}

// execOffsets implements phase 19: home (G28, G30), change coordinate
// system data (G10), or set axis offsets (G92 family). It always
// resolves b.Axis first (ngc_axis_prepare runs unconditionally in the
// original, since phase 20 needs the result even when this phase's
// switch matches nothing).
func execOffsets(b *block.Block, s *state.State, dev device.Sink) *diag.Diagnostic {
	b.Axis = resolveAxis(b, s)

	switch b.G[code.Group0] {
	case code.G10:
		if int(b.WordOf(code.L)) == 2 {
			setCSAxisWords(b, s, int(b.WordOf(code.P)))
		}
		return execOffset(b, s, dev)

	case code.G28:
		if err := dev.Move(false, b.Axis); err != nil {
			return diag.Wrap(b.Pos, err)
		}
		return diag.Wrap(b.Pos, dev.Home(device.HomeG28))

	case code.G30:
		if err := dev.Move(false, b.Axis); err != nil {
			return diag.Wrap(b.Pos, err)
		}
		return diag.Wrap(b.Pos, dev.Home(device.HomeG30))

	case code.G92:
		return execShift(b, s, dev)

	case code.G92_1:
		zeroOffset(s)
		fallthrough

	case code.G92_2:
		s.SetParam(state.OffsetOn, 0)
		return execOffset(b, s, dev)

	case code.G92_3:
		s.SetParam(state.OffsetOn, 1)
		return execOffset(b, s, dev)
	}

	return nil
}
