package engine

import (
	"github.com/ikle/enigma/block"
	"github.com/ikle/enigma/code"
	"github.com/ikle/enigma/device"
	"github.com/ikle/enigma/diag"
	"github.com/ikle/enigma/state"
)

// execArc dispatches G2/G3 to the radius or center-offset form: an R
// word selects the radius form, otherwise I/J/K give the center offset
// (each defaulting to 0 for any axis the block omits).
func execArc(b *block.Block, dev device.Sink, cw bool) *diag.Diagnostic {
	if b.Has(code.R) {
		return diag.Wrap(b.Pos, dev.RArc(b.Axis, b.WordOf(code.R), cw))
	}

	offs := [3]float64{b.WordOf(code.I), b.WordOf(code.J), b.WordOf(code.K)}
	return diag.Wrap(b.Pos, dev.CArc(b.Axis, offs, cw))
}

// execMotion implements phase 20: perform motion (G0-G3, G38.2), as
// modified by G53. G10/G28/G30/G92-family codes already drove their own
// motion in phase 19 and are skipped here. A block that names no group-1
// code inherits the active one, but only moves if it carries an axis word.
//
// G53 does not change the active distance mode; the bool it passes to
// dev.Move/dev.Line only tells the device to use machine coordinates
// for this one block's motion, ignoring the active work offset — it is
// false for an ordinary G90 absolute move (spec.md §4.6 step 20 and the
// worked trace in §8).
func execMotion(b *block.Block, s *state.State, dev device.Sink) *diag.Diagnostic {
	switch b.G[code.Group0] {
	case code.G10, code.G28, code.G30, code.G92:
		return nil
	}

	machineCoords := b.G[code.Group0] == code.G53

	g1 := b.G[code.Group1]
	if g1 == code.None {
		if !b.HasAny(code.Axis) {
			return nil
		}
		g1 = s.Active[code.Group1]
	}

	switch g1 {
	case code.G00:
		return diag.Wrap(b.Pos, dev.Move(machineCoords, b.Axis))

	case code.G01:
		return diag.Wrap(b.Pos, dev.Line(machineCoords, b.Axis))

	case code.G02:
		return execArc(b, dev, true)

	case code.G03:
		return execArc(b, dev, false)

	case code.G38_2:
		return diag.Wrap(b.Pos, dev.Probe(b.Axis))
	}

	return nil
}
