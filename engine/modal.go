package engine

import (
	"github.com/ikle/enigma/block"
	"github.com/ikle/enigma/code"
	"github.com/ikle/enigma/device"
	"github.com/ikle/enigma/diag"
	"github.com/ikle/enigma/state"
)

// execFeedRateMode implements phase 2: set feed rate mode (G93 inverse
// time, G94 units per minute).
func execFeedRateMode(b *block.Block, s *state.State, dev device.Sink) *diag.Diagnostic {
	switch b.G[code.Group5] {
	case code.G93:
		s.SetInverseTime(true)
		return diag.Wrap(b.Pos, dev.Mode(device.ModeRate, int(device.RateCPM)))

	case code.G94:
		s.SetInverseTime(false)
		return diag.Wrap(b.Pos, dev.Mode(device.ModeRate, int(device.RateUPM)))
	}
	return nil
}

// execFeedRate implements phase 3: set feed rate (F).
func execFeedRate(b *block.Block, _ *state.State, dev device.Sink) *diag.Diagnostic {
	if !b.Has(code.F) {
		return nil
	}
	return diag.Wrap(b.Pos, dev.Conf(device.ConfRate, b.WordOf(code.F)))
}

// execSpindleSpeed implements phase 4: set spindle speed (S).
func execSpindleSpeed(b *block.Block, _ *state.State, dev device.Sink) *diag.Diagnostic {
	if !b.Has(code.S) {
		return nil
	}
	return diag.Wrap(b.Pos, dev.Conf(device.ConfSpeed, b.WordOf(code.S)))
}

// execOverrides implements phase 9: enable or disable overrides (M48,
// M49).
func execOverrides(b *block.Block, _ *state.State, dev device.Sink) *diag.Diagnostic {
	const mask device.Opt = device.OptOverrideFeed | device.OptOverrideSpeed

	switch b.G[code.GroupM9] {
	case code.M48:
		return diag.Wrap(b.Pos, dev.Opt(mask, true))

	case code.M49:
		return diag.Wrap(b.Pos, dev.Opt(mask, false))
	}
	return nil
}

// execActivePlane implements phase 11: set active plane (G17, G18,
// G19).
func execActivePlane(b *block.Block, s *state.State, dev device.Sink) *diag.Diagnostic {
	switch b.G[code.Group2] {
	case code.G17:
		s.SetPlane(state.PlaneXY)
		return diag.Wrap(b.Pos, dev.Mode(device.ModePlane, int(device.PlaneXY)))

	case code.G18:
		s.SetPlane(state.PlaneXZ)
		return diag.Wrap(b.Pos, dev.Mode(device.ModePlane, int(device.PlaneXZ)))

	case code.G19:
		s.SetPlane(state.PlaneYZ)
		return diag.Wrap(b.Pos, dev.Mode(device.ModePlane, int(device.PlaneYZ)))
	}
	return nil
}

// execUnits implements phase 12: set length units (G20, G21).
func execUnits(b *block.Block, _ *state.State, dev device.Sink) *diag.Diagnostic {
	switch b.G[code.Group6] {
	case code.G20:
		return diag.Wrap(b.Pos, dev.Mode(device.ModeUnits, int(device.UnitsInches)))

	case code.G21:
		return diag.Wrap(b.Pos, dev.Mode(device.ModeUnits, int(device.UnitsMM)))
	}
	return nil
}

// execPathMode implements phase 16: set path control mode (G61, G61.1,
// G64).
func execPathMode(b *block.Block, _ *state.State, dev device.Sink) *diag.Diagnostic {
	switch b.G[code.Group13] {
	case code.G61:
		return diag.Wrap(b.Pos, dev.Mode(device.ModePath, int(device.PathExact)))

	case code.G61_1:
		return diag.Wrap(b.Pos, dev.Mode(device.ModePath, int(device.PathStop)))

	case code.G64:
		return diag.Wrap(b.Pos, dev.Mode(device.ModePath, int(device.PathContinuous)))
	}
	return nil
}

// execDistanceMode implements phase 17: set distance mode (G90, G91).
// Resolved Open Question: the Opt(RELATIVE, ...) call is pushed to the
// device whenever the block carries a G90/G91 word at all, regardless
// of whether that word actually changes the previously active mode.
func execDistanceMode(b *block.Block, s *state.State, dev device.Sink) *diag.Diagnostic {
	switch b.G[code.Group3] {
	case code.G90:
		s.SetIncremental(false)
		return diag.Wrap(b.Pos, dev.Opt(device.OptRelative, false))

	case code.G91:
		s.SetIncremental(true)
		return diag.Wrap(b.Pos, dev.Opt(device.OptRelative, true))
	}
	return nil
}

// execRetractMode implements phase 18: set retract mode (G98, G99).
func execRetractMode(b *block.Block, _ *state.State, dev device.Sink) *diag.Diagnostic {
	switch b.G[code.Group10] {
	case code.G98:
		return diag.Wrap(b.Pos, dev.Opt(device.OptRetractBack, true))

	case code.G99:
		return diag.Wrap(b.Pos, dev.Opt(device.OptRetractBack, false))
	}
	return nil
}
