package engine

import (
	"github.com/ikle/enigma/block"
	"github.com/ikle/enigma/code"
	"github.com/ikle/enigma/device"
	"github.com/ikle/enigma/diag"
	"github.com/ikle/enigma/state"
)

// execChangeTool implements phases 5 and 6: select tool (T) and change
// tool (M6). spec.md §5 lists these as two independently-gated steps —
// unlike some NGC implementations that only ever issue one of the two
// per block, a block carrying both T and M6 drives both calls here.
func execChangeTool(b *block.Block, _ *state.State, dev device.Sink) *diag.Diagnostic {
	slot := int(b.WordOf(code.T))

	if b.Has(code.T) {
		if err := dev.Tool(device.ToolSelect, slot); err != nil {
			return diag.Wrap(b.Pos, err)
		}
	}

	if b.G[code.GroupM6] == code.M06 {
		if err := dev.Tool(device.ToolChange, slot); err != nil {
			return diag.Wrap(b.Pos, err)
		}
	}

	return nil
}

// execSpindle implements phase 7: spindle on or off (M3, M4, M5).
func execSpindle(b *block.Block, _ *state.State, dev device.Sink) *diag.Diagnostic {
	speed := b.WordOf(code.S)

	switch b.G[code.GroupM7] {
	case code.M03:
		return diag.Wrap(b.Pos, dev.Spindle(device.SpindleCW, speed))

	case code.M04:
		return diag.Wrap(b.Pos, dev.Spindle(device.SpindleCCW, speed))

	case code.M05:
		return diag.Wrap(b.Pos, dev.Spindle(device.SpindleStop, 0))
	}
	return nil
}

// coolantAll is the full coolant channel mask, used by M9 to clear
// every channel regardless of which one(s) are actually on.
const coolantAll = device.CoolantFlood | device.CoolantMist | device.CoolantThroughTool

// execCoolant implements phase 8: coolant on or off (M7, M8, M9).
func execCoolant(b *block.Block, _ *state.State, dev device.Sink) *diag.Diagnostic {
	switch b.G[code.GroupM8] {
	case code.M07:
		return diag.Wrap(b.Pos, dev.Coolant(device.CoolantMist, true))

	case code.M08:
		return diag.Wrap(b.Pos, dev.Coolant(device.CoolantFlood, true))

	case code.M09:
		return diag.Wrap(b.Pos, dev.Coolant(coolantAll, false))
	}
	return nil
}

// toolSlotOrCurrent returns the D/H word's integer value, or 0 ("current
// tool") when the word is absent (spec.md §4.6 steps 13-14).
func toolSlotOrCurrent(b *block.Block, letter code.Word) int {
	if !b.Has(letter) {
		return 0
	}
	return int(b.WordOf(letter))
}

// execCutterRadiusComp implements phase 13: cutter radius compensation
// on or off (G40, G41, G42). It also maintains the COMP flag the
// checker reads back via state.CutterCompActive — original_source never
// sets this flag itself (ngc_is_comp_mode has no writer in ngc-exec.c),
// so this phase completes the pattern phase 2 and phase 17 already
// establish for their own flags (INV, REL).
func execCutterRadiusComp(b *block.Block, s *state.State, dev device.Sink) *diag.Diagnostic {
	slot := toolSlotOrCurrent(b, code.D)

	switch b.G[code.Group7] {
	case code.G40:
		s.SetCutterCompActive(false)
		return diag.Wrap(b.Pos, dev.Cutter(device.CutterCenter, -1))

	case code.G41:
		s.SetCutterCompActive(true)
		return diag.Wrap(b.Pos, dev.Cutter(device.CutterLeft, slot))

	case code.G42:
		s.SetCutterCompActive(true)
		return diag.Wrap(b.Pos, dev.Cutter(device.CutterRight, slot))
	}
	return nil
}

// execCutterLengthComp implements phase 14: tool-length compensation on
// or off (G43, G49). H0 means "current tool offset" (EMC2 resolution of
// Open Question 3), not strict-NIST-invalid.
func execCutterLengthComp(b *block.Block, _ *state.State, dev device.Sink) *diag.Diagnostic {
	slot := toolSlotOrCurrent(b, code.H)

	switch b.G[code.Group8] {
	case code.G43:
		return diag.Wrap(b.Pos, dev.Tool(device.ToolComp, slot))

	case code.G49:
		return diag.Wrap(b.Pos, dev.Tool(device.ToolComp, -1))
	}
	return nil
}
