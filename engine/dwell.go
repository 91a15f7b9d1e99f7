package engine

import (
	"github.com/ikle/enigma/block"
	"github.com/ikle/enigma/code"
	"github.com/ikle/enigma/device"
	"github.com/ikle/enigma/diag"
	"github.com/ikle/enigma/state"
)

// execDwell implements phase 10: dwell (G4).
func execDwell(b *block.Block, _ *state.State, dev device.Sink) *diag.Diagnostic {
	if b.G[code.Group0] != code.G04 {
		return nil
	}
	return diag.Wrap(b.Pos, dev.Dwell(b.WordOf(code.P)))
}
