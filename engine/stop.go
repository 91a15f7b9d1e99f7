package engine

import (
	"github.com/ikle/enigma/block"
	"github.com/ikle/enigma/code"
	"github.com/ikle/enigma/device"
	"github.com/ikle/enigma/diag"
	"github.com/ikle/enigma/state"
)

// execStop implements phase 21: stop (M0, M1, M2, M30, M60).
func execStop(b *block.Block, s *state.State, dev device.Sink) *diag.Diagnostic {
	switch b.G[code.GroupM4] {
	case code.M00:
		return diag.Wrap(b.Pos, dev.Stop(false))

	case code.M01:
		return diag.Wrap(b.Pos, dev.Stop(true))

	case code.M02:
		if err := dev.Reset(); err != nil {
			return diag.Wrap(b.Pos, err)
		}
		s.EndProgram()
		return nil

	case code.M30:
		if err := dev.Reset(); err != nil {
			return diag.Wrap(b.Pos, err)
		}
		if err := dev.PalletShuttle(); err != nil {
			return diag.Wrap(b.Pos, err)
		}
		s.Reset()
		return nil

	case code.M60:
		if err := dev.Stop(false); err != nil {
			return diag.Wrap(b.Pos, err)
		}
		return diag.Wrap(b.Pos, dev.PalletShuttle())
	}
	return nil
}
