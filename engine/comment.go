package engine

import (
	"github.com/ikle/enigma/block"
	"github.com/ikle/enigma/device"
	"github.com/ikle/enigma/diag"
	"github.com/ikle/enigma/state"
)

// execComment implements phase 1: comment (includes message). The
// "MSG," prefix split is a lexical concern the parser has already
// resolved into b.IsMessage; this phase only routes to the right sink
// call (spec.md §4.3.9).
func execComment(b *block.Block, _ *state.State, dev device.Sink) *diag.Diagnostic {
	if b.Comment == "" {
		return nil
	}
	if b.IsMessage {
		return diag.Wrap(b.Pos, dev.Message(b.Comment))
	}
	return diag.Wrap(b.Pos, dev.Comment(b.Comment))
}
