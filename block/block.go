// Package block defines Block, the value record a parser hands to the
// checker and engine for one line of a part program (spec.md §3 "Block").
package block

import "github.com/ikle/enigma/code"

// Position locates a block in its source program, for diagnostics.
// Mirrors the (filename, line) pair a parser naturally carries; there is
// no column since a block is addressed as a whole, not a single word.
type Position struct {
	Filename string
	Line     int
}

// Block is one parsed program line. It is immutable once the parser
// builds it, except for the Axis vector: the engine's phase-19/20
// prelude (spec.md §4.6) fills Axis in as it resolves the block's
// intended end point against the prior block and the active distance
// mode.
type Block struct {
	// Word holds the numeric value given for each letter A-Z, indexed by
	// code.Index(letter). Reading Word[i] when the letter was not
	// present in the source returns 0.0, exactly as WordOf would: callers
	// normally go through WordOf rather than indexing directly.
	Word [26]float64

	// Map is the presence bitmap: bit i (code.Word with that single bit
	// set) is set iff the parser observed letter i in this block's
	// source. This is what distinguishes "X0" from "no X word at all".
	Map code.Word

	// G holds, for each modal group, the G- or M-code this block assigns
	// to that group, or code.None. At most one code per group (Block
	// invariant #1); the parser is responsible for rejecting multi-code-
	// per-group input before a Block ever reaches the checker.
	G [code.GroupCount]code.Code

	// Axis is the X,Y,Z,A,B,C position this block intends to reach,
	// after applying the active distance-mode rules against the prior
	// position held in state.State.Axis. Populated by the engine, not
	// the parser; zero until then.
	Axis [6]float64

	// Comment is the optional trailing comment text, with any `MSG,`
	// (or `MSG, `) prefix already stripped by the parser's lexical
	// layer; IsMessage distinguishes the two cases for phase 1.
	Comment   string
	IsMessage bool

	// Prev is the immediately preceding executed block, used by the
	// checker for "first invocation" canned-cycle detection (§4.5). The
	// engine does not read it: axis resolution takes its origin from
	// state.State.Axis. It is nil for the first block of a program (see
	// state.State.HasPrev).
	Prev *Block

	// Pos locates this block in its source program, for diagnostics.
	Pos Position
}

// Has reports whether every letter bit in want was present in the
// source of this block.
func (b *Block) Has(want code.Word) bool {
	return code.Has(b.Map, want)
}

// HasAny reports whether at least one letter bit in want was present.
func (b *Block) HasAny(want code.Word) bool {
	return code.HasAny(b.Map, want)
}

// WordOf returns the numeric value given for letter, or 0.0 if the
// letter was not present in this block's source.
func (b *Block) WordOf(letter code.Word) float64 {
	return b.Word[code.Index(letter)]
}

// GroupCode returns the code this block assigns to modal group g, or
// code.None.
func (b *Block) GroupCode(g code.Group) code.Code {
	return b.G[g]
}
