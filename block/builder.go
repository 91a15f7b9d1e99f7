package block

import "github.com/ikle/enigma/code"

// Builder assembles a Block word by word. It exists so tests and the
// cmd/ngcdemo example can construct blocks without hand-indexing the
// Word array and Map bitmask, the way a real parser would as it scans a
// line. It is not a replacement for the lexer/parser (out of scope per
// spec.md §1): it has no notion of source text, only of already-decoded
// words and codes.
type Builder struct {
	b Block
}

// New starts a Builder for a block at the given source position.
func New(pos Position) *Builder {
	return &Builder{b: Block{Pos: pos}}
}

// Set records letter = value as present in the block.
func (bd *Builder) Set(letter code.Word, value float64) *Builder {
	bd.b.Word[code.Index(letter)] = value
	bd.b.Map |= letter
	return bd
}

// Code assigns code c to its modal group. Panics if c's group is
// unrecognized: that would be a bug in the caller, not bad input data.
func (bd *Builder) Code(c code.Code) *Builder {
	g, ok := code.GroupOf(c)
	if !ok {
		panic("block: unknown code in Builder.Code")
	}
	bd.b.G[g] = c
	return bd
}

// Comment attaches a developer comment (not a machine-visible message).
func (bd *Builder) Comment(text string) *Builder {
	bd.b.Comment = text
	bd.b.IsMessage = false
	return bd
}

// Message attaches a machine-visible `MSG,` comment.
func (bd *Builder) Message(text string) *Builder {
	bd.b.Comment = text
	bd.b.IsMessage = true
	return bd
}

// Prev chains this block after prev, as the interpreter does between
// consecutive blocks of one program.
func (bd *Builder) Prev(prev *Block) *Builder {
	bd.b.Prev = prev
	return bd
}

// Build returns the assembled Block.
func (bd *Builder) Build() *Block {
	blk := bd.b
	return &blk
}
