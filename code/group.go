package code

// Group identifies one modal group. At most one code from a given group
// may be active in a single block (Block invariant #1 in spec.md §3).
type Group int

// G-code modal groups, plus group 0 for the non-modal family (dwell,
// G10, G28/G30, G92 family, G53) which is not itself "modal" but is
// tracked the same way so the checker and engine can dispatch on it
// uniformly.
const (
	Group0 Group = iota // non-modal: G4, G10, G28, G30, G53, G92 family
	Group1              // motion
	Group2              // plane selection
	Group3              // distance mode
	Group5              // feed-rate mode
	Group6              // units
	Group7              // cutter-radius compensation
	Group8              // tool-length offset
	Group10             // canned-cycle return mode
	Group12             // coordinate-system selection
	Group13             // path-control mode

	GroupM4 // stopping
	GroupM6 // tool change
	GroupM7 // spindle turning
	GroupM8 // coolant
	GroupM9 // feed and speed overrides

	groupCount
)

// GroupCount is the number of tracked modal groups, i.e. the size of the
// Block.G and State.Active arrays.
const GroupCount = int(groupCount)

// None is the "no code active for this group in this block" sentinel.
const None Code = 0
