package code

// Code identifies one concrete G- or M-code. Values are arbitrary and
// distinct; GroupOf reports the modal group each belongs to.
type Code int

// Non-modal group 0.
const (
	G04 Code = iota + 1 // dwell
	G10                 // coordinate system origin setting
	G28                 // return to home
	G30                 // return to secondary home
	G53                 // motion in machine coordinate system
	G92                 // offset coordinate systems and set parameters
	G92_1               // cancel offset CSs and set params to zero
	G92_2               // cancel offset CSs but do not reset params
	G92_3               // apply parameters to offset coordinate systems
)

// Modal group 1: motion.
const (
	G00 Code = iota + 100 // rapid positioning
	G01                   // linear interpolation
	G02                   // circular/helical interpolation (CW)
	G03                   // circular/helical interpolation (CCW)
	G38_2                 // straight probe
	G80                   // cancel motion mode
	G81                   // canned cycle: drilling
	G82                   // canned cycle: drilling with dwell
	G83                   // canned cycle: peck drilling
	G84                   // canned cycle: right hand tapping
	G85                   // canned cycle: boring, no dwell, feed out
	G86                   // canned cycle: boring, spindle stop, rapid out
	G87                   // canned cycle: back boring
	G88                   // canned cycle: boring, spindle stop, manual out
	G89                   // canned cycle: boring, dwell, feed out
)

// Modal group 2: plane selection.
const (
	G17 Code = iota + 200 // XY-plane
	G18                   // XZ-plane
	G19                   // YZ-plane
)

// Modal group 3: distance mode.
const (
	G90 Code = iota + 300 // absolute
	G91                   // incremental
)

// Modal group 5: feed-rate mode.
const (
	G93 Code = iota + 400 // inverse time
	G94                   // units per minute
)

// Modal group 6: units.
const (
	G20 Code = iota + 500 // inches
	G21                   // millimeters
)

// Modal group 7: cutter-radius compensation.
const (
	G40 Code = iota + 600 // off
	G41                   // left
	G42                   // right
)

// Modal group 8: tool-length offset.
const (
	G43 Code = iota + 700 // on
	G49                   // off
)

// Modal group 10: canned-cycle return mode.
const (
	G98 Code = iota + 800 // initial-level return
	G99                   // R-point return
)

// Modal group 12: coordinate-system selection.
const (
	G54 Code = iota + 900
	G55
	G56
	G57
	G58
	G59
	G59_1
	G59_2
	G59_3
)

// Modal group 13: path-control mode.
const (
	G61 Code = iota + 1000 // exact path
	G61_1                  // exact stop
	G64                    // continuous
)

// M-code modal group 4: stopping.
const (
	M00 Code = iota + 2000 // program stop
	M01                    // optional program stop
	M02                    // program end
	M30                    // program end, pallet shuttle, and reset
	M60                    // pallet shuttle and program stop
)

// M-code modal group 6: tool change.
const (
	M06 Code = iota + 2100
)

// M-code modal group 7: spindle turning.
const (
	M03 Code = iota + 2200 // CW
	M04                    // CCW
	M05                    // stop
)

// M-code modal group 8: coolant. M07 and M08 may be active simultaneously.
const (
	M07 Code = iota + 2300 // mist on
	M08                    // flood on
	M09                    // all off
)

// M-code modal group 9: feed and speed overrides.
const (
	M48 Code = iota + 2400 // enable
	M49                    // disable
)

// GroupOf reports the modal group a code belongs to. Codes not recognized
// here are an internal-error condition for the caller (Command Taxonomy
// is meant to be exhaustive).
func GroupOf(c Code) (Group, bool) {
	switch {
	case c == G04 || c == G10 || c == G28 || c == G30 || c == G53 ||
		c == G92 || c == G92_1 || c == G92_2 || c == G92_3:
		return Group0, true

	case c == G00 || c == G01 || c == G02 || c == G03 || c == G38_2 ||
		c == G80 || (c >= G81 && c <= G89):
		return Group1, true

	case c == G17 || c == G18 || c == G19:
		return Group2, true

	case c == G90 || c == G91:
		return Group3, true

	case c == G93 || c == G94:
		return Group5, true

	case c == G20 || c == G21:
		return Group6, true

	case c == G40 || c == G41 || c == G42:
		return Group7, true

	case c == G43 || c == G49:
		return Group8, true

	case c == G98 || c == G99:
		return Group10, true

	case c >= G54 && c <= G59_3:
		return Group12, true

	case c == G61 || c == G61_1 || c == G64:
		return Group13, true

	case c >= M00 && c <= M60:
		return GroupM4, true

	case c == M06:
		return GroupM6, true

	case c == M03 || c == M04 || c == M05:
		return GroupM7, true

	case c == M07 || c == M08 || c == M09:
		return GroupM8, true

	case c == M48 || c == M49:
		return GroupM9, true
	}

	return 0, false
}

// CoordSystem returns the 1-based coordinate-system index (1..9) that a
// group-12 code selects, or 0 if c is not a coordinate-system selector.
func CoordSystem(c Code) int {
	switch c {
	case G54:
		return 1
	case G55:
		return 2
	case G56:
		return 3
	case G57:
		return 4
	case G58:
		return 5
	case G59:
		return 6
	case G59_1:
		return 7
	case G59_2:
		return 8
	case G59_3:
		return 9
	}
	return 0
}
