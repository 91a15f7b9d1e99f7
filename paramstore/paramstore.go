// Package paramstore gives the NIST numbered-parameter range (5061-5413,
// spec.md §4.3 "Numbered Parameters") a file-backed home across program
// loads. state.State keeps this array in memory for the duration of one
// program; paramstore is what lets a second run see the coordinate
// systems and tool table a prior run's M30 left behind, matching the
// NIST semantics that these parameters outlive any one interpreter
// session (original_source's struct ngc_state.var, which the C host
// allocates and never persists itself — spec.md distills this down to
// "the array survives the session", leaving the actual file format to
// the implementation).
package paramstore

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/ikle/enigma/state"
)

// firstSlot and lastSlot bound the persisted range: the full NIST plus
// EMC2-extension numbered-parameter space (state/vars.go). Slots above
// this range are logical interpreter flags (incremental mode, plane,
// ...) that are session-local and never persisted.
const (
	firstSlot = 5061
	lastSlot  = 5413
)

// Load reads a parameter file and applies its values onto s. A missing
// file leaves s untouched: a first-ever run starts from the values
// state.New already gave it.
func Load(path string, s *state.State) error {
	f, err := os.Open(path) // #nosec G304 -- caller-provided param file path
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("paramstore: open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" || text[0] == '#' {
			continue
		}

		var slot int
		var value float64
		if _, err := fmt.Sscanf(text, "%d\t%g", &slot, &value); err != nil {
			return fmt.Errorf("paramstore: %s:%d: malformed entry %q: %w", path, line, text, err)
		}
		if slot < firstSlot || slot > lastSlot {
			return fmt.Errorf("paramstore: %s:%d: slot %d outside persisted range %d-%d", path, line, slot, firstSlot, lastSlot)
		}
		s.SetParam(state.Var(slot), value)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("paramstore: read %s: %w", path, err)
	}

	return nil
}

// Save writes every nonzero parameter in the persisted range to path, one
// "slot\tvalue" entry per line, sorted by slot for a stable, diffable
// file. Zero-valued slots are omitted: a freshly-loaded file with no
// entries for a slot leaves it at state.New's default of 0, so omitting
// zeros changes nothing on the next Load.
func Save(path string, s *state.State) error {
	f, err := os.Create(path) // #nosec G304 -- caller-provided param file path
	if err != nil {
		return fmt.Errorf("paramstore: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	slots := make([]int, 0, lastSlot-firstSlot+1)
	values := make(map[int]float64)
	for slot := firstSlot; slot <= lastSlot; slot++ {
		v := s.GetParam(state.Var(slot))
		if v != 0 {
			slots = append(slots, slot)
			values[slot] = v
		}
	}
	sort.Ints(slots)

	for _, slot := range slots {
		if _, err := fmt.Fprintf(w, "%d\t%g\n", slot, values[slot]); err != nil {
			return fmt.Errorf("paramstore: write %s: %w", path, err)
		}
	}

	return w.Flush()
}
