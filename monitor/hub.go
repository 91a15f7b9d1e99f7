package monitor

import (
	"github.com/ikle/enigma/code"
	"github.com/ikle/enigma/stepper"
)

// Hub observes a stepper.Session and publishes its trace and modal-state
// changes to a Broadcaster. It never calls Step or Run itself — some
// other part of the program (the stepper TUI, a batch runner) drives
// the session; Hub only watches and reports, keeping with spec.md's "no
// online hardware interaction" Non-goal even at the observability layer.
type Hub struct {
	Session     *stepper.Session
	Broadcaster *Broadcaster

	lastTraceLen int
}

// NewHub wraps session with a fresh Broadcaster.
func NewHub(session *stepper.Session) *Hub {
	return &Hub{
		Session:     session,
		Broadcaster: NewBroadcaster(),
	}
}

// Publish broadcasts every trace entry recorded since the last Publish
// call, followed by one state snapshot and, if the session is halted,
// a halt event (sent on every Publish while it stays halted). Call this after each Step/Run the host performs.
func (h *Hub) Publish() {
	calls := h.Session.Device.Calls
	if h.lastTraceLen > len(calls) {
		// the session was reset since the last Publish: a new Recorder
		// means the old trace offset no longer applies.
		h.lastTraceLen = 0
	}
	for _, c := range calls[h.lastTraceLen:] {
		h.Broadcaster.Broadcast(Event{
			Type: EventTrace,
			Data: map[string]any{"op": c.Op, "args": c.Args},
		})
	}
	h.lastTraceLen = len(calls)

	h.Broadcaster.Broadcast(Event{
		Type: EventState,
		Data: stateSnapshot(h.Session),
	})

	if h.Session.Halted {
		data := map[string]any{"index": h.Session.Index}
		if h.Session.LastDiag != nil {
			data["diagnostic"] = h.Session.LastDiag.Error()
		}
		h.Broadcaster.Broadcast(Event{Type: EventHalt, Data: data})
	}
}

func stateSnapshot(s *stepper.Session) map[string]any {
	st := s.State
	return map[string]any{
		"index":    s.Index,
		"halted":   s.Halted,
		"motion":   int(st.Active[code.Group1]),
		"plane":    int(st.Active[code.Group2]),
		"distance": int(st.Active[code.Group3]),
		"units":    int(st.Active[code.Group6]),
		"coordsys": int(st.Active[code.Group12]),
		"axis":     st.Axis,
	}
}
