// Package monitor is an HTTP + websocket service that streams a running
// stepper.Session's device-call trace and modal-state snapshots to
// external tooling. Grounded on the teacher's api package: Broadcaster
// is api.Broadcaster's fan-out pattern unchanged, and Server/websocket.go
// are its HTTP/websocket surface pared down to the read-only routes this
// package needs. It is strictly observational — it never calls back into
// a device.Sink or an engine.Exec, matching spec.md's "no online hardware
// interaction" Non-goal.
package monitor

import "sync"

// EventType identifies the kind of event a Subscription receives.
type EventType string

const (
	// EventState carries a modal-state snapshot (active codes, axis
	// position) taken after a block finishes executing.
	EventState EventType = "state"

	// EventTrace carries one device.Call appended to the session trace.
	EventTrace EventType = "trace"

	// EventHalt carries the diagnostic (or nil) that ended a Run/Step.
	EventHalt EventType = "halt"
)

// Event is one broadcast message.
type Event struct {
	Type EventType      `json:"type"`
	Data map[string]any `json:"data"`
}

// Subscription is one client's filtered view of the event stream.
type Subscription struct {
	Types   map[EventType]bool
	Channel chan Event
}

// Broadcaster fans events out to every subscribed client, grounded on
// api.Broadcaster's single-goroutine run loop: registration,
// unregistration, and delivery all serialize through channels into that
// goroutine; mu guards the subscription map so SubscriptionCount can read
// it from other goroutines.
type Broadcaster struct {
	mu            sync.RWMutex
	subscriptions map[*Subscription]bool
	broadcast     chan Event
	register      chan *Subscription
	unregister    chan *Subscription
	done          chan struct{}
}

// NewBroadcaster creates and starts a new event broadcaster.
func NewBroadcaster() *Broadcaster {
	b := &Broadcaster{
		subscriptions: make(map[*Subscription]bool),
		broadcast:     make(chan Event, 256),
		register:      make(chan *Subscription),
		unregister:    make(chan *Subscription),
		done:          make(chan struct{}),
	}
	go b.run()
	return b
}

func (b *Broadcaster) run() {
	for {
		select {
		case sub := <-b.register:
			b.mu.Lock()
			b.subscriptions[sub] = true
			b.mu.Unlock()

		case sub := <-b.unregister:
			b.mu.Lock()
			if b.subscriptions[sub] {
				delete(b.subscriptions, sub)
				close(sub.Channel)
			}
			b.mu.Unlock()

		case event := <-b.broadcast:
			b.mu.RLock()
			for sub := range b.subscriptions {
				if len(sub.Types) > 0 && !sub.Types[event.Type] {
					continue
				}
				select {
				case sub.Channel <- event:
				default:
					// slow client: drop rather than block the broadcaster
				}
			}
			b.mu.RUnlock()

		case <-b.done:
			b.mu.Lock()
			for sub := range b.subscriptions {
				close(sub.Channel)
			}
			b.subscriptions = make(map[*Subscription]bool)
			b.mu.Unlock()
			return
		}
	}
}

// Subscribe registers a new subscription, optionally filtered to a set
// of event types (empty means all types).
func (b *Broadcaster) Subscribe(types []EventType) *Subscription {
	typeSet := make(map[EventType]bool, len(types))
	for _, t := range types {
		typeSet[t] = true
	}

	sub := &Subscription{
		Types:   typeSet,
		Channel: make(chan Event, 64),
	}
	b.register <- sub
	return sub
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	b.unregister <- sub
}

// Broadcast sends an event to every matching subscription, dropping it
// if the broadcaster's internal queue is full rather than blocking the
// caller (the engine must never stall waiting on an observer).
func (b *Broadcaster) Broadcast(event Event) {
	select {
	case b.broadcast <- event:
	default:
	}
}

// Close shuts down the broadcaster and every subscription.
func (b *Broadcaster) Close() {
	close(b.done)
}

// SubscriptionCount reports the number of active subscriptions.
func (b *Broadcaster) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscriptions)
}
