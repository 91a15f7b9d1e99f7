package monitor

import "testing"

func TestBroadcastDeliversToMatchingSubscription(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	sub := b.Subscribe([]EventType{EventTrace})
	defer b.Unsubscribe(sub)

	// Subscribe is itself a channel send to the broadcaster's goroutine;
	// give it a moment to register before broadcasting.
	waitForSubscriberCount(t, b, 1)

	b.Broadcast(Event{Type: EventTrace, Data: map[string]any{"op": "move"}})

	select {
	case ev := <-sub.Channel:
		if ev.Type != EventTrace {
			t.Fatalf("expected trace event, got %v", ev.Type)
		}
	default:
		t.Fatalf("expected an event to be delivered")
	}
}

func TestBroadcastFiltersByType(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	sub := b.Subscribe([]EventType{EventHalt})
	defer b.Unsubscribe(sub)
	waitForSubscriberCount(t, b, 1)

	b.Broadcast(Event{Type: EventTrace})

	select {
	case ev := <-sub.Channel:
		t.Fatalf("did not expect a trace event on a halt-only subscription, got %v", ev)
	default:
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	sub := b.Subscribe(nil)
	waitForSubscriberCount(t, b, 1)

	b.Unsubscribe(sub)

	if _, ok := <-sub.Channel; ok {
		t.Fatalf("expected subscription channel to be closed after unsubscribe")
	}
}

func waitForSubscriberCount(t *testing.T, b *Broadcaster, n int) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if b.SubscriptionCount() == n {
			return
		}
	}
	t.Fatalf("subscriber count never reached %d", n)
}
