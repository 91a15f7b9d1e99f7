package monitor

import (
	"testing"

	"github.com/ikle/enigma/block"
	"github.com/ikle/enigma/code"
	"github.com/ikle/enigma/stepper"
)

func TestPublishEmitsTraceAndStateEvents(t *testing.T) {
	blocks := []*block.Block{
		block.New(block.Position{Line: 1}).Code(code.G00).Set(code.X, 1).Build(),
	}
	session := stepper.NewSession(blocks)
	hub := NewHub(session)
	defer hub.Broadcaster.Close()

	sub := hub.Broadcaster.Subscribe(nil)
	defer hub.Broadcaster.Unsubscribe(sub)
	waitForSubscriberCount(t, hub.Broadcaster, 1)

	if fatal := session.Step(); fatal != nil {
		t.Fatalf("unexpected fatal: %v", fatal)
	}
	hub.Publish()

	var sawTrace, sawState bool
	for len(sub.Channel) > 0 {
		ev := <-sub.Channel
		switch ev.Type {
		case EventTrace:
			sawTrace = true
		case EventState:
			sawState = true
		}
	}

	if !sawTrace {
		t.Errorf("expected at least one trace event for a G0 move")
	}
	if !sawState {
		t.Errorf("expected a state snapshot event")
	}
}

func TestPublishAfterResetDoesNotPanic(t *testing.T) {
	blocks := []*block.Block{
		block.New(block.Position{Line: 1}).Code(code.G00).Set(code.X, 1).Build(),
	}
	session := stepper.NewSession(blocks)
	hub := NewHub(session)
	defer hub.Broadcaster.Close()

	_ = session.Step()
	hub.Publish()

	session.Reset()
	hub.Publish()
}

func TestPublishReportsHalt(t *testing.T) {
	blocks := []*block.Block{
		block.New(block.Position{Line: 1}).Code(code.M02).Build(),
	}
	session := stepper.NewSession(blocks)
	hub := NewHub(session)
	defer hub.Broadcaster.Close()

	sub := hub.Broadcaster.Subscribe([]EventType{EventHalt})
	waitForSubscriberCount(t, hub.Broadcaster, 1)
	defer hub.Broadcaster.Unsubscribe(sub)

	if fatal := session.Step(); fatal != nil {
		t.Fatalf("unexpected fatal: %v", fatal)
	}
	hub.Publish()

	select {
	case ev := <-sub.Channel:
		if ev.Type != EventHalt {
			t.Fatalf("expected halt event, got %v", ev.Type)
		}
	default:
		t.Fatalf("expected a halt event after the M2 block")
	}
}
