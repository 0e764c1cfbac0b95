package events

import (
	"testing"
	"time"

	"github.com/marell/cadenza/api"
)

func TestSubscribeReceivesMatchingType(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ch := bus.Subscribe(api.EventSongStarted)
	bus.Publish(api.PlayerEvent{Type: api.EventSongStarted})
	bus.Publish(api.PlayerEvent{Type: api.EventPositionUpdate})

	select {
	case ev := <-ch:
		if ev.Type != api.EventSongStarted {
			t.Errorf("got %v, want EventSongStarted", ev.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}

	// The position update was a different type and must not arrive
	select {
	case ev := <-ch:
		t.Errorf("unexpected event %v", ev.Type)
	default:
	}
}

func TestSubscribeAllReceivesEveryType(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ch := bus.SubscribeAll()
	types := []api.EventType{
		api.EventSongStarted,
		api.EventSongEnded,
		api.EventPositionUpdate,
		api.EventStateChange,
		api.EventError,
	}
	for _, typ := range types {
		bus.Publish(api.PlayerEvent{Type: typ})
	}

	for _, want := range types {
		select {
		case ev := <-ch:
			if ev.Type != want {
				t.Errorf("got %v, want %v", ev.Type, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %v", want)
		}
	}
}

func TestPublishDoesNotBlockOnFullSubscriber(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	bus.Subscribe(api.EventPositionUpdate)

	done := make(chan struct{})
	go func() {
		// Well past the subscriber buffer size
		for i := 0; i < 100; i++ {
			bus.Publish(api.PlayerEvent{Type: api.EventPositionUpdate})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ch := bus.Subscribe(api.EventStateChange)
	bus.Unsubscribe(ch)
	bus.Publish(api.PlayerEvent{Type: api.EventStateChange})

	select {
	case ev := <-ch:
		t.Errorf("received %v after unsubscribe", ev.Type)
	default:
	}
}

func TestCloseClosesSubscriberChannels(t *testing.T) {
	bus := NewBus()
	ch := bus.SubscribeAll()
	bus.Close()

	if _, ok := <-ch; ok {
		t.Error("channel should be closed")
	}
}
