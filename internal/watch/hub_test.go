package watch

import (
	"testing"
	"time"
)

func TestSubscribeReceivesLatestSnapshot(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("catalog")
	defer sub.Unsubscribe()

	hub.Publish("catalog", "v1")

	select {
	case got := <-sub.C():
		if got != "v1" {
			t.Fatalf("snapshot want v1 got %v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("expected snapshot delivery")
	}
}

func TestPublishCoalescesRapidSnapshots(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("catalog")
	defer sub.Unsubscribe()

	hub.Publish("catalog", "v1")
	hub.Publish("catalog", "v2")
	hub.Publish("catalog", "v3")

	got := <-sub.C()
	if got != "v3" {
		t.Fatalf("coalesced snapshot want v3 got %v", got)
	}
	select {
	case extra := <-sub.C():
		t.Fatalf("unexpected extra snapshot %v", extra)
	default:
	}
}

func TestUnsubscribeBeforeFirstSnapshot(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe(CartTopic(7))
	sub.Unsubscribe()

	// Must not panic, must not deliver.
	hub.Publish(CartTopic(7), "late")

	if _, open := <-sub.C(); open {
		t.Fatal("channel should be closed after unsubscribe")
	}
	if hub.SubscriberCount(CartTopic(7)) != 0 {
		t.Fatalf("subscriber count want 0 got %d", hub.SubscriberCount(CartTopic(7)))
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("catalog")
	sub.Unsubscribe()
	sub.Unsubscribe()
}

func TestRepeatedCyclesLeaveSingleSubscription(t *testing.T) {
	hub := NewHub()
	topic := CartTopic(42)

	// Sign-in/out churn: each cycle subscribes and unsubscribes.
	for i := 0; i < 10; i++ {
		s := hub.Subscribe(topic)
		s.Unsubscribe()
	}
	live := hub.Subscribe(topic)
	defer live.Unsubscribe()

	if got := hub.SubscriberCount(topic); got != 1 {
		t.Fatalf("subscriber count want 1 got %d", got)
	}

	hub.Publish(topic, "snap")
	if got := <-live.C(); got != "snap" {
		t.Fatalf("snapshot want snap got %v", got)
	}
	select {
	case extra := <-live.C():
		t.Fatalf("duplicate delivery %v", extra)
	default:
	}
}

func TestPublishReachesAllTopicSubscribers(t *testing.T) {
	hub := NewHub()
	first := hub.Subscribe("catalog")
	second := hub.Subscribe("catalog")
	defer first.Unsubscribe()
	defer second.Unsubscribe()

	hub.Publish("catalog", "snap")

	if got := <-first.C(); got != "snap" {
		t.Fatalf("first subscriber want snap got %v", got)
	}
	if got := <-second.C(); got != "snap" {
		t.Fatalf("second subscriber want snap got %v", got)
	}
}
