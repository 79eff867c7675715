package watch

import (
	"fmt"
	"sync"
)

// Snapshot is a full replacement state for a topic. Subscribers always
// receive complete result sets, never diffs.
type Snapshot interface{}

// Hub fans full-state snapshots out to per-topic subscribers. Delivery
// is coalescing: a slow subscriber observes only the latest snapshot,
// matching the eventually-consistent contract of the backing store.
type Hub struct {
	mu     sync.Mutex
	topics map[string]map[uint64]*Subscription
	nextID uint64
}

// Subscription is one live feed. The caller must call Unsubscribe when
// done to release the registration.
type Subscription struct {
	hub   *Hub
	topic string
	id    uint64
	ch    chan Snapshot
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{topics: make(map[string]map[uint64]*Subscription)}
}

// CartTopic names the per-user cart topic.
func CartTopic(userID uint) string {
	return fmt.Sprintf("cart:%d", userID)
}

// Subscribe registers a live feed on a topic.
func (h *Hub) Subscribe(topic string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &Subscription{
		hub:   h,
		topic: topic,
		id:    h.nextID,
		ch:    make(chan Snapshot, 1),
	}
	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[uint64]*Subscription)
		h.topics[topic] = subs
	}
	subs[sub.id] = sub
	return sub
}

// Publish replaces the pending snapshot for every subscriber of the
// topic. Two rapid publishes may be observed as one.
func (h *Hub) Publish(topic string, snapshot Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.topics[topic] {
		select {
		case sub.ch <- snapshot:
		default:
			// Drop the stale pending snapshot, then queue the latest.
			select {
			case <-sub.ch:
			default:
			}
			select {
			case sub.ch <- snapshot:
			default:
			}
		}
	}
}

// SubscriberCount reports live registrations on a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.topics[topic])
}

// C is the snapshot feed. It is closed by Unsubscribe.
func (s *Subscription) C() <-chan Snapshot {
	return s.ch
}

// Unsubscribe stops delivery and releases the registration. Safe to
// call more than once, and safe before any snapshot arrived.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.hub == nil {
		return
	}
	h := s.hub
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.topics[s.topic]
	if !ok {
		return
	}
	if _, live := subs[s.id]; !live {
		return
	}
	delete(subs, s.id)
	if len(subs) == 0 {
		delete(h.topics, s.topic)
	}
	close(s.ch)
}
