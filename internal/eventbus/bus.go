package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// Topic names a class of order lifecycle events.
type Topic string

const (
	// TopicPendingOrders carries newly created orders, for restaurant owners
	// watching their incoming queue.
	TopicPendingOrders Topic = "orders.pending"

	// TopicCookedOrders carries orders whose food just became ready, for
	// drivers looking for work.
	TopicCookedOrders Topic = "orders.cooked"

	// TopicOrderUpdates carries every status change of an order, for parties
	// following a specific order.
	TopicOrderUpdates Topic = "orders.updates"
)

// Event is one published order lifecycle notification. Order is a snapshot of
// the aggregate at publish time; OwnerID identifies the owner of the order's
// restaurant so predicates can filter without a storage round trip.
type Event struct {
	Topic   Topic
	Order   *order.Order
	OwnerID kernel.UUID
}

// Predicate decides per subscriber whether an event is delivered. A nil
// predicate matches everything. Predicates run on the publisher's goroutine
// and must be fast; a panicking predicate drops the event for that subscriber
// only.
type Predicate func(Event) bool

const subscriberBuffer = 16

type subscriber struct {
	ch   chan Event
	done chan struct{}
	pred Predicate

	// wg counts in-flight deliveries so detach can close ch safely.
	wg sync.WaitGroup
}

// Bus is an in-process publish/subscribe hub with per-subscriber predicate
// filtering. Publishing never blocks the caller and events are not replayed:
// a subscriber only sees events published after it subscribed.
type Bus struct {
	logger *slog.Logger

	mu     sync.RWMutex
	nextID int64
	topics map[Topic]map[int64]*subscriber
	closed bool
}

// NewBus creates an empty bus.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		logger: logger,
		topics: make(map[Topic]map[int64]*subscriber),
	}
}

// Subscribe registers a subscriber on a topic and returns its delivery
// channel. The channel is closed, and the subscription removed, once ctx is
// done or the bus is closed. Events that do not satisfy pred are skipped.
func (b *Bus) Subscribe(ctx context.Context, topic Topic, pred Predicate) <-chan Event {
	sub := &subscriber{
		ch:   make(chan Event, subscriberBuffer),
		done: make(chan struct{}),
		pred: pred,
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		return sub.ch
	}
	b.nextID++
	id := b.nextID
	subs, ok := b.topics[topic]
	if !ok {
		subs = make(map[int64]*subscriber)
		b.topics[topic] = subs
	}
	subs[id] = sub
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.detach(topic, id, sub)
	}()

	return sub.ch
}

// Publish delivers the event to every current subscriber of its topic whose
// predicate matches. It never blocks: when a subscriber's buffer is full the
// delivery is handed off to a goroutine that waits for the subscriber or its
// departure, whichever comes first.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	matched := make([]*subscriber, 0, len(b.topics[ev.Topic]))
	for _, sub := range b.topics[ev.Topic] {
		if b.matches(sub.pred, ev) {
			sub.wg.Add(1)
			matched = append(matched, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range matched {
		select {
		case sub.ch <- ev:
			sub.wg.Done()
		case <-sub.done:
			sub.wg.Done()
		default:
			go func(sub *subscriber) {
				defer sub.wg.Done()
				select {
				case sub.ch <- ev:
				case <-sub.done:
				}
			}(sub)
		}
	}
}

// Close removes every subscriber and closes their channels. Subsequent
// subscriptions receive an already-closed channel; subsequent publishes are
// dropped.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	topics := b.topics
	b.topics = make(map[Topic]map[int64]*subscriber)
	b.mu.Unlock()

	for _, subs := range topics {
		for _, sub := range subs {
			close(sub.done)
			sub.wg.Wait()
			close(sub.ch)
		}
	}
}

func (b *Bus) detach(topic Topic, id int64, sub *subscriber) {
	b.mu.Lock()
	subs, ok := b.topics[topic]
	if !ok {
		// Close already took the subscriber over.
		b.mu.Unlock()
		return
	}
	if _, ok = subs[id]; !ok {
		b.mu.Unlock()
		return
	}
	delete(subs, id)
	if len(subs) == 0 {
		delete(b.topics, topic)
	}
	b.mu.Unlock()

	close(sub.done)
	sub.wg.Wait()
	close(sub.ch)
}

func (b *Bus) matches(pred Predicate, ev Event) (matched bool) {
	if pred == nil {
		return true
	}

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("subscriber predicate panicked, event skipped",
				"topic", string(ev.Topic), "panic", r)
			matched = false
		}
	}()

	return pred(ev)
}
