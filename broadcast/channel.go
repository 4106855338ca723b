// Package broadcast implements per-room multicast delivery: one publish
// point per room, fanned out to any number of independent subscribers.
//
// It provides best-effort fan-out with no durability and no retries; a
// Channel is not a message broker. Within one room, every subscriber
// observes messages in the same relative order as the Publish calls.
package broadcast

import (
	"log/slog"
	"sync"

	"chat-rooms/domain"
)

// Channel is the multicast publish point for a single room.
// It is safe for concurrent use by multiple goroutines.
type Channel struct {
	room string
	log  *slog.Logger

	mu          sync.Mutex
	subscribers map[*Subscription]struct{}
}

// Subscription is one subscriber's independent buffered view of a Channel.
// The consumer reads from C() until it loses interest, then calls Close.
type Subscription struct {
	channel *Channel
	ch      chan domain.Message
	once    sync.Once
}

func newChannel(room string, log *slog.Logger) *Channel {
	return &Channel{
		room:        room,
		log:         log,
		subscribers: make(map[*Subscription]struct{}),
	}
}

// Subscribe attaches a new subscriber with its own buffer of the given size.
// Only messages published after this call are delivered.
func (c *Channel) Subscribe(bufferSize int) *Subscription {
	sub := &Subscription{
		channel: c,
		ch:      make(chan domain.Message, bufferSize),
	}
	c.mu.Lock()
	c.subscribers[sub] = struct{}{}
	c.mu.Unlock()
	return sub
}

// Publish delivers the message to every current subscriber. The send into
// each subscriber buffer is non-blocking: when a buffer is full the message
// is dropped for that subscriber only (drop-newest). A slow consumer can
// therefore lose messages but can never stall the publisher or its peers.
//
// The whole fan-out happens under the channel lock, so concurrent Publish
// calls are serialized and all subscribers agree on the relative order.
func (c *Channel) Publish(msg domain.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for sub := range c.subscribers {
		select {
		case sub.ch <- msg:
		default:
			c.log.Debug("Subscriber buffer full, dropping message",
				"room", c.room, "kind", msg.Kind)
		}
	}
}

// SubscriberCount returns the number of live subscribers.
func (c *Channel) SubscriberCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subscribers)
}

// C exposes the subscriber's receive side. The channel is closed by Close,
// never by the publisher.
func (s *Subscription) C() <-chan domain.Message {
	return s.ch
}

// Close detaches the subscription and releases its buffer. Idempotent.
// Other subscribers and room membership are unaffected; dropping a stream
// is not the same thing as leaving a room.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.channel.mu.Lock()
		delete(s.channel.subscribers, s)
		s.channel.mu.Unlock()
		close(s.ch)
	})
}
