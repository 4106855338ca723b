package broadcast

import (
	"log/slog"
	"sync"

	"chat-rooms/domain"
)

// ChannelRegistry owns the channels, one per room name, created lazily on
// first interest (join or subscribe, whichever comes first). It mirrors the
// room registry's create-if-absent discipline but is an independent entity:
// a room may exist without a channel and vice versa during creation races.
type ChannelRegistry struct {
	log        *slog.Logger
	bufferSize int

	mu       sync.RWMutex
	channels map[string]*Channel
}

// NewChannelRegistry builds an empty registry. bufferSize is the per
// subscriber backlog applied by every channel it creates.
func NewChannelRegistry(log *slog.Logger, bufferSize int) *ChannelRegistry {
	return &ChannelRegistry{
		log:        log,
		bufferSize: bufferSize,
		channels:   make(map[string]*Channel),
	}
}

// EnsureChannel returns the room's channel, atomically creating it on first
// reference. Exactly one channel instance ever exists per room name.
func (r *ChannelRegistry) EnsureChannel(room string) *Channel {
	r.mu.RLock()
	ch, ok := r.channels[room]
	r.mu.RUnlock()
	if ok {
		return ch
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if ch, ok = r.channels[room]; ok {
		return ch
	}
	ch = newChannel(room, r.log)
	r.channels[room] = ch
	return ch
}

// Publish fans the message out to the room's subscribers. A room without a
// channel has never been joined or subscribed, so nobody could be listening:
// the message is dropped silently on purpose, not as an error.
func (r *ChannelRegistry) Publish(room string, msg domain.Message) {
	r.mu.RLock()
	ch, ok := r.channels[room]
	r.mu.RUnlock()
	if !ok {
		return
	}
	ch.Publish(msg)
}

// Subscribe opens a live stream over the room's channel, creating the
// channel when this is the first-ever interest in the room. The stream only
// carries messages published after this call.
func (r *ChannelRegistry) Subscribe(room string) *Subscription {
	return r.EnsureChannel(room).Subscribe(r.bufferSize)
}

// Has reports whether a channel exists for the room.
func (r *ChannelRegistry) Has(room string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.channels[room]
	return ok
}
