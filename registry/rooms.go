// Package registry owns the process-wide mapping from room name to room
// state. It is one of the two shared mutable resources of the core, guarded
// by its own lock; the other (broadcast channels) lives in package broadcast.
package registry

import (
	"chat-rooms/domain"
	"sync"
)

type RoomRegistry struct {
	mu    sync.RWMutex
	rooms map[string]*domain.Room
}

// NewRoomRegistry builds a registry pre-seeded with the default room,
// so the very first joiner of "general" never races room creation.
func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		rooms: map[string]*domain.Room{
			domain.DefaultRoom: domain.NewRoom(domain.DefaultRoom),
		},
	}
}

// EnsureRoom returns the room for name, atomically creating an empty one on
// first reference. Two concurrent callers always observe the same instance.
func (r *RoomRegistry) EnsureRoom(name string) *domain.Room {
	r.mu.RLock()
	room, ok := r.rooms[name]
	r.mu.RUnlock()
	if ok {
		return room
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Re-check under the write lock: another goroutine may have won the race.
	if room, ok = r.rooms[name]; ok {
		return room
	}
	room = domain.NewRoom(name)
	r.rooms[name] = room
	return room
}

// Lookup returns the room without creating it.
func (r *RoomRegistry) Lookup(name string) (*domain.Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[name]
	return room, ok
}

// AddMember registers a username in a room, creating the room on first join.
func (r *RoomRegistry) AddMember(room, username string) {
	r.EnsureRoom(room).AddMember(username)
}

// RemoveMember drops a username from a room. Unknown room or member is a no-op.
func (r *RoomRegistry) RemoveMember(room, username string) {
	if existing, ok := r.Lookup(room); ok {
		existing.RemoveMember(username)
	}
}

// IsUsernameTaken reports whether the username is a member of any room.
// Uniqueness is global, not per-room.
func (r *RoomRegistry) IsUsernameTaken(username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, room := range r.rooms {
		if room.HasMember(username) {
			return true
		}
	}
	return false
}

// Occupancy returns a snapshot of member counts per room name.
func (r *RoomRegistry) Occupancy() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int, len(r.rooms))
	for name, room := range r.rooms {
		out[name] = room.MemberCount()
	}
	return out
}
