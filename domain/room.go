package domain

import "sync"

// Set is a plain string membership set.
type Set map[string]struct{}

// Room is a named scope for chat membership. The member set is concurrently
// mutable; every accessor takes the room's own lock, so callers can share a
// *Room freely across goroutines.
type Room struct {
	Name string

	mu      sync.RWMutex
	members Set
}

func NewRoom(name string) *Room {
	return &Room{Name: name, members: make(Set)}
}

// AddMember inserts a username. Idempotent.
func (r *Room) AddMember(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[username] = struct{}{}
}

// RemoveMember deletes a username. Removing an absent member is a no-op.
func (r *Room) RemoveMember(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members, username)
}

// HasMember reports whether the username currently belongs to the room.
func (r *Room) HasMember(username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.members[username]
	return ok
}

// MemberCount returns the current size of the member set.
func (r *Room) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

// Members returns a snapshot copy of the member set.
func (r *Room) Members() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.members))
	for m := range r.members {
		out = append(out, m)
	}
	return out
}
