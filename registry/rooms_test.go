package registry

import (
	"sync"
	"testing"

	"chat-rooms/domain"

	"github.com/stretchr/testify/require"
)

func TestRoomRegistry_SeededWithGeneral(t *testing.T) {
	req := require.New(t)
	reg := NewRoomRegistry()

	room, ok := reg.Lookup(domain.DefaultRoom)
	req.True(ok)
	req.Equal(domain.DefaultRoom, room.Name)
	req.Equal(0, room.MemberCount())
}

func TestRoomRegistry_EnsureRoom_ReturnsSameInstance(t *testing.T) {
	req := require.New(t)
	reg := NewRoomRegistry()

	// When the same name is ensured twice
	first := reg.EnsureRoom("testRoom")
	second := reg.EnsureRoom("testRoom")

	// Then a single room instance exists
	req.Same(first, second)
}

func TestRoomRegistry_EnsureRoom_ConcurrentCreation(t *testing.T) {
	req := require.New(t)
	reg := NewRoomRegistry()

	var wg sync.WaitGroup
	rooms := make([]*domain.Room, 32)
	for i := range rooms {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rooms[i] = reg.EnsureRoom("contended")
		}(i)
	}
	wg.Wait()

	// Then every caller observed the same instance
	for _, room := range rooms {
		req.Same(rooms[0], room)
	}
}

func TestRoomRegistry_RemoveMember_UnknownRoomIsNoOp(t *testing.T) {
	reg := NewRoomRegistry()

	// Removing from a room that never existed must not panic or create it
	reg.RemoveMember("ghost", "Alice")

	_, ok := reg.Lookup("ghost")
	require.False(t, ok)
}

func TestRoomRegistry_IsUsernameTaken_AcrossRooms(t *testing.T) {
	req := require.New(t)
	reg := NewRoomRegistry()

	// Given Alice joined some room other than general
	reg.AddMember("testRoom", "Alice")

	// Then uniqueness is global
	req.True(reg.IsUsernameTaken("Alice"))
	req.False(reg.IsUsernameTaken("Bob"))

	// And leaving frees the name again
	reg.RemoveMember("testRoom", "Alice")
	req.False(reg.IsUsernameTaken("Alice"))
}

func TestRoomRegistry_Occupancy(t *testing.T) {
	req := require.New(t)
	reg := NewRoomRegistry()

	reg.AddMember("testRoom", "Alice")
	reg.AddMember("testRoom", "Bob")

	snapshot := reg.Occupancy()
	req.Equal(2, snapshot["testRoom"])
	req.Equal(0, snapshot[domain.DefaultRoom])
}
