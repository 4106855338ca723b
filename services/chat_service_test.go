package services

import (
	"log/slog"
	"testing"
	"time"

	"chat-rooms/broadcast"
	"chat-rooms/domain"
	"chat-rooms/mocks"
	"chat-rooms/moderation"
	"chat-rooms/names"
	"chat-rooms/registry"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newChatService(t *testing.T) (*ChatService, *registry.RoomRegistry, *clockwork.FakeClock) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	rooms := registry.NewRoomRegistry()
	channels := broadcast.NewChannelRegistry(log, 16)
	allocator := names.NewAllocator(rooms.IsUsernameTaken)
	clock := clockwork.NewFakeClock()

	moderator, err := moderation.NewModerator([]string{"idiot"}, '*')
	require.NoError(t, err)

	return NewChatService(log, rooms, channels, allocator, moderator, clock), rooms, clock
}

func receive(t *testing.T, sub *broadcast.Subscription) domain.Message {
	t.Helper()
	select {
	case msg := <-sub.C():
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message received in time")
		return domain.Message{}
	}
}

func TestChatService_Join_AllocatesUsernameAndDefaultsRoom(t *testing.T) {
	req := require.New(t)
	svc, rooms, _ := newChatService(t)

	// When joining with no username and the default room
	resolved := svc.Join(domain.JoinRequest{Username: "", Room: "general"})

	// Then an identity was allocated and registered
	req.NotEmpty(resolved.Username)
	req.Equal("general", resolved.Room)
	req.True(rooms.IsUsernameTaken(resolved.Username))
}

func TestChatService_Join_EmptyRoomDefaultsToGeneral(t *testing.T) {
	req := require.New(t)
	svc, rooms, _ := newChatService(t)

	resolved := svc.Join(domain.JoinRequest{Username: "testUser"})

	req.Equal("general", resolved.Room)
	room, ok := rooms.Lookup("general")
	req.True(ok)
	req.True(room.HasMember("testUser"))
}

func TestChatService_Join_TakenUsernameGetsFreshOne(t *testing.T) {
	req := require.New(t)
	svc, _, _ := newChatService(t)

	first := svc.Join(domain.JoinRequest{Username: "testUser", Room: "general"})
	second := svc.Join(domain.JoinRequest{Username: "testUser", Room: "general"})

	req.Equal("testUser", first.Username)
	req.NotEqual("testUser", second.Username)
	req.NotEmpty(second.Username)
}

func TestChatService_Subscriber_SeesOwnJoinThenPeerJoinThenChat(t *testing.T) {
	req := require.New(t)
	svc, _, _ := newChatService(t)

	// Given user1's stream is open before it joins
	sub := svc.Subscribe(domain.JoinRequest{Username: "user1", Room: "testRoom"})
	defer sub.Close()

	user1 := svc.Join(domain.JoinRequest{Username: "user1", Room: "testRoom"})
	svc.Join(domain.JoinRequest{Username: "user2", Room: "testRoom"})
	svc.Send(domain.Message{Content: "hello", Sender: user1.Username, Room: "testRoom"})

	// Then the stream observes both JOINs and the chat, in order
	first := receive(t, sub)
	req.Equal(domain.KindJoin, first.Kind)
	req.Equal("user1 has joined the chat", first.Content)
	req.Equal("user1", first.Sender)

	second := receive(t, sub)
	req.Equal(domain.KindJoin, second.Kind)
	req.Equal("user2 has joined the chat", second.Content)

	third := receive(t, sub)
	req.Equal(domain.KindChat, third.Kind)
	req.Equal("hello", third.Content)
	req.Equal("user1", third.Sender)
}

func TestChatService_JoinThenLeave_StreamSeesJoinThenLeave(t *testing.T) {
	req := require.New(t)
	svc, rooms, _ := newChatService(t)

	sub := svc.Subscribe(domain.JoinRequest{Username: "user1", Room: "testRoom"})
	defer sub.Close()

	resolved := svc.Join(domain.JoinRequest{Username: "user1", Room: "testRoom"})
	svc.Leave(resolved)

	join := receive(t, sub)
	req.Equal(domain.KindJoin, join.Kind)
	req.Equal("user1", join.Sender)

	leave := receive(t, sub)
	req.Equal(domain.KindLeave, leave.Kind)
	req.Equal("user1 has left the chat", leave.Content)

	// And the membership is gone
	room, ok := rooms.Lookup("testRoom")
	req.True(ok)
	req.False(room.HasMember("user1"))
}

func TestChatService_Leave_IsIdempotent(t *testing.T) {
	req := require.New(t)
	svc, _, _ := newChatService(t)

	resolved := svc.Join(domain.JoinRequest{Username: "user1", Room: "testRoom"})
	sub := svc.Subscribe(domain.JoinRequest{Username: "user1", Room: "testRoom"})
	defer sub.Close()

	svc.Leave(resolved)
	svc.Leave(resolved)

	// A second leave re-broadcasts nothing new beyond the first LEAVE
	leave := receive(t, sub)
	req.Equal(domain.KindLeave, leave.Kind)
	second := receive(t, sub)
	req.Equal(domain.KindLeave, second.Kind)
}

func TestChatService_Leave_UnknownRoomIsSilentNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	mockRooms := mocks.NewMockIRoomRegistry(ctrl)
	mockChannels := mocks.NewMockIBroadcaster(ctrl)
	allocator := mocks.NewMockINameAllocator(ctrl)
	svc := NewChatService(log, mockRooms, mockChannels, allocator, nil, clockwork.NewFakeClock())

	// Given the room was never created
	mockRooms.EXPECT().Lookup("ghost").Return(nil, false).Times(1)
	// Then neither removal nor publish happens

	svc.Leave(domain.JoinRequest{Username: "user1", Room: "ghost"})
}

func TestChatService_Send_NoChannelIsSilentNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	mockRooms := mocks.NewMockIRoomRegistry(ctrl)
	mockChannels := mocks.NewMockIBroadcaster(ctrl)
	allocator := mocks.NewMockINameAllocator(ctrl)
	svc := NewChatService(log, mockRooms, mockChannels, allocator, nil, clockwork.NewFakeClock())

	// Given no channel exists for the room
	mockChannels.EXPECT().Has("ghost").Return(false).Times(1)
	// Then nothing is published: no channel implies no possible listener

	svc.Send(domain.Message{Content: "into the void", Sender: "user1", Room: "ghost"})
}

func TestChatService_Send_AssignsIdentityAndTimestamp(t *testing.T) {
	req := require.New(t)
	svc, _, clock := newChatService(t)

	sub := svc.Subscribe(domain.JoinRequest{Username: "user1", Room: "testRoom"})
	defer sub.Close()

	// When the caller supplies its own id and timestamp
	stale := domain.Message{
		ID:        uuid.New(),
		Content:   "hello",
		Sender:    "user1",
		Room:      "testRoom",
		Timestamp: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	svc.Send(stale)

	// Then the service replaced both with its own
	got := receive(t, sub)
	req.NotEqual(stale.ID, got.ID)
	req.Equal(clock.Now().UTC(), got.Timestamp)
	req.Equal(domain.KindChat, got.Kind)
	req.Equal("hello", got.Content)
}

func TestChatService_Send_CensorsForbiddenContent(t *testing.T) {
	req := require.New(t)
	svc, _, _ := newChatService(t)

	sub := svc.Subscribe(domain.JoinRequest{Username: "user1", Room: "testRoom"})
	defer sub.Close()

	svc.Send(domain.Message{Content: "what an idiot", Sender: "user1", Room: "testRoom"})

	got := receive(t, sub)
	req.Equal("what an *****", got.Content)
}

func TestChatService_Fanout_AllSubscribersSameOrder(t *testing.T) {
	req := require.New(t)
	svc, _, _ := newChatService(t)

	subs := make([]*broadcast.Subscription, 3)
	for i := range subs {
		subs[i] = svc.Subscribe(domain.JoinRequest{Room: "testRoom"})
		defer subs[i].Close()
	}

	svc.Send(domain.Message{Content: "first", Sender: "user1", Room: "testRoom"})
	svc.Send(domain.Message{Content: "second", Sender: "user1", Room: "testRoom"})

	for _, sub := range subs {
		req.Equal("first", receive(t, sub).Content)
		req.Equal("second", receive(t, sub).Content)
	}
}

func TestChatService_CloseStream_DoesNotLeaveRoom(t *testing.T) {
	req := require.New(t)
	svc, rooms, _ := newChatService(t)

	resolved := svc.Join(domain.JoinRequest{Username: "user1", Room: "testRoom"})
	sub := svc.Subscribe(resolved)

	// When the stream is dropped (client disconnect)
	sub.Close()

	// Then membership is untouched: leaving is an explicit, separate call
	req.True(rooms.IsUsernameTaken("user1"))
}
