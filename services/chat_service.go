package services

import (
	"log/slog"
	"time"

	"chat-rooms/broadcast"
	"chat-rooms/contract"
	"chat-rooms/domain"
	"chat-rooms/moderation"

	"github.com/abadojack/whatlanggo"
	"github.com/jonboulle/clockwork"
)

// ChatService orchestrates the room registry, the broadcast channels and the
// username allocator into the join / leave / send / subscribe operations.
// It owns message construction: identity and timestamps are assigned here.
type ChatService struct {
	log       *slog.Logger
	rooms     contract.IRoomRegistry
	channels  contract.IBroadcaster
	names     contract.INameAllocator
	moderator *moderation.Moderator
	clock     clockwork.Clock
}

func NewChatService(
	log *slog.Logger,
	rooms contract.IRoomRegistry,
	channels contract.IBroadcaster,
	names contract.INameAllocator,
	moderator *moderation.Moderator,
	clock clockwork.Clock,
) *ChatService {
	return &ChatService{
		log:       log,
		rooms:     rooms,
		channels:  channels,
		names:     names,
		moderator: moderator,
		clock:     clock,
	}
}

// Join resolves the request (default room, unique username), registers
// membership, makes sure the room's channel exists and broadcasts the JOIN
// system message. Allocation and registration happen back to back to keep
// the allocator's check-then-act window as small as practical.
func (s *ChatService) Join(req domain.JoinRequest) domain.JoinRequest {
	req = req.Normalized()
	username := s.names.Allocate(req.Username)

	s.rooms.AddMember(req.Room, username)
	s.channels.EnsureChannel(req.Room)
	s.channels.Publish(req.Room, domain.NewJoinMessage(username, req.Room, s.now()))

	s.log.Info("User joined", "username", username, "room", req.Room)
	return domain.JoinRequest{Username: username, Room: req.Room}
}

// Leave removes the membership and, when the room is known, broadcasts the
// LEAVE system message. Leaving an unknown room (or leaving twice) does
// nothing: no subscriber could exist for it.
func (s *ChatService) Leave(req domain.JoinRequest) {
	req = req.Normalized()
	if _, ok := s.rooms.Lookup(req.Room); !ok {
		return
	}
	s.rooms.RemoveMember(req.Room, req.Username)
	s.channels.Publish(req.Room, domain.NewLeaveMessage(req.Username, req.Room, s.now()))
	s.log.Info("User left", "username", req.Username, "room", req.Room)
}

// Send broadcasts a fresh CHAT message carrying the caller's content, sender
// and room. A room without a channel has never seen a join or subscribe, so
// the message is dropped silently; that is intentional, not an error.
func (s *ChatService) Send(msg domain.Message) {
	if !s.channels.Has(msg.Room) {
		return
	}

	content := msg.Content
	if s.moderator != nil {
		censored, hits := s.moderator.Censor(content)
		if hits > 0 {
			lang := whatlanggo.Detect(content)
			s.log.Warn("Censored chat content",
				"room", msg.Room,
				"sender", msg.Sender,
				"spans", hits,
				"lang", lang.Lang.Iso6391())
			content = censored
		}
	}

	s.channels.Publish(msg.Room, domain.NewChatMessage(content, msg.Sender, msg.Room, s.now()))
}

// Subscribe opens a live message stream for the room, creating the channel
// when this is the first-ever interest in it. The caller closes the
// subscription when done; that does not leave the room.
func (s *ChatService) Subscribe(req domain.JoinRequest) *broadcast.Subscription {
	return s.channels.Subscribe(req.Normalized().Room)
}

func (s *ChatService) now() time.Time {
	return s.clock.Now().UTC()
}

var _ contract.IChatService = (*ChatService)(nil)
