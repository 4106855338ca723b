// Package domain contains core concepts of the chat system.
// This file defines Message events and related rules.
// Messages are immutable and validated by the domain.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind discriminates user chat from system-synthesized events.
type Kind string

const (
	KindChat  Kind = "CHAT"
	KindJoin  Kind = "JOIN"
	KindLeave Kind = "LEAVE"
)

// Message represents an immutable chat event.
// The JSON field names are the externally visible contract of the core;
// the transport layer serializes them as-is.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	Room      string    `json:"room"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChatMessage builds a user-authored message. Identity and timestamp are
// assigned here, never taken from the caller, so retries or client clock skew
// cannot corrupt ordering or identity.
func NewChatMessage(content, sender, room string, at time.Time) Message {
	return Message{
		ID:        uuid.New(),
		Kind:      KindChat,
		Content:   content,
		Sender:    sender,
		Room:      room,
		Timestamp: at,
	}
}

// NewJoinMessage synthesizes the JOIN system message for a user entering a room.
func NewJoinMessage(username, room string, at time.Time) Message {
	return systemMessage(KindJoin, username, room,
		fmt.Sprintf("%s has joined the chat", username), at)
}

// NewLeaveMessage synthesizes the LEAVE system message for a user leaving a room.
func NewLeaveMessage(username, room string, at time.Time) Message {
	return systemMessage(KindLeave, username, room,
		fmt.Sprintf("%s has left the chat", username), at)
}

func systemMessage(kind Kind, sender, room, content string, at time.Time) Message {
	return Message{
		ID:        uuid.New(),
		Kind:      kind,
		Content:   content,
		Sender:    sender,
		Room:      room,
		Timestamp: at,
	}
}
