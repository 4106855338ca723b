//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"chat-rooms/broadcast"
	"chat-rooms/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IRoomRegistry is the shared room/member store.
type IRoomRegistry interface {
	EnsureRoom(name string) *domain.Room
	Lookup(name string) (*domain.Room, bool)
	AddMember(room, username string)
	RemoveMember(room, username string)
	IsUsernameTaken(username string) bool
	Occupancy() map[string]int
}

// IBroadcaster is the shared per-room multicast publish point.
type IBroadcaster interface {
	EnsureChannel(room string) *broadcast.Channel
	Publish(room string, msg domain.Message)
	Subscribe(room string) *broadcast.Subscription
	Has(room string) bool
}

// INameAllocator resolves requested usernames into unique ones.
type INameAllocator interface {
	Allocate(requested string) string
}

// IChatService is the boundary consumed by the transport layer.
type IChatService interface {
	Join(req domain.JoinRequest) domain.JoinRequest
	Leave(req domain.JoinRequest)
	Send(msg domain.Message)
	Subscribe(req domain.JoinRequest) *broadcast.Subscription
}
