package broadcast

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"chat-rooms/domain"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelDebug)
}

func chat(content string) domain.Message {
	return domain.NewChatMessage(content, "Alice", "testRoom", time.Now().UTC())
}

func TestChannel_Publish_AllSubscribersSeeSameOrder(t *testing.T) {
	req := require.New(t)
	reg := NewChannelRegistry(testLogger(), 16)
	ch := reg.EnsureChannel("testRoom")

	// Given three independent subscribers
	subs := []*Subscription{ch.Subscribe(16), ch.Subscribe(16), ch.Subscribe(16)}

	// When a few messages are published
	contents := []string{"one", "two", "three"}
	for _, c := range contents {
		ch.Publish(chat(c))
	}

	// Then every subscriber observes all of them, in publish order
	for _, sub := range subs {
		for _, want := range contents {
			select {
			case got := <-sub.C():
				req.Equal(want, got.Content)
			case <-time.After(time.Second):
				req.Fail("subscriber did not receive message in time")
			}
		}
	}
}

func TestChannel_Publish_SlowSubscriberDoesNotBlockOthers(t *testing.T) {
	req := require.New(t)
	reg := NewChannelRegistry(testLogger(), 1)
	ch := reg.EnsureChannel("testRoom")

	// Given a subscriber whose buffer holds a single message and one healthy peer
	slow := ch.Subscribe(1)
	healthy := ch.Subscribe(16)

	// When more messages than the slow buffer can hold are published
	ch.Publish(chat("one"))
	ch.Publish(chat("two"))
	ch.Publish(chat("three"))

	// Then the healthy subscriber still got everything
	for _, want := range []string{"one", "two", "three"} {
		select {
		case got := <-healthy.C():
			req.Equal(want, got.Content)
		case <-time.After(time.Second):
			req.Fail("healthy subscriber starved by slow peer")
		}
	}

	// And the slow one kept the oldest buffered message, overflow was dropped
	got := <-slow.C()
	req.Equal("one", got.Content)
	req.Empty(slow.C())
}

func TestSubscription_Close_DetachesOnlyItself(t *testing.T) {
	req := require.New(t)
	reg := NewChannelRegistry(testLogger(), 16)
	ch := reg.EnsureChannel("testRoom")

	first := ch.Subscribe(16)
	second := ch.Subscribe(16)
	req.Equal(2, ch.SubscriberCount())

	// When one subscriber drops interest (twice, Close is idempotent)
	first.Close()
	first.Close()

	// Then only the other keeps receiving
	req.Equal(1, ch.SubscriberCount())
	ch.Publish(chat("after close"))

	select {
	case got := <-second.C():
		req.Equal("after close", got.Content)
	case <-time.After(time.Second):
		req.Fail("remaining subscriber did not receive message")
	}

	// And the closed stream terminates instead of delivering
	_, open := <-first.C()
	req.False(open)
}

func TestChannel_Subscribe_OnlySeesMessagesAfterSubscription(t *testing.T) {
	req := require.New(t)
	reg := NewChannelRegistry(testLogger(), 16)
	ch := reg.EnsureChannel("testRoom")

	ch.Publish(chat("before"))
	sub := ch.Subscribe(16)
	ch.Publish(chat("after"))

	got := <-sub.C()
	req.Equal("after", got.Content)
	req.Empty(sub.C())
}

func TestChannel_ConcurrentPublishAndClose(t *testing.T) {
	reg := NewChannelRegistry(testLogger(), 4)
	ch := reg.EnsureChannel("testRoom")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		sub := ch.Subscribe(4)
		wg.Add(2)
		go func() {
			defer wg.Done()
			ch.Publish(chat("contended"))
		}()
		go func() {
			defer wg.Done()
			sub.Close()
		}()
	}
	wg.Wait()

	require.Equal(t, 0, ch.SubscriberCount())
}
