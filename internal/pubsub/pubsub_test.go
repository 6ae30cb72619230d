package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeting struct {
	Text string `json:"text"`
}

func TestWatermillBridge_RoundTrip(t *testing.T) {
	bridge := NewWatermillBridge()
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	require.NoError(t, bridge.Subscribe(ctx, "test.topic", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	}))

	require.NoError(t, bridge.Publish(ctx, Message{
		Topic:    "test.topic",
		Actor:    "session-1",
		Payload:  []byte("hello"),
		Metadata: map[string]string{"request_id": "r1"},
	}))

	select {
	case msg := <-received:
		assert.Equal(t, "test.topic", msg.Topic)
		assert.Equal(t, "session-1", msg.Actor)
		assert.Equal(t, []byte("hello"), msg.Payload)
		assert.Equal(t, map[string]string{"request_id": "r1"}, msg.Metadata)
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
}

func TestTypedEvent(t *testing.T) {
	bridge := NewWatermillBridge()
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := NewEvent[greeting]("test.greeting", "a greeting was sent")
	assert.Equal(t, "test.greeting", event.Name())
	assert.Equal(t, "a greeting was sent", event.Description())

	received := make(chan greeting, 2)
	require.NoError(t, Subscribe(ctx, bridge, event, func(ctx context.Context, g greeting) error {
		received <- g
		return nil
	}))

	// A malformed payload is logged and dropped; the next one still arrives.
	require.NoError(t, bridge.Publish(ctx, Message{Topic: "test.greeting", Payload: []byte("{")}))
	require.NoError(t, Publish(ctx, bridge, event, greeting{Text: "hi"}))

	select {
	case g := <-received:
		assert.Equal(t, "hi", g.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("typed event was not delivered")
	}
}
