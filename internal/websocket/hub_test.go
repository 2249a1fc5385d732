package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jteo/listify-backend/internal/app/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForMessage(t *testing.T, ch chan []byte) []byte {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for hub message")
		return nil
	}
}

func registeredClient(t *testing.T, hub *Hub, sessionID string) *Client {
	t.Helper()
	client := &Client{
		Hub:       hub,
		SessionID: sessionID,
		Send:      make(chan []byte, 16),
	}
	hub.Register(client)

	require.Eventually(t, func() bool {
		return hub.IsSessionConnected(sessionID)
	}, time.Second, 10*time.Millisecond)
	return client
}

func TestHub_NotifyProgress_ReachesSessionClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	mine := registeredClient(t, hub, "s1")
	secondTab := registeredClient(t, hub, "s1")
	other := registeredClient(t, hub, "s2")

	slug := "business-address"
	hub.NotifyProgress("s1", service.ProgressSnapshot{
		Steps:               map[string]bool{"business-information": true},
		FirstIncompleteStep: &slug,
	})

	for _, client := range []*Client{mine, secondTab} {
		var event struct {
			Type     string                   `json:"type"`
			Progress service.ProgressSnapshot `json:"progress"`
		}
		require.NoError(t, json.Unmarshal(waitForMessage(t, client.Send), &event))
		assert.Equal(t, "progress", event.Type)
		assert.True(t, event.Progress.Steps["business-information"])
		require.NotNil(t, event.Progress.FirstIncompleteStep)
		assert.Equal(t, "business-address", *event.Progress.FirstIncompleteStep)
	}

	// The other session sees nothing.
	select {
	case msg := <-other.Send:
		t.Fatalf("unexpected message for other session: %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_Unregister_ClosesSendChannel(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := registeredClient(t, hub, "s1")
	hub.Unregister(client)

	require.Eventually(t, func() bool {
		return !hub.IsSessionConnected("s1")
	}, time.Second, 10*time.Millisecond)

	_, open := <-client.Send
	assert.False(t, open)
}

func TestHub_Unregister_TwiceKeepsHubAlive(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	slow := registeredClient(t, hub, "s1")
	survivor := registeredClient(t, hub, "s1")

	// Both pumps tear down the same client; the second unregister must
	// not re-close the channel or kill the hub loop.
	hub.Unregister(slow)
	hub.Unregister(slow)

	select {
	case _, open := <-slow.Send:
		require.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}

	hub.NotifyProgress("s1", service.ProgressSnapshot{Complete: true})

	var event struct {
		Type     string                   `json:"type"`
		Progress service.ProgressSnapshot `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(waitForMessage(t, survivor.Send), &event))
	assert.True(t, event.Progress.Complete)
	assert.True(t, hub.IsSessionConnected("s1"))
}

func TestHub_NotifyProgress_NoClientsIsSilent(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// Must not panic or block.
	hub.NotifyProgress("nobody", service.ProgressSnapshot{Complete: true})
}
