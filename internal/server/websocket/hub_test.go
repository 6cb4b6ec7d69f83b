package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/ainything/pkg/catalogs"
	"github.com/agentstation/ainything/pkg/logging"
	"github.com/agentstation/ainything/pkg/view"
)

func newSession() *view.Controller {
	loader := catalogs.LoaderFunc(func(context.Context) ([]catalogs.Model, error) {
		return catalogs.SampleModels(), nil
	})
	return view.New(loader, view.WithLogger(logging.NewNopLogger()))
}

func receive(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case m := <-c.send:
		return m
	case <-time.After(time.Second):
		t.Fatal("no message queued")
		return Message{}
	}
}

func TestHub_NewHub(t *testing.T) {
	hub := NewHub(logging.NewNopLogger())

	require.NotNil(t, hub)
	assert.NotNil(t, hub.clients)
	assert.NotNil(t, hub.register)
	assert.NotNil(t, hub.unregister)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub(logging.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := NewClient("test-1", hub, nil, newSession())
	require.True(t, hub.Register(client))
	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Unregister(client)
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)

	select {
	case <-client.Done():
	case <-time.After(time.Second):
		t.Fatal("client not released after unregister")
	}
}

func TestHub_ShutdownClosesSessions(t *testing.T) {
	hub := NewHub(logging.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	client := NewClient("test-1", hub, nil, newSession())
	require.True(t, hub.Register(client))
	cancel()

	select {
	case <-hub.done:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}

	select {
	case <-client.Done():
	default:
		t.Fatal("client not released on shutdown")
	}
	assert.False(t, hub.Register(NewClient("late", hub, nil, newSession())), "register after stop")
	hub.Unregister(client) // must not block
}

func TestClient_StartSendsSnapshot(t *testing.T) {
	hub := NewHub(logging.NewNopLogger())
	client := NewClient("c", hub, nil, newSession())

	client.Start(context.Background(), "#model=Claude")

	msg := receive(t, client)
	assert.Equal(t, TypeSnapshot, msg.Type)
	snap, ok := msg.Data.(view.Snapshot)
	require.True(t, ok)
	assert.True(t, snap.Loaded)
	assert.Equal(t, view.ModeDetail, snap.Mode)
	require.NotNil(t, snap.Detail)
	assert.Equal(t, "Claude", snap.Detail.Name)
}

func TestClient_Handle(t *testing.T) {
	hub := NewHub(logging.NewNopLogger())
	client := NewClient("c", hub, nil, newSession())
	ctx := context.Background()
	client.Start(ctx, "")
	receive(t, client)

	client.Handle(ctx, []byte(`{"type":"search_submitted","input":"  openai "}`))
	msg := receive(t, client)
	snap := msg.Data.(view.Snapshot)
	assert.Equal(t, "openai", snap.Query)
	assert.Len(t, snap.Results, 2)

	client.Handle(ctx, []byte(`{"type":"model_selected","name":"Nope"}`))
	snap = receive(t, client).Data.(view.Snapshot)
	assert.Equal(t, `Model "Nope" not found`, snap.Notice)
	assert.Equal(t, view.ModeList, snap.Mode)

	client.Handle(ctx, []byte(`{"type":"bogus"}`))
	msg = receive(t, client)
	assert.Equal(t, TypeError, msg.Type)
	assert.Contains(t, msg.Data.(ErrorData).Message, "unknown action")
}

func TestClient_PushDropsWhenFull(t *testing.T) {
	hub := NewHub(logging.NewNopLogger())
	client := NewClient("c", hub, nil, newSession())

	for i := 0; i < cap(client.send)+5; i++ {
		client.push(Message{Type: TypeSnapshot})
	}
	assert.Len(t, client.send, cap(client.send))
}

func TestClient_PushAfterClose(t *testing.T) {
	hub := NewHub(logging.NewNopLogger())
	client := NewClient("c", hub, nil, newSession())
	client.close()
	client.close()

	client.push(Message{Type: TypeSnapshot})
	assert.Empty(t, client.send, "released clients queue nothing")
}

func TestClient_PushDuringShutdown(t *testing.T) {
	hub := NewHub(logging.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	client := NewClient("c", hub, nil, newSession())
	require.True(t, hub.Register(client))

	stop := make(chan struct{})
	pushed := make(chan struct{})
	go func() {
		defer close(pushed)
		for {
			select {
			case <-stop:
				return
			default:
			}
			client.push(Message{Type: TypeSnapshot})
			select {
			case <-client.send:
			default:
			}
		}
	}()

	cancel()
	<-client.Done()
	close(stop)
	<-pushed

	client.push(Message{Type: TypeSnapshot})
	assert.Empty(t, client.send)
}
