package submit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/websocket"
)

func statusServer(t *testing.T, handler func(conn *websocket.Conn)) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("Upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		handler(conn)
	}))
}

func TestWebSocketDialer_ReceivesMessage(t *testing.T) {
	var gotPath string
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		conn.WriteJSON(map[string]interface{}{
			"task_id": "t1",
			"status":  "SUCCESS",
			"result":  map[string]interface{}{"data": map[string]interface{}{"desc": "nice"}},
		})
		conn.ReadMessage() // block until the client closes
	}))
	defer server.Close()

	dialer := NewWebSocketDialer(server.URL)
	listener, err := dialer.Dial(context.Background(), "t1")
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer listener.Close()

	if gotPath != "/ws/task_status/t1" {
		t.Errorf("Expected channel scoped to the task ID, got path %s", gotPath)
	}

	msg, err := listener.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if msg.TaskID != "t1" || msg.Status != "SUCCESS" {
		t.Errorf("Unexpected message: %+v", msg)
	}
	if msg.Result == nil || msg.Result.Data == nil || msg.Result.Data.Desc != "nice" {
		t.Errorf("Unexpected result payload: %+v", msg.Result)
	}
}

func TestWebSocketDialer_MalformedMessage(t *testing.T) {
	server := statusServer(t, func(conn *websocket.Conn) {
		conn.WriteMessage(websocket.TextMessage, []byte("not json"))
		conn.ReadMessage()
	})
	defer server.Close()

	dialer := NewWebSocketDialer(server.URL)
	listener, err := dialer.Dial(context.Background(), "t1")
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer listener.Close()

	_, err = listener.Next()
	if !errors.Is(err, ErrMalformedMessage) {
		t.Errorf("Expected ErrMalformedMessage, got %v", err)
	}
}

func TestWebSocketDialer_ServerClose(t *testing.T) {
	server := statusServer(t, func(conn *websocket.Conn) {
		// Drop the connection without a terminal message
	})
	defer server.Close()

	dialer := NewWebSocketDialer(server.URL)
	listener, err := dialer.Dial(context.Background(), "t1")
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer listener.Close()

	if _, err := listener.Next(); err == nil {
		t.Error("Expected error when the channel closes while awaiting")
	}
}

func TestWebSocketDialer_BadEndpoint(t *testing.T) {
	dialer := NewWebSocketDialer("ftp://nope")
	if _, err := dialer.Dial(context.Background(), "t1"); err == nil {
		t.Error("Expected error for endpoint without http(s) scheme")
	}
}

func TestWebSocketListener_CloseIdempotent(t *testing.T) {
	server := statusServer(t, func(conn *websocket.Conn) {
		conn.ReadMessage()
	})
	defer server.Close()

	dialer := NewWebSocketDialer(server.URL)
	listener, err := dialer.Dial(context.Background(), "t1")
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}

	if err := listener.Close(); err != nil {
		t.Errorf("First close failed: %v", err)
	}
	if err := listener.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}
}
