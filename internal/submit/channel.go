package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/whydidisavethis/linksaver/internal/model"
	"github.com/whydidisavethis/linksaver/internal/platform"
)

// closeWriteWait bounds the close handshake on teardown
const closeWriteWait = time.Second

// WebSocketDialer opens task status channels against the backend endpoint
type WebSocketDialer struct {
	endpoint string
	dialer   *websocket.Dialer
}

// NewWebSocketDialer creates a dialer for the given backend base endpoint
func NewWebSocketDialer(endpoint string) *WebSocketDialer {
	return &WebSocketDialer{endpoint: endpoint, dialer: websocket.DefaultDialer}
}

// Dial connects to the status channel scoped to taskID
func (d *WebSocketDialer) Dial(ctx context.Context, taskID string) (StatusListener, error) {
	statusURL, err := platform.TaskStatusURL(d.endpoint, taskID)
	if err != nil {
		return nil, err
	}

	conn, resp, err := d.dialer.DialContext(ctx, statusURL, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, fmt.Errorf("dial %s: %w", statusURL, err)
	}
	if resp != nil {
		resp.Body.Close()
	}

	log.Printf("submit: status channel open for task %s", taskID)
	return &wsListener{conn: conn}, nil
}

// wsListener reads status messages from one websocket connection
type wsListener struct {
	conn      *websocket.Conn
	closeOnce sync.Once
	closeErr  error
}

// Next blocks until a message arrives and decodes it
func (l *wsListener) Next() (*model.StatusMessage, error) {
	_, data, err := l.conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	var msg model.StatusMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	return &msg, nil
}

// Close performs a normal closure handshake and drops the connection
func (l *wsListener) Close() error {
	l.closeOnce.Do(func() {
		deadline := time.Now().Add(closeWriteWait)
		l.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		l.closeErr = l.conn.Close()
	})
	return l.closeErr
}
