package submit

import (
	"context"

	"github.com/whydidisavethis/linksaver/internal/model"
)

// TaskSubmitter enqueues a URL for enrichment and returns the task ID.
// Implemented by api.Client.
type TaskSubmitter interface {
	SubmitURL(ctx context.Context, link string) (string, error)
}

// StatusListener yields inbound messages from one task status channel
type StatusListener interface {
	// Next blocks until a message arrives. It returns ErrMalformedMessage
	// (wrapped) when a message cannot be decoded, and the transport error
	// when the channel breaks.
	Next() (*model.StatusMessage, error)

	// Close shuts the channel down cleanly. Safe to call more than once.
	Close() error
}

// ChannelDialer opens a status channel scoped to a task ID
type ChannelDialer interface {
	Dial(ctx context.Context, taskID string) (StatusListener, error)
}

// Tracker defines the interface for the submission tracker
type Tracker interface {
	SetUpdateCallback(func(*model.SubmissionTask))
	Submit(link string) error
	SubmitShared(encodedLink string) error
	Busy() bool
	Current() *model.SubmissionTask
	CancelActive()
	Close()
}
