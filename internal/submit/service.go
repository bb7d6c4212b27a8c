package submit

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/whydidisavethis/linksaver/internal/model"
)

var (
	// ErrBusy is returned when a submission is already in flight.
	// New requests are rejected outright, never queued.
	ErrBusy = errors.New("another link is already being processed")

	// ErrEmptyURL is returned for blank input before any network call
	ErrEmptyURL = errors.New("a non-empty link is required")

	// ErrClosed is returned after the tracker was torn down
	ErrClosed = errors.New("submission tracker is closed")

	// ErrMalformedMessage wraps status messages that fail to decode
	ErrMalformedMessage = errors.New("malformed status message")
)

// Service handles link submissions
type Service struct {
	submitter TaskSubmitter
	dialer    ChannelDialer

	mu         sync.Mutex
	current    *model.SubmissionTask
	listener   StatusListener
	gen        int // bumped per submission and on Close; stale goroutines bail out
	closed     bool
	lastShared string // encoded value of the last consumed share link
	onUpdate   func(*model.SubmissionTask)
}

// NewService creates a new submission tracker
func NewService(submitter TaskSubmitter, dialer ChannelDialer) *Service {
	return &Service{submitter: submitter, dialer: dialer}
}

// SetUpdateCallback sets the callback function for task updates.
// The callback receives a snapshot and may run on any goroutine.
func (s *Service) SetUpdateCallback(callback func(*model.SubmissionTask)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Busy reports whether a submission is in flight
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil && s.current.Status.IsActive()
}

// Current returns a snapshot of the latest submission attempt, or nil
func (s *Service) Current() *model.SubmissionTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	snapshot := *s.current
	return &snapshot
}

// Submit posts a URL for enrichment. Blank URLs and concurrent submissions
// are rejected locally without any network traffic.
func (s *Service) Submit(link string) error {
	link = strings.TrimSpace(link)
	if link == "" {
		return ErrEmptyURL
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.current != nil && s.current.Status.IsActive() {
		s.mu.Unlock()
		log.Printf("submit: rejecting %q, task %s still in flight", link, s.current.ID)
		return ErrBusy
	}

	task := &model.SubmissionTask{
		ID:        newAttemptID(),
		URL:       link,
		Status:    model.TaskStatusSubmitting,
		StartedAt: time.Now(),
	}
	s.current = task
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	log.Printf("submit: submitting %q (attempt %s)", link, task.ID)
	s.notify(task)

	go s.run(task, gen)
	return nil
}

// SubmitShared handles an externally supplied, percent-encoded link from a
// share-sheet hand-off. Each distinct encoded value is consumed exactly once;
// a repeat delivery of the same value is a no-op.
func (s *Service) SubmitShared(encodedLink string) error {
	if encodedLink == "" {
		return ErrEmptyURL
	}

	s.mu.Lock()
	if encodedLink == s.lastShared {
		s.mu.Unlock()
		log.Printf("submit: shared link already consumed, ignoring")
		return nil
	}
	s.lastShared = encodedLink
	s.mu.Unlock()

	decoded, err := url.QueryUnescape(encodedLink)
	if err != nil {
		return fmt.Errorf("decode shared link: %w", err)
	}
	return s.Submit(decoded)
}

// CancelActive abandons the in-flight submission, if any: its channel is
// closed and none of its further updates are delivered. The tracker stays
// usable for new submissions. Called when the owning screen goes away.
func (s *Service) CancelActive() {
	s.mu.Lock()
	s.gen++
	listener := s.listener
	s.listener = nil
	s.current = nil
	s.mu.Unlock()

	if listener != nil {
		listener.Close()
	}
}

// Close tears the tracker down for good on app exit: the open channel is
// closed, no further state updates are delivered, and new submissions are
// rejected with ErrClosed. An in-flight HTTP submission is allowed to
// complete but its result is discarded.
func (s *Service) Close() {
	s.mu.Lock()
	s.closed = true
	s.gen++
	listener := s.listener
	s.listener = nil
	s.mu.Unlock()

	if listener != nil {
		listener.Close()
	}
}

// run performs one submission attempt end to end
func (s *Service) run(task *model.SubmissionTask, gen int) {
	ctx := context.Background()

	taskID, err := s.submitter.SubmitURL(ctx, task.URL)
	if err != nil {
		s.fail(task, gen, fmt.Sprintf("could not submit link: %v", err))
		return
	}

	listener, err := s.dialer.Dial(ctx, taskID)
	if err != nil {
		s.fail(task, gen, fmt.Sprintf("could not open status channel: %v", err))
		return
	}

	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		listener.Close()
		return
	}
	// Replace any previous channel; a new submission supersedes it
	if s.listener != nil {
		s.listener.Close()
	}
	s.listener = listener
	task.TaskID = taskID
	task.Status = model.TaskStatusAwaiting
	s.mu.Unlock()

	log.Printf("submit: task %s accepted, awaiting status for %s", task.ID, taskID)
	s.notify(task)

	s.await(task, gen, listener)
}

// await consumes the status channel until the first terminal message
func (s *Service) await(task *model.SubmissionTask, gen int, listener StatusListener) {
	for {
		msg, err := listener.Next()
		if err != nil {
			if s.stale(gen) {
				// Deliberate teardown, not a channel failure
				return
			}
			listener.Close()
			if errors.Is(err, ErrMalformedMessage) {
				s.fail(task, gen, "received an invalid message from the server")
			} else {
				s.fail(task, gen, fmt.Sprintf("status channel failed: %v", err))
			}
			return
		}

		// Stale-channel guard: a stray message for another task is ignored
		if msg.TaskID != task.TaskID {
			log.Printf("submit: ignoring message for task %s while tracking %s", msg.TaskID, task.TaskID)
			continue
		}
		if !model.IsTerminalStatus(msg.Status) {
			continue
		}

		// First terminal message wins; close before applying so duplicate
		// terminal messages cannot double-apply state
		listener.Close()

		if model.IsSuccessStatus(msg.Status) {
			var data *model.TaskData
			if msg.Result != nil {
				data = msg.Result.Data
			}
			if autofill := data.Autofill(); autofill != nil {
				s.succeed(task, gen, autofill)
				return
			}
			// SUCCESS status carrying a task-level error or no data at all
			s.fail(task, gen, taskFailureMessage(msg))
			return
		}

		s.fail(task, gen, taskFailureMessage(msg))
		return
	}
}

// succeed finishes the attempt with an autofill payload
func (s *Service) succeed(task *model.SubmissionTask, gen int, autofill *model.Autofill) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	task.Status = model.TaskStatusSucceeded
	task.Result = autofill
	task.FinishedAt = time.Now()
	s.listener = nil
	s.mu.Unlock()

	log.Printf("submit: task %s succeeded", task.ID)
	s.notify(task)
}

// fail finishes the attempt with an error message
func (s *Service) fail(task *model.SubmissionTask, gen int, message string) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	task.Status = model.TaskStatusFailed
	task.LastError = message
	task.FinishedAt = time.Now()
	s.listener = nil
	s.mu.Unlock()

	log.Printf("submit: task %s failed: %s", task.ID, message)
	s.notify(task)
}

// stale reports whether gen no longer identifies the active submission
func (s *Service) stale(gen int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed || gen != s.gen
}

// notify delivers a snapshot to the update callback if one is set
func (s *Service) notify(task *model.SubmissionTask) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		snapshot := *task
		callback(&snapshot)
	}
}

// taskFailureMessage extracts the most specific failure text from a terminal
// message
func taskFailureMessage(msg *model.StatusMessage) string {
	if msg.Result != nil {
		if msg.Result.Data != nil && msg.Result.Data.Error != "" {
			return fmt.Sprintf("the processing task failed: %s", msg.Result.Data.Error)
		}
		if msg.Result.Error != "" {
			return fmt.Sprintf("the processing task failed: %s", msg.Result.Error)
		}
	}
	if model.IsSuccessStatus(msg.Status) {
		return "processing completed but the result format is unexpected"
	}
	return fmt.Sprintf("the processing task ended with status %s", msg.Status)
}

// newAttemptID generates a unique submission attempt ID
func newAttemptID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
