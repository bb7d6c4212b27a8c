package model

// TaskStatus represents the client-side status of a submission task
type TaskStatus string

const (
	// TaskStatusPending means the task was created but not submitted yet
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusSubmitting means the URL is being posted to the backend
	TaskStatusSubmitting TaskStatus = "Submitting"

	// TaskStatusAwaiting means a task ID was issued and the status channel is open
	TaskStatusAwaiting TaskStatus = "Awaiting"

	// TaskStatusSucceeded means the enrichment task finished with usable data
	TaskStatusSucceeded TaskStatus = "Succeeded"

	// TaskStatusFailed means the task failed, the result was malformed, or the
	// channel broke while awaiting
	TaskStatusFailed TaskStatus = "Failed"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task still occupies the tracker
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusSubmitting || ts == TaskStatusAwaiting
}

// IsTerminal returns true if the task reached a final state
func (ts TaskStatus) IsTerminal() bool {
	return ts == TaskStatusSucceeded || ts == TaskStatusFailed
}

// Wire statuses pushed by the backend over the task status channel.
const (
	WireStatusPending    = "PENDING"
	WireStatusStarted    = "STARTED"
	WireStatusSuccess    = "SUCCESS"
	WireStatusSuccessful = "SUCCESSFUL"
	WireStatusFailure    = "FAILURE"
	WireStatusFailed     = "FAILED"
	WireStatusError      = "ERROR"
	WireStatusUnknown    = "UNKNOWN_STATUS"
)

// IsSuccessStatus reports whether a wire status is a success variant
func IsSuccessStatus(s string) bool {
	return s == WireStatusSuccess || s == WireStatusSuccessful
}

// IsFailureStatus reports whether a wire status is a failure or error variant
func IsFailureStatus(s string) bool {
	switch s {
	case WireStatusFailure, WireStatusFailed, WireStatusError, WireStatusUnknown:
		return true
	}
	return false
}

// IsTerminalStatus reports whether a wire status ends the task
func IsTerminalStatus(s string) bool {
	return IsSuccessStatus(s) || IsFailureStatus(s)
}
