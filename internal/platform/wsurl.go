package platform

import (
	"fmt"
	"strings"
)

// TaskStatusURL derives the task status channel address from the backend
// endpoint: https becomes wss, http becomes ws.
func TaskStatusURL(baseEndpoint, taskID string) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(baseEndpoint), "/")
	switch {
	case strings.HasPrefix(base, "https://"):
		base = "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		base = "ws://" + strings.TrimPrefix(base, "http://")
	default:
		return "", fmt.Errorf("backend endpoint %q has no http(s) scheme", baseEndpoint)
	}
	return base + "/ws/task_status/" + taskID, nil
}
