package model

import (
	"strings"
	"time"
)

// SubmissionTask represents a single link-enrichment attempt
type SubmissionTask struct {
	ID         string     // local attempt ID (uuid)
	URL        string     // the submitted link
	TaskID     string     // server-issued task identifier, empty until accepted
	Status     TaskStatus
	LastError  string     // last error message if any
	Result     *Autofill  // populated on success
	StartedAt  time.Time  // when the URL was submitted
	FinishedAt time.Time  // when the task reached a terminal state
}

// Autofill carries the enrichment payload applied to the add-item form
type Autofill struct {
	Notes               string
	Creator             string
	ImageURL            string
	SuggestedTags       []string
	SuggestedCategories []string
}

// CleanLabels drops blank entries from a suggestion list
func CleanLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// GetDisplayTitle returns the submitted URL without scheme noise for list rows
func (st *SubmissionTask) GetDisplayTitle() string {
	u := strings.TrimSpace(st.URL)
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	return u
}
