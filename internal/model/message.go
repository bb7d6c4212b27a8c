package model

// StatusMessage is one inbound JSON message on the task status channel
type StatusMessage struct {
	TaskID string      `json:"task_id"`
	Status string      `json:"status"`
	Result *TaskResult `json:"result,omitempty"`
}

// TaskResult is the result envelope of a terminal status message
type TaskResult struct {
	Data  *TaskData `json:"data,omitempty"`
	Error string    `json:"error,omitempty"`
}

// TaskData carries the enrichment fields extracted by the backend.
// Field names follow the backend payload verbatim.
type TaskData struct {
	Desc                  string   `json:"desc"`
	Creator               string   `json:"creator"`
	R2ImageURL            string   `json:"r2ImageUrl"`
	SuggestedWords        []string `json:"suggestedWords"`
	DiversificationLabels []string `json:"diversificationLabels"`
	Error                 string   `json:"error,omitempty"`
}

// Autofill converts clean task data into the form payload, filtering blank
// suggestions. Returns nil when the data itself reports an error.
func (d *TaskData) Autofill() *Autofill {
	if d == nil || d.Error != "" {
		return nil
	}
	return &Autofill{
		Notes:               d.Desc,
		Creator:             d.Creator,
		ImageURL:            d.R2ImageURL,
		SuggestedTags:       CleanLabels(d.SuggestedWords),
		SuggestedCategories: CleanLabels(d.DiversificationLabels),
	}
}
