package model

// User represents the authenticated account and its saved items.
// Replaced wholesale on every profile fetch.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Items    []Item `json:"items,omitempty"`
}

// Item represents a saved bookmark record with optional enrichment metadata
type Item struct {
	ID         int64    `json:"id"`
	UserID     int64    `json:"user_id"`
	SourceURL  string   `json:"source_url,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
	Creator    string   `json:"creator,omitempty"`
	ImageURL   string   `json:"image_url,omitempty"`
}

// GetDisplayTitle returns notes, creator, or source URL in order of preference
func (it *Item) GetDisplayTitle() string {
	if it.Notes != "" {
		return it.Notes
	}
	if it.Creator != "" {
		return it.Creator
	}
	return it.SourceURL
}
