package api

import (
	"context"

	"github.com/whydidisavethis/linksaver/internal/model"
)

// ItemFeed pages through a user's items. A page shorter than the limit marks
// the feed exhausted; Next never issues another call after that.
type ItemFeed struct {
	client *Client
	userID int64
	query  string
	limit  int

	offset  int
	hasMore bool
}

// NewItemFeed creates a feed for one user and search query
func NewItemFeed(client *Client, userID int64, query string, limit int) *ItemFeed {
	if limit < 1 {
		limit = 1
	}
	return &ItemFeed{
		client:  client,
		userID:  userID,
		query:   query,
		limit:   limit,
		hasMore: true,
	}
}

// HasMore reports whether another page may exist
func (f *ItemFeed) HasMore() bool {
	return f.hasMore
}

// Next fetches the next page. An exhausted feed returns an empty page
// without touching the network.
func (f *ItemFeed) Next(ctx context.Context) ([]model.Item, error) {
	if !f.hasMore {
		return nil, nil
	}

	items, err := f.client.FetchUserItems(ctx, f.userID, f.query, f.offset, f.limit)
	if err != nil {
		return nil, err
	}

	f.offset += len(items)
	if len(items) < f.limit {
		f.hasMore = false
	}
	return items, nil
}
