package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"opticart/internal/domain"
)

func (c *Client) ListBookmarks(ctx context.Context, pageNum int) ([]domain.Bookmark, domain.Pagination, error) {
	q := url.Values{"page": {strconv.Itoa(pageNum)}}
	return getList[domain.Bookmark](ctx, c, "/bookmarks", q)
}

func (c *Client) AddBookmark(ctx context.Context, productID int) error {
	return c.do(ctx, "POST", "/bookmarks", nil, map[string]int{"productId": productID}, nil)
}

// RemoveBookmark deletes the bookmark record for one product id. A 404 means
// the record was already gone; callers decide whether that matters.
func (c *Client) RemoveBookmark(ctx context.Context, productID int) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/bookmarks/%d", productID), nil, nil, nil)
}
