package backend

import (
	"context"
	"net/url"

	"opticart/internal/domain"
)

// page accepts every pagination field-name variant the API is known to emit
// (total vs totalUsers, page vs currentPage) and normalizes once, here, so
// call sites never shape-sniff.
type page struct {
	Total       int `json:"total"`
	TotalUsers  int `json:"totalUsers"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	Page        int `json:"page"`
	Limit       int `json:"limit"`
}

func (p page) normalize() domain.Pagination {
	total := p.Total
	if total == 0 {
		total = p.TotalUsers
	}
	cur := p.CurrentPage
	if cur == 0 {
		cur = p.Page
	}
	if cur == 0 {
		cur = 1
	}
	return domain.Pagination{
		Total:       total,
		TotalPages:  p.TotalPages,
		CurrentPage: cur,
		Limit:       p.Limit,
	}
}

type listEnvelope[T any] struct {
	Data       []T  `json:"data"`
	Pagination page `json:"pagination"`
}

func getList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, domain.Pagination, error) {
	var env listEnvelope[T]
	if err := c.do(ctx, "GET", path, query, nil, &env); err != nil {
		return nil, domain.Pagination{}, err
	}
	return env.Data, env.Pagination.normalize(), nil
}
