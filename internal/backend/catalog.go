package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"opticart/internal/domain"
)

type ProductQuery struct {
	Page     int
	Limit    int
	Category string
	Sort     string
	Keyword  string
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Keyword != "" {
		v.Set("keyword", q.Keyword)
	}
	return v
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	cats, _, err := getList[domain.Category](ctx, c, "/categories", nil)
	return cats, err
}

func (c *Client) CategoryProducts(ctx context.Context, path string, pageNum int) ([]domain.Product, domain.Pagination, error) {
	q := url.Values{"page": {strconv.Itoa(pageNum)}}
	return getList[domain.Product](ctx, c, "/categories/"+url.PathEscape(path), q)
}

func (c *Client) ListProducts(ctx context.Context, query ProductQuery) ([]domain.Product, domain.Pagination, error) {
	return getList[domain.Product](ctx, c, "/products", query.values())
}

func (c *Client) GetProduct(ctx context.Context, productID int) (domain.Product, error) {
	var p domain.Product
	if err := c.do(ctx, "GET", fmt.Sprintf("/products/%d", productID), nil, nil, &p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}
