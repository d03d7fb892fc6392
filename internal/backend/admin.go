package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"opticart/internal/domain"
)

// Admin mirrors of the public endpoints. The server enforces the ADMIN role;
// the client just routes through the same gateway so the headers are right.

func (c *Client) AdminListUsers(ctx context.Context, pageNum int) ([]domain.User, domain.Pagination, error) {
	q := url.Values{"page": {strconv.Itoa(pageNum)}}
	return getList[domain.User](ctx, c, "/admin/users", q)
}

func (c *Client) AdminDeleteUser(ctx context.Context, userID int) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/admin/users/%d", userID), nil, nil, nil)
}

type CategoryInput struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func (c *Client) AdminCreateCategory(ctx context.Context, in CategoryInput) error {
	return c.do(ctx, "POST", "/admin/categories", nil, in, nil)
}

func (c *Client) AdminUpdateCategory(ctx context.Context, id int, in CategoryInput) error {
	return c.do(ctx, "PUT", fmt.Sprintf("/admin/categories/%d", id), nil, in, nil)
}

func (c *Client) AdminDeleteCategory(ctx context.Context, id int) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/admin/categories/%d", id), nil, nil, nil)
}

type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Color       string   `json:"color"`
	Material    string   `json:"material"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock"`
}

func (c *Client) AdminCreateProduct(ctx context.Context, in ProductInput) error {
	return c.do(ctx, "POST", "/admin/products", nil, in, nil)
}

func (c *Client) AdminUpdateProduct(ctx context.Context, id int, in ProductInput) error {
	return c.do(ctx, "PUT", fmt.Sprintf("/admin/products/%d", id), nil, in, nil)
}

func (c *Client) AdminDeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/admin/products/%d", id), nil, nil, nil)
}

func (c *Client) AdminListInquiries(ctx context.Context, pageNum int) ([]domain.Inquiry, domain.Pagination, error) {
	q := url.Values{"page": {strconv.Itoa(pageNum)}}
	return getList[domain.Inquiry](ctx, c, "/admin/inquiries", q)
}

func (c *Client) AdminAnswerInquiry(ctx context.Context, id int, answer string) error {
	body := map[string]string{"answer": answer}
	return c.do(ctx, "POST", fmt.Sprintf("/admin/inquiries/%d/answer", id), nil, body, nil)
}
