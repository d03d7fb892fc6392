package backend

import (
	"context"

	"opticart/internal/domain"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, "POST", "/auth/register", nil, req, nil)
}

// Login exchanges credentials for a bearer token and the user record. The
// client does not inspect or store credentials beyond this call.
func (c *Client) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := c.do(ctx, "POST", "/auth/login", nil, body, &resp); err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User, nil
}

type ProfileUpdate struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, "PUT", "/users/profile", nil, upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
