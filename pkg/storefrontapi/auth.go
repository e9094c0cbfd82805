package storefrontapi

import (
	"context"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	"github.com/go-resty/resty/v2"
)

func (c *Client) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	resp, err := c.do(ctx, "auth.register", func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(req).Post("/auth/register")
	})
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := decode(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// RequestOTP asks the auth service to text a one-time code to phone.
func (c *Client) RequestOTP(ctx context.Context, phone string) error {
	_, err := c.do(ctx, "auth.otp", func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(models.RequestOTPRequest{Phone: phone}).Post("/auth/otp")
	})
	return err
}

func (c *Client) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.VerifyOTPResult, error) {
	resp, err := c.do(ctx, "auth.otp.verify", func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(req).Post("/auth/otp/verify")
	})
	if err != nil {
		return nil, err
	}

	var result models.VerifyOTPResult
	if err := decode(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	resp, err := c.do(ctx, "auth.me", func(r *resty.Request) (*resty.Response, error) {
		return r.SetAuthToken(token).Get("/auth/me")
	})
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := decode(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
