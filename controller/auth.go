package controller

import (
	"context"
	"fmt"
)

func (c *controller) Login(ctx context.Context, username, password string) (string, error) {
	token, err := c.api.Login(ctx, username, password)
	if err != nil {
		return "", fmt.Errorf("error logging in: %w", err)
	}
	return token, nil
}

// CheckAuth validates the token carried on the context against the upstream
// API. Callers treat trackerapi.ErrUnauthorized as a signal to clear the
// token and re-authenticate.
func (c *controller) CheckAuth(ctx context.Context) error {
	return c.api.Check(ctx)
}
