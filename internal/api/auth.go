package api

import (
	"context"
	"net/http"

	"supplyline/internal/domain"
)

const (
	loginPath    = "/api/auth/login"
	registerPath = "/api/auth/register"
)

// Login authenticates with a plaintext JSON body.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.AuthResult, error) {
	var out domain.AuthResult
	err := c.do(ctx, http.MethodPost, loginPath, creds, &out)
	return out, err
}

// Register creates an account with a plaintext JSON body.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.AuthResult, error) {
	var out domain.AuthResult
	err := c.do(ctx, http.MethodPost, registerPath, reg, &out)
	return out, err
}

// LoginEncrypted authenticates over the encrypted text/plain channel.
func (c *Client) LoginEncrypted(
	ctx context.Context,
	cipher domain.SessionCipher,
	creds domain.Credentials,
) (domain.AuthResult, error) {
	var out domain.AuthResult
	err := c.doEncrypted(ctx, cipher, loginPath, creds, &out)
	return out, err
}

// RegisterEncrypted creates an account over the encrypted text/plain channel.
func (c *Client) RegisterEncrypted(
	ctx context.Context,
	cipher domain.SessionCipher,
	reg domain.Registration,
) (domain.AuthResult, error) {
	var out domain.AuthResult
	err := c.doEncrypted(ctx, cipher, registerPath, reg, &out)
	return out, err
}
