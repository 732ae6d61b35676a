package api

import (
	"context"
	"net/http"

	"supplyline/internal/domain"
)

// FetchServerPublicKey returns the backend's base64 ECDH public key.
func (c *Client) FetchServerPublicKey(ctx context.Context) (string, error) {
	var out domain.ServerKeyResponse
	if err := c.do(ctx, http.MethodGet, "/api/key-exchange/public-key", nil, &out); err != nil {
		return "", err
	}
	return out.PublicKey, nil
}

// ExchangeKeys posts our public key and returns the session id issued for it.
func (c *Client) ExchangeKeys(ctx context.Context, clientPublicKey string) (domain.SessionID, error) {
	var out domain.KeyExchangeResponse
	in := domain.KeyExchangeRequest{ClientPublicKey: clientPublicKey}
	if err := c.do(ctx, http.MethodPost, "/api/key-exchange", in, &out); err != nil {
		return "", err
	}
	return out.SessionID, nil
}
