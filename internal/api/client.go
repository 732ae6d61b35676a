package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"
	"time"

	"gopkg.in/op/go-logging.v1"

	"supplyline/internal/domain"
)

const (
	// HeaderSessionID names the negotiated session on encrypted requests.
	HeaderSessionID = "X-Session-ID"

	maxBodyBytes = 4 << 20
)

// Client talks to the backend REST API.
type Client struct {
	Base string
	HTTP *http.Client

	log *logging.Logger

	mu    sync.RWMutex
	token string
}

// New returns a Client for base. A nil httpClient means http.DefaultClient.
func New(base string, httpClient *http.Client, l *logging.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if l == nil {
		l = logging.MustGetLogger("api")
	}
	return &Client{
		Base: strings.TrimRight(base, "/"),
		HTTP: httpClient,
		log:  l,
	}
}

// SetToken sets the bearer token sent with JSON requests; "" clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do runs a JSON request and decodes the envelope's data into out.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if tok := c.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	status, _, raw, err := c.roundTrip(req)
	if err != nil {
		return err
	}
	return decodeEnvelope(method, path, status, raw, out)
}

// doEncrypted seals in under cipher, posts it as text/plain and opens the reply.
func (c *Client) doEncrypted(
	ctx context.Context,
	cipher domain.SessionCipher,
	path string,
	in, out any,
) error {
	const method = http.MethodPost
	if cipher == nil {
		return fmt.Errorf("%s %s: %w", method, path, ErrNoSession)
	}

	plain, err := json.Marshal(in)
	if err != nil {
		return err
	}
	sealed, sid, err := cipher.EncryptWithSession(plain)
	if err != nil {
		if !cipher.IsInitialized() {
			return fmt.Errorf("%s %s: %w", method, path, ErrNoSession)
		}
		return fmt.Errorf("%s %s: encrypt: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, strings.NewReader(sealed))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Accept", "text/plain")
	req.Header.Set(HeaderSessionID, sid.String())

	status, contentType, raw, err := c.roundTrip(req)
	if err != nil {
		return err
	}

	if isJSON(contentType) {
		return decodeEnvelope(method, path, status, raw, out)
	}
	opened, err := cipher.Decrypt(string(bytes.TrimSpace(raw)))
	if err != nil {
		// Errors raised before the server could encrypt may arrive as a
		// plain envelope under any content type.
		if looksLikeEnvelope(raw) {
			return decodeEnvelope(method, path, status, raw, out)
		}
		if status/100 != 2 {
			return &APIError{Method: method, Path: path, StatusCode: status, Message: firstLine(raw)}
		}
		return fmt.Errorf("%s %s: decrypt response: %w: %v", method, path, ErrBadResponse, err)
	}
	return decodeEnvelope(method, path, status, opened, out)
}

// roundTrip sends req and returns status, content type and body.
func (c *Client) roundTrip(req *http.Request) (int, string, []byte, error) {
	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, "", nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, "", nil, fmt.Errorf("%s %s: read body: %w", req.Method, req.URL.Path, err)
	}
	c.log.Debugf("%s %s -> %d (%d bytes, %s)",
		req.Method, req.URL.Path, resp.StatusCode, len(raw), time.Since(start).Round(time.Millisecond))
	return resp.StatusCode, resp.Header.Get("Content-Type"), raw, nil
}

// decodeEnvelope turns a response body into out or an *APIError.
func decodeEnvelope(method, path string, status int, raw []byte, out any) error {
	var env domain.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if status/100 != 2 {
			return &APIError{Method: method, Path: path, StatusCode: status, Message: firstLine(raw)}
		}
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrBadResponse, err)
	}
	if status/100 != 2 || !env.OK() {
		return &APIError{Method: method, Path: path, StatusCode: status, Message: env.Message}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrBadResponse, err)
	}
	return nil
}

// looksLikeEnvelope reports whether raw parses as a JSON envelope with a status.
func looksLikeEnvelope(raw []byte) bool {
	var env domain.Envelope
	return json.Unmarshal(raw, &env) == nil && env.Status != ""
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "application/json"
}

func firstLine(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
