package openapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Doer sends one HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// transport adds the bearer token and JSON content type to every request.
type transport struct {
	doer  Doer
	token string
}

type response struct {
	status int
	body   []byte
}

// send performs one round trip. GET requests carry no body.
func (t transport) send(ctx context.Context, method, target string, body []byte) (response, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return response{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.doer.Do(req)
	if err != nil {
		return response{}, &TransportError{Method: method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, &TransportError{Method: method, URL: target, Err: fmt.Errorf("read body: %w", err)}
	}
	return response{status: resp.StatusCode, body: b}, nil
}
