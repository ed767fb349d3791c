package openapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type captured struct {
	Method string
	Path   string
	Query  string
	Body   string
	Header http.Header
}

type recorder struct {
	mu   sync.Mutex
	reqs []captured
}

func (r *recorder) add(req *http.Request) {
	b, _ := io.ReadAll(req.Body)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reqs = append(r.reqs, captured{
		Method: req.Method,
		Path:   req.URL.Path,
		Query:  req.URL.RawQuery,
		Body:   string(b),
		Header: req.Header.Clone(),
	})
}

func (r *recorder) all() []captured {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]captured(nil), r.reqs...)
}

func (r *recorder) last(t *testing.T) captured {
	t.Helper()
	all := r.all()
	require.NotEmpty(t, all, "no request reached the server")
	return all[len(all)-1]
}

// newServer starts a server answering every request with status and body
// and returns its base URL.
func newServer(t *testing.T, rec *recorder, status int, body string) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.add(r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/openapi/"
}

func newTestClient(t *testing.T, status int, body string) (*Client, *recorder) {
	t.Helper()

	rec := &recorder{}
	c, err := NewClient("test-token", WithBaseURL(newServer(t, rec, status, body)))
	require.NoError(t, err)
	return c, rec
}

// ok wraps payload in a success envelope.
func ok(payload string) string {
	return `{"trackingId":"trk-1","status":"Ok","payload":` + payload + `}`
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

const instrumentJSON = `{"figi":"BBG000B9XRY4","ticker":"AAPL","isin":"US0378331005","minPriceIncrement":0.01,
	"lot":1,"currency":"USD","name":"Apple","type":"Stock"}`
