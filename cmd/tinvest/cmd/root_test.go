package cmd

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juev/tinvest/journal"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

type fakeAPI struct {
	mu     sync.Mutex
	bodies map[string]string
	paths  []string
}

// newFakeAPI serves canned payloads keyed by path below /openapi/.
func newFakeAPI(t *testing.T, payloads map[string]string) (string, *fakeAPI) {
	t.Helper()

	api := &fakeAPI{bodies: map[string]string{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/openapi/")
		b, _ := io.ReadAll(r.Body)

		api.mu.Lock()
		api.paths = append(api.paths, path+"?"+r.URL.RawQuery)
		api.bodies[path] = string(b)
		api.mu.Unlock()

		payload, ok := payloads[path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"trackingId":"x","status":"Error","payload":{"message":"no route","code":"NOT_FOUND"}}`)
			return
		}
		_, _ = io.WriteString(w, `{"trackingId":"trk","status":"Ok","payload":`+payload+`}`)
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/openapi/", api
}

func clearEnv(t *testing.T) {
	for _, k := range []string{"TOKEN", "SANDBOX", "BASE_URL", "TIMEOUT", "ACCOUNT", "JOURNAL_DB", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv("TINVEST_"+k, "")
	}
}

func TestVersion(t *testing.T) {
	clearEnv(t)

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tinvest version "+version+"\n", out)
}

func TestConfigInitAndValidate(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "tinvest.yaml")

	_, err := run(t, "config", "init", "-o", path)
	require.NoError(t, err)

	_, err = run(t, "config", "validate", "-f", path)
	assert.ErrorContains(t, err, "api.token is required")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data = bytes.Replace(data, []byte(`token: ""`), []byte(`token: t.supersecret42`), 1)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	out, err := run(t, "config", "validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "***et42")
	assert.NotContains(t, out, "supersecret")
}

func TestMissingToken(t *testing.T) {
	clearEnv(t)

	_, err := run(t, "accounts")
	assert.ErrorContains(t, err, "api.token is required")
}

func TestAccounts(t *testing.T) {
	clearEnv(t)
	base, _ := newFakeAPI(t, map[string]string{
		"user/accounts": `{"accounts":[{"brokerAccountType":"Tinkoff","brokerAccountId":"2000"}]}`,
	})

	out, err := run(t, "--token", "tok", "--base-url", base, "accounts")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"brokerAccountType":"Tinkoff","brokerAccountId":"2000"}]`, out)
}

func TestAPIErrorSurfaces(t *testing.T) {
	clearEnv(t)
	base, _ := newFakeAPI(t, nil)

	_, err := run(t, "--token", "tok", "--base-url", base, "market", "stocks")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_FOUND")
}

func TestOrderBookRejectsDepth(t *testing.T) {
	clearEnv(t)
	base, api := newFakeAPI(t, nil)

	_, err := run(t, "--token", "tok", "--base-url", base, "orderbook", "F1", "--depth", "50")
	assert.ErrorContains(t, err, "depth must be between 1 and 20")
	assert.Empty(t, api.paths)
}

func TestCandlesCSV(t *testing.T) {
	clearEnv(t)
	base, api := newFakeAPI(t, map[string]string{
		"market/candles": `{"figi":"F1","interval":"day","candles":[
			{"figi":"F1","interval":"day","o":10,"c":11,"h":12,"l":9,"v":1000,"time":"2024-01-02T07:00:00Z"},
			{"figi":"F1","interval":"day","o":11,"c":10,"h":11.5,"l":9.5,"v":700,"time":"2024-01-03T07:00:00Z"}]}`,
	})
	out := filepath.Join(t.TempDir(), "candles.csv")

	stdout, err := run(t, "--token", "tok", "--base-url", base,
		"candles", "F1", "--interval", "day", "--from", "2024-01-01T00:00:00Z", "--to", "2024-01-05T00:00:00Z", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote 2 rows")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	require.Len(t, api.paths, 1)
	assert.Equal(t, "market/candles?interval=day&from=2024-01-01T00%3A00%3A00Z&to=2024-01-05T00%3A00%3A00Z&figi=F1", api.paths[0])
}

func TestOrdersAreJournaled(t *testing.T) {
	clearEnv(t)
	base, api := newFakeAPI(t, map[string]string{
		"orders/limit-order": `{"orderId":"ord-1","operation":"Buy","status":"New","rejectReason":"",
			"requestedLots":1,"executedLots":0,"commission":{"currency":"USD","value":0},"message":""}`,
		"orders/cancel": `{}`,
	})
	db := filepath.Join(t.TempDir(), "journal.db")
	common := []string{"--token", "tok", "--base-url", base, "--journal-db", db, "--account", "2000"}

	_, err := run(t, append(common, "orders", "limit", "BBG000B9XRY4", "--lots", "1", "--op", "Buy", "--price", "150.5")...)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lots":1,"operation":"Buy","price":150.5}`, api.bodies["orders/limit-order"])

	_, err = run(t, append(common, "orders", "cancel", "ord-1")...)
	require.NoError(t, err)
	assert.Contains(t, api.paths, "orders/cancel?orderId=ord-1&brokerAccountId=2000")

	out, err := run(t, "--journal-db", db, "journal", "list", "--since", "2000-01-01")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "limit_order")
	assert.Contains(t, lines[2], "cancel")

	entryID := strings.Fields(lines[1])[0]
	out, err = run(t, "--journal-db", db, "journal", "show", entryID)
	require.NoError(t, err)

	var rec struct {
		journal.OrderAction
		Minted time.Time
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "ord-1", rec.OrderID)
	assert.Equal(t, "2000", rec.Account)
	assert.Equal(t, 150.5, rec.Price)
	assert.WithinDuration(t, rec.RecordedAt, rec.Minted, time.Millisecond)
}

func TestJournalShow_InvalidID(t *testing.T) {
	clearEnv(t)
	db := filepath.Join(t.TempDir(), "missing", "journal.db")

	_, err := run(t, "--journal-db", db, "journal", "show", "not-a-ulid")
	assert.ErrorContains(t, err, `entry id "not-a-ulid"`)
}

func TestOrders_JournalOpenFailure(t *testing.T) {
	clearEnv(t)
	base, api := newFakeAPI(t, map[string]string{"orders/cancel": `{}`})
	db := filepath.Join(t.TempDir(), "missing", "journal.db")

	_, err := run(t, "--token", "tok", "--base-url", base, "--journal-db", db, "orders", "cancel", "ord-1")
	assert.ErrorContains(t, err, "order sent but not journaled")
	assert.Equal(t, []string{"orders/cancel?orderId=ord-1"}, api.paths)
}

func TestCandlesHelp_ListsIntervals(t *testing.T) {
	clearEnv(t)

	out, err := run(t, "candles", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "1min|2min|3min")
	assert.Contains(t, out, "week|month")
}

func TestOrders_BadSide(t *testing.T) {
	clearEnv(t)
	base, api := newFakeAPI(t, nil)

	_, err := run(t, "--token", "tok", "--base-url", base, "--journal-db", "",
		"orders", "market", "F1", "--op", "Hold")
	assert.ErrorContains(t, err, "unknown operation type")
	assert.Empty(t, api.paths)
}

func TestJournalDisabled(t *testing.T) {
	clearEnv(t)

	_, err := run(t, "--journal-db", "", "journal", "list")
	assert.ErrorContains(t, err, "journal is disabled")
}
