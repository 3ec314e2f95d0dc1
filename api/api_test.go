package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/rnetx/judge/adapter"
	"github.com/rnetx/judge/cache"
	"github.com/rnetx/judge/log"
	"github.com/rnetx/judge/problem"
	"github.com/rnetx/judge/problem/builtin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCore struct {
	problems []adapter.Problem
	aliases  map[string]string
}

func newTestCore(t *testing.T, types ...string) *testCore {
	builtin.Do()
	c := &testCore{}
	for _, _type := range types {
		p, err := problem.NewProblem(context.Background(), log.NewNopLogger(), _type, _type, nil)
		require.NoError(t, err)
		c.problems = append(c.problems, p)
	}
	return c
}

func (c *testCore) Close() error { return nil }

func (c *testCore) Run(context.Context) error { return nil }

func (c *testCore) GetProblems() []adapter.Problem {
	return c.problems
}

func (c *testCore) GetProblem(tag string) adapter.Problem {
	if t, ok := c.aliases[tag]; ok {
		tag = t
	}
	for _, p := range c.problems {
		if p.Tag() == tag {
			return p
		}
	}
	return nil
}

func newTestServer(t *testing.T, options Options, c adapter.Cache, broadcast *log.BroadcastLogger) *httptest.Server {
	core := newTestCore(t, "stack-command", "prime-range")
	core.aliases = map[string]string{"1929": "prime-range"}
	var logger log.Logger = log.NewNopLogger()
	if broadcast != nil {
		logger = broadcast
	}
	s, err := NewAPIServer(context.Background(), core, logger, broadcast, c, options)
	require.NoError(t, err)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestParseListen(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "127.0.0.1:9000", want: "127.0.0.1:9000"},
		{in: "127.0.0.1", want: "127.0.0.1:8080"},
		{in: "[::1]", want: "[::1]:8080"},
		{in: ":9000", want: "[::]:9000"},
		{in: ":0", wantErr: true},
		{in: "localhost:80", wantErr: true},
		{in: "nonsense", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseListen(tt.in, 8080)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestListProblems(t *testing.T) {
	srv := newTestServer(t, Options{Listen: "127.0.0.1:0"}, nil, nil)
	resp, err := http.Get(srv.URL + "/problem")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Data []map[string]string `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []map[string]string{
		{"tag": "stack-command", "type": "stack-command"},
		{"tag": "prime-range", "type": "prime-range"},
	}, body.Data)
}

func post(t *testing.T, url string, body string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Post(url, "text/plain", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func TestSolveWithCache(t *testing.T) {
	c := cache.NewMemoryCache(context.Background(), log.NewNopLogger(), time.Minute)
	srv := newTestServer(t, Options{Listen: "127.0.0.1:0"}, c, nil)

	resp, body := post(t, srv.URL+"/problem/prime-range", "3 16\n")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "3\n5\n7\n11\n13\n", body)
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))

	resp, body = post(t, srv.URL+"/problem/prime-range", "3 16\n")
	assert.Equal(t, "HIT", resp.Header.Get("X-Cache"))
	assert.Equal(t, "3\n5\n7\n11\n13\n", body)
	assert.Equal(t, 1, c.Len())

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/cache", nil)
	require.NoError(t, err)
	r, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	r.Body.Close()
	assert.Equal(t, http.StatusNoContent, r.StatusCode)
	assert.Equal(t, 0, c.Len())
}

func TestSolveAliasSharesCache(t *testing.T) {
	c := cache.NewMemoryCache(context.Background(), log.NewNopLogger(), time.Minute)
	srv := newTestServer(t, Options{Listen: "127.0.0.1:0"}, c, nil)

	resp, _ := post(t, srv.URL+"/problem/1929", "3 16\n")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))

	resp, body := post(t, srv.URL+"/problem/prime-range", "3 16\n")
	assert.Equal(t, "HIT", resp.Header.Get("X-Cache"))
	assert.Equal(t, "3\n5\n7\n11\n13\n", body)
	assert.Equal(t, 1, c.Len())
	_, ok, err := c.Get(context.Background(), cache.Key("prime-range", []byte("3 16\n")))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSolveErrors(t *testing.T) {
	srv := newTestServer(t, Options{Listen: "127.0.0.1:0"}, nil, nil)

	resp, _ := post(t, srv.URL+"/problem/missing", "1")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body := post(t, srv.URL+"/problem/stack-command", "2\n9\n")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "unknown op-code")
}

func TestAuth(t *testing.T) {
	srv := newTestServer(t, Options{Listen: "127.0.0.1:0", Secret: "s3cret"}, nil, nil)

	resp, _ := post(t, srv.URL+"/problem/stack-command", "1\n3\n")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/problem/stack-command", bytes.NewBufferString("1\n3\n"))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer s3cret")
	r, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer r.Body.Close()
	raw, _ := io.ReadAll(r.Body)
	assert.Equal(t, http.StatusOK, r.StatusCode)
	assert.Equal(t, "0\n", string(raw))
}

func TestStreamLog(t *testing.T) {
	var buf bytes.Buffer
	broadcast := log.NewBroadcastLogger(log.NewSimpleLogger(&buf, log.LevelInfo, true, true))
	defer broadcast.Close()
	srv := newTestServer(t, Options{Listen: "127.0.0.1:0"}, nil, broadcast)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, _, err := ws.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/log")
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return broadcast.Subscribers() == 1 }, 2*time.Second, 10*time.Millisecond)
	broadcast.Info("ping")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	raw, err := wsutil.ReadServerText(conn)
	require.NoError(t, err)
	var msg log.BroadcastMessage
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "ping", msg.Message)
}
