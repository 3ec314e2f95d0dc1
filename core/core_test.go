package core

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rnetx/judge/api"
	"github.com/rnetx/judge/cache"
	"github.com/rnetx/judge/log"
	"github.com/rnetx/judge/problem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func quietLog(t *testing.T) LogOptions {
	return LogOptions{Level: "debug", Output: filepath.Join(t.TempDir(), "judge.log")}
}

func TestNewCoreDefaultProblems(t *testing.T) {
	c, _, err := NewCore(context.Background(), Options{Log: quietLog(t)})
	require.NoError(t, err)
	defer c.Close()
	assert.Len(t, c.GetProblems(), len(problem.ProblemTypes()))
	for _, _type := range problem.ProblemTypes() {
		p := c.GetProblem(_type)
		require.NotNil(t, p, _type)
		assert.Equal(t, _type, p.Type())
	}
}

func TestNewCoreFromYAML(t *testing.T) {
	raw := `
problems:
  - tag: zero
    type: stack-sum
    aliases: "10773"
    args:
      lenient: true
  - tag: stack2
    type: stack-command
    aliases: ["28278", stack]
    args:
      sentinel: 0
`
	var options Options
	require.NoError(t, yaml.Unmarshal([]byte(raw), &options))
	options.Log = quietLog(t)
	c, _, err := NewCore(context.Background(), options)
	require.NoError(t, err)
	defer c.Close()

	assert.Len(t, c.GetProblems(), 2)
	assert.Same(t, c.GetProblem("zero"), c.GetProblem("10773"))
	assert.Same(t, c.GetProblem("stack2"), c.GetProblem("stack"))
	assert.Nil(t, c.GetProblem("prime-range"))

	var out bytes.Buffer
	err = c.GetProblem("28278").Solve(context.Background(), strings.NewReader("1\n5\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out.String())

	out.Reset()
	err = c.GetProblem("zero").Solve(context.Background(), strings.NewReader("2\n0\n4\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "4\n", out.String())
}

func TestNewCoreErrors(t *testing.T) {
	tests := []struct {
		name    string
		options Options
	}{
		{"invalid level", Options{Log: LogOptions{Level: "loud"}}},
		{"missing tag", Options{Problems: []problem.Options{{Type: "wine"}}}},
		{"unknown type", Options{Problems: []problem.Options{{Tag: "x", Type: "chess"}}}},
		{"duplicate tag", Options{Problems: []problem.Options{{Tag: "x", Type: "wine"}, {Tag: "x", Type: "wine"}}}},
		{"duplicate alias", Options{Problems: []problem.Options{{Tag: "x", Type: "wine"}, {Tag: "y", Type: "wine", Aliases: []string{"x"}}}}},
		{"unknown cache", Options{Cache: &cache.Options{Type: "disk"}}},
		{"invalid listen", Options{API: &api.Options{Listen: "nowhere"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.options.Log.Level == "" {
				tt.options.Log = quietLog(t)
			}
			_, _, err := NewCore(context.Background(), tt.options)
			assert.Error(t, err)
		})
	}
}

func TestRunWithoutAPI(t *testing.T) {
	c, _, err := NewCore(context.Background(), Options{Log: quietLog(t)})
	require.NoError(t, err)
	defer c.Close()
	assert.Error(t, c.Run(context.Background()))
}

func TestRunServesAPI(t *testing.T) {
	logOptions := quietLog(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c, _, err := NewCore(ctx, Options{
		Log:   logOptions,
		API:   &api.Options{Listen: "127.0.0.1:0"},
		Cache: &cache.Options{Type: cache.MemoryType},
	})
	require.NoError(t, err)
	defer c.Close()

	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx)
	}()
	require.Eventually(t, func() bool {
		return c.apiServer.Addr() != "127.0.0.1:0"
	}, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Post("http://"+c.apiServer.Addr()+"/problem/a-plus-b", "text/plain", strings.NewReader("1 2"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("core did not stop")
	}
	raw, err := os.ReadFile(logOptions.Output)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[core] core is stopped")
	assert.Contains(t, string(raw), "close api server success")
}

func TestRootLoggerBroadcasts(t *testing.T) {
	c, _, err := NewCore(context.Background(), Options{Log: quietLog(t)})
	require.NoError(t, err)
	_, isBroadcast := c.RootLogger().(*log.BroadcastLogger)
	assert.False(t, isBroadcast)
	c.Close()

	c, _, err = NewCore(context.Background(), Options{
		Log: quietLog(t),
		API: &api.Options{Listen: "127.0.0.1:0"},
	})
	require.NoError(t, err)
	defer c.Close()
	broadcast, isBroadcast := c.RootLogger().(*log.BroadcastLogger)
	require.True(t, isBroadcast)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := broadcast.Subscribe(ctx, 1)
	c.RootLogger().Warn("receive signal, exiting...")
	select {
	case m := <-ch.ReceiveChan():
		assert.Equal(t, log.LevelWarn, m.Level)
		assert.Contains(t, m.Message, "receive signal")
	case <-time.After(time.Second):
		t.Fatal("no broadcast message")
	}
}
