package app_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/km-arc/go-inject/framework/app"
	"github.com/km-arc/go-inject/framework/container"
	"github.com/km-arc/go-inject/framework/providers"
	"github.com/km-arc/go-inject/framework/routing"
)

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "kernel-test")
	t.Setenv("APP_ENV", "testing")
	t.Setenv("APP_PORT", "0")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "json")
}

func newApp(t *testing.T, opts ...app.Option) *app.Application {
	t.Helper()
	a, err := app.New(append([]app.Option{app.WithEnvFiles("testdata/none.env")}, opts...)...)
	require.NoError(t, err)
	return a
}

type pingProvider struct {
	container.BaseProvider
	booted bool
}

func (p *pingProvider) Register(*container.Registry) error { return nil }

func (p *pingProvider) Boot(r *container.Registry) error {
	router, err := container.ResolveAs[*routing.Router](r, container.Name("router"))
	if err != nil {
		return err
	}
	router.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })
	p.booted = true
	return nil
}

type failingProvider struct{ container.BaseProvider }

func (*failingProvider) Register(*container.Registry) error { return errors.New("nope") }

func TestNew_RegistersFrameworkProviders(t *testing.T) {
	setEnv(t)
	a := newApp(t)

	assert.Len(t, a.Providers.Providers(), 4)
	require.NoError(t, a.Boot())

	cfg, err := a.Config()
	require.NoError(t, err)
	assert.Equal(t, "kernel-test", cfg.App.Name)

	_, err = a.Logger()
	require.NoError(t, err)
	_, err = a.Router()
	require.NoError(t, err)
}

func TestNew_WithRegistry(t *testing.T) {
	setEnv(t)
	r := container.New()
	a := newApp(t, app.WithRegistry(r))

	assert.Same(t, r, a.Registry)
	assert.True(t, r.Has(container.Name("router")))
}

func TestRegister_WrapsProviderErrors(t *testing.T) {
	setEnv(t)
	err := newApp(t).Register(&failingProvider{})
	assert.ErrorContains(t, err, "app: register *app_test.failingProvider: nope")
}

func TestBoot_FailsOnInvalidConfig(t *testing.T) {
	setEnv(t)
	t.Setenv("LOG_LEVEL", "chatty")

	err := newApp(t).Boot()
	assert.ErrorContains(t, err, "app: boot:")
}

func TestServe_GracefulShutdown(t *testing.T) {
	setEnv(t)
	a := newApp(t)
	ping := &pingProvider{}
	require.NoError(t, a.Register(ping))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx, ln) }()

	url := fmt.Sprintf("http://%s/ping", ln.Addr())
	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		body = string(b)
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, "pong", body)
	assert.True(t, ping.booted)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(app.ShutdownTimeout):
		t.Fatal("Serve did not return after cancel")
	}
}

// syncCounter is a log sink that counts flushes.
type syncCounter struct {
	writes atomic.Int32
	syncs  atomic.Int32
}

func (s *syncCounter) Write(p []byte) (int, error) {
	s.writes.Add(1)
	return len(p), nil
}

func (s *syncCounter) Sync() error {
	s.syncs.Add(1)
	return nil
}

func TestServe_FlushesLoggerWhenServingFails(t *testing.T) {
	setEnv(t)
	a := newApp(t)

	sink := &syncCounter{}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), sink, zapcore.DebugLevel)
	a.Registry.Override(providers.LoggerToken, container.Value(zap.New(core)))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	err = a.Serve(context.Background(), ln)
	require.Error(t, err)
	assert.ErrorContains(t, err, "app: serve:")
	assert.GreaterOrEqual(t, sink.syncs.Load(), int32(1), "logger must be flushed on the error path")
}
