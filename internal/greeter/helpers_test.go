package greeter_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/km-arc/go-inject/framework/container"
	"github.com/km-arc/go-inject/framework/providers"
	"github.com/km-arc/go-inject/internal/greeter"
)

var noon = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (s *seqIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

// newRegistry returns a registry with the greeter components, a fixed
// clock, sequential IDs and a no-op logger.
func newRegistry(t *testing.T) *container.Registry {
	t.Helper()
	r := container.New()
	r.Override(greeter.ClockToken, container.Value(fixedClock(noon)))
	r.Override(greeter.IDsToken, container.Value(&seqIDs{}))
	r.Override(providers.LoggerToken, container.Value(zap.NewNop()))
	require.NoError(t, greeter.Register(r))
	return r
}
