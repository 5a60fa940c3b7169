package greeter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-inject/framework/container"
	"github.com/km-arc/go-inject/internal/greeter"
)

func TestInit_RegistersOnDefault(t *testing.T) {
	t.Parallel()

	for _, tok := range []container.Token{
		greeter.ClockToken,
		greeter.IDsToken,
		greeter.PhrasebookToken,
		greeter.GreeterToken,
		greeter.LanguageToken,
		container.Name("greeter"),
	} {
		assert.True(t, container.Default().Has(tok), tok.String())
	}
}

func TestRegister_Idempotent(t *testing.T) {
	t.Parallel()

	r := newRegistry(t)
	require.NoError(t, greeter.Register(r))

	clock, err := container.ResolveAs[greeter.Clock](r, greeter.ClockToken)
	require.NoError(t, err)
	assert.Equal(t, fixedClock(noon), clock, "overrides survive a second Register")
}

func TestRegister_PhrasebookIsSingleton(t *testing.T) {
	t.Parallel()

	r := newRegistry(t)
	a, err := container.ResolveAs[*greeter.Phrasebook](r, greeter.PhrasebookToken)
	require.NoError(t, err)
	b, err := container.ResolveAs[*greeter.Phrasebook](r, greeter.PhrasebookToken)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestRegister_GreeterIsBuiltByInjection(t *testing.T) {
	t.Setenv("GREETER_LANG", "")

	r := newRegistry(t)
	g, err := container.ResolveAs[*greeter.Greeter](r, greeter.GreeterToken)
	require.NoError(t, err)
	assert.Equal(t, greeter.DefaultLanguage, g.Language())

	got, err := g.Greet("Ada", "")
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, noon, got.At)

	other, err := container.ResolveAs[*greeter.Greeter](r, container.Name("greeter"))
	require.NoError(t, err)
	assert.NotSame(t, g, other, "greeters are transient")
}

func TestRegister_LanguageIsReadLazily(t *testing.T) {
	r := newRegistry(t)

	t.Setenv("GREETER_LANG", "  FR ")
	g, err := container.ResolveAs[*greeter.Greeter](r, greeter.GreeterToken)
	require.NoError(t, err)
	assert.Equal(t, "fr", g.Language(), "transformed after the lazy read")

	t.Setenv("GREETER_LANG", "es")
	g, err = container.ResolveAs[*greeter.Greeter](r, greeter.GreeterToken)
	require.NoError(t, err)
	assert.Equal(t, "es", g.Language())
}

func TestRegister_ExplicitArgumentsBypassInjection(t *testing.T) {
	t.Parallel()

	r := newRegistry(t)
	g, err := container.ResolveAs[*greeter.Greeter](r, greeter.GreeterToken,
		greeter.NewPhrasebook(), fixedClock(noon), &seqIDs{}, "de")
	require.NoError(t, err)
	assert.Equal(t, "de", g.Language())
}

func TestLanguageToken(t *testing.T) {
	t.Parallel()

	r := newRegistry(t)
	for _, tt := range []struct {
		args []any
		want string
	}{
		{nil, greeter.DefaultLanguage},
		{[]any{""}, greeter.DefaultLanguage},
		{[]any{42}, greeter.DefaultLanguage},
		{[]any{"fr"}, "fr"},
	} {
		got, err := r.Resolve(greeter.LanguageToken, tt.args...)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
