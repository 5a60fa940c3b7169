package greeter_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-inject/internal/greeter"
)

func TestPhrasebook(t *testing.T) {
	t.Parallel()

	p := greeter.NewPhrasebook()
	assert.Equal(t, []string{"de", "en", "es", "fr"}, p.Languages())

	f, err := p.Phrase("fr")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour, %s !", f)

	_, err = p.Phrase("xx")
	assert.ErrorIs(t, err, greeter.ErrUnknownLanguage)
}

func TestGreeter_Greet(t *testing.T) {
	t.Parallel()

	g := greeter.NewGreeter(greeter.NewPhrasebook(), fixedClock(noon), &seqIDs{}, "de")
	assert.Equal(t, "de", g.Language())

	tests := []struct {
		lang     string
		wantLang string
		want     string
		wantID   string
	}{
		{"", "de", "Hallo, Ada!", "id-1"},
		{"es", "es", "¡Hola, Ada!", "id-2"},
		{"en", "en", "Hello, Ada!", "id-3"},
	}
	for _, tt := range tests {
		got, err := g.Greet("Ada", tt.lang)
		require.NoError(t, err)
		assert.Equal(t, greeter.Greeting{
			ID:      tt.wantID,
			Name:    "Ada",
			Lang:    tt.wantLang,
			Message: tt.want,
			At:      noon,
		}, got)
	}

	_, err := g.Greet("Ada", "xx")
	assert.ErrorIs(t, err, greeter.ErrUnknownLanguage)
}

func TestNewGreeter_DefaultLanguage(t *testing.T) {
	t.Parallel()

	g := greeter.NewGreeter(greeter.NewPhrasebook(), greeter.SystemClock{}, greeter.UUIDGenerator{}, "")
	assert.Equal(t, greeter.DefaultLanguage, g.Language())

	got, err := g.Greet("Grace", "")
	require.NoError(t, err)
	assert.Equal(t, "Hello, Grace!", got.Message)
	assert.False(t, got.At.IsZero())

	_, err = uuid.Parse(got.ID)
	assert.NoError(t, err)
}
