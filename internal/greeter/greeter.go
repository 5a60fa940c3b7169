// Package greeter is a small HTTP greeting service assembled entirely
// through the container: every component is registered under a token when
// the package loads and built by constructor injection on first use.
package greeter

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// DefaultLanguage is used when neither the caller nor GREETER_LANG picks one.
const DefaultLanguage = "en"

// ErrUnknownLanguage is returned for a language the phrasebook lacks.
var ErrUnknownLanguage = errors.New("greeter: unknown language")

// ── Clock ─────────────────────────────────────────────────────────────────────

// Clock tells the time. Tests override it with a fixed clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// ── IDs ───────────────────────────────────────────────────────────────────────

// IDGenerator hands out greeting IDs.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator returns random (version 4) UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// ── Phrasebook ────────────────────────────────────────────────────────────────

// Phrasebook holds one greeting format per language. It is read-only after
// construction.
type Phrasebook struct {
	phrases map[string]string
}

// NewPhrasebook returns the built-in phrasebook.
func NewPhrasebook() *Phrasebook {
	return &Phrasebook{phrases: map[string]string{
		"de": "Hallo, %s!",
		"en": "Hello, %s!",
		"es": "¡Hola, %s!",
		"fr": "Bonjour, %s !",
	}}
}

// Phrase returns the format string for lang.
func (p *Phrasebook) Phrase(lang string) (string, error) {
	f, ok := p.phrases[lang]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	return f, nil
}

// Languages returns the supported language codes, sorted.
func (p *Phrasebook) Languages() []string {
	out := make([]string, 0, len(p.phrases))
	for lang := range p.phrases {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// ── Greeter ───────────────────────────────────────────────────────────────────

// Greeting is one issued greeting.
type Greeting struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Lang    string    `json:"lang"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Greeter composes greetings.
type Greeter struct {
	phrases *Phrasebook
	clock   Clock
	ids     IDGenerator
	lang    string
}

// NewGreeter wires a Greeter. lang is the language used when Greet is not
// given one.
func NewGreeter(phrases *Phrasebook, clock Clock, ids IDGenerator, lang string) *Greeter {
	if lang == "" {
		lang = DefaultLanguage
	}
	return &Greeter{phrases: phrases, clock: clock, ids: ids, lang: lang}
}

// Language returns the greeter's default language.
func (g *Greeter) Language() string { return g.lang }

// Greet greets name in lang, or in the greeter's default language when
// lang is empty.
func (g *Greeter) Greet(name, lang string) (Greeting, error) {
	if lang == "" {
		lang = g.lang
	}
	f, err := g.phrases.Phrase(lang)
	if err != nil {
		return Greeting{}, err
	}
	return Greeting{
		ID:      g.ids.NewID(),
		Name:    name,
		Lang:    lang,
		Message: fmt.Sprintf(f, name),
		At:      g.clock.Now(),
	}, nil
}
