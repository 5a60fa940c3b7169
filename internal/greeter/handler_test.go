package greeter_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/km-arc/go-inject/framework/container"
	"github.com/km-arc/go-inject/framework/routing"
	"github.com/km-arc/go-inject/internal/greeter"
)

func newServer(t *testing.T, r *container.Registry) http.Handler {
	t.Helper()
	router := routing.New(zap.NewNop(), nil)
	greeter.NewHandler(r).Routes(router)
	return router
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Data    json.RawMessage     `json:"data"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&e))
	return e
}

func TestHandler_Languages(t *testing.T) {
	t.Parallel()

	rr := serve(newServer(t, newRegistry(t)), http.MethodGet, "/api/languages", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `["de","en","es","fr"]`, string(decode(t, rr).Data))
}

func TestHandler_Greet(t *testing.T) {
	t.Parallel()

	rr := serve(newServer(t, newRegistry(t)), http.MethodGet, "/api/greet/Ada?lang=fr", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got greeter.Greeting
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &got))
	assert.Equal(t, greeter.Greeting{
		ID: "id-1", Name: "Ada", Lang: "fr", Message: "Bonjour, Ada !", At: noon,
	}, got)
}

func TestHandler_GreetUnknownLanguage(t *testing.T) {
	t.Parallel()

	rr := serve(newServer(t, newRegistry(t)), http.MethodGet, "/api/greet/Ada?lang=xx", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, decode(t, rr).Message, "unknown language")
}

func TestHandler_Create(t *testing.T) {
	t.Parallel()

	h := newServer(t, newRegistry(t))

	rr := serve(h, http.MethodPost, "/api/greetings", `{"name":"Grace","lang":"es"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var got greeter.Greeting
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &got))
	assert.Equal(t, "¡Hola, Grace!", got.Message)

	rr = serve(h, http.MethodPost, "/api/greetings", `{"lang":"english"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	e := decode(t, rr)
	assert.Equal(t, []string{"name is required"}, e.Errors["name"])
	assert.Len(t, e.Errors["lang"], 1)

	rr = serve(h, http.MethodPost, "/api/greetings", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_DependencyFailure(t *testing.T) {
	t.Parallel()

	r := newRegistry(t)
	r.Override(greeter.GreeterToken, func(...any) (any, error) {
		return nil, errors.New("greeter unavailable")
	})

	rr := serve(newServer(t, r), http.MethodGet, "/api/greet/Ada", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHandler_PinsPhrasebook(t *testing.T) {
	t.Parallel()

	r := newRegistry(t)
	h := greeter.NewHandler(r)

	first, err := h.Phrases.Get()
	require.NoError(t, err)

	r.Override(greeter.PhrasebookToken, container.Value(greeter.NewPhrasebook()))
	again, err := h.Phrases.Get()
	require.NoError(t, err)
	assert.Same(t, first, again)
}
