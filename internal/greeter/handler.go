package greeter

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/go-inject/framework/container"
	gohttp "github.com/km-arc/go-inject/framework/http"
	"github.com/km-arc/go-inject/framework/providers"
	"github.com/km-arc/go-inject/framework/routing"
)

// Handler serves the greeting API. Its dependencies are injected fields:
// Phrases and Logger are pinned on first use, Greeter is built afresh per
// request so GREETER_LANG is re-read.
type Handler struct {
	Greeter container.Accessor[*Greeter]
	Phrases container.Accessor[*Phrasebook]
	Logger  container.Accessor[*zap.Logger]
}

// NewHandler binds a Handler's fields to r.
func NewHandler(r *container.Registry) *Handler {
	return &Handler{
		Greeter: container.Inject[*Greeter](r, GreeterToken),
		Phrases: container.InjectOnce[*Phrasebook](r, PhrasebookToken),
		Logger:  container.InjectOnce[*zap.Logger](r, providers.LoggerToken),
	}
}

// Routes mounts the API under /api.
//
//	GET  /api/languages
//	GET  /api/greet/{name}?lang=fr
//	POST /api/greetings   {"name": "Ada", "lang": "fr"}
func (h *Handler) Routes(router *routing.Router) {
	router.Prefix("/api", func(api *routing.Router) {
		api.Get("/languages", h.Languages)
		api.Get("/greet/{name}", h.Greet)
		api.Post("/greetings", h.Create)
	})
}

// CreateGreeting is the POST /api/greetings payload.
type CreateGreeting struct {
	Name string `json:"name" validate:"required,min=1,max=64"`
	Lang string `json:"lang" validate:"omitempty,len=2,alpha"`
}

// Languages lists the phrasebook's languages.
func (h *Handler) Languages(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)
	phrases, err := h.Phrases.Get()
	if err != nil {
		h.fail(res, err)
		return
	}
	res.Success(phrases.Languages())
}

// Greet greets the {name} route parameter.
func (h *Handler) Greet(w http.ResponseWriter, r *http.Request) {
	req := gohttp.NewRequest(r)
	h.respond(gohttp.NewResponse(w), http.StatusOK, req.RouteParam("name"), req.Query("lang"))
}

// Create greets the name in a JSON body.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)

	var body CreateGreeting
	var fields gohttp.FieldErrors
	switch err := gohttp.NewRequest(r).Bind(&body); {
	case errors.As(err, &fields):
		res.ValidationError(fields)
		return
	case err != nil:
		res.Error(http.StatusBadRequest, err.Error())
		return
	}
	h.respond(res, http.StatusCreated, body.Name, body.Lang)
}

func (h *Handler) respond(res *gohttp.Response, status int, name, lang string) {
	g, err := h.Greeter.Get()
	if err != nil {
		h.fail(res, err)
		return
	}
	greeting, err := g.Greet(name, lang)
	if errors.Is(err, ErrUnknownLanguage) {
		res.Error(http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		h.fail(res, err)
		return
	}

	if logger, err := h.Logger.Get(); err == nil {
		logger.Debug("greeted",
			zap.String("id", greeting.ID),
			zap.String("lang", greeting.Lang))
	}
	if status == http.StatusCreated {
		res.Created(greeting)
		return
	}
	res.Success(greeting)
}

func (h *Handler) fail(res *gohttp.Response, err error) {
	if logger, lerr := h.Logger.Get(); lerr == nil {
		logger.Error("greeter dependency failed", zap.Error(err))
	}
	res.ServerError()
}
