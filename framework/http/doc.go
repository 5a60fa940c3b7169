// Package http provides JSON request and response helpers for handlers
// served by the routing package.
//
// Request bodies are decoded with Bind, which also runs the
// go-playground/validator rules declared in `validate` struct tags:
//
//	var body struct {
//	    Name string `json:"name" validate:"required,min=2,max=40"`
//	}
//	req := http.NewRequest(r)
//	res := http.NewResponse(w)
//
//	var fields http.FieldErrors
//	switch err := req.Bind(&body); {
//	case errors.As(err, &fields):
//	    res.ValidationError(fields) // 422
//	    return
//	case err != nil:
//	    res.Error(400, err.Error())
//	    return
//	}
//	res.Created(body)
package http
