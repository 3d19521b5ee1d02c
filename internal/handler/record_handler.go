package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weddingplanner/internal/errors"
	"weddingplanner/internal/middleware"
	"weddingplanner/internal/service"
)

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// RecordHandler serves create, list and update for one resource kind. The
// record type T doubles as the request body; its id, user_id and created_at
// are ignored on input.
type RecordHandler[T any] struct {
	svc service.RecordService[T]
}

// NewRecordHandler creates a handler for the kind served by svc.
func NewRecordHandler[T any](svc service.RecordService[T]) *RecordHandler[T] {
	return &RecordHandler[T]{svc: svc}
}

// Route is the path segment the kind is mounted under.
func (h *RecordHandler[T]) Route() string {
	return "/" + h.svc.Kind().Route
}

// Create handles POST /{kind}.
func (h *RecordHandler[T]) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return httpError(errors.ErrUnauthorized)
	}

	rec := new(T)
	if err := c.Bind(rec); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(rec); err != nil {
		return badRequest(err.Error())
	}

	created, err := h.svc.Create(c.Request().Context(), user.ID, rec)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, created)
}

// List handles GET /{kind}.
func (h *RecordHandler[T]) List(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return httpError(errors.ErrUnauthorized)
	}

	records, err := h.svc.List(c.Request().Context(), user.ID)
	if err != nil {
		return httpError(err)
	}
	if records == nil {
		records = []T{}
	}
	return c.JSON(http.StatusOK, records)
}

// Update handles PUT /{kind}/:id. The response is the same whether or not
// the caller owns a record with that id.
func (h *RecordHandler[T]) Update(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return httpError(errors.ErrUnauthorized)
	}

	rec := new(T)
	if err := c.Bind(rec); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(rec); err != nil {
		return badRequest(err.Error())
	}

	if err := h.svc.Update(c.Request().Context(), user.ID, c.Param("id"), rec); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: h.svc.Kind().Name + " updated"})
}

// Mount registers the kind's routes on g.
func (h *RecordHandler[T]) Mount(g *echo.Group) {
	g.POST(h.Route(), h.Create)
	g.GET(h.Route(), h.List)
	g.PUT(h.Route()+"/:id", h.Update)
}
