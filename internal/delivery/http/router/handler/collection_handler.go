package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "potluck/internal/delivery/context"
	"potluck/internal/delivery/http/response"
	"potluck/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CollectionHandler holds dependencies for the personal dish list handlers.
type CollectionHandler struct {
	uc     usecase.CollectionUsecase
	logger *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler, injected by Fx.
func NewCollectionHandler(uc usecase.CollectionUsecase, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Dashboard returns the viewer's added dishes and everything still available.
func (h *CollectionHandler) Dashboard(c echo.Context) error {
	output, err := h.uc.Dashboard(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":             toUserResponse(output.User),
		"added_dishes":     toDishResponses(output.AddedDishes),
		"available_dishes": toDishResponses(output.AvailableDishes),
	}, "Dashboard loaded")
}

// Add puts a dish into the viewer's list.
func (h *CollectionHandler) Add(c echo.Context) error {
	dishID, err := parseDishID(c)
	if err != nil {
		return err
	}

	if err := h.uc.AddDish(c.Request().Context(), dishID, deliverycontext.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dish added to your list")
}

// Remove takes a dish out of the viewer's list.
func (h *CollectionHandler) Remove(c echo.Context) error {
	dishID, err := parseDishID(c)
	if err != nil {
		return err
	}

	if err := h.uc.RemoveDish(c.Request().Context(), dishID, deliverycontext.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dish removed from your list")
}

// Complete marks a dish in the viewer's list as done, which retires it for everyone.
func (h *CollectionHandler) Complete(c echo.Context) error {
	dishID, err := parseDishID(c)
	if err != nil {
		return err
	}

	if err := h.uc.CompleteDish(c.Request().Context(), dishID, deliverycontext.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dish completed")
}
