package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "potluck/internal/delivery/context"
	"potluck/internal/delivery/http/response"
	domainerrors "potluck/internal/domain/errors"
	"potluck/internal/domain/service"
	"potluck/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DishHandler holds dependencies for dish-related handlers.
type DishHandler struct {
	uc     usecase.DishUsecase
	qrSvc  service.QRCodeService
	logger *slog.Logger
}

// NewDishHandler is the constructor for DishHandler, injected by Fx.
func NewDishHandler(uc usecase.DishUsecase, qrSvc service.QRCodeService, logger *slog.Logger) *DishHandler {
	return &DishHandler{
		uc:     uc,
		qrSvc:  qrSvc,
		logger: logger,
	}
}

// NewForm returns the data backing the dish creation form.
func (h *DishHandler) NewForm(c echo.Context) error {
	output, err := h.uc.NewDishForm(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"categories": toCategoryResponses(output.Categories),
	}, "Dish form loaded")
}

// Create handles the dish creation request.
func (h *DishHandler) Create(c echo.Context) error {
	var input *usecase.CreateDishInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dish input")
	}
	input.CreatorID = deliverycontext.GetUserID(c)

	dish, err := h.uc.CreateDish(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toDishResponse(dish), "Dish created successfully")
}

// Show returns one dish with the viewer-dependent flags.
func (h *DishHandler) Show(c echo.Context) error {
	dishID, err := parseDishID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetDish(c.Request().Context(), dishID, deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"dish":         toDishResponse(output.Dish),
		"is_owner":     output.IsOwner,
		"in_user_list": output.InUserList,
	}, "Dish loaded")
}

// EditForm returns the data backing the dish edit form.
func (h *DishHandler) EditForm(c echo.Context) error {
	dishID, err := parseDishID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.EditDishForm(c.Request().Context(), dishID, deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"dish":       toDishResponse(output.Dish),
		"categories": toCategoryResponses(output.Categories),
	}, "Edit form loaded")
}

// Update handles the dish update request.
func (h *DishHandler) Update(c echo.Context) error {
	dishID, err := parseDishID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateDishInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dish input")
	}
	input.DishID = dishID
	input.RequesterID = deliverycontext.GetUserID(c)

	dish, err := h.uc.UpdateDish(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDishResponse(dish), "Dish updated successfully")
}

// Delete handles the dish deletion request.
func (h *DishHandler) Delete(c echo.Context) error {
	dishID, err := parseDishID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteDish(c.Request().Context(), dishID, deliverycontext.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dish deleted successfully")
}

// QRCode returns a PNG QR code encoding the dish's share link. The dish must
// exist; the image itself is viewer-independent.
func (h *DishHandler) QRCode(c echo.Context) error {
	dishID, err := parseDishID(c)
	if err != nil {
		return err
	}

	if _, err := h.uc.GetDish(c.Request().Context(), dishID, deliverycontext.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	png, err := h.qrSvc.GenerateDishShareQR(dishID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// parseDishID reads the :id path param. A malformed id behaves like a
// missing dish.
func parseDishID(c echo.Context) (uuid.UUID, error) {
	dishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrDishNotFound, "malformed dish id")
	}

	return dishID, nil
}
