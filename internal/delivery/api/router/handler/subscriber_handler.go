package handler

import (
	"log/slog"
	"net/http"

	"trafficalert/internal/delivery/api/response"
	"trafficalert/internal/delivery/api/validator"
	domainerrors "trafficalert/internal/domain/errors"
	"trafficalert/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriberHandlerParams holds dependencies for SubscriberHandler, injected by Fx.
type SubscriberHandlerParams struct {
	fx.In

	SubscriberUC usecase.SubscriberUsecase
	Logger       *slog.Logger
}

// SubscriberHandler serves subscriber registration endpoints
type SubscriberHandler struct {
	subscriberUC usecase.SubscriberUsecase
	logger       *slog.Logger
}

// NewSubscriberHandler is the constructor for SubscriberHandler
func NewSubscriberHandler(params SubscriberHandlerParams) *SubscriberHandler {
	return &SubscriberHandler{
		subscriberUC: params.SubscriberUC,
		logger:       params.Logger,
	}
}

// SubscriberRequest is the body of register and location update.
// Coordinates are pointers so that 0 is accepted while a missing value is not.
type SubscriberRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=5,max=32"`
	Latitude  *int    `json:"lat" validate:"required,gte=-90,lte=90"`
	Longitude *int    `json:"lon" validate:"required,gte=-180,lte=180"`
}

// ContactRequest is the body of unsubscribe
type ContactRequest struct {
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,min=5,max=32"`
}

func (r *SubscriberRequest) toInput() *usecase.SubscriberInput {
	return &usecase.SubscriberInput{
		Email:     r.Email,
		Phone:     r.Phone,
		Latitude:  *r.Latitude,
		Longitude: *r.Longitude,
	}
}

// Register handles subscriber registration
func (h *SubscriberHandler) Register(c echo.Context) error {
	var req SubscriberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscriber input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	subscriber, err := h.subscriberUC.Register(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscriber)
}

// UpdateLocation handles a coordinate change; the area is re-derived before responding
func (h *SubscriberHandler) UpdateLocation(c echo.Context) error {
	var req SubscriberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscriber input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	subscriber, err := h.subscriberUC.UpdateLocation(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscriber)
}

// Unsubscribe handles subscriber removal
func (h *SubscriberHandler) Unsubscribe(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	subscriber, err := h.subscriberUC.Unsubscribe(c.Request().Context(), &usecase.ContactInput{
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscriber)
}

func validationFailed(c echo.Context, err error) error {
	return response.BadRequestWithDetails(c,
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(),
		validator.Details(err),
	)
}
