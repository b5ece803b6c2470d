package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contaflux/contaflux/internal/pkg/logger"
	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/internal/pkg/requestcontext"
	"github.com/contaflux/contaflux/internal/utils"
	"github.com/contaflux/contaflux/services/billing"
)

// BillingHandler handles HTTP requests for billing operations
type BillingHandler struct {
	billingUC billing.BillingUC
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingUC billing.BillingUC) *BillingHandler {
	return &BillingHandler{
		billingUC: billingUC,
	}
}

// HandleWebhook receives Asaas events. The response is always 200 with the
// acknowledgment body unless storage itself failed; the gateway treats any
// non-2xx as a signal to retry.
func (h *BillingHandler) HandleWebhook(c echo.Context) error {
	var event models.WebhookEvent
	if err := c.Bind(&event); err != nil {
		return utils.BadRequestResponse(c, "Invalid webhook payload")
	}

	result, err := h.billingUC.HandleWebhook(c.Request().Context(), &event)
	if err != nil {
		logger.Error("Failed to process billing webhook",
			logger.ErrorField(err),
			logger.String("event", event.Event),
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to process webhook",
		})
	}

	return c.JSON(http.StatusOK, result)
}

// CreateCheckout opens a paid subscription for the authenticated user
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	checkout, err := h.billingUC.CreateCheckout(c.Request().Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrUnknownPlan):
			return utils.BadRequestResponse(c, "Unknown plan")
		case errors.Is(err, billing.ErrMissingCpfCnpj):
			return utils.BadRequestResponse(c, "CPF/CNPJ is required")
		case errors.Is(err, billing.ErrInvalidCpfCnpj):
			return utils.BadRequestResponse(c, "CPF/CNPJ is invalid")
		}
		logger.Error("Failed to create checkout",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
			logger.String("plan_id", req.PlanID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to create checkout")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Checkout created successfully", checkout)
}

// CheckStatus answers the subscribed/not-subscribed gate for the dashboard
func (h *BillingHandler) CheckStatus(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	email := requestcontext.UserEmailFromEcho(c)

	status, err := h.billingUC.CheckStatus(c.Request().Context(), userID, email)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to check subscription status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Subscription status retrieved", status)
}

// GetSubscription returns the raw subscription row for banner rendering
func (h *BillingHandler) GetSubscription(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	sub, err := h.billingUC.GetSubscription(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, billing.ErrSubscriptionNotFound) {
			return utils.NotFoundResponse(c, "Subscription not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get subscription")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Subscription retrieved successfully", sub)
}
