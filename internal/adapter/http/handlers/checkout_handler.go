package handlers

import (
	"errors"
	"log"
	"net/http"

	request "pawart_studio/internal/adapter/http/dto/request"
	response "pawart_studio/internal/adapter/http/dto/response"
	"pawart_studio/internal/usecase"
	"pawart_studio/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// CheckoutHandler handles HTTP requests for checkout sessions and orders.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// StartSession opens a new checkout session.
func (h *CheckoutHandler) StartSession(c *gin.Context) {
	var payload request.StartSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] start-session country=%s", payload.Country)

	session, err := h.usecase.StartSession(c.Request.Context(), payload.ResolveCountry(), payload.Customer.ToEntity(), payload.ArtworkRef, payload.Garment.ToEntity())
	if err != nil {
		log.Printf("[checkout][handler] start-session failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] start-session success session_id=%s state=%s", session.ID, session.State)

	c.JSON(http.StatusCreated, response.FromSession(session))
}

// GetSession returns the current session snapshot.
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("session_id")

	session, err := h.usecase.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

// SubmitDetails updates the customer and selection fields on a session.
func (h *CheckoutHandler) SubmitDetails(c *gin.Context) {
	sessionID := c.Param("session_id")
	var payload request.SubmitDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SubmitDetails(c.Request.Context(), sessionID, payload.Customer.ToEntity(), payload.ArtworkRef, payload.Garment.ToEntity())
	if err != nil {
		log.Printf("[checkout][handler] submit-details failed session_id=%s err=%v", sessionID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

// AttachShipping computes and attaches a shipping quote. A body without a
// coordinate selects the explicit fallback path.
func (h *CheckoutHandler) AttachShipping(c *gin.Context) {
	sessionID := c.Param("session_id")
	var payload request.ShippingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	lat, lon := payload.Coordinates()
	session, err := h.usecase.AttachShipping(c.Request.Context(), sessionID, payload.Geolocated(), lat, lon)
	if err != nil {
		log.Printf("[checkout][handler] attach-shipping failed session_id=%s err=%v", sessionID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

// InitiatePayment starts a payment attempt on the requested rail.
func (h *CheckoutHandler) InitiatePayment(c *gin.Context) {
	sessionID := c.Param("session_id")
	var payload request.PayRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] pay start session_id=%s rail=%s", sessionID, payload.Rail)

	initiation, err := h.usecase.InitiatePayment(c.Request.Context(), sessionID, payload.ResolveRail())
	if err != nil {
		log.Printf("[checkout][handler] pay failed session_id=%s rail=%s err=%v", sessionID, payload.Rail, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] pay success session_id=%s txn=%s mode=%s", sessionID, initiation.Pending.ClientTransactionID, initiation.Pending.Mode)

	c.JSON(http.StatusOK, response.FromPaymentInitiation(initiation))
}

// ConfirmRedirect verifies a redirect payment return and returns the order.
func (h *CheckoutHandler) ConfirmRedirect(c *gin.Context) {
	var payload request.ConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] confirm start txn=%s", payload.ClientTransactionID)

	order, err := h.usecase.HandleRedirectReturn(c.Request.Context(), payload.ID, payload.ClientTransactionID)
	if err != nil {
		log.Printf("[checkout][handler] confirm failed txn=%s err=%v", payload.ClientTransactionID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] confirm success txn=%s order_id=%s", payload.ClientTransactionID, order.ID)

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// WidgetCallback resolves the one-shot widget result for a session.
func (h *CheckoutHandler) WidgetCallback(c *gin.Context) {
	sessionID := c.Param("session_id")
	var payload request.WidgetCallbackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	result := usecase.WidgetCallbackResult{}
	if payload.Transaction != nil {
		result.Transaction = &usecase.WidgetTransaction{
			ID:     payload.Transaction.ID,
			Status: payload.Transaction.Status,
		}
	}

	order, err := h.usecase.HandleWidgetCallback(c.Request.Context(), sessionID, result)
	if err != nil {
		log.Printf("[checkout][handler] widget-callback failed session_id=%s err=%v", sessionID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] widget-callback success session_id=%s order_id=%s", sessionID, order.ID)

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// AcknowledgeFailure returns a failed session to the payment selection step.
func (h *CheckoutHandler) AcknowledgeFailure(c *gin.Context) {
	sessionID := c.Param("session_id")

	session, err := h.usecase.AcknowledgeFailure(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

// GetOrder returns a persisted order by id.
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := h.usecase.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidCountry),
		errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrInvalidTransactionRef),
		errors.Is(err, usecase.ErrInvalidRail),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidCoordinates),
		errors.Is(err, usecase.ErrUnknownCountry):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Checkout session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDetailsIncomplete):
		return pkg.NewDomainErrorSimple("DETAILS_INCOMPLETE", "Customer details incomplete", http.StatusConflict)
	case errors.Is(err, usecase.ErrShippingNotCalculated):
		return pkg.NewDomainErrorSimple("SHIPPING_NOT_CALCULATED", "Shipping must be calculated before payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentInFlight):
		return pkg.NewDomainErrorSimple("PAYMENT_IN_FLIGHT", "A payment attempt is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionCompleted):
		return pkg.NewDomainErrorSimple("SESSION_COMPLETED", "Checkout session already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionNotFailed):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FAILED", "Session is not in a failed state", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPaymentPending):
		return pkg.NewDomainErrorSimple("NO_PAYMENT_PENDING", "No payment pending for this session", http.StatusConflict)
	case errors.Is(err, usecase.ErrPendingPaymentLost):
		return pkg.NewDomainErrorSimple("PENDING_PAYMENT_LOST", "Pending payment record lost", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment was declined by the provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentStatusUnknown):
		return pkg.NewDomainErrorSimple("PAYMENT_STATUS_UNKNOWN", "Payment status could not be verified", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrProviderNotConfigured):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
