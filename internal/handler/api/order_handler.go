package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"paybridge/internal/middleware"
	"paybridge/internal/models"
	"paybridge/internal/paypro"
)

// OrderAuditor records accepted orders. Nil when no database is configured.
type OrderAuditor interface {
	Create(log *models.OrderLog) error
}

// OrderNotifier reports accepted orders to an external channel.
type OrderNotifier interface {
	OrderCreated(orderNumber, amount, currency, status string) error
}

// OrderHandler serves POST /api/order.
type OrderHandler struct {
	gateway  *paypro.Client
	auditor  OrderAuditor
	notifier OrderNotifier
	logger   *zap.Logger
}

func NewOrderHandler(gateway *paypro.Client, auditor OrderAuditor, notifier OrderNotifier, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		gateway:  gateway,
		auditor:  auditor,
		notifier: notifier,
		logger:   logger,
	}
}

// Handle validates the inbound order, forwards it to the gateway and returns
// the simplified result.
func (h *OrderHandler) Handle(c echo.Context) error {
	body := make(map[string]interface{})
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid JSON body")
	}

	req := paypro.OrderRequest{
		Amount:          stringField(body, "amount"),
		Currency:        stringField(body, "currency"),
		CustomerName:    stringField(body, "customerName"),
		CustomerMobile:  stringField(body, "customerMobile"),
		CustomerEmail:   stringField(body, "customerEmail"),
		CustomerAddress: stringField(body, "customerAddress"),
	}

	result, err := h.gateway.CreateOrder(c.Request().Context(), req)
	if err != nil {
		var verr *paypro.ValidationError
		if errors.As(err, &verr) {
			return badRequest(c, verr.Error())
		}
		h.logger.Error("Order creation failed",
			zap.Error(err),
			zap.String("amount", req.Amount),
			zap.String("currency", req.Currency),
		)
		return serverError(c, err.Error())
	}

	h.recordOrder(c, req, result)

	return c.JSON(http.StatusOK, result)
}

// recordOrder writes the audit row and notification asynchronously so they
// never delay or fail the client response.
func (h *OrderHandler) recordOrder(c echo.Context, req paypro.OrderRequest, result *paypro.SimplifiedOrderResult) {
	requestID, _ := c.Get(middleware.RequestIDKey).(string)
	ip := c.RealIP()

	if h.auditor != nil {
		go func() {
			err := h.auditor.Create(&models.OrderLog{
				RequestID:   requestID,
				OrderNumber: result.OrderNumber,
				PayProID:    result.PayProID,
				Amount:      req.Amount,
				Currency:    req.Currency,
				Status:      result.Status,
				IP:          ip,
				Raw:         string(result.Raw),
			})
			if err != nil {
				h.logger.Warn("Order audit write failed", zap.Error(err))
			}
		}()
	}

	if h.notifier != nil {
		go func() {
			if err := h.notifier.OrderCreated(result.OrderNumber, req.Amount, req.Currency, result.Status); err != nil {
				h.logger.Warn("Order notification failed", zap.Error(err))
			}
		}()
	}
}
