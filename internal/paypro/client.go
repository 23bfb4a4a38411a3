package paypro

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"paybridge/internal/pkg/httpclient"
)

// Config holds the gateway parameters for order creation.
type Config struct {
	OrderURL     string
	MerchantID   string
	HomeCurrency string
	OrderDueDate string
}

// TokenProvider supplies a usable gateway token, refreshing it as needed.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// OrderRequest is one inbound order-creation request. Amount arrives as a
// string because callers send it as either a JSON number or a numeric string.
type OrderRequest struct {
	Amount          string
	Currency        string
	CustomerName    string
	CustomerMobile  string
	CustomerEmail   string
	CustomerAddress string
}

// Client submits order-creation requests to the gateway.
type Client struct {
	cfg    Config
	tokens TokenProvider
	client *httpclient.Client
	now    func() time.Time
}

// NewClient creates a gateway order client.
func NewClient(cfg Config, tokens TokenProvider, client *httpclient.Client) *Client {
	return &Client{
		cfg:    cfg,
		tokens: tokens,
		client: client,
		now:    time.Now,
	}
}

// CreateOrder validates the request, obtains a token, submits the order and
// normalizes the gateway response.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*SimplifiedOrderResult, error) {
	if err := validateOrder(&req, c.cfg.HomeCurrency); err != nil {
		return nil, err
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, &UpstreamError{Msg: "unable to obtain auth token", Err: err}
	}

	payload := c.buildPayload(req)

	resp, err := c.client.Request().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("token", token).
		SetBody(payload).
		Post(c.cfg.OrderURL)
	if err != nil {
		return nil, &UpstreamError{Msg: "create order request failed", Err: err}
	}

	result, err := normalizeOrderResponse(resp.Body())
	if err != nil {
		return nil, err
	}
	return result, nil
}

// validateOrder rejects bad input before any network call. An empty currency
// defaults to the merchant's home currency.
func validateOrder(req *OrderRequest, homeCurrency string) error {
	amount := strings.TrimSpace(req.Amount)
	if amount == "" {
		return &ValidationError{Field: "amount", Msg: "is required"}
	}
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: "amount", Msg: "must be numeric"}
	}
	if v <= 0 {
		return &ValidationError{Field: "amount", Msg: "must be positive"}
	}
	req.Amount = amount

	req.Currency = strings.TrimSpace(req.Currency)
	if req.Currency == "" {
		if homeCurrency == "" {
			return &ValidationError{Field: "currency", Msg: "is required"}
		}
		req.Currency = homeCurrency
	}
	return nil
}

// buildPayload builds the two-element payload the gateway expects:
// [ {MerchantId}, {order fields} ]. Foreign-currency orders move the amount
// into CurrencyAmount and flag it as already converted.
func (c *Client) buildPayload(req OrderRequest) []interface{} {
	now := c.now()

	customerName := req.CustomerName
	if customerName == "" {
		customerName = "Customer"
	}

	order := map[string]interface{}{
		"OrderNumber":             "Order-" + strconv.FormatInt(now.UnixMilli(), 10),
		"OrderDueDate":            c.cfg.OrderDueDate,
		"OrderType":               "Service",
		"IssueDate":               now.Format("2006-01-02"),
		"OrderExpireAfterSeconds": "0",
		"CustomerName":            customerName,
		"CustomerMobile":          req.CustomerMobile,
		"CustomerEmail":           req.CustomerEmail,
		"CustomerAddress":         req.CustomerAddress,
	}

	if strings.EqualFold(req.Currency, c.cfg.HomeCurrency) {
		order["OrderAmount"] = req.Amount
	} else {
		order["CurrencyAmount"] = req.Amount
		order["Currency"] = req.Currency
		order["IsConverted"] = true
	}

	return []interface{}{
		map[string]interface{}{"MerchantId": c.cfg.MerchantID},
		order,
	}
}
