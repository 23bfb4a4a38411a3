package paypro

import (
	"encoding/json"
	"strconv"
	"strings"
)

// SimplifiedOrderResult is the client-facing flattening of whichever shape
// the gateway actually returned. Raw always carries the full upstream
// response so callers can recover manually when normalization missed fields.
type SimplifiedOrderResult struct {
	Status          string          `json:"status"`
	PayProID        string          `json:"payProId,omitempty"`
	OrderNumber     string          `json:"orderNumber,omitempty"`
	OrderAmount     string          `json:"orderAmount,omitempty"`
	Click2Pay       string          `json:"click2Pay,omitempty"`
	IframeClick2Pay string          `json:"iframeClick2Pay,omitempty"`
	BillURL         string          `json:"billUrl,omitempty"`
	ShortBillURL    string          `json:"shortBillUrl,omitempty"`
	CreatedOn       string          `json:"createdOn,omitempty"`
	Raw             json.RawMessage `json:"raw"`
}

// detailFields maps each simplified attribute to its candidate upstream
// keys, probed in priority order. The production API varies field names
// across calls and environments; a new variant is handled by extending the
// key list, not by new parsing code.
var detailFields = []struct {
	keys []string
	set  func(*SimplifiedOrderResult, string)
}{
	{[]string{"PayProId", "ConnectPayId"}, func(r *SimplifiedOrderResult, v string) { r.PayProID = v }},
	{[]string{"OrderNumber", "OrderNo"}, func(r *SimplifiedOrderResult, v string) { r.OrderNumber = v }},
	{[]string{"OrderAmount", "CurrencyAmount"}, func(r *SimplifiedOrderResult, v string) { r.OrderAmount = v }},
	{[]string{"Click2Pay"}, func(r *SimplifiedOrderResult, v string) { r.Click2Pay = v }},
	{[]string{"IframeClick2Pay", "IframeClickToPay", "Click2Pay"}, func(r *SimplifiedOrderResult, v string) { r.IframeClick2Pay = v }},
	{[]string{"BillUrl"}, func(r *SimplifiedOrderResult, v string) { r.BillURL = v }},
	{[]string{"short_BillUrl", "shortBillUrl"}, func(r *SimplifiedOrderResult, v string) { r.ShortBillURL = v }},
	{[]string{"Created_on", "CreatedOn"}, func(r *SimplifiedOrderResult, v string) { r.CreatedOn = v }},
}

var statusKeys = []string{"Status", "ResponseCode"}

// normalizeOrderResponse flattens the two observed upstream shapes: an array
// whose element 0 is a status object and element 1 the order details, or an
// object whose details sit under Data.
func normalizeOrderResponse(body []byte) (*SimplifiedOrderResult, error) {
	if !json.Valid(body) {
		return nil, &UpstreamError{Msg: "unparseable create order response"}
	}

	result := &SimplifiedOrderResult{
		Status: "Unknown",
		Raw:    json.RawMessage(append([]byte(nil), body...)),
	}

	var statusObj, detail, top map[string]interface{}

	var asArray []map[string]interface{}
	if err := json.Unmarshal(body, &asArray); err == nil {
		if len(asArray) > 0 {
			statusObj = asArray[0]
		}
		if len(asArray) > 1 {
			detail = asArray[1]
		}
	} else if err := json.Unmarshal(body, &top); err == nil {
		statusObj = top
		if d, ok := top["Data"].(map[string]interface{}); ok {
			detail = d
		}
	}

	for _, key := range statusKeys {
		if v := stringAt(statusObj, key); v != "" {
			result.Status = v
			break
		}
	}
	if result.Status == "Unknown" {
		if v := stringAt(top, "ResponseCode"); v != "" {
			result.Status = v
		}
	}

	for _, f := range detailFields {
		for _, key := range f.keys {
			if v := stringAt(detail, key); v != "" {
				f.set(result, v)
				break
			}
		}
	}

	return result, nil
}

// stringAt walks a decoded JSON object along path and stringifies the leaf.
// Returns "" when any step is absent or not an object.
func stringAt(m map[string]interface{}, path ...string) string {
	var cur interface{} = m
	for _, key := range path {
		obj, ok := cur.(map[string]interface{})
		if !ok {
			return ""
		}
		cur, ok = obj[key]
		if !ok {
			return ""
		}
	}

	switch v := cur.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
