package paypro

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeOrderResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
		want SimplifiedOrderResult
	}{
		{
			name: "canonical array shape",
			body: `[{"Status":"Success"},{"PayProId":"PP1","OrderNumber":"Order-1","OrderAmount":"500","Click2Pay":"c2p","IframeClick2Pay":"ifr","BillUrl":"b","short_BillUrl":"sb","Created_on":"2026-01-01"}]`,
			want: SimplifiedOrderResult{
				Status: "Success", PayProID: "PP1", OrderNumber: "Order-1", OrderAmount: "500",
				Click2Pay: "c2p", IframeClick2Pay: "ifr", BillURL: "b", ShortBillURL: "sb", CreatedOn: "2026-01-01",
			},
		},
		{
			name: "OrderNo instead of OrderNumber",
			body: `[{"Status":"Success"},{"OrderNo":"Order-2"}]`,
			want: SimplifiedOrderResult{Status: "Success", OrderNumber: "Order-2"},
		},
		{
			name: "ConnectPayId and IframeClickToPay variants",
			body: `[{"ResponseCode":"00"},{"ConnectPayId":"CP9","IframeClickToPay":"ifr2","CurrencyAmount":"42.5"}]`,
			want: SimplifiedOrderResult{Status: "00", PayProID: "CP9", IframeClick2Pay: "ifr2", OrderAmount: "42.5"},
		},
		{
			name: "iframe falls back to Click2Pay",
			body: `[{"Status":"Success"},{"Click2Pay":"only"}]`,
			want: SimplifiedOrderResult{Status: "Success", Click2Pay: "only", IframeClick2Pay: "only"},
		},
		{
			name: "short_BillUrl preferred over shortBillUrl",
			body: `[{"Status":"Success"},{"short_BillUrl":"legacy","shortBillUrl":"camel"}]`,
			want: SimplifiedOrderResult{Status: "Success", ShortBillURL: "legacy"},
		},
		{
			name: "CreatedOn fallback",
			body: `[{"Status":"Success"},{"CreatedOn":"2026-02-02"}]`,
			want: SimplifiedOrderResult{Status: "Success", CreatedOn: "2026-02-02"},
		},
		{
			name: "object shape with Data details",
			body: `{"ResponseCode":"01","Data":{"OrderNumber":"Order-3","PayProId":"PP3"}}`,
			want: SimplifiedOrderResult{Status: "01", OrderNumber: "Order-3", PayProID: "PP3"},
		},
		{
			name: "numeric status code stringified",
			body: `[{"ResponseCode":100},{"OrderNumber":"Order-4"}]`,
			want: SimplifiedOrderResult{Status: "100", OrderNumber: "Order-4"},
		},
		{
			name: "empty array defaults to Unknown",
			body: `[]`,
			want: SimplifiedOrderResult{Status: "Unknown"},
		},
		{
			name: "unrecognized object defaults to Unknown",
			body: `{"weird":"shape"}`,
			want: SimplifiedOrderResult{Status: "Unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeOrderResponse([]byte(tt.body))
			if err != nil {
				t.Fatalf("normalizeOrderResponse returned error: %v", err)
			}
			if string(got.Raw) != tt.body {
				t.Fatalf("Raw=%s, expected the full upstream body", got.Raw)
			}

			got.Raw = nil
			if !reflect.DeepEqual(*got, tt.want) {
				t.Fatalf("result=%+v, expected %+v", *got, tt.want)
			}
		})
	}
}

func TestNormalizeInvalidJSON(t *testing.T) {
	_, err := normalizeOrderResponse([]byte("not json"))

	var uerr *UpstreamError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
}

func TestStringAt(t *testing.T) {
	m := map[string]interface{}{
		"a": map[string]interface{}{"b": "v"},
		"n": float64(500),
		"f": 19.99,
	}

	if got := stringAt(m, "a", "b"); got != "v" {
		t.Fatalf("nested lookup=%q", got)
	}
	if got := stringAt(m, "n"); got != "500" {
		t.Fatalf("integer stringified=%q", got)
	}
	if got := stringAt(m, "f"); got != "19.99" {
		t.Fatalf("decimal stringified=%q", got)
	}
	if got := stringAt(m, "missing"); got != "" {
		t.Fatalf("missing key=%q, expected empty", got)
	}
	if got := stringAt(nil, "a"); got != "" {
		t.Fatalf("nil map=%q, expected empty", got)
	}
}
