package domain

import (
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseErrorDetail_Message(t *testing.T) {
	cases := []struct {
		name string
		body string
		kind DetailKind
		want string
	}{
		{"string detail", `{"detail":"Animal not found"}`, DetailString, "Animal not found"},
		{"validation list", `{"detail":[{"msg":"field required"},{"msg":"too short"}]}`, DetailList, "field required, too short"},
		{"list entry without msg", `{"detail":[{"loc":["body","name"]},{"msg":"bad"}]}`, DetailList, `{"loc":["body","name"]}, bad`},
		{"list of strings", `{"detail":["a"]}`, DetailList, `"a"`},
		{"empty list", `{"detail":[]}`, DetailList, GenericErrorMessage},
		{"object detail", `{"detail":{"code":"E42","field":"qty"}}`, DetailObject, `{"code":"E42","field":"qty"}`},
		{"number detail", `{"detail":42}`, DetailObject, "42"},
		{"no detail", `{"error":"boom"}`, DetailNone, GenericErrorMessage},
		{"empty string", `{"detail":""}`, DetailNone, GenericErrorMessage},
		{"null", `{"detail":null}`, DetailNone, GenericErrorMessage},
		{"not json", `<html>502 Bad Gateway</html>`, DetailNone, GenericErrorMessage},
		{"empty body", ``, DetailNone, GenericErrorMessage},
		{"json array body", `[1,2]`, DetailNone, GenericErrorMessage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := ParseErrorDetail([]byte(tc.body))
			if d.Kind != tc.kind {
				t.Fatalf("kind = %s, want %s", d.Kind, tc.kind)
			}
			if got := d.Message(); got != tc.want {
				t.Fatalf("message = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestToast_JSON(t *testing.T) {
	b, err := json.Marshal(Toast{Message: "saved", Type: ToastSuccess, Duration: DefaultToastDuration})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"message":"saved","type":"success","duration":3000}` {
		t.Fatalf("unexpected json: %s", b)
	}

	b, _ = json.Marshal(Toast{Message: "read me", Type: ToastInfo})
	if string(b) != `{"message":"read me","type":"info"}` {
		t.Fatalf("persistent toast should omit duration: %s", b)
	}

	var back Toast
	if err := json.Unmarshal([]byte(`{"message":"x","type":"warning","duration":1500}`), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Duration != 1500*time.Millisecond || back.Type != ToastWarning {
		t.Fatalf("unexpected toast: %+v", back)
	}
}

func TestToastType_Valid(t *testing.T) {
	for _, typ := range []ToastType{ToastSuccess, ToastError, ToastWarning, ToastInfo} {
		if !typ.Valid() {
			t.Fatalf("%s should be valid", typ)
		}
	}
	if ToastType("fatal").Valid() {
		t.Fatalf("unknown type should be invalid")
	}
}

func TestNetworkError_Is(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:8000: connect: connection refused")
	err := error(&NetworkError{Method: "GET", Path: "/x", Err: cause})
	if !errors.Is(err, ErrServerUnreachable) {
		t.Fatalf("expected ErrServerUnreachable")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap")
	}
	if _, ok := StatusCode(err); ok {
		t.Fatalf("network errors carry no status")
	}

	status, ok := StatusCode(&APIError{Status: 422, Message: "bad"})
	if !ok || status != 422 {
		t.Fatalf("unexpected status: %d %v", status, ok)
	}
}

func TestLoginPath(t *testing.T) {
	cases := map[string]string{
		"":        "/login",
		"/":       "/login",
		"/admin":  "/admin/login",
		"/admin/": "/admin/login",
	}
	for in, want := range cases {
		if got := LoginPath(in); got != want {
			t.Fatalf("LoginPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPage_Values(t *testing.T) {
	if got := (Page{}).Values().Encode(); got != "limit=50&offset=0" {
		t.Fatalf("unexpected defaults: %s", got)
	}
	if got := (Page{Limit: 10, Offset: -5}).Values().Encode(); got != "limit=10&offset=0" {
		t.Fatalf("unexpected clamp: %s", got)
	}
}

func TestFilters_Apply(t *testing.T) {
	v := CustomerFilter{CountType: "name", Name: "ka"}.Apply(url.Values{})
	if v.Encode() != "count_type=name&name=ka" {
		t.Fatalf("unexpected customer filter: %s", v.Encode())
	}
	v = PurchaseFilter{StartDate: "2024-01-01", EndDate: "2024-01-31"}.Apply(nil)
	if v.Encode() != "end_date=2024-01-31&start_date=2024-01-01" {
		t.Fatalf("unexpected purchase filter: %s", v.Encode())
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeOrderTotals(t *testing.T) {
	got := ComputeOrderTotals(3, dec("1200.50"), dec("100"), dec("54.5"), dec("25"))
	if !got.Gross.Equal(dec("3601.5")) {
		t.Fatalf("gross = %s", got.Gross)
	}
	if !got.Net.Equal(dec("3501.5")) {
		t.Fatalf("net = %s", got.Net)
	}
	if !got.Total.Equal(dec("3581")) {
		t.Fatalf("total = %s", got.Total)
	}

	// discount larger than gross clamps net to zero; tax and shipping still apply
	got = ComputeOrderTotals(1, dec("10"), dec("50"), dec("1"), dec("2"))
	if !got.Net.IsZero() || !got.Total.Equal(dec("3")) {
		t.Fatalf("unexpected clamp: %+v", got)
	}
}

func TestDiscountConversions(t *testing.T) {
	if got := DiscountFromPercent(dec("3601.5"), dec("10")); !got.Equal(dec("360.15")) {
		t.Fatalf("discount from percent = %s", got)
	}
	if got := PercentFromDiscount(dec("300"), dec("100")); !got.Equal(dec("33.33")) {
		t.Fatalf("percent from discount = %s", got)
	}
	if got := PercentFromDiscount(decimal.Zero, dec("100")); !got.IsZero() {
		t.Fatalf("zero gross should yield zero percent, got %s", got)
	}
}

func TestComputePurchaseTotals(t *testing.T) {
	got := ComputePurchaseTotals(4, dec("25"), decimal.Zero, dec("10"))
	if !got.Gross.Equal(dec("100")) || !got.DiscountAmount.Equal(dec("10")) || !got.Total.Equal(dec("90")) {
		t.Fatalf("percentage should drive amount: %+v", got)
	}

	got = ComputePurchaseTotals(2, dec("50"), dec("25"), decimal.Zero)
	if !got.DiscountPercent.Equal(dec("25")) || !got.Total.Equal(dec("75")) {
		t.Fatalf("amount should derive percentage: %+v", got)
	}
}
