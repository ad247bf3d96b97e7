package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mobbexco/woocommerce-marketplace/internal/adapter/http/handlers/mocks"
	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"
	"github.com/mobbexco/woocommerce-marketplace/internal/domain/marketplace"
	"github.com/mobbexco/woocommerce-marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newCheckoutRouter(h *CheckoutHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/orders/:order_id/checkout", h.BuildCheckout)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	code, _ := body["code"].(string)
	return code
}

func TestCheckoutHandler_BuildCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSplitUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		w := postJSON(r, "/v1/orders/100/checkout", "[]")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVALID_CHECKOUT_PAYLOAD" {
			t.Fatalf("unexpected code %q", code)
		}
	})

	t.Run("read error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSplitUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/100/checkout", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("split errors are unprocessable", func(t *testing.T) {
		cases := []struct {
			err  error
			code string
		}{
			{err: &marketplace.MissingRecipientError{ProductID: "P3"}, code: "SPLIT_MISSING_RECIPIENT"},
			{err: &marketplace.OrphanShippingError{ShippingMethod: "Flat Rate", VendorID: "V8"}, code: "SPLIT_ORPHAN_SHIPPING"},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockICheckoutSplitUseCase(ctrl)
			r := newCheckoutRouter(NewCheckoutHandler(uc))

			uc.EXPECT().BuildCheckoutData(gomock.Any(), "100", gomock.Any()).Return(entities.CheckoutData{}, tc.err)

			w := postJSON(r, "/v1/orders/100/checkout", `{"reference":"wc_100"}`)
			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", w.Code)
			}
			if code := errorCode(t, w); code != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, code)
			}
			ctrl.Finish()
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSplitUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().BuildCheckoutData(gomock.Any(), "404", gomock.Any()).Return(entities.CheckoutData{}, usecase.ErrOrderNotFound)

		w := postJSON(r, "/v1/orders/404/checkout", `{"reference":"wc_404"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSplitUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().BuildCheckoutData(gomock.Any(), "100", gomock.Any()).Return(entities.CheckoutData{}, errors.New("dynamodb down"))

		w := postJSON(r, "/v1/orders/100/checkout", `{"reference":"wc_100"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("dynamodb")) {
			t.Fatalf("internal cause must not leak: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSplitUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().BuildCheckoutData(gomock.Any(), "100", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, checkout entities.CheckoutData) (entities.CheckoutData, error) {
				if checkout.Reference != "wc_100" {
					t.Fatalf("unexpected reference %q", checkout.Reference)
				}
				checkout.Split = []entities.SplitLine{{TaxID: "20777777777", Total: decimal.NewFromInt(100), Fee: decimal.NewFromInt(10), Reference: "wc_100_split_20777777777"}}
				return checkout, nil
			},
		)

		w := postJSON(r, "/v1/orders/100/checkout", `{"reference":"wc_100","total":100}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		split, _ := body["split"].([]any)
		if len(split) != 1 {
			t.Fatalf("expected one split line, got %s", w.Body.String())
		}
		if total := split[0].(map[string]any)["total"]; total != float64(100) {
			t.Fatalf("expected numeric total 100, got %v", total)
		}
		if body["total"] != float64(100) {
			t.Fatalf("expected passthrough total, got %v", body["total"])
		}
	})
}
