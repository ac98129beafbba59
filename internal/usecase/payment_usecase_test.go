package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	mock_interfaces "eolia_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_CreateIntent_Validation(t *testing.T) {
	t.Run("non-positive amount", func(t *testing.T) {
		uc := NewPaymentUseCase(nil)
		_, err := uc.CreateIntent(context.Background(), 0, "", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		uc := NewPaymentUseCase(nil)
		_, err := uc.CreateIntent(context.Background(), 100, "", nil)
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		uc := NewPaymentUseCase(nil)
		_, err := uc.CreateIntent(context.Background(), 100, "", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		uc := NewPaymentUseCase(nil)
		_, err := uc.CreateIntent(context.Background(), 100, "", json.RawMessage(`{"payment_method_id":"card"}`))
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})
}

func TestPaymentUseCase_CreateIntent_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	uc := NewPaymentUseCase(nil)

	res, err := uc.CreateIntent(context.Background(), 14900, "Eolia order", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PaymentIntentID == "" || res.Status != "approved" {
		t.Fatalf("unexpected intent: %+v", res)
	}

	var body map[string]any
	if err := json.Unmarshal(res.ProviderResponse, &body); err != nil {
		t.Fatalf("provider response should be valid json: %v", err)
	}
	if body["transaction_amount"] != float64(14900) {
		t.Fatalf("unexpected mock amount: %v", body["transaction_amount"])
	}
}

func TestPaymentUseCase_CreateIntent_ServerAmountWins(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentUseCase(gateway)

	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var body map[string]any
			if err := json.Unmarshal(payload, &body); err != nil {
				t.Fatalf("payload should be valid json: %v", err)
			}
			if body["transaction_amount"] != float64(14900) {
				t.Fatalf("client amount should be overwritten, got %v", body["transaction_amount"])
			}
			if body["description"] != "Eolia order" {
				t.Fatalf("description not defaulted: %v", body["description"])
			}
			return "pay-1", "in_process", json.RawMessage(`{"id":"pay-1"}`), nil
		},
	)

	res, err := uc.CreateIntent(context.Background(), 14900, "Eolia order", json.RawMessage(`{"transaction_amount":1,"payment_method_id":"card"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PaymentIntentID != "pay-1" || res.Status != "in_process" {
		t.Fatalf("unexpected intent: %+v", res)
	}
}

func TestPaymentUseCase_CreateIntent_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "bad request body", err: errors.New(`{"error":"bad_request"}`), want: ErrPaymentGatewayBadRequest},
		{name: "status 400", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
		{name: "unauthorized body", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "status 401", err: errors.New(`{"status":401}`), want: ErrPaymentGatewayUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PAYMENT_GATEWAY_MOCK", "")
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewPaymentUseCase(gateway)

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.CreateIntent(context.Background(), 50, "", json.RawMessage(`{"payment_method_id":"card"}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error passes through", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.CreateIntent(context.Background(), 50, "", json.RawMessage(`{"payment_method_id":"card"}`))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestIsPaymentGatewayMockEnabled(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on ", "mock"} {
		t.Setenv("PAYMENT_GATEWAY_MOCK", v)
		if !isPaymentGatewayMockEnabled() {
			t.Fatalf("expected mock enabled for %q", v)
		}
	}
	for _, v := range []string{"", "0", "false", "off"} {
		t.Setenv("PAYMENT_GATEWAY_MOCK", v)
		if isPaymentGatewayMockEnabled() {
			t.Fatalf("expected mock disabled for %q", v)
		}
	}
}
