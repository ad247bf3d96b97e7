package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"
	mock_interfaces "github.com/mobbexco/woocommerce-marketplace/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUnholdUseCase_Release_Validations(t *testing.T) {
	uc := NewUnholdUseCase(nil, nil)

	if _, err := uc.Release(context.Background(), "", "op-1"); !errors.Is(err, ErrInvalidOrderID) {
		t.Fatalf("expected ErrInvalidOrderID, got %v", err)
	}
	if _, err := uc.Release(context.Background(), "100", " "); !errors.Is(err, ErrInvalidOperationUID) {
		t.Fatalf("expected ErrInvalidOperationUID, got %v", err)
	}
}

func TestUnholdUseCase_Release(t *testing.T) {
	t.Run("success adds note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewUnholdUseCase(orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "100").Return(entities.Order{ID: "100"}, nil)
		gateway.EXPECT().ReleaseOperation(gomock.Any(), "op-1").Return("Operación liberada", nil)
		orders.EXPECT().AddNote(gomock.Any(), "100", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, note entities.OrderNote) error {
				if !strings.Contains(note.Message, "op-1 released") {
					t.Fatalf("unexpected note: %s", note.Message)
				}
				return nil
			},
		)

		res, err := uc.Release(context.Background(), "100", "op-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Released || res.Message != "Operación liberada" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("gateway failure becomes a note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewUnholdUseCase(orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "100").Return(entities.Order{ID: "100"}, nil)
		gateway.EXPECT().ReleaseOperation(gomock.Any(), "op-1").Return("", errors.New("operation not found"))
		orders.EXPECT().AddNote(gomock.Any(), "100", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, note entities.OrderNote) error {
				if !strings.Contains(note.Message, "operation not found") {
					t.Fatalf("unexpected note: %s", note.Message)
				}
				return nil
			},
		)

		res, err := uc.Release(context.Background(), "100", "op-1")
		if err != nil {
			t.Fatalf("gateway errors must not be returned, got %v", err)
		}
		if res.Released || !strings.Contains(res.Message, "operation not found") {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewUnholdUseCase(orders, nil)

		orders.EXPECT().GetByID(gomock.Any(), "100").Return(entities.Order{ID: "100"}, nil)
		orders.EXPECT().AddNote(gomock.Any(), "100", gomock.Any()).Return(nil)

		res, err := uc.Release(context.Background(), "100", "op-1")
		if err != nil || res.Released {
			t.Fatalf("expected unreleased result, got %+v err=%v", res, err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewUnholdUseCase(orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "100").Return(entities.Order{}, nil)

		if _, err := uc.Release(context.Background(), "100", "op-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("note error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewUnholdUseCase(orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "100").Return(entities.Order{ID: "100"}, nil)
		gateway.EXPECT().ReleaseOperation(gomock.Any(), "op-1").Return("ok", nil)
		orders.EXPECT().AddNote(gomock.Any(), "100", gomock.Any()).Return(errors.New("db"))

		if _, err := uc.Release(context.Background(), "100", "op-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestUnholdError(t *testing.T) {
	cause := errors.New("timeout")
	err := error(&UnholdError{OperationUID: "op-1", Err: cause})
	if !errors.Is(err, cause) {
		t.Fatalf("UnholdError must unwrap its cause")
	}
	var unhold *UnholdError
	if !errors.As(err, &unhold) || unhold.OperationUID != "op-1" {
		t.Fatalf("unexpected error: %v", err)
	}
}
