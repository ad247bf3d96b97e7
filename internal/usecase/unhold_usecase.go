package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"
	"github.com/mobbexco/woocommerce-marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IUnholdUseCase releases split payments withheld by the gateway.

type IUnholdUseCase interface {
	Release(ctx context.Context, orderID, operationUID string) (entities.ReleaseResult, error)
}

type UnholdUseCase struct {
	orders  interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
	now     func() time.Time
}

var _ IUnholdUseCase = (*UnholdUseCase)(nil)

func NewUnholdUseCase(orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *UnholdUseCase {
	return &UnholdUseCase{orders: orders, gateway: gateway, now: func() time.Time { return time.Now().UTC() }}
}

// Release asks the gateway to release operationUID. A gateway failure is an
// UnholdError recorded as an order note; it is reported in the result, not
// returned.
func (u *UnholdUseCase) Release(ctx context.Context, orderID, operationUID string) (entities.ReleaseResult, error) {
	orderID = strings.TrimSpace(orderID)
	operationUID = strings.TrimSpace(operationUID)
	log.Printf("[split][unhold] release start order_id=%q operation_uid=%q", orderID, operationUID)
	if orderID == "" {
		return entities.ReleaseResult{}, ErrInvalidOrderID
	}
	if operationUID == "" {
		return entities.ReleaseResult{}, ErrInvalidOperationUID
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[split][unhold] failed loading order order_id=%s err=%v", orderID, err)
		return entities.ReleaseResult{}, err
	}
	if order.ID == "" {
		return entities.ReleaseResult{}, ErrOrderNotFound
	}

	result := entities.ReleaseResult{OperationUID: operationUID}
	var note string

	if u.gateway == nil {
		err = &UnholdError{OperationUID: operationUID, Err: errGatewayNotConfigured}
	} else if msg, gwErr := u.gateway.ReleaseOperation(ctx, operationUID); gwErr != nil {
		err = &UnholdError{OperationUID: operationUID, Err: gwErr}
	} else {
		result.Released = true
		result.Message = msg
		note = "Mobbex Marketplace: operation " + operationUID + " released. " + msg
	}

	if err != nil {
		log.Printf("[split][unhold] release failed order_id=%s err=%v", orderID, err)
		result.Message = err.Error()
		note = "Mobbex Marketplace: " + err.Error()
	}

	if err := u.orders.AddNote(ctx, orderID, entities.OrderNote{ID: uuid.NewString(), Message: strings.TrimSpace(note), CreatedAt: u.now()}); err != nil {
		log.Printf("[split][unhold] add note failed order_id=%s err=%v", orderID, err)
		return entities.ReleaseResult{}, err
	}

	log.Printf("[split][unhold] release done order_id=%s operation_uid=%s released=%t", orderID, operationUID, result.Released)
	return result, nil
}
