package interfaces

import (
	"context"
	"encoding/json"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IOrderRepository abstracts DynamoDB persistence for orders.
//
// Orders are written by the host platform; this service only reads them and
// stores split metadata, notes and the financial cost flag.

type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	SaveSplitData(ctx context.Context, id string, split json.RawMessage) error
	AddNote(ctx context.Context, id string, note entities.OrderNote) error
	MarkFinancialCostAdjusted(ctx context.Context, id string, total decimal.Decimal) error
}
