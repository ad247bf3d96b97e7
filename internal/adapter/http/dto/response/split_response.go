package response

import (
	"encoding/json"
	"time"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"
	"github.com/mobbexco/woocommerce-marketplace/internal/usecase"
)

type OrderNoteResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderSplitResponse exposes the last split confirmed for an order.
type OrderSplitResponse struct {
	OrderID               string              `json:"order_id"`
	Split                 json.RawMessage     `json:"split"`
	FinancialCostAdjusted bool                `json:"financial_cost_adjusted"`
	Notes                 []OrderNoteResponse `json:"notes"`
}

type WebhookResponse struct {
	OrderID      string `json:"order_id"`
	SplitSaved   bool   `json:"split_saved"`
	HeldLines    int    `json:"held_lines"`
	CostAdjusted bool   `json:"cost_adjusted"`
}

type ReleaseResponse struct {
	OrderID      string `json:"order_id"`
	OperationUID string `json:"operation_uid"`
	Released     bool   `json:"released"`
	Message      string `json:"message,omitempty"`
}

func FromOrderSplit(o entities.Order) OrderSplitResponse {
	split := o.SplitData
	if len(split) == 0 {
		split = json.RawMessage("[]")
	}
	notes := make([]OrderNoteResponse, 0, len(o.Notes))
	for _, n := range o.Notes {
		notes = append(notes, OrderNoteResponse{ID: n.ID, Message: n.Message, CreatedAt: n.CreatedAt})
	}
	return OrderSplitResponse{
		OrderID:               o.ID,
		Split:                 split,
		FinancialCostAdjusted: o.FinancialCostAdjusted,
		Notes:                 notes,
	}
}

func FromRecordResult(r usecase.RecordResult) WebhookResponse {
	return WebhookResponse{
		OrderID:      r.OrderID,
		SplitSaved:   r.SplitSaved,
		HeldLines:    r.HeldLines,
		CostAdjusted: r.CostAdjusted,
	}
}

func FromReleaseResult(orderID string, r entities.ReleaseResult) ReleaseResponse {
	return ReleaseResponse{
		OrderID:      orderID,
		OperationUID: r.OperationUID,
		Released:     r.Released,
		Message:      r.Message,
	}
}
