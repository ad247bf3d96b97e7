package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"
	"github.com/mobbexco/woocommerce-marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const orderDescriptionPrefix = "Orden #"

// ISplitResponseUseCase records the split confirmed by the gateway.
//
// Webhook deliveries for the same order must be serialized by the caller:
// the stored split is last-write-wins.

type ISplitResponseUseCase interface {
	Record(ctx context.Context, response entities.GatewayResponse, orderID string) (RecordResult, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Order, error)
}

// RecordResult summarizes what Record persisted.
type RecordResult struct {
	OrderID      string
	SplitSaved   bool
	HeldLines    int
	CostAdjusted bool
}

type SplitResponseUseCase struct {
	orders interfaces.IOrderRepository
	now    func() time.Time
}

var _ ISplitResponseUseCase = (*SplitResponseUseCase)(nil)

func NewSplitResponseUseCase(orders interfaces.IOrderRepository) *SplitResponseUseCase {
	return &SplitResponseUseCase{orders: orders, now: func() time.Time { return time.Now().UTC() }}
}

// Record stores response.Split verbatim on the order and adds one note per
// held split line. Notes are added on every call, so a repeated delivery
// yields repeated notes.
func (u *SplitResponseUseCase) Record(ctx context.Context, response entities.GatewayResponse, orderID string) (RecordResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		orderID = orderIDFromDescription(response.Description)
	}
	log.Printf("[split][recorder] record start order_id=%q split_len=%d", orderID, len(response.Split))
	if orderID == "" {
		return RecordResult{}, ErrInvalidOrderID
	}

	result := RecordResult{OrderID: orderID}
	if isEmptySplit(response.Split) {
		log.Printf("[split][recorder] no split in response order_id=%s", orderID)
		return result, nil
	}

	var confirmed []entities.ConfirmedSplit
	if err := json.Unmarshal(response.Split, &confirmed); err != nil {
		log.Printf("[split][recorder] split unmarshal failed order_id=%s err=%v", orderID, err)
		return RecordResult{}, fmt.Errorf("%w: %v", ErrInvalidGatewayResponse, err)
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[split][recorder] failed loading order order_id=%s err=%v", orderID, err)
		return RecordResult{}, err
	}
	if order.ID == "" {
		return RecordResult{}, ErrOrderNotFound
	}

	if err := u.orders.SaveSplitData(ctx, orderID, response.Split); err != nil {
		log.Printf("[split][recorder] save split failed order_id=%s err=%v", orderID, err)
		return RecordResult{}, err
	}
	result.SplitSaved = true

	for _, line := range confirmed {
		if !line.Hold {
			continue
		}
		if err := u.addNote(ctx, orderID, holdNote(line)); err != nil {
			return RecordResult{}, err
		}
		result.HeldLines++
	}

	if !order.FinancialCostAdjusted && order.Total.IsPositive() && response.Total.GreaterThan(order.Total) {
		cost := response.Total.Sub(order.Total)
		if err := u.orders.MarkFinancialCostAdjusted(ctx, orderID, response.Total); err != nil {
			log.Printf("[split][recorder] financial cost adjust failed order_id=%s err=%v", orderID, err)
			return RecordResult{}, err
		}
		if err := u.addNote(ctx, orderID, fmt.Sprintf("Mobbex Marketplace: financial cost of %s added to the order total.", cost.StringFixed(2))); err != nil {
			return RecordResult{}, err
		}
		result.CostAdjusted = true
	}

	log.Printf("[split][recorder] record success order_id=%s held_lines=%d cost_adjusted=%t", orderID, result.HeldLines, result.CostAdjusted)
	return result, nil
}

func (u *SplitResponseUseCase) GetByOrderID(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *SplitResponseUseCase) addNote(ctx context.Context, orderID, message string) error {
	note := entities.OrderNote{ID: uuid.NewString(), Message: message, CreatedAt: u.now()}
	if err := u.orders.AddNote(ctx, orderID, note); err != nil {
		log.Printf("[split][recorder] add note failed order_id=%s err=%v", orderID, err)
		return err
	}
	return nil
}

func holdNote(line entities.ConfirmedSplit) string {
	recipient := line.TaxID
	if recipient == "" {
		recipient = line.Entity
	}
	msg := fmt.Sprintf("Mobbex Marketplace: payment of %s to %s (%s) is on hold.", line.Total.StringFixed(2), recipient, line.Reference)
	if line.UID != "" {
		msg += " Operation " + line.UID + "."
	}
	return msg
}

func isEmptySplit(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return false
	}
	return len(entries) == 0
}

// orderIDFromDescription reads "Orden #123" style checkout descriptions.
func orderIDFromDescription(description string) string {
	description = strings.TrimSpace(description)
	if !strings.HasPrefix(description, orderDescriptionPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(description, orderDescriptionPrefix))
}
