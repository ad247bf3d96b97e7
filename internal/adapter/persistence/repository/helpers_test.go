package repository

import (
	"testing"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkIDs(t *testing.T) {
	chunks := chunkIDs([]string{"1", "", "2", "1", "3", "4", "5"}, 2)
	require.Len(t, chunks, 3)
	assert.Equal(t, []string{"1", "2"}, chunks[0])
	assert.Equal(t, []string{"3", "4"}, chunks[1])
	assert.Equal(t, []string{"5"}, chunks[2])

	assert.Empty(t, chunkIDs(nil, batchGetLimit))
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, "12.5", parseAmount(" 12.50 ").String())
	assert.True(t, parseAmount("").IsZero())
	assert.True(t, parseAmount("abc").IsZero())
}

func TestFromOrderItem(t *testing.T) {
	order := fromOrderItem(orderItem{
		ID:        "100",
		Total:     "250.00",
		Items:     []lineItemItem{{ProductID: "P1", Quantity: 2, Total: "200", VendorID: "V7"}},
		Shippings: []shippingItemItem{{Name: "Flat Rate", Total: "50", VendorID: "V7"}},
		SplitData: `[{"tax_id":"1"}]`,
		Notes:     []orderNoteItem{{ID: "n1", Message: "hello", CreatedAt: "2024-03-01T10:00:00Z"}},
	})

	assert.Equal(t, "100", order.ID)
	assert.Equal(t, "250", order.Total.String())
	require.Len(t, order.Items, 1)
	assert.Equal(t, "200", order.Items[0].Total.String())
	assert.Equal(t, "V7", order.Items[0].VendorID)
	require.Len(t, order.Shippings, 1)
	assert.Equal(t, "Flat Rate", order.Shippings[0].Name)
	assert.JSONEq(t, `[{"tax_id":"1"}]`, string(order.SplitData))
	require.Len(t, order.Notes, 1)
	assert.Equal(t, 2024, order.Notes[0].CreatedAt.Year())
}

func TestFromVendorItem(t *testing.T) {
	v := fromVendorItem(vendorItem{
		ID:                "V7",
		StoreName:         "Shoe Store",
		TaxID:             "20777777777",
		Hold:              true,
		CommissionMode:    "percent",
		CommissionPercent: "10",
	})

	assert.Equal(t, entities.CommissionModePercent, v.Commission.Mode)
	assert.Equal(t, "10", v.Commission.Percent.String())
	assert.True(t, v.Commission.Fixed.IsZero())
	assert.True(t, v.Hold)
}
