package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"
	"github.com/mobbexco/woocommerce-marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID                    string             `dynamodbav:"id"`
	Total                 string             `dynamodbav:"total"`
	Items                 []lineItemItem     `dynamodbav:"items"`
	Shippings             []shippingItemItem `dynamodbav:"shippings"`
	SplitData             string             `dynamodbav:"split_data,omitempty"`
	FinancialCostAdjusted bool               `dynamodbav:"financial_cost_adjusted"`
	Notes                 []orderNoteItem    `dynamodbav:"notes,omitempty"`
	UpdatedAt             string             `dynamodbav:"updated_at,omitempty"`
}

type lineItemItem struct {
	ProductID   string `dynamodbav:"product_id"`
	VariationID string `dynamodbav:"variation_id,omitempty"`
	Quantity    int    `dynamodbav:"quantity"`
	Total       string `dynamodbav:"total"`
	VendorID    string `dynamodbav:"vendor_id,omitempty"`
}

type shippingItemItem struct {
	Name     string `dynamodbav:"name"`
	Total    string `dynamodbav:"total"`
	VendorID string `dynamodbav:"vendor_id,omitempty"`
}

type orderNoteItem struct {
	ID        string `dynamodbav:"id"`
	Message   string `dynamodbav:"message"`
	CreatedAt string `dynamodbav:"created_at"`
}

// OrderDynamoRepository reads orders and stores split metadata in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Amounts are stored as decimal strings to keep cents exact.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// SaveSplitData overwrites the stored split; the last confirmed split wins.
func (r *OrderDynamoRepository) SaveSplitData(ctx context.Context, id string, split json.RawMessage) error {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #split_data = :split_data, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":split_data": &types.AttributeValueMemberS{Value: string(split)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#split_data": "split_data",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) AddNote(ctx context.Context, id string, note entities.OrderNote) error {
	av, err := attributevalue.Marshal([]orderNoteItem{toOrderNoteItem(note)})
	if err != nil {
		return err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #notes = list_append(if_not_exists(#notes, :empty), :note), #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":note":       av,
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#notes":      "notes",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// MarkFinancialCostAdjusted stores the adjusted order total once; a second
// call on an already adjusted order is a no-op.
func (r *OrderDynamoRepository) MarkFinancialCostAdjusted(ctx context.Context, id string, total decimal.Decimal) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#adjusted) OR #adjusted = :false)"),
		UpdateExpression:    aws.String("SET #total = :total, #adjusted = :true, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":total":      &types.AttributeValueMemberS{Value: total.String()},
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":false":      &types.AttributeValueMemberBOOL{Value: false},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#total":      "total",
			"#adjusted":   "financial_cost_adjusted",
			"#updated_at": "updated_at",
		},
	})
	if isConditionalCheckFailed(err) {
		return nil
	}
	return err
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
	})
	if isConditionalCheckFailed(err) {
		return ErrItemNotFound
	}
	return err
}

func toOrderNoteItem(n entities.OrderNote) orderNoteItem {
	return orderNoteItem{
		ID:        n.ID,
		Message:   n.Message,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	order := entities.Order{
		ID:                    it.ID,
		Total:                 parseAmount(it.Total),
		FinancialCostAdjusted: it.FinancialCostAdjusted,
	}
	if it.SplitData != "" {
		order.SplitData = json.RawMessage(it.SplitData)
	}
	for _, li := range it.Items {
		order.Items = append(order.Items, entities.LineItem{
			ProductID:   li.ProductID,
			VariationID: li.VariationID,
			Quantity:    li.Quantity,
			Total:       parseAmount(li.Total),
			VendorID:    li.VendorID,
		})
	}
	for _, si := range it.Shippings {
		order.Shippings = append(order.Shippings, entities.ShippingItem{
			Name:     si.Name,
			Total:    parseAmount(si.Total),
			VendorID: si.VendorID,
		})
	}
	for _, n := range it.Notes {
		createdAt, _ := time.Parse(time.RFC3339Nano, n.CreatedAt)
		order.Notes = append(order.Notes, entities.OrderNote{ID: n.ID, Message: n.Message, CreatedAt: createdAt})
	}
	return order
}
