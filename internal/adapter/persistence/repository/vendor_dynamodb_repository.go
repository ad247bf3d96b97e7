package repository

import (
	"context"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"
	"github.com/mobbexco/woocommerce-marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultVendorsTableName = "vendors"

type vendorItem struct {
	ID                string `dynamodbav:"id"`
	StoreName         string `dynamodbav:"store_name"`
	TaxID             string `dynamodbav:"mobbex_tax_id,omitempty"`
	LegacyTaxID       string `dynamodbav:"legacy_tax_id,omitempty"`
	EntityUID         string `dynamodbav:"mobbex_entity,omitempty"`
	Hold              bool   `dynamodbav:"mobbex_marketplace_hold"`
	CommissionMode    string `dynamodbav:"commission_mode,omitempty"`
	CommissionPercent string `dynamodbav:"commission_percent,omitempty"`
	CommissionFixed   string `dynamodbav:"commission_fixed,omitempty"`
}

// VendorDynamoRepository reads marketplace vendor profiles.
//
// Table requirements:
//   - PK: id (string)

type VendorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVendorRepository = (*VendorDynamoRepository)(nil)

func NewVendorDynamoRepository(ddb *dynamodb.Client) *VendorDynamoRepository {
	return &VendorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VENDORS_TABLE", defaultVendorsTableName),
	}
}

func (r *VendorDynamoRepository) GetVendors(ctx context.Context, ids []string) (map[string]entities.Vendor, error) {
	raws, err := batchGetByID(ctx, r.ddb, r.tableName, ids)
	if err != nil {
		return nil, err
	}

	vendors := make(map[string]entities.Vendor, len(raws))
	for _, raw := range raws {
		var it vendorItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		vendors[it.ID] = fromVendorItem(it)
	}
	return vendors, nil
}

func fromVendorItem(it vendorItem) entities.Vendor {
	return entities.Vendor{
		ID:          it.ID,
		StoreName:   it.StoreName,
		TaxID:       it.TaxID,
		LegacyTaxID: it.LegacyTaxID,
		EntityUID:   it.EntityUID,
		Hold:        it.Hold,
		Commission: entities.Commission{
			Mode:    entities.CommissionMode(it.CommissionMode),
			Percent: parseAmount(it.CommissionPercent),
			Fixed:   parseAmount(it.CommissionFixed),
		},
	}
}
