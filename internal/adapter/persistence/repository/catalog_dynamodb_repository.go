package repository

import (
	"context"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"
	"github.com/mobbexco/woocommerce-marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultProductsTableName   = "products"
	defaultCategoriesTableName = "categories"
)

type productItem struct {
	ID          string   `dynamodbav:"id"`
	TaxID       string   `dynamodbav:"mbbx_marketplace_cuit,omitempty"`
	EntityUID   string   `dynamodbav:"mbbx_entity,omitempty"`
	Fee         string   `dynamodbav:"mbbx_marketplace_fee,omitempty"`
	CategoryIDs []string `dynamodbav:"category_ids,omitempty"`
	VendorID    string   `dynamodbav:"vendor_id,omitempty"`
}

type categoryItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	TaxID     string `dynamodbav:"mbbx_marketplace_cuit,omitempty"`
	EntityUID string `dynamodbav:"mbbx_entity,omitempty"`
	Fee       string `dynamodbav:"mbbx_marketplace_fee,omitempty"`
}

// CatalogDynamoRepository reads product and category marketplace meta.
//
// Table requirements (both tables):
//   - PK: id (string)

type CatalogDynamoRepository struct {
	ddb             *dynamodb.Client
	productsTable   string
	categoriesTable string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:             ddb,
		productsTable:   getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
		categoriesTable: getenvDefault("CATEGORIES_TABLE", defaultCategoriesTableName),
	}
}

func (r *CatalogDynamoRepository) GetProducts(ctx context.Context, ids []string) (map[string]entities.Product, error) {
	raws, err := batchGetByID(ctx, r.ddb, r.productsTable, ids)
	if err != nil {
		return nil, err
	}

	products := make(map[string]entities.Product, len(raws))
	for _, raw := range raws {
		var it productItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		products[it.ID] = entities.Product{
			ID:          it.ID,
			TaxID:       it.TaxID,
			EntityUID:   it.EntityUID,
			Fee:         parseAmount(it.Fee),
			CategoryIDs: it.CategoryIDs,
			VendorID:    it.VendorID,
		}
	}
	return products, nil
}

func (r *CatalogDynamoRepository) GetCategories(ctx context.Context, ids []string) (map[string]entities.Category, error) {
	raws, err := batchGetByID(ctx, r.ddb, r.categoriesTable, ids)
	if err != nil {
		return nil, err
	}

	categories := make(map[string]entities.Category, len(raws))
	for _, raw := range raws {
		var it categoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		categories[it.ID] = entities.Category{
			ID:        it.ID,
			Name:      it.Name,
			TaxID:     it.TaxID,
			EntityUID: it.EntityUID,
			Fee:       parseAmount(it.Fee),
		}
	}
	return categories, nil
}
