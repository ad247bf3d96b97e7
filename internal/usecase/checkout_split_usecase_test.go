package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"
	"github.com/mobbexco/woocommerce-marketplace/internal/domain/marketplace"
	mock_interfaces "github.com/mobbexco/woocommerce-marketplace/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func marketplaceSettings() entities.Settings {
	return entities.Settings{
		Integration:      entities.IntegrationDokan,
		ShippingManager:  entities.ShippingManagerCustom,
		DefaultFee:       dec("2"),
		CustomShipping:   []entities.CustomShippingRule{{ShippingMethod: "Flat Rate", Type: entities.ShippingRuleAdmin}},
		ExtensionName:    "mobbex_marketplace",
		ExtensionVersion: "1.0.0",
	}
}

func TestCheckoutSplitUseCase_BuildCheckoutData_Validations(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := NewCheckoutSplitUseCase(nil, nil, nil, entities.Settings{})
		_, err := uc.BuildCheckoutData(context.Background(), " ", entities.CheckoutData{Reference: "ref"})
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("empty reference", func(t *testing.T) {
		uc := NewCheckoutSplitUseCase(nil, nil, nil, entities.Settings{})
		_, err := uc.BuildCheckoutData(context.Background(), "100", entities.CheckoutData{})
		if !errors.Is(err, ErrInvalidCheckoutReference) {
			t.Fatalf("expected ErrInvalidCheckoutReference, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCheckoutSplitUseCase(orders, nil, nil, entities.Settings{})

		orders.EXPECT().GetByID(gomock.Any(), "100").Return(entities.Order{}, nil)

		_, err := uc.BuildCheckoutData(context.Background(), "100", entities.CheckoutData{Reference: "ref"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("catalog error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCheckoutSplitUseCase(orders, catalog, nil, entities.Settings{})

		orders.EXPECT().GetByID(gomock.Any(), "100").Return(entities.Order{ID: "100", Items: []entities.LineItem{{ProductID: "A"}}}, nil)
		catalog.EXPECT().GetProducts(gomock.Any(), []string{"A"}).Return(nil, errors.New("db"))

		_, err := uc.BuildCheckoutData(context.Background(), "100", entities.CheckoutData{Reference: "ref"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCheckoutSplitUseCase_BuildCheckoutData_Marketplace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	vendors := mock_interfaces.NewMockIVendorRepository(ctrl)
	uc := NewCheckoutSplitUseCase(orders, catalog, vendors, marketplaceSettings())

	orders.EXPECT().GetByID(gomock.Any(), "100").Return(entities.Order{
		ID:    "100",
		Total: dec("480"),
		Items: []entities.LineItem{
			{ProductID: "P1", Total: dec("300"), VendorID: "V7"},
			{ProductID: "P2", Total: dec("150"), VendorID: "V7"},
		},
		Shippings: []entities.ShippingItem{{Name: "Flat Rate", Total: dec("30"), VendorID: "V7"}},
	}, nil)
	catalog.EXPECT().GetProducts(gomock.Any(), []string{"P1", "P2"}).Return(map[string]entities.Product{
		"P1": {ID: "P1", CategoryIDs: []string{"shoes"}},
		"P2": {ID: "P2"},
	}, nil)
	catalog.EXPECT().GetCategories(gomock.Any(), []string{"shoes"}).Return(map[string]entities.Category{
		"shoes": {ID: "shoes", Fee: dec("5")},
	}, nil)
	vendors.EXPECT().GetVendors(gomock.Any(), []string{"V7"}).Return(map[string]entities.Vendor{
		"V7": {ID: "V7", StoreName: "Seven", TaxID: "20777777777", Commission: entities.Commission{Mode: entities.CommissionModePercent, Percent: dec("10")}},
	}, nil)

	var in entities.CheckoutData
	if err := json.Unmarshal([]byte(`{"reference":"ref","total":480,"split":[]}`), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	out, err := uc.BuildCheckoutData(context.Background(), "100", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Split) != 1 {
		t.Fatalf("expected one split line, got %+v", out.Split)
	}
	line := out.Split[0]
	if !line.Total.Equal(dec("480")) {
		t.Fatalf("expected total 480 (items + shipping), got %s", line.Total)
	}
	// 10% vendor commission on 450 + admin shipping 30; category and default fees do not apply
	if !line.Fee.Equal(dec("75")) {
		t.Fatalf("expected fee 75, got %s", line.Fee)
	}
	if line.Reference != "ref_split_20777777777" {
		t.Fatalf("unexpected reference %s", line.Reference)
	}

	b, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if body["total"] != float64(480) {
		t.Fatalf("passthrough field lost: %s", b)
	}
	extensions := body["options"].(map[string]any)["platform"].(map[string]any)["extensions"].([]any)
	if len(extensions) != 1 || extensions[0].(map[string]any)["name"] != "mobbex_marketplace" {
		t.Fatalf("unexpected extensions: %s", b)
	}
}

func TestCheckoutSplitUseCase_BuildCheckoutData_Standalone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	// vendors are never read without an integration
	uc := NewCheckoutSplitUseCase(orders, catalog, nil, entities.Settings{DefaultFee: dec("2")})

	orders.EXPECT().GetByID(gomock.Any(), "100").Return(entities.Order{
		ID: "100",
		Items: []entities.LineItem{
			{ProductID: "A", Total: dec("100")},
			{ProductID: "B", Total: dec("50")},
		},
		Shippings: []entities.ShippingItem{{Name: "Flat Rate", Total: dec("10")}},
	}, nil)
	catalog.EXPECT().GetProducts(gomock.Any(), []string{"A", "B"}).Return(map[string]entities.Product{
		"A": {ID: "A", TaxID: "20111111112"},
		"B": {ID: "B", TaxID: "20111111112", Fee: dec("4")},
	}, nil)

	out, err := uc.BuildCheckoutData(context.Background(), "100", entities.CheckoutData{Reference: "ref"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Split) != 1 || !out.Split[0].Total.Equal(dec("150")) || !out.Split[0].Fee.Equal(dec("6")) {
		t.Fatalf("unexpected split: %+v", out.Split)
	}
}

func TestCheckoutSplitUseCase_BuildCheckoutData_SplitErrors(t *testing.T) {
	t.Run("missing recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCheckoutSplitUseCase(orders, catalog, nil, entities.Settings{})

		orders.EXPECT().GetByID(gomock.Any(), "100").Return(entities.Order{ID: "100", Items: []entities.LineItem{{ProductID: "A", Total: dec("10")}}}, nil)
		catalog.EXPECT().GetProducts(gomock.Any(), []string{"A"}).Return(map[string]entities.Product{}, nil)

		in := entities.CheckoutData{Reference: "ref", Split: []entities.SplitLine{{TaxID: "1", Total: dec("5")}}}
		_, err := uc.BuildCheckoutData(context.Background(), "100", in)
		var missing *marketplace.MissingRecipientError
		if !errors.As(err, &missing) || missing.ProductID != "A" {
			t.Fatalf("expected MissingRecipientError for A, got %v", err)
		}
		if len(in.Split) != 1 || !in.Split[0].Total.Equal(dec("5")) {
			t.Fatalf("input split must stay untouched: %+v", in.Split)
		}
	})

	t.Run("orphan shipping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		vendors := mock_interfaces.NewMockIVendorRepository(ctrl)
		s := marketplaceSettings()
		s.ShippingManager = entities.ShippingManagerDefault
		uc := NewCheckoutSplitUseCase(orders, catalog, vendors, s)

		orders.EXPECT().GetByID(gomock.Any(), "100").Return(entities.Order{
			ID:        "100",
			Items:     []entities.LineItem{{ProductID: "P1", Total: dec("10"), VendorID: "V7"}},
			Shippings: []entities.ShippingItem{{Name: "Flat Rate", Total: dec("5"), VendorID: "V8"}},
		}, nil)
		catalog.EXPECT().GetProducts(gomock.Any(), []string{"P1"}).Return(map[string]entities.Product{"P1": {ID: "P1"}}, nil)
		vendors.EXPECT().GetVendors(gomock.Any(), []string{"V7", "V8"}).Return(map[string]entities.Vendor{
			"V7": {ID: "V7", TaxID: "20777777777"},
			"V8": {ID: "V8", TaxID: "20888888888"},
		}, nil)

		_, err := uc.BuildCheckoutData(context.Background(), "100", entities.CheckoutData{Reference: "ref"})
		var orphan *marketplace.OrphanShippingError
		if !errors.As(err, &orphan) || orphan.VendorID != "V8" {
			t.Fatalf("expected OrphanShippingError for V8, got %v", err)
		}
	})
}
