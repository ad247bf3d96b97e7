package marketplace

import (
	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func standaloneCatalog() entities.Catalog {
	return entities.Catalog{
		Products: map[string]entities.Product{
			"A": {ID: "A", CategoryIDs: []string{"shoes"}},
			"B": {ID: "B"},
			"C": {ID: "C", TaxID: "20111111112", Fee: dec("7")},
			"D": {ID: "D", CategoryIDs: []string{"empty", "shoes", "hats"}},
			"E": {ID: "E", EntityUID: "ent-e"},
		},
		Categories: map[string]entities.Category{
			"shoes": {ID: "shoes", Name: "Shoes", TaxID: "30222222223", Fee: dec("5")},
			"hats":  {ID: "hats", Name: "Hats", TaxID: "30333333334", Fee: dec("9")},
			"empty": {ID: "empty", Name: "Empty"},
		},
	}
}

func marketplaceCatalog() entities.Catalog {
	return entities.Catalog{
		Products: map[string]entities.Product{
			"P1": {ID: "P1", VendorID: "V7"},
			"P2": {ID: "P2", VendorID: "V7"},
			"P3": {ID: "P3", VendorID: "V8", Fee: dec("3")},
			"P4": {ID: "P4", VendorID: "V9"},
			"P5": {ID: "P5"},
		},
		Vendors: map[string]entities.Vendor{
			"V7": {ID: "V7", StoreName: "Seven", TaxID: "20777777777", Commission: entities.Commission{Mode: entities.CommissionModePercent, Percent: dec("10")}},
			"V8": {ID: "V8", StoreName: "Eight", EntityUID: "ent-8", Hold: true, Commission: entities.Commission{Mode: entities.CommissionModeFixed, Fixed: dec("4")}},
			"V9": {ID: "V9", StoreName: "Nine"},
		},
	}
}

func settingsWith(integration entities.Integration) entities.Settings {
	return entities.Settings{
		Integration:     integration,
		ShippingManager: entities.ShippingManagerDefault,
		DefaultFee:      dec("2"),
	}
}
