package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	defaultExtensionName    = "mobbex_marketplace"
	defaultExtensionVersion = "1.0.0"
)

var ErrUnknownIntegration = errors.New("unknown marketplace integration")

// ConfigFormatError reports a malformed custom shipping rule. Checkout must
// not run with a partially applied rule set, so loading fails.
type ConfigFormatError struct {
	Index  int
	Reason string
}

func (e *ConfigFormatError) Error() string {
	return fmt.Sprintf("custom shipping config incorrect format: rule %d %s", e.Index, e.Reason)
}

// fileSettings is the optional YAML settings file layout.
type fileSettings struct {
	APIKey          string                        `yaml:"api_key"`
	AccessToken     string                        `yaml:"access_token"`
	Integration     string                        `yaml:"integration"`
	ShippingManager string                        `yaml:"shipping_manager"`
	DefaultFee      string                        `yaml:"default_fee"`
	CustomShipping  []entities.CustomShippingRule `yaml:"custom_shipping"`

	Dokan struct {
		ShippingFeeRecipient string `yaml:"shipping_fee_recipient"`
	} `yaml:"dokan"`
	WCFM struct {
		GetShipping string `yaml:"get_shipping"`
	} `yaml:"wcfm"`
	GlobalCommission struct {
		Mode    string `yaml:"mode"`
		Percent string `yaml:"percent"`
		Fixed   string `yaml:"fixed"`
	} `yaml:"global_commission"`

	ExtensionVersion string `yaml:"extension_version"`
}

// LoadSettings builds the plugin settings.
//
// Sources, later ones win:
//   - MARKETPLACE_SETTINGS_FILE (YAML, optional)
//   - MOBBEX_* / MARKETPLACE_* / DOKAN_* / WCFM_* environment variables
func LoadSettings() (entities.Settings, error) {
	var fs fileSettings
	if path := strings.TrimSpace(os.Getenv("MARKETPLACE_SETTINGS_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return entities.Settings{}, fmt.Errorf("read settings file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &fs); err != nil {
			return entities.Settings{}, fmt.Errorf("parse settings file: %w", err)
		}
		log.Printf("[config][settings] loaded settings file path=%s", path)
	}

	customShipping := fs.CustomShipping
	if raw := os.Getenv("MARKETPLACE_CUSTOM_SHIPPING"); strings.TrimSpace(raw) != "" {
		rules, err := ParseCustomShipping(raw)
		if err != nil {
			return entities.Settings{}, err
		}
		customShipping = rules
	} else if err := ValidateCustomShipping(customShipping); err != nil {
		return entities.Settings{}, err
	}

	integration, err := parseIntegration(getenvDefault("MARKETPLACE_INTEGRATION", fs.Integration))
	if err != nil {
		return entities.Settings{}, err
	}

	defaultFee, err := parseDecimal("MARKETPLACE_DEFAULT_FEE", getenvDefault("MARKETPLACE_DEFAULT_FEE", fs.DefaultFee))
	if err != nil {
		return entities.Settings{}, err
	}

	globalCommission, err := parseCommission(
		getenvDefault("MARKETPLACE_GLOBAL_COMMISSION_MODE", fs.GlobalCommission.Mode),
		getenvDefault("MARKETPLACE_GLOBAL_COMMISSION_PERCENT", fs.GlobalCommission.Percent),
		getenvDefault("MARKETPLACE_GLOBAL_COMMISSION_FIXED", fs.GlobalCommission.Fixed),
	)
	if err != nil {
		return entities.Settings{}, err
	}

	s := entities.Settings{
		APIKey:                    getenvDefault("MOBBEX_API_KEY", fs.APIKey),
		AccessToken:               getenvDefault("MOBBEX_ACCESS_TOKEN", fs.AccessToken),
		Integration:               integration,
		ShippingManager:           parseShippingManager(getenvDefault("MARKETPLACE_SHIPPING_MANAGER", fs.ShippingManager)),
		DefaultFee:                defaultFee,
		CustomShipping:            customShipping,
		DokanShippingFeeRecipient: strings.ToLower(getenvDefault("DOKAN_SHIPPING_FEE_RECIPIENT", fs.Dokan.ShippingFeeRecipient)),
		WCFMGetShipping:           strings.EqualFold(getenvDefault("WCFM_GET_SHIPPING", fs.WCFM.GetShipping), "yes"),
		GlobalCommission:          globalCommission,
		ExtensionName:             defaultExtensionName,
		ExtensionVersion:          getenvDefault("MARKETPLACE_EXTENSION_VERSION", firstNonEmpty(fs.ExtensionVersion, defaultExtensionVersion)),
	}
	log.Printf("[config][settings] integration=%q shipping_manager=%s custom_rules=%d default_fee=%s",
		s.Integration, s.ShippingManager, len(s.CustomShipping), s.DefaultFee)
	return s, nil
}

// ParseCustomShipping decodes the JSON custom shipping blob and validates it.
func ParseCustomShipping(raw string) ([]entities.CustomShippingRule, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var rules []entities.CustomShippingRule
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		return nil, &ConfigFormatError{Index: -1, Reason: "is not a JSON array: " + err.Error()}
	}
	if err := ValidateCustomShipping(rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// ValidateCustomShipping requires a method and a type on every rule, and a
// cuit on cuit rules.
func ValidateCustomShipping(rules []entities.CustomShippingRule) error {
	for i, r := range rules {
		switch {
		case strings.TrimSpace(r.ShippingMethod) == "":
			return &ConfigFormatError{Index: i, Reason: "missing shipping_method"}
		case r.Type == "":
			return &ConfigFormatError{Index: i, Reason: "missing type"}
		case r.Type != entities.ShippingRuleCUIT && r.Type != entities.ShippingRuleVendor && r.Type != entities.ShippingRuleAdmin:
			return &ConfigFormatError{Index: i, Reason: fmt.Sprintf("unknown type %q", r.Type)}
		case r.Type == entities.ShippingRuleCUIT && strings.TrimSpace(r.CUIT) == "":
			return &ConfigFormatError{Index: i, Reason: "missing cuit"}
		}
	}
	return nil
}

func parseIntegration(v string) (entities.Integration, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	// the plugin stores "0" when no integration is selected
	if v == "0" {
		return entities.IntegrationNone, nil
	}
	switch entities.Integration(v) {
	case entities.IntegrationNone:
		return entities.IntegrationNone, nil
	case entities.IntegrationDokan:
		return entities.IntegrationDokan, nil
	case entities.IntegrationWCFM:
		return entities.IntegrationWCFM, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIntegration, v)
}

// parseShippingManager maps the legacy "dokan" value to default.
func parseShippingManager(v string) entities.ShippingManager {
	if strings.EqualFold(strings.TrimSpace(v), string(entities.ShippingManagerCustom)) {
		return entities.ShippingManagerCustom
	}
	return entities.ShippingManagerDefault
}

func parseCommission(mode, percent, fixed string) (entities.Commission, error) {
	p, err := parseDecimal("global commission percent", percent)
	if err != nil {
		return entities.Commission{}, err
	}
	f, err := parseDecimal("global commission fixed", fixed)
	if err != nil {
		return entities.Commission{}, err
	}
	return entities.Commission{Mode: entities.CommissionMode(strings.ToLower(strings.TrimSpace(mode))), Percent: p, Fixed: f}, nil
}

func parseDecimal(name, v string) (decimal.Decimal, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	return d, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstNonEmpty(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
