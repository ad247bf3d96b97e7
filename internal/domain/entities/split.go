package entities

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// The gateway expects split amounts as JSON numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ResolvedConfig is the split configuration resolved for one product.
//
// Hold is nil when no marketplace integration is active or the vendor is
// unknown.
type ResolvedConfig struct {
	TaxID     string
	EntityUID string
	Fee       decimal.Decimal
	Hold      *bool
}

// SplitLine is one recipient of a split payment.
//
// A split list holds at most one line per recipient identity: the entity
// uid when present, the tax id otherwise.
type SplitLine struct {
	TaxID       string          `json:"tax_id,omitempty"`
	Entity      string          `json:"entity,omitempty"`
	Description string          `json:"description"`
	Total       decimal.Decimal `json:"total"`
	Fee         decimal.Decimal `json:"fee"`
	Reference   string          `json:"reference"`
	Hold        bool            `json:"hold"`

	// extra keeps the keys of an incoming split entry this service does not
	// interpret, so they are sent back to the gateway unchanged.
	extra map[string]json.RawMessage
}

type splitLineFields SplitLine

var splitLineKeys = []string{"tax_id", "entity", "description", "total", "fee", "reference", "hold"}

func (l *SplitLine) UnmarshalJSON(b []byte) error {
	var fields splitLineFields
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for _, k := range splitLineKeys {
		delete(raw, k)
	}

	*l = SplitLine(fields)
	if len(raw) > 0 {
		l.extra = raw
	}
	return nil
}

func (l SplitLine) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(splitLineFields(l))
	if err != nil || len(l.extra) == 0 {
		return b, err
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	for k, v := range l.extra {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return json.Marshal(out)
}

// Identity returns the key used to match split lines of the same recipient.
func (l SplitLine) Identity() RecipientIdentity {
	return RecipientIdentity{TaxID: l.TaxID, Entity: l.Entity}
}

// RecipientIdentity identifies a split recipient.
type RecipientIdentity struct {
	TaxID  string
	Entity string
}

func (i RecipientIdentity) IsEmpty() bool {
	return i.TaxID == "" && i.Entity == ""
}

// Matches reports whether both identities point to the same recipient.
// Entity uids win over tax ids, like the gateway does.
func (i RecipientIdentity) Matches(other RecipientIdentity) bool {
	if i.IsEmpty() || other.IsEmpty() {
		return false
	}
	if i.Entity != "" {
		return i.Entity == other.Entity
	}
	return other.Entity == "" && i.TaxID == other.TaxID
}

// Key is the value appended to split references.
func (i RecipientIdentity) Key() string {
	if i.TaxID != "" {
		return i.TaxID
	}
	return i.Entity
}

// CheckoutData is the checkout creation payload sent to the gateway.
//
// Only reference, split and options are interpreted; every other key is
// kept as-is and written back on marshal.
type CheckoutData struct {
	Reference string
	Split     []SplitLine
	Options   map[string]any

	extra map[string]json.RawMessage
}

func (c *CheckoutData) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	if v, ok := raw["reference"]; ok {
		if err := json.Unmarshal(v, &c.Reference); err != nil {
			return err
		}
		delete(raw, "reference")
	}
	if v, ok := raw["split"]; ok {
		if err := json.Unmarshal(v, &c.Split); err != nil {
			return err
		}
		delete(raw, "split")
	}
	if v, ok := raw["options"]; ok {
		// Numbers stay json.Number so large ids are written back unchanged.
		dec := json.NewDecoder(bytes.NewReader(v))
		dec.UseNumber()
		if err := dec.Decode(&c.Options); err != nil {
			return err
		}
		delete(raw, "options")
	}

	c.extra = raw
	return nil
}

func (c CheckoutData) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.extra)+3)
	for k, v := range c.extra {
		out[k] = v
	}

	split := c.Split
	if split == nil {
		split = []SplitLine{}
	}
	out["reference"] = c.Reference
	out["split"] = split
	if c.Options != nil {
		out["options"] = c.Options
	}
	return json.Marshal(out)
}

// Extension is a name/version pair reported to the gateway for telemetry.
type Extension struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// AddExtension appends ext to options.platform.extensions, creating the
// intermediate objects when missing.
func (c *CheckoutData) AddExtension(ext Extension) {
	if c.Options == nil {
		c.Options = map[string]any{}
	}
	platform, ok := c.Options["platform"].(map[string]any)
	if !ok {
		platform = map[string]any{}
		c.Options["platform"] = platform
	}

	var extensions []any
	if current, ok := platform["extensions"].([]any); ok {
		extensions = current
	}
	platform["extensions"] = append(extensions, map[string]any{
		"name":    ext.Name,
		"version": ext.Version,
	})
}
