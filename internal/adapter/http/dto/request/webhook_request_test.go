package request

import (
	"errors"
	"testing"
)

func TestParseGatewayResponse(t *testing.T) {
	t.Run("envelope", func(t *testing.T) {
		resp, err := ParseGatewayResponse([]byte(`{"type":"checkout","data":{"description":"Orden #100","total":"150.50","split":[{"tax_id":"1","total":150.5}]}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Description != "Orden #100" || resp.Total.String() != "150.5" {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if len(resp.Split) == 0 {
			t.Fatalf("expected split to be kept")
		}
	})

	t.Run("bare", func(t *testing.T) {
		resp, err := ParseGatewayResponse([]byte(`{"id":"chk-1","total":99}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ID != "chk-1" || resp.Total.String() != "99" || len(resp.Split) != 0 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, body := range []string{``, `[]`, `{"data":`} {
			if _, err := ParseGatewayResponse([]byte(body)); !errors.Is(err, ErrInvalidWebhookPayload) {
				t.Fatalf("expected ErrInvalidWebhookPayload for %q, got %v", body, err)
			}
		}
	})
}
