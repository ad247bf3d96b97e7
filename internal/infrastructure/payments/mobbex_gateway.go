package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/mobbexco/woocommerce-marketplace/internal/usecase/interfaces"
)

const (
	defaultMobbexAPIURL  = "https://api.mobbex.com"
	defaultMobbexTimeout = 30 * time.Second
	maxResponseBytes     = 1 << 20
)

var ErrMissingMobbexCredentials = errors.New("missing MOBBEX_API_KEY or MOBBEX_ACCESS_TOKEN")
var ErrMobbexGatewayNotConfigured = errors.New("mobbex gateway not configured")

// GatewayError is a non successful answer from the Mobbex API.
type GatewayError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *GatewayError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Code != "" {
		return fmt.Sprintf("mobbex api error status=%d code=%s: %s", e.StatusCode, e.Code, msg)
	}
	return fmt.Sprintf("mobbex api error status=%d: %s", e.StatusCode, msg)
}

type mobbexResponse struct {
	Result        bool            `json:"result"`
	StatusMessage string          `json:"status_message,omitempty"`
	Error         string          `json:"error,omitempty"`
	Code          string          `json:"code,omitempty"`
	Data          json.RawMessage `json:"data,omitempty"`
}

type MobbexGateway struct {
	client      *http.Client
	baseURL     string
	apiKey      string
	accessToken string
	mockMode    bool
}

var _ interfaces.IPaymentGateway = (*MobbexGateway)(nil)

// NewMobbexGateway builds the API client. MOBBEX_API_URL and
// MOBBEX_HTTP_TIMEOUT override the production URL and the 30s timeout.
func NewMobbexGateway(apiKey, accessToken string) (*MobbexGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MobbexGateway{mockMode: true}, nil
	}

	if apiKey == "" || accessToken == "" {
		log.Printf("[payment][gateway] missing mobbex credentials")
		return nil, ErrMissingMobbexCredentials
	}

	timeout := defaultMobbexTimeout
	if raw := strings.TrimSpace(os.Getenv("MOBBEX_HTTP_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid MOBBEX_HTTP_TIMEOUT %q", raw)
		}
		timeout = d
	}

	baseURL := getenvDefault("MOBBEX_API_URL", defaultMobbexAPIURL)
	log.Printf("[payment][gateway] Mobbex client initialized base_url=%s timeout=%s", baseURL, timeout)
	return newMobbexGateway(&http.Client{Timeout: timeout}, baseURL, apiKey, accessToken), nil
}

func newMobbexGateway(client *http.Client, baseURL, apiKey, accessToken string) *MobbexGateway {
	return &MobbexGateway{
		client:      client,
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		accessToken: accessToken,
	}
}

// ReleaseOperation releases a held split operation and returns the gateway
// status message.
func (g *MobbexGateway) ReleaseOperation(ctx context.Context, operationUID string) (string, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock release operation_uid=%s", operationUID)
		return "mock release accepted", nil
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrMobbexGatewayNotConfigured
	}

	endpoint := g.baseURL + "/p/operations/" + url.PathEscape(operationUID) + "/release"
	log.Printf("[payment][gateway] release start operation_uid=%s", operationUID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader("{}"))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", g.apiKey)
	req.Header.Set("x-access-token", g.accessToken)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[payment][gateway] release request failed operation_uid=%s err=%v", operationUID, err)
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", err
	}

	var out mobbexResponse
	if len(body) > 0 {
		if err := json.Unmarshal(body, &out); err != nil && resp.StatusCode < http.StatusBadRequest {
			log.Printf("[payment][gateway] release response unmarshal failed operation_uid=%s err=%v", operationUID, err)
			return "", err
		}
	}

	if resp.StatusCode >= http.StatusBadRequest || !out.Result {
		gwErr := &GatewayError{StatusCode: resp.StatusCode, Code: out.Code, Message: firstNonEmpty(out.Error, out.StatusMessage)}
		log.Printf("[payment][gateway] release rejected operation_uid=%s err=%v", operationUID, gwErr)
		return "", gwErr
	}

	log.Printf("[payment][gateway] release success operation_uid=%s", operationUID)
	return out.StatusMessage, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MOBBEX_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
