package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
	"github.com/PKL-SST-2025/camp-rent-sub000/util/httpx"
)

// httpGateway charges against a real gateway over HTTP. Selected by config
// when PAYMENT_GATEWAY_URL is set; otherwise the Simulator serves.
type httpGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTP(baseURL, apiKey string) Gateway {
	return &httpGateway{baseURL: baseURL, apiKey: apiKey, client: httpx.Client()}
}

func (g *httpGateway) Charge(ctx context.Context, method model.PaymentMethod, amount int64) (*Receipt, error) {
	if !method.Valid() {
		return nil, ErrUnknownMethod
	}

	body := map[string]any{
		"method": method,
		"amount": amount,
	}
	b, _ := json.Marshal(body)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/charges", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(g.apiKey, "")
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusPaymentRequired || resp.StatusCode == http.StatusUnprocessableEntity {
		return nil, ErrDeclined
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway charge failed: %s", resp.Status)
	}

	var out struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		PaidAt string `json:"paid_at"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, errors.New("gateway: empty charge id")
	}
	if out.Status != "PAID" {
		return nil, ErrDeclined
	}

	return &Receipt{Ref: out.ID, Method: method, Amount: amount}, nil
}
