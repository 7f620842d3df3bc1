package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"pawart_studio/internal/domain/entities"
	"pawart_studio/internal/usecase/interfaces"
)

var (
	ErrMissingPayphoneCredentials = errors.New("missing PAYPHONE_TOKEN or PAYPHONE_STORE_ID")
	ErrPayphoneNoPaymentURL       = errors.New("payphone returned no payment url")
)

const defaultPayphoneBaseURL = "https://pay.payphonetodoesposible.com"

// PayphoneGateway is the redirect-style provider for the Ecuador card rail.
//
// Initiate calls the Button Prepare endpoint and yields a provider-hosted
// payment URL; the customer returns to the storefront with the provider
// transaction id and the client reference in the URL. Confirm calls Button
// V2 Confirm with both identifiers.
//
// Payphone works in USD cents, which is exactly the Money minor unit, so
// amounts cross this boundary unchanged.
type PayphoneGateway struct {
	client      *http.Client
	baseURL     string
	token       string
	storeID     string
	responseURL string
	mockMode    bool
}

var _ interfaces.IPaymentProvider = (*PayphoneGateway)(nil)

func NewPayphoneGateway() (*PayphoneGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][payphone] mock mode enabled")
		return &PayphoneGateway{mockMode: true}, nil
	}

	token := strings.TrimSpace(os.Getenv("PAYPHONE_TOKEN"))
	storeID := strings.TrimSpace(os.Getenv("PAYPHONE_STORE_ID"))
	if token == "" || storeID == "" {
		log.Printf("[payment][payphone] credentials not configured")
		return nil, ErrMissingPayphoneCredentials
	}

	return &PayphoneGateway{
		client:      &http.Client{Timeout: 20 * time.Second},
		baseURL:     getenvDefault("PAYPHONE_BASE_URL", defaultPayphoneBaseURL),
		token:       token,
		storeID:     storeID,
		responseURL: getenvDefault("CHECKOUT_BASE_URL", "https://pawartstudio.netlify.app"),
	}, nil
}

type payphonePrepareRequest struct {
	Amount              int64  `json:"amount"`
	AmountWithTax       int64  `json:"amountWithTax"`
	AmountWithoutTax    int64  `json:"amountWithoutTax"`
	Tax                 int64  `json:"tax"`
	Service             int64  `json:"service"`
	Tip                 int64  `json:"tip"`
	Currency            string `json:"currency"`
	StoreID             string `json:"storeId"`
	Reference           string `json:"reference"`
	ClientTransactionID string `json:"clientTransactionId"`
	ResponseURL         string `json:"responseUrl"`
	CancellationURL     string `json:"cancellationUrl"`
}

type payphonePrepareResponse struct {
	PayWithCard     string `json:"payWithCard"`
	PayWithPayPhone string `json:"payWithPayPhone"`
}

type payphoneConfirmResponse struct {
	TransactionStatus string `json:"transactionStatus"`
	TransactionID     int64  `json:"transactionId"`
	Amount            int64  `json:"amount"`
}

func (g *PayphoneGateway) Initiate(ctx context.Context, breakdown entities.PriceBreakdown, customer entities.Customer, clientTransactionID string) (entities.PendingPayment, error) {
	if g.mockMode {
		log.Printf("[payment][payphone] mock prepare txn=%s total=%s", clientTransactionID, breakdown.Total.Format())
		return entities.PendingPayment{
			ClientTransactionID: clientTransactionID,
			Rail:                entities.RailCardEC,
			Mode:                entities.PaymentModeRedirect,
			PaymentURL:          "https://pay.example.test/" + clientTransactionID,
			Breakdown:           breakdown,
			Customer:            customer,
			CreatedAt:           time.Now().UTC(),
		}, nil
	}

	body := payphonePrepareRequest{
		Amount:              breakdown.Total.Amount,
		AmountWithoutTax:    breakdown.Total.Amount,
		Currency:            string(breakdown.Total.Currency),
		StoreID:             g.storeID,
		Reference:           clientTransactionID,
		ClientTransactionID: clientTransactionID,
		ResponseURL:         g.responseURL,
		CancellationURL:     g.responseURL,
	}

	var resp payphonePrepareResponse
	if err := g.post(ctx, "/api/button/Prepare", body, &resp); err != nil {
		log.Printf("[payment][payphone] prepare failed txn=%s err=%v", clientTransactionID, err)
		return entities.PendingPayment{}, err
	}

	paymentURL := resp.PayWithCard
	if paymentURL == "" {
		paymentURL = resp.PayWithPayPhone
	}
	if paymentURL == "" {
		log.Printf("[payment][payphone] prepare returned no url txn=%s", clientTransactionID)
		return entities.PendingPayment{}, ErrPayphoneNoPaymentURL
	}
	log.Printf("[payment][payphone] prepare success txn=%s", clientTransactionID)

	return entities.PendingPayment{
		ClientTransactionID: clientTransactionID,
		Rail:                entities.RailCardEC,
		Mode:                entities.PaymentModeRedirect,
		PaymentURL:          paymentURL,
		Breakdown:           breakdown,
		Customer:            customer,
		CreatedAt:           time.Now().UTC(),
	}, nil
}

func (g *PayphoneGateway) Confirm(ctx context.Context, providerTransactionID, clientTransactionID string) (entities.PaymentResult, error) {
	if g.mockMode {
		log.Printf("[payment][payphone] mock confirm txn=%s", clientTransactionID)
		return entities.PaymentResult{
			Status:                entities.PaymentResultApproved,
			ProviderTransactionID: providerTransactionID,
			RawStatus:             "Approved",
		}, nil
	}

	// Payphone sends the transaction id as a number.
	body := map[string]any{"clientTransactionId": clientTransactionID}
	if id, err := strconv.ParseInt(providerTransactionID, 10, 64); err == nil {
		body["id"] = id
	} else {
		body["id"] = providerTransactionID
	}

	var resp payphoneConfirmResponse
	if err := g.post(ctx, "/api/button/V2/Confirm", body, &resp); err != nil {
		log.Printf("[payment][payphone] confirm failed txn=%s err=%v", clientTransactionID, err)
		return entities.PaymentResult{}, err
	}
	log.Printf("[payment][payphone] confirm status=%s txn=%s", resp.TransactionStatus, clientTransactionID)

	return entities.PaymentResult{
		Status:                normalizePayphoneStatus(resp.TransactionStatus),
		ProviderTransactionID: providerTransactionID,
		RawStatus:             resp.TransactionStatus,
		Amount:                entities.NewMoney(resp.Amount, entities.CurrencyUSD),
	}, nil
}

func (g *PayphoneGateway) post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.token)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("payphone %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return json.Unmarshal(data, out)
}

func normalizePayphoneStatus(raw string) entities.PaymentResultStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "approved":
		return entities.PaymentResultApproved
	case "canceled", "cancelled":
		return entities.PaymentResultVoided
	case "pending":
		return entities.PaymentResultPending
	default:
		return entities.PaymentResultDeclined
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
