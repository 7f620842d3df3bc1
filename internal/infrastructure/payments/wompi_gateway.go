package payments

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"pawart_studio/internal/domain/entities"
	"pawart_studio/internal/usecase/interfaces"
)

var ErrMissingWompiCredentials = errors.New("missing WOMPI_PUBLIC_KEY or WOMPI_INTEGRITY_SECRET")

const defaultWompiBaseURL = "https://production.wompi.co"

// WompiGateway is the widget-style provider for the Colombia card rail.
//
// Initiate produces the signed widget session: the integrity signature is
// SHA-256(reference + amountInCents + currency + secret), computed
// server-side so the secret never reaches the client, and it binds the
// exact total to the reference. Confirm verifies a transaction through the
// transactions endpoint rather than trusting the widget result alone.
//
// Wompi charges COP in centavos, so peso amounts are multiplied by 100 at
// this boundary only.
type WompiGateway struct {
	client          *http.Client
	baseURL         string
	publicKey       string
	integritySecret string
	mockMode        bool
}

var _ interfaces.IPaymentProvider = (*WompiGateway)(nil)

func NewWompiGateway() (*WompiGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][wompi] mock mode enabled")
		return &WompiGateway{mockMode: true}, nil
	}

	publicKey := strings.TrimSpace(os.Getenv("WOMPI_PUBLIC_KEY"))
	secret := strings.TrimSpace(os.Getenv("WOMPI_INTEGRITY_SECRET"))
	if publicKey == "" || secret == "" {
		log.Printf("[payment][wompi] credentials not configured")
		return nil, ErrMissingWompiCredentials
	}

	return &WompiGateway{
		client:          &http.Client{Timeout: 20 * time.Second},
		baseURL:         getenvDefault("WOMPI_BASE_URL", defaultWompiBaseURL),
		publicKey:       publicKey,
		integritySecret: secret,
	}, nil
}

func (g *WompiGateway) Initiate(ctx context.Context, breakdown entities.PriceBreakdown, customer entities.Customer, clientTransactionID string) (entities.PendingPayment, error) {
	amountInCents := breakdown.Total.Amount * 100

	publicKey := g.publicKey
	signature := ""
	if g.mockMode {
		publicKey = "pub_test_mock"
	} else {
		signature = g.sign(clientTransactionID, amountInCents, string(breakdown.Total.Currency))
	}
	log.Printf("[payment][wompi] widget session txn=%s amount_in_cents=%d", clientTransactionID, amountInCents)

	return entities.PendingPayment{
		ClientTransactionID: clientTransactionID,
		Rail:                entities.RailCardCO,
		Mode:                entities.PaymentModeWidget,
		Widget: &entities.WidgetSession{
			Reference:     clientTransactionID,
			PublicKey:     publicKey,
			Signature:     signature,
			AmountInCents: amountInCents,
			Currency:      breakdown.Total.Currency,
		},
		Breakdown: breakdown,
		Customer:  customer,
		CreatedAt: time.Now().UTC(),
	}, nil
}

type wompiTransactionResponse struct {
	Data struct {
		ID            string `json:"id"`
		Status        string `json:"status"`
		AmountInCents int64  `json:"amount_in_cents"`
		Reference     string `json:"reference"`
	} `json:"data"`
}

func (g *WompiGateway) Confirm(ctx context.Context, providerTransactionID, clientTransactionID string) (entities.PaymentResult, error) {
	if g.mockMode {
		log.Printf("[payment][wompi] mock confirm txn=%s", clientTransactionID)
		return entities.PaymentResult{
			Status:                entities.PaymentResultApproved,
			ProviderTransactionID: providerTransactionID,
			RawStatus:             "APPROVED",
		}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/v1/transactions/"+providerTransactionID, nil)
	if err != nil {
		return entities.PaymentResult{}, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return entities.PaymentResult{}, fmt.Errorf("wompi transactions: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var tr wompiTransactionResponse
	if err := json.Unmarshal(data, &tr); err != nil {
		return entities.PaymentResult{}, err
	}
	if tr.Data.Reference != "" && tr.Data.Reference != clientTransactionID {
		return entities.PaymentResult{}, fmt.Errorf("wompi transaction %s reference mismatch", providerTransactionID)
	}
	log.Printf("[payment][wompi] confirm status=%s txn=%s", tr.Data.Status, clientTransactionID)

	return entities.PaymentResult{
		Status:                normalizeWompiStatus(tr.Data.Status),
		ProviderTransactionID: tr.Data.ID,
		RawStatus:             tr.Data.Status,
		Amount:                entities.NewMoney(tr.Data.AmountInCents/100, entities.CurrencyCOP),
	}, nil
}

func (g *WompiGateway) sign(reference string, amountInCents int64, currency string) string {
	concatenated := fmt.Sprintf("%s%d%s%s", reference, amountInCents, currency, g.integritySecret)
	sum := sha256.Sum256([]byte(concatenated))
	return hex.EncodeToString(sum[:])
}

func normalizeWompiStatus(raw string) entities.PaymentResultStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "APPROVED":
		return entities.PaymentResultApproved
	case "PENDING":
		return entities.PaymentResultPending
	case "DECLINED":
		return entities.PaymentResultDeclined
	case "VOIDED":
		return entities.PaymentResultVoided
	default:
		return entities.PaymentResultError
	}
}
