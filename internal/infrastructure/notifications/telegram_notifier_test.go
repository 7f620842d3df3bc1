package notifications

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"pawart_studio/internal/domain/entities"
)

func newTelegramForTest(t *testing.T, handler http.Handler) *TelegramNotifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("TELEGRAM_BOT_TOKEN", "bot-token")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")
	t.Setenv("TELEGRAM_BASE_URL", srv.URL)

	n, err := NewTelegramNotifier()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return n
}

func sampleOrder() entities.Order {
	return entities.Order{
		ID: "order-1",
		Customer: entities.Customer{
			FullName: "Ana Torres",
			Email:    "ana@test.com",
			Whatsapp: "+573001112233",
			Address:  "Calle 1 # 2-3, Bogota",
		},
		ArtworkRef: "Acuarela Vibrante",
		Garment:    entities.GarmentChoice{Color: "negro", Size: "M"},
		Payment: entities.OrderPayment{
			Provider:      "card_co",
			Status:        entities.OrderPaymentPaid,
			AmountCharged: entities.NewMoney(45190, entities.CurrencyCOP),
		},
	}
}

func TestNewTelegramNotifier_MissingCredentials(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	if _, err := NewTelegramNotifier(); !errors.Is(err, ErrMissingTelegramCredentials) {
		t.Fatalf("expected ErrMissingTelegramCredentials, got %v", err)
	}
}

func TestTelegramNotifier_NotifyOrder_Text(t *testing.T) {
	var captured map[string]string
	n := newTelegramForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/botbot-token/sendMessage" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Write([]byte(`{"ok":true}`))
	}))

	if err := n.NotifyOrder(t.Context(), sampleOrder(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured["chat_id"] != "-100123" || captured["parse_mode"] != "HTML" {
		t.Fatalf("unexpected request fields: %+v", captured)
	}
	for _, want := range []string{"order-1", "Ana Torres", "45190 COP", "card_co"} {
		if !strings.Contains(captured["text"], want) {
			t.Fatalf("message missing %q:\n%s", want, captured["text"])
		}
	}
}

func TestTelegramNotifier_NotifyOrder_Photo(t *testing.T) {
	image := base64.StdEncoding.EncodeToString([]byte{0x89, 0x50, 0x4E, 0x47})

	n := newTelegramForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/botbot-token/sendPhoto" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart form: %v", err)
			return
		}
		if r.FormValue("chat_id") != "-100123" {
			t.Errorf("unexpected chat_id: %s", r.FormValue("chat_id"))
		}
		if _, header, err := r.FormFile("photo"); err != nil {
			t.Errorf("expected photo part: %v", err)
		} else if header.Filename != "design.png" {
			t.Errorf("extension should follow the data uri mime: %s", header.Filename)
		}
		w.Write([]byte(`{"ok":true}`))
	}))

	if err := n.NotifyOrder(t.Context(), sampleOrder(), "data:image/png;base64,"+image); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTelegramNotifier_PhotoFailureFallsBackToText(t *testing.T) {
	var messages atomic.Int32
	image := base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8})

	n := newTelegramForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/sendPhoto"):
			http.Error(w, `{"ok":false}`, http.StatusBadRequest)
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			messages.Add(1)
			w.Write([]byte(`{"ok":true}`))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))

	if err := n.NotifyOrder(t.Context(), sampleOrder(), image); err != nil {
		t.Fatalf("fallback should succeed: %v", err)
	}
	if messages.Load() != 1 {
		t.Fatalf("expected exactly one text fallback, got %d", messages.Load())
	}
}

func TestTelegramNotifier_NotifyTransferRequest(t *testing.T) {
	var captured map[string]string
	n := newTelegramForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		w.Write([]byte(`{"ok":true}`))
	}))

	s := entities.CheckoutSession{
		Customer: entities.Customer{FullName: "Ana Torres", Email: "ana@test.com"},
		Garment:  entities.GarmentChoice{Color: "blanco", Size: "S"},
		ShippingQuote: &entities.ShippingQuote{
			Cost: entities.NewMoney(5000, entities.CurrencyCOP),
		},
	}
	breakdown := entities.PriceBreakdown{Total: entities.NewMoney(94900, entities.CurrencyCOP)}

	if err := n.NotifyTransferRequest(t.Context(), s, breakdown, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"TRANSFERENCIA", "94900 COP", "5000 COP"} {
		if !strings.Contains(captured["text"], want) {
			t.Fatalf("message missing %q:\n%s", want, captured["text"])
		}
	}
}
