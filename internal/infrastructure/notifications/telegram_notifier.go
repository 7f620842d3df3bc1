package notifications

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"pawart_studio/internal/domain/entities"
	"pawart_studio/internal/usecase/interfaces"
)

var ErrMissingTelegramCredentials = errors.New("missing TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID")

const defaultTelegramBaseURL = "https://api.telegram.org"

// TelegramNotifier delivers order summaries to the fulfillment chat.
//
// Strictly best-effort from the caller's perspective: the checkout use case
// logs and swallows every error returned here. When a photo upload fails
// the notifier falls back to a plain text message on its own.
type TelegramNotifier struct {
	client   *http.Client
	baseURL  string
	botToken string
	chatID   string
}

var _ interfaces.INotifier = (*TelegramNotifier)(nil)

func NewTelegramNotifier() (*TelegramNotifier, error) {
	botToken := strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	chatID := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID"))
	if botToken == "" || chatID == "" {
		return nil, ErrMissingTelegramCredentials
	}

	baseURL := strings.TrimSpace(os.Getenv("TELEGRAM_BASE_URL"))
	if baseURL == "" {
		baseURL = defaultTelegramBaseURL
	}

	return &TelegramNotifier{
		client:   &http.Client{Timeout: 15 * time.Second},
		baseURL:  baseURL,
		botToken: botToken,
		chatID:   chatID,
	}, nil
}

func (n *TelegramNotifier) NotifyOrder(ctx context.Context, o entities.Order, imageBase64 string) error {
	caption := fmt.Sprintf(
		"🐾 <b>NUEVO PEDIDO</b>\n\n"+
			"🆔 <b>Orden:</b> %s\n"+
			"👤 <b>Cliente:</b> %s\n"+
			"📧 %s\n📱 %s\n📍 %s\n\n"+
			"👕 <b>Talla:</b> %s | <b>Color:</b> %s\n"+
			"🎨 <b>Diseño:</b> %s\n\n"+
			"💵 <b>Total:</b> %s\n"+
			"💳 <b>Pago:</b> %s (%s)",
		o.ID,
		placeholder(o.Customer.FullName), placeholder(o.Customer.Email),
		placeholder(o.Customer.Whatsapp), placeholder(o.Customer.Address),
		placeholder(o.Garment.Size), placeholder(o.Garment.Color),
		placeholder(o.ArtworkRef),
		o.Payment.AmountCharged.Format(),
		o.Payment.Provider, o.Payment.Status,
	)
	return n.deliver(ctx, caption, imageBase64)
}

func (n *TelegramNotifier) NotifyTransferRequest(ctx context.Context, s entities.CheckoutSession, breakdown entities.PriceBreakdown, imageBase64 string) error {
	shipping := "—"
	if s.ShippingQuote != nil {
		shipping = s.ShippingQuote.Cost.Format()
	}
	caption := fmt.Sprintf(
		"🏦 <b>SOLICITUD DE TRANSFERENCIA BANCARIA</b>\n\n"+
			"👤 <b>Cliente:</b> %s\n"+
			"📧 %s\n📱 %s\n📍 %s\n\n"+
			"👕 <b>Talla:</b> %s | <b>Color:</b> %s\n"+
			"💵 <b>Total:</b> %s\n"+
			"🚚 <b>Envío:</b> %s\n\n"+
			"⚠️ <b>Pendiente confirmación de pago</b>",
		placeholder(s.Customer.FullName), placeholder(s.Customer.Email),
		placeholder(s.Customer.Whatsapp), placeholder(s.Customer.Address),
		placeholder(s.Garment.Size), placeholder(s.Garment.Color),
		breakdown.Total.Format(),
		shipping,
	)
	return n.deliver(ctx, caption, imageBase64)
}

func (n *TelegramNotifier) deliver(ctx context.Context, caption, imageBase64 string) error {
	if imageBase64 != "" {
		if err := n.sendPhoto(ctx, imageBase64, caption); err != nil {
			log.Printf("[notify][telegram] sendPhoto failed, falling back to text err=%v", err)
			return n.sendMessage(ctx, caption+"\n\n⚠️ <i>(imagen no disponible)</i>")
		}
		return nil
	}
	return n.sendMessage(ctx, caption)
}

func (n *TelegramNotifier) sendMessage(ctx context.Context, text string) error {
	body, err := json.Marshal(map[string]string{
		"chat_id":    n.chatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.methodURL("sendMessage"), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return n.do(req, "sendMessage")
}

func (n *TelegramNotifier) sendPhoto(ctx context.Context, imageBase64, caption string) error {
	data := imageBase64
	mimeType := "image/jpeg"
	if strings.HasPrefix(data, "data:") {
		if idx := strings.Index(data, ","); idx >= 0 {
			header := data[:idx]
			data = data[idx+1:]
			if parts := strings.SplitN(strings.TrimPrefix(header, "data:"), ";", 2); parts[0] != "" {
				mimeType = parts[0]
			}
		}
	}
	photo, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return err
	}

	ext := "jpg"
	if parts := strings.SplitN(mimeType, "/", 2); len(parts) == 2 && parts[1] != "" {
		ext = parts[1]
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("chat_id", n.chatID)
	_ = w.WriteField("caption", caption)
	_ = w.WriteField("parse_mode", "HTML")
	part, err := w.CreateFormFile("photo", "design."+ext)
	if err != nil {
		return err
	}
	if _, err := part.Write(photo); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.methodURL("sendPhoto"), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return n.do(req, "sendPhoto")
}

func (n *TelegramNotifier) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", n.baseURL, n.botToken, method)
}

func (n *TelegramNotifier) do(req *http.Request, method string) error {
	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram %s: status %d: %s", method, resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return nil
}

func placeholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return "—"
	}
	return v
}
