package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"pawart_studio/internal/domain/entities"
	"pawart_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSessionID      = errors.New("invalid session id")
	ErrSessionNotFound       = errors.New("checkout session not found")
	ErrInvalidCountry        = errors.New("invalid country")
	ErrInvalidCustomer       = errors.New("invalid customer fields")
	ErrDetailsIncomplete     = errors.New("customer details incomplete")
	ErrShippingNotCalculated = errors.New("shipping not calculated")
	ErrPaymentInFlight       = errors.New("payment attempt already in flight")
	ErrSessionCompleted      = errors.New("session already completed")
	ErrSessionNotFailed      = errors.New("session is not in a failed state")
	ErrProviderNotConfigured = errors.New("payment provider not configured")
	ErrInvalidTransactionRef = errors.New("invalid transaction reference")
	ErrNoPaymentPending      = errors.New("no payment pending for session")
	ErrPendingPaymentLost    = errors.New("pending payment record lost")
	ErrPaymentDeclined       = errors.New("payment declined by provider")
	// ErrPaymentStatusUnknown means the confirm call failed before a status
	// was obtained. Surfaced differently from a decline: the payment may
	// still have gone through.
	ErrPaymentStatusUnknown = errors.New("payment status unknown")
	ErrOrderNotFound        = errors.New("order not found")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// WidgetTransaction is the transaction object delivered by a widget-style
// provider's one-shot callback.
type WidgetTransaction struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// WidgetCallbackResult is the full callback payload; Transaction is nil when
// the widget closed without a transaction.
type WidgetCallbackResult struct {
	Transaction *WidgetTransaction `json:"transaction"`
}

// PaymentInitiation is the outcome of InitiatePayment. Order is non-nil only
// for manual rails, which finalize immediately under the
// pending-but-chargeable policy.
type PaymentInitiation struct {
	Session entities.CheckoutSession
	Pending entities.PendingPayment
	Order   *entities.Order
}

// ICheckoutUseCase drives a CheckoutSession from draft through payment
// initiation and asynchronous confirmation to a terminal Order.
//
// Transitions happen one at a time per session, in response to discrete
// external events: user actions, the widget callback, or a page load
// carrying redirect return parameters.
type ICheckoutUseCase interface {
	StartSession(ctx context.Context, country entities.Country, customer entities.Customer, artworkRef string, garment entities.GarmentChoice) (entities.CheckoutSession, error)
	SubmitDetails(ctx context.Context, sessionID string, customer entities.Customer, artworkRef string, garment entities.GarmentChoice) (entities.CheckoutSession, error)
	AttachShipping(ctx context.Context, sessionID string, geolocated bool, lat, lon float64) (entities.CheckoutSession, error)
	InitiatePayment(ctx context.Context, sessionID string, rail entities.Rail) (PaymentInitiation, error)
	HandleRedirectReturn(ctx context.Context, providerTransactionID, clientTransactionRef string) (entities.Order, error)
	HandleWidgetCallback(ctx context.Context, sessionID string, result WidgetCallbackResult) (entities.Order, error)
	AcknowledgeFailure(ctx context.Context, sessionID string) (entities.CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (entities.CheckoutSession, error)
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
}

type CheckoutUseCase struct {
	sessions  interfaces.ICheckoutSessionRepository
	orders    interfaces.IOrderRepository
	store     interfaces.IPendingPaymentStore
	providers map[entities.Rail]interfaces.IPaymentProvider
	pricing   IPricingUseCase
	shipping  IShippingUseCase
	notifier  interfaces.INotifier
	now       func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	sessions interfaces.ICheckoutSessionRepository,
	orders interfaces.IOrderRepository,
	store interfaces.IPendingPaymentStore,
	providers map[entities.Rail]interfaces.IPaymentProvider,
	pricing IPricingUseCase,
	shipping IShippingUseCase,
	notifier interfaces.INotifier,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		sessions:  sessions,
		orders:    orders,
		store:     store,
		providers: providers,
		pricing:   pricing,
		shipping:  shipping,
		notifier:  notifier,
		now:       time.Now,
	}
}

func (u *CheckoutUseCase) StartSession(ctx context.Context, country entities.Country, customer entities.Customer, artworkRef string, garment entities.GarmentChoice) (entities.CheckoutSession, error) {
	if !country.Valid() {
		return entities.CheckoutSession{}, fmt.Errorf("%w: %q", ErrInvalidCountry, country)
	}
	if err := validateCustomer(customer, false); err != nil {
		return entities.CheckoutSession{}, err
	}

	now := u.now().UTC()
	s := entities.CheckoutSession{
		ID:                 uuid.NewString(),
		Country:            country,
		Customer:           customer,
		SelectedArtworkRef: strings.TrimSpace(artworkRef),
		Garment:            garment,
		State:              entities.CheckoutStateDraft,
		CreatedAt:          now,
		LastTransitionAt:   now,
	}
	if customer.Complete() {
		s.State = entities.CheckoutStateShippingPending
	}

	created, err := u.sessions.Create(ctx, s)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	log.Printf("[checkout][usecase] session started session_id=%s country=%s state=%s", created.ID, created.Country, created.State)
	return created, nil
}

func (u *CheckoutUseCase) SubmitDetails(ctx context.Context, sessionID string, customer entities.Customer, artworkRef string, garment entities.GarmentChoice) (entities.CheckoutSession, error) {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if s.State.IsTerminal() {
		return entities.CheckoutSession{}, ErrSessionCompleted
	}
	if s.State.PaymentInFlight() {
		return entities.CheckoutSession{}, ErrPaymentInFlight
	}
	// Validation failures surface immediately and cause no transition.
	if err := validateCustomer(customer, true); err != nil {
		return entities.CheckoutSession{}, err
	}

	s.Customer = customer
	if ref := strings.TrimSpace(artworkRef); ref != "" {
		s.SelectedArtworkRef = ref
	}
	if garment != (entities.GarmentChoice{}) {
		s.Garment = garment
	}
	if s.State == entities.CheckoutStateDraft {
		s.State = entities.CheckoutStateShippingPending
	}
	s.LastTransitionAt = u.now().UTC()

	return u.sessions.Update(ctx, s)
}

// AttachShipping obtains a ShippingQuote for the session, geolocated when a
// coordinate is available and via the explicit fallback path otherwise, and
// moves the session to ReadyToPay.
func (u *CheckoutUseCase) AttachShipping(ctx context.Context, sessionID string, geolocated bool, lat, lon float64) (entities.CheckoutSession, error) {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if s.State.IsTerminal() {
		return entities.CheckoutSession{}, ErrSessionCompleted
	}
	if s.State.PaymentInFlight() {
		return entities.CheckoutSession{}, ErrPaymentInFlight
	}
	if s.State == entities.CheckoutStateDraft {
		return entities.CheckoutSession{}, ErrDetailsIncomplete
	}

	var quote entities.ShippingQuote
	if geolocated {
		quote, err = u.shipping.QuoteByCoordinates(s.Country, lat, lon)
	} else {
		quote, err = u.shipping.QuoteFallback(s.Country)
	}
	if err != nil {
		return entities.CheckoutSession{}, err
	}

	s.ShippingQuote = &quote
	if s.State == entities.CheckoutStateShippingPending {
		s.State = entities.CheckoutStateReadyToPay
	}
	s.LastTransitionAt = u.now().UTC()

	updated, err := u.sessions.Update(ctx, s)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	log.Printf("[checkout][usecase] shipping attached session_id=%s source=%s cost=%s", s.ID, quote.Source, quote.Cost.Format())
	return updated, nil
}

// InitiatePayment computes the breakdown for the chosen rail, binds it to a
// freshly generated client transaction id and hands the attempt to the
// rail's provider. The breakdown computed here is the one the provider
// reference carries; it is never recomputed before confirmation.
func (u *CheckoutUseCase) InitiatePayment(ctx context.Context, sessionID string, rail entities.Rail) (PaymentInitiation, error) {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return PaymentInitiation{}, err
	}
	if s.State.IsTerminal() {
		return PaymentInitiation{}, ErrSessionCompleted
	}

	// Re-entrancy guards. A widget already open is a no-op that returns the
	// existing attempt; a redirect or verification in flight is rejected.
	if s.State == entities.CheckoutStateAwaitingProviderCallback {
		pending, err := u.store.Get(ctx, s.ProviderTransactionRef)
		if err != nil || pending.ClientTransactionID == "" {
			log.Printf("[checkout][usecase] pending lookup failed on re-entry session_id=%s err=%v", s.ID, err)
			return PaymentInitiation{}, ErrPaymentInFlight
		}
		log.Printf("[checkout][usecase] widget already open, returning existing attempt session_id=%s txn=%s", s.ID, pending.ClientTransactionID)
		return PaymentInitiation{Session: s, Pending: pending}, nil
	}
	if s.State.PaymentInFlight() {
		return PaymentInitiation{}, ErrPaymentInFlight
	}
	if s.State == entities.CheckoutStateShippingPending || s.ShippingQuote == nil {
		return PaymentInitiation{}, ErrShippingNotCalculated
	}
	if s.State != entities.CheckoutStateReadyToPay {
		return PaymentInitiation{}, ErrDetailsIncomplete
	}
	if !rail.ValidFor(s.Country) {
		return PaymentInitiation{}, fmt.Errorf("%w: %s in %s", ErrInvalidRail, rail, s.Country)
	}

	productPrice, err := u.pricing.CatalogPrice(s.Country)
	if err != nil {
		return PaymentInitiation{}, err
	}
	breakdown, err := u.pricing.Quote(s.Country, productPrice, s.ShippingQuote.Cost, rail)
	if err != nil {
		return PaymentInitiation{}, err
	}

	txnID := newClientTransactionID(u.now())
	log.Printf("[checkout][usecase] initiating payment session_id=%s rail=%s txn=%s total=%s", s.ID, rail, txnID, breakdown.Total.Format())

	switch rail.Mode() {
	case entities.PaymentModeRedirect, entities.PaymentModeWidget:
		provider, ok := u.providers[rail]
		if !ok || provider == nil {
			log.Printf("[checkout][usecase] provider not configured session_id=%s rail=%s", s.ID, rail)
			return PaymentInitiation{}, ErrProviderNotConfigured
		}
		pending, err := provider.Initiate(ctx, breakdown, s.Customer, txnID)
		if err != nil {
			return PaymentInitiation{}, err
		}
		pending.SessionID = s.ID
		pending.ArtworkRef = s.SelectedArtworkRef
		pending.Garment = s.Garment

		// The snapshot must survive a full page reload on the provider's
		// redirect return, so it is persisted before the state moves on.
		if err := u.store.Put(ctx, pending); err != nil {
			return PaymentInitiation{}, err
		}

		s.Rail = rail
		s.ProviderTransactionRef = txnID
		if rail.Mode() == entities.PaymentModeRedirect {
			s.State = entities.CheckoutStateAwaitingProviderRedirect
		} else {
			s.State = entities.CheckoutStateAwaitingProviderCallback
		}
		s.FailureReason = ""
		s.LastTransitionAt = u.now().UTC()
		updated, err := u.sessions.Update(ctx, s)
		if err != nil {
			return PaymentInitiation{}, err
		}
		return PaymentInitiation{Session: updated, Pending: pending}, nil

	case entities.PaymentModeManual:
		pending := entities.PendingPayment{
			ClientTransactionID: txnID,
			SessionID:           s.ID,
			Rail:                rail,
			Mode:                entities.PaymentModeManual,
			Breakdown:           breakdown,
			Customer:            s.Customer,
			ArtworkRef:          s.SelectedArtworkRef,
			Garment:             s.Garment,
			CreatedAt:           u.now().UTC(),
		}
		s.Rail = rail
		s.ProviderTransactionRef = txnID

		if u.notifier != nil {
			if err := u.notifier.NotifyTransferRequest(ctx, s, breakdown, ""); err != nil {
				log.Printf("[checkout][usecase] transfer notification failed (ignored) session_id=%s err=%v", s.ID, err)
			}
		}

		// Pending-but-chargeable: the transfer is confirmed out of band, the
		// order is persisted now with payment status pending.
		result := entities.PaymentResult{Status: entities.PaymentResultPending, Amount: breakdown.Total}
		order, err := u.finalize(ctx, &s, pending, result, string(rail))
		if err != nil {
			return PaymentInitiation{}, err
		}
		return PaymentInitiation{Session: s, Pending: pending, Order: &order}, nil
	}

	return PaymentInitiation{}, fmt.Errorf("%w: %s", ErrInvalidRail, rail)
}

// HandleRedirectReturn processes a (re)load carrying the provider's return
// parameters. Idempotent per transaction reference: if an order already
// exists the provider is not called again.
func (u *CheckoutUseCase) HandleRedirectReturn(ctx context.Context, providerTransactionID, clientTransactionRef string) (entities.Order, error) {
	providerTransactionID = strings.TrimSpace(providerTransactionID)
	clientTransactionRef = strings.TrimSpace(clientTransactionRef)
	if providerTransactionID == "" || clientTransactionRef == "" {
		return entities.Order{}, ErrInvalidTransactionRef
	}

	// Duplicate redirect return (page reloaded): short-circuit to the
	// existing order without re-calling provider confirm.
	if existing, err := u.orders.GetByTransactionRef(ctx, clientTransactionRef); err != nil {
		return entities.Order{}, err
	} else if existing.ID != "" {
		log.Printf("[checkout][usecase] duplicate redirect return, order exists txn=%s order_id=%s", clientTransactionRef, existing.ID)
		return existing, nil
	}

	pending, err := u.store.Get(ctx, clientTransactionRef)
	if err != nil {
		log.Printf("[checkout][usecase] pending store read failed txn=%s err=%v", clientTransactionRef, err)
	}
	recovered := pending.ClientTransactionID != ""
	if !recovered {
		// Different device or cleared storage. The money already moved at
		// the provider, so verification proceeds with degraded metadata.
		log.Printf("[checkout][usecase] pending snapshot missing, degrading metadata txn=%s", clientTransactionRef)
		pending = entities.PendingPayment{
			ClientTransactionID: clientTransactionRef,
			Rail:                entities.RailCardEC,
			Mode:                entities.PaymentModeRedirect,
			Customer:            entities.UnknownCustomer(),
		}
	}

	var session *entities.CheckoutSession
	if pending.SessionID != "" {
		if s, err := u.loadSession(ctx, pending.SessionID); err == nil {
			session = &s
			u.transition(ctx, session, entities.CheckoutStateVerifying, "")
		}
	}

	provider, ok := u.providers[pending.Rail]
	if !ok || provider == nil {
		u.failSession(ctx, session, "payment provider unavailable")
		return entities.Order{}, ErrProviderNotConfigured
	}

	// Confirm is called exactly once per redirect return.
	result, err := provider.Confirm(ctx, providerTransactionID, clientTransactionRef)
	if err != nil {
		// Transport failure: the status is unknown, which is not a decline.
		u.failSession(ctx, session, "payment status unknown")
		return entities.Order{}, fmt.Errorf("%w: %v", ErrPaymentStatusUnknown, err)
	}
	if result.Status != entities.PaymentResultApproved {
		u.failSession(ctx, session, string(result.Status))
		return entities.Order{}, fmt.Errorf("%w: %s", ErrPaymentDeclined, result.RawStatus)
	}

	if result.ProviderTransactionID == "" {
		result.ProviderTransactionID = providerTransactionID
	}
	order, err := u.finalize(ctx, session, pending, result, string(pending.Rail))
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

// HandleWidgetCallback consumes the one-shot result of a widget-style
// provider. A second, spurious resolution for an already settled session is
// logged and ignored.
func (u *CheckoutUseCase) HandleWidgetCallback(ctx context.Context, sessionID string, result WidgetCallbackResult) (entities.Order, error) {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return entities.Order{}, err
	}

	if s.State != entities.CheckoutStateAwaitingProviderCallback {
		if s.State.IsTerminal() && s.ProviderTransactionRef != "" {
			log.Printf("[checkout][usecase] spurious widget resolution ignored session_id=%s state=%s", s.ID, s.State)
			existing, err := u.orders.GetByTransactionRef(ctx, s.ProviderTransactionRef)
			if err == nil && existing.ID != "" {
				return existing, nil
			}
		}
		return entities.Order{}, ErrNoPaymentPending
	}

	if result.Transaction == nil {
		u.failSession(ctx, &s, "no transaction returned by widget")
		return entities.Order{}, fmt.Errorf("%w: no transaction", ErrPaymentDeclined)
	}

	status := normalizeWidgetStatus(result.Transaction.Status)
	if !status.Chargeable() {
		u.failSession(ctx, &s, string(status))
		return entities.Order{}, fmt.Errorf("%w: %s", ErrPaymentDeclined, result.Transaction.Status)
	}

	pending, err := u.store.Get(ctx, s.ProviderTransactionRef)
	if err != nil || pending.ClientTransactionID == "" {
		u.failSession(ctx, &s, "pending payment record lost")
		return entities.Order{}, ErrPendingPaymentLost
	}

	paymentResult := entities.PaymentResult{
		Status:                status,
		ProviderTransactionID: result.Transaction.ID,
		RawStatus:             result.Transaction.Status,
		Amount:                pending.Breakdown.Total,
	}
	order, err := u.finalize(ctx, &s, pending, paymentResult, string(pending.Rail))
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

// AcknowledgeFailure returns a failed session to ReadyToPay with all fields
// retained, so the customer can retry without re-entering anything.
func (u *CheckoutUseCase) AcknowledgeFailure(ctx context.Context, sessionID string) (entities.CheckoutSession, error) {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if s.State != entities.CheckoutStateFailed {
		return entities.CheckoutSession{}, ErrSessionNotFailed
	}

	if s.ProviderTransactionRef != "" {
		if err := u.store.Clear(ctx, s.ProviderTransactionRef); err != nil {
			log.Printf("[checkout][usecase] pending clear failed (ignored) txn=%s err=%v", s.ProviderTransactionRef, err)
		}
	}

	s.State = entities.CheckoutStateReadyToPay
	s.FailureReason = ""
	s.ProviderTransactionRef = ""
	s.Rail = ""
	s.LastTransitionAt = u.now().UTC()
	return u.sessions.Update(ctx, s)
}

func (u *CheckoutUseCase) GetSession(ctx context.Context, sessionID string) (entities.CheckoutSession, error) {
	return u.loadSession(ctx, sessionID)
}

func (u *CheckoutUseCase) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// finalize persists the order exactly once per transaction reference and
// fires the best-effort notification. The conditional insert is the
// idempotency guard: a lost race returns the already persisted order.
func (u *CheckoutUseCase) finalize(ctx context.Context, session *entities.CheckoutSession, pending entities.PendingPayment, result entities.PaymentResult, provider string) (entities.Order, error) {
	paymentStatus := entities.OrderPaymentPaid
	if result.Status == entities.PaymentResultPending {
		paymentStatus = entities.OrderPaymentPending
	}

	amount := result.Amount
	if amount.Amount == 0 {
		amount = pending.Breakdown.Total
	}

	country := entities.CountryEC
	var shippingQuote *entities.ShippingQuote
	if session != nil {
		country = session.Country
		shippingQuote = session.ShippingQuote
	} else if pending.Breakdown.Total.Currency == entities.CurrencyCOP {
		country = entities.CountryCO
	}

	order := entities.Order{
		ID:             uuid.NewString(),
		TransactionRef: pending.ClientTransactionID,
		Country:        country,
		Customer:       pending.Customer,
		ArtworkRef:     pending.ArtworkRef,
		Garment:        pending.Garment,
		ShippingQuote:  shippingQuote,
		Breakdown:      pending.Breakdown,
		Payment: entities.OrderPayment{
			Provider:      provider,
			ProviderRef:   result.ProviderTransactionID,
			Status:        paymentStatus,
			AmountCharged: amount,
		},
		CreatedAt: u.now().UTC(),
	}

	persisted, created, err := u.orders.CreateIfAbsent(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}
	if !created {
		log.Printf("[checkout][usecase] order already existed for txn=%s order_id=%s", pending.ClientTransactionID, persisted.ID)
	} else {
		log.Printf("[checkout][usecase] order created order_id=%s txn=%s amount=%s", persisted.ID, persisted.TransactionRef, persisted.Payment.AmountCharged.Format())
	}

	// Notification failure must not fail the order.
	if u.notifier != nil && created {
		if err := u.notifier.NotifyOrder(ctx, persisted, ""); err != nil {
			log.Printf("[checkout][usecase] order notification failed (ignored) order_id=%s err=%v", persisted.ID, err)
		}
	}

	if session != nil {
		session.State = entities.CheckoutStateCompleted
		session.FailureReason = ""
		session.LastTransitionAt = u.now().UTC()
		if updated, err := u.sessions.Update(ctx, *session); err != nil {
			log.Printf("[checkout][usecase] session completion update failed (order persisted) session_id=%s err=%v", session.ID, err)
		} else {
			*session = updated
		}
	}

	// Clearing twice is harmless; the entry is irrelevant once verified.
	if err := u.store.Clear(ctx, pending.ClientTransactionID); err != nil {
		log.Printf("[checkout][usecase] pending clear failed (ignored) txn=%s err=%v", pending.ClientTransactionID, err)
	}

	return persisted, nil
}

func (u *CheckoutUseCase) loadSession(ctx context.Context, sessionID string) (entities.CheckoutSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.CheckoutSession{}, ErrInvalidSessionID
	}
	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if s.ID == "" {
		return entities.CheckoutSession{}, ErrSessionNotFound
	}
	return s, nil
}

func (u *CheckoutUseCase) transition(ctx context.Context, s *entities.CheckoutSession, to entities.CheckoutState, reason string) {
	if s == nil {
		return
	}
	s.State = to
	s.FailureReason = reason
	s.LastTransitionAt = u.now().UTC()
	if updated, err := u.sessions.Update(ctx, *s); err != nil {
		log.Printf("[checkout][usecase] transition update failed session_id=%s state=%s err=%v", s.ID, to, err)
	} else {
		*s = updated
	}
}

func (u *CheckoutUseCase) failSession(ctx context.Context, s *entities.CheckoutSession, reason string) {
	u.transition(ctx, s, entities.CheckoutStateFailed, reason)
}

func validateCustomer(c entities.Customer, requireComplete bool) error {
	if requireComplete && !c.Complete() {
		return ErrInvalidCustomer
	}
	if e := strings.TrimSpace(c.Email); e != "" && !emailPattern.MatchString(e) {
		return fmt.Errorf("%w: email", ErrInvalidCustomer)
	}
	return nil
}

func normalizeWidgetStatus(raw string) entities.PaymentResultStatus {
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

const txnAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newClientTransactionID builds the provider-facing reference: alphanumeric,
// deterministic timestamp prefix plus a random suffix, always within the
// strictest provider length limit of 20 characters. The suffix is generated
// in full; nothing is truncated away that would risk collisions.
func newClientTransactionID(now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UTC().UnixMilli(), 36))

	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// Fall back to the nanosecond clock; still unique enough combined
		// with the millisecond prefix.
		n := now.UnixNano()
		for i := range buf {
			buf[i] = txnAlphabet[n%36]
			n /= 36
		}
	} else {
		for i := range buf {
			buf[i] = txnAlphabet[int(buf[i])%len(txnAlphabet)]
		}
	}

	return "PAWS" + ts + string(buf)
}
