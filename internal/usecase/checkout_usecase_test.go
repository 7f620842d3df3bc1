package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pawart_studio/internal/domain/entities"
	"pawart_studio/internal/infrastructure/config"
	"pawart_studio/internal/usecase/interfaces"
	mock_interfaces "pawart_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type checkoutMocks struct {
	sessions *mock_interfaces.MockICheckoutSessionRepository
	orders   *mock_interfaces.MockIOrderRepository
	store    *mock_interfaces.MockIPendingPaymentStore
	provider *mock_interfaces.MockIPaymentProvider
	notifier *mock_interfaces.MockINotifier

	// lastUpdated captures the most recent session handed to Update.
	lastUpdated *entities.CheckoutSession
}

func newCheckoutForTest(t *testing.T, ctrl *gomock.Controller) (*CheckoutUseCase, *checkoutMocks) {
	t.Helper()

	m := &checkoutMocks{
		sessions: mock_interfaces.NewMockICheckoutSessionRepository(ctrl),
		orders:   mock_interfaces.NewMockIOrderRepository(ctrl),
		store:    mock_interfaces.NewMockIPendingPaymentStore(ctrl),
		provider: mock_interfaces.NewMockIPaymentProvider(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
	}
	m.sessions.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
			m.lastUpdated = &s
			return s, nil
		}).AnyTimes()

	uc := NewCheckoutUseCase(
		m.sessions,
		m.orders,
		m.store,
		map[entities.Rail]interfaces.IPaymentProvider{
			entities.RailCardCO: m.provider,
			entities.RailCardEC: m.provider,
		},
		NewPricingUseCase(config.DefaultPricingConfig()),
		NewShippingUseCase(config.DefaultShippingConfig()),
		m.notifier,
	)
	uc.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	return uc, m
}

func completeCustomer() entities.Customer {
	return entities.Customer{
		FullName: "Ana Torres",
		Email:    "ana@test.com",
		Whatsapp: "+573001112233",
		Address:  "Calle 1 # 2-3, Bogota",
	}
}

func readySession(country entities.Country) entities.CheckoutSession {
	cost := entities.NewMoney(5000, entities.CurrencyCOP)
	if country == entities.CountryEC {
		cost = entities.NewMoney(250, entities.CurrencyUSD)
	}
	return entities.CheckoutSession{
		ID:                 "sess-1",
		Country:            country,
		Customer:           completeCustomer(),
		SelectedArtworkRef: "Acuarela Vibrante",
		Garment:            entities.GarmentChoice{Color: "negro", Size: "M"},
		ShippingQuote: &entities.ShippingQuote{
			Cost:   cost,
			Source: entities.ShippingSourceFallback,
		},
		State: entities.CheckoutStateReadyToPay,
	}
}

func TestCheckoutUseCase_StartSession(t *testing.T) {
	t.Run("invalid country", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCheckoutForTest(t, ctrl)

		if _, err := uc.StartSession(context.Background(), "PE", entities.Customer{}, "", entities.GarmentChoice{}); !errors.Is(err, ErrInvalidCountry) {
			t.Fatalf("expected ErrInvalidCountry, got %v", err)
		}
	})

	t.Run("partial customer starts in draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) { return s, nil })

		s, err := uc.StartSession(context.Background(), entities.CountryCO, entities.Customer{FullName: "Ana"}, "", entities.GarmentChoice{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.State != entities.CheckoutStateDraft {
			t.Fatalf("expected draft, got %s", s.State)
		}
		if s.ID == "" {
			t.Fatalf("expected generated session id")
		}
	})

	t.Run("complete customer skips to shipping pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) { return s, nil })

		s, err := uc.StartSession(context.Background(), entities.CountryEC, completeCustomer(), "Pop Art Retro", entities.GarmentChoice{Color: "blanco", Size: "S"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.State != entities.CheckoutStateShippingPending {
			t.Fatalf("expected shipping pending, got %s", s.State)
		}
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCheckoutForTest(t, ctrl)

		c := entities.Customer{Email: "not an email"}
		if _, err := uc.StartSession(context.Background(), entities.CountryCO, c, "", entities.GarmentChoice{}); !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})
}

func TestCheckoutUseCase_SubmitDetails(t *testing.T) {
	t.Run("draft transitions to shipping pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.CheckoutSession{ID: "sess-1", Country: entities.CountryCO, State: entities.CheckoutStateDraft}, nil)

		s, err := uc.SubmitDetails(context.Background(), "sess-1", completeCustomer(), "Neon Cyberpunk", entities.GarmentChoice{Color: "negro", Size: "L"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.State != entities.CheckoutStateShippingPending {
			t.Fatalf("expected shipping pending, got %s", s.State)
		}
		if s.SelectedArtworkRef != "Neon Cyberpunk" {
			t.Fatalf("artwork ref not applied")
		}
	})

	t.Run("incomplete customer causes no transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.CheckoutSession{ID: "sess-1", State: entities.CheckoutStateDraft}, nil)

		if _, err := uc.SubmitDetails(context.Background(), "sess-1", entities.Customer{FullName: "Ana"}, "", entities.GarmentChoice{}); !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
		if m.lastUpdated != nil {
			t.Fatalf("session must not be updated on validation failure")
		}
	})

	t.Run("rejected while payment in flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.CheckoutSession{ID: "sess-1", State: entities.CheckoutStateVerifying}, nil)

		if _, err := uc.SubmitDetails(context.Background(), "sess-1", completeCustomer(), "", entities.GarmentChoice{}); !errors.Is(err, ErrPaymentInFlight) {
			t.Fatalf("expected ErrPaymentInFlight, got %v", err)
		}
	})

	t.Run("session not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.CheckoutSession{}, nil)

		if _, err := uc.SubmitDetails(context.Background(), "missing", completeCustomer(), "", entities.GarmentChoice{}); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestCheckoutUseCase_AttachShipping(t *testing.T) {
	t.Run("draft requires details first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.CheckoutSession{ID: "sess-1", State: entities.CheckoutStateDraft}, nil)

		if _, err := uc.AttachShipping(context.Background(), "sess-1", true, 4.7, -74.1); !errors.Is(err, ErrDetailsIncomplete) {
			t.Fatalf("expected ErrDetailsIncomplete, got %v", err)
		}
	})

	t.Run("geolocated quote moves to ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.CheckoutSession{ID: "sess-1", Country: entities.CountryCO, Customer: completeCustomer(), State: entities.CheckoutStateShippingPending}, nil)

		s, err := uc.AttachShipping(context.Background(), "sess-1", true, 6.2442, -75.5812)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.State != entities.CheckoutStateReadyToPay {
			t.Fatalf("expected ready to pay, got %s", s.State)
		}
		if s.ShippingQuote == nil || s.ShippingQuote.Source != entities.ShippingSourceGeolocated {
			t.Fatalf("expected geolocated quote, got %+v", s.ShippingQuote)
		}
	})

	t.Run("fallback quote is explicit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.CheckoutSession{ID: "sess-1", Country: entities.CountryEC, Customer: completeCustomer(), State: entities.CheckoutStateShippingPending}, nil)

		s, err := uc.AttachShipping(context.Background(), "sess-1", false, 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ShippingQuote == nil || s.ShippingQuote.Source != entities.ShippingSourceFallback {
			t.Fatalf("expected fallback quote, got %+v", s.ShippingQuote)
		}
		if s.ShippingQuote.Cost.Amount != 250 {
			t.Fatalf("expected EC fallback cost, got %d", s.ShippingQuote.Cost.Amount)
		}
	})

	t.Run("requote replaces the previous quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		existing := readySession(entities.CountryCO)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(existing, nil)

		s, err := uc.AttachShipping(context.Background(), "sess-1", true, 6.2442, -75.5812)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ShippingQuote.Source != entities.ShippingSourceGeolocated {
			t.Fatalf("expected the new quote to replace the old one")
		}
		if s.State != entities.CheckoutStateReadyToPay {
			t.Fatalf("state should remain ready to pay, got %s", s.State)
		}
	})
}

func TestCheckoutUseCase_InitiatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("shipping required before payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.CheckoutSession{ID: "sess-1", Country: entities.CountryCO, Customer: completeCustomer(), State: entities.CheckoutStateShippingPending}, nil)

		if _, err := uc.InitiatePayment(ctx, "sess-1", entities.RailCardCO); !errors.Is(err, ErrShippingNotCalculated) {
			t.Fatalf("expected ErrShippingNotCalculated, got %v", err)
		}
	})

	t.Run("rail must match country", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(readySession(entities.CountryCO), nil)

		if _, err := uc.InitiatePayment(ctx, "sess-1", entities.RailCardEC); !errors.Is(err, ErrInvalidRail) {
			t.Fatalf("expected ErrInvalidRail, got %v", err)
		}
	})

	t.Run("redirect rail persists snapshot before leaving the page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(readySession(entities.CountryEC), nil)
		m.provider.EXPECT().Initiate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.PriceBreakdown, c entities.Customer, txnID string) (entities.PendingPayment, error) {
				if b.Total.Amount != 2886 {
					t.Fatalf("expected total 2886 cents, got %d", b.Total.Amount)
				}
				return entities.PendingPayment{
					ClientTransactionID: txnID,
					Rail:                entities.RailCardEC,
					Mode:                entities.PaymentModeRedirect,
					PaymentURL:          "https://pay.example/" + txnID,
					Breakdown:           b,
					Customer:            c,
				}, nil
			})
		m.store.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PendingPayment) error {
				if p.SessionID != "sess-1" {
					t.Fatalf("snapshot must carry the session id")
				}
				return nil
			})

		initiation, err := uc.InitiatePayment(ctx, "sess-1", entities.RailCardEC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if initiation.Session.State != entities.CheckoutStateAwaitingProviderRedirect {
			t.Fatalf("expected awaiting redirect, got %s", initiation.Session.State)
		}
		if initiation.Pending.PaymentURL == "" {
			t.Fatalf("expected a payment url")
		}
		if initiation.Order != nil {
			t.Fatalf("redirect rail must not finalize immediately")
		}
		if len(initiation.Pending.ClientTransactionID) > 20 || !strings.HasPrefix(initiation.Pending.ClientTransactionID, "PAWS") {
			t.Fatalf("unexpected transaction id: %q", initiation.Pending.ClientTransactionID)
		}
	})

	t.Run("widget rail moves to awaiting callback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(readySession(entities.CountryCO), nil)
		m.provider.EXPECT().Initiate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.PriceBreakdown, c entities.Customer, txnID string) (entities.PendingPayment, error) {
				return entities.PendingPayment{
					ClientTransactionID: txnID,
					Rail:                entities.RailCardCO,
					Mode:                entities.PaymentModeWidget,
					Widget:              &entities.WidgetSession{Reference: txnID, AmountInCents: b.Total.Amount * 100},
					Breakdown:           b,
					Customer:            c,
				}, nil
			})
		m.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

		initiation, err := uc.InitiatePayment(ctx, "sess-1", entities.RailCardCO)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if initiation.Session.State != entities.CheckoutStateAwaitingProviderCallback {
			t.Fatalf("expected awaiting callback, got %s", initiation.Session.State)
		}
		if initiation.Pending.Widget == nil {
			t.Fatalf("expected widget session")
		}
	})

	t.Run("widget already open is a no-op returning the existing attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		s := readySession(entities.CountryCO)
		s.State = entities.CheckoutStateAwaitingProviderCallback
		s.ProviderTransactionRef = "PAWSEXISTING000001"
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		m.store.EXPECT().Get(gomock.Any(), "PAWSEXISTING000001").Return(entities.PendingPayment{ClientTransactionID: "PAWSEXISTING000001", Mode: entities.PaymentModeWidget}, nil)

		initiation, err := uc.InitiatePayment(ctx, "sess-1", entities.RailCardCO)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if initiation.Pending.ClientTransactionID != "PAWSEXISTING000001" {
			t.Fatalf("expected existing attempt, got %q", initiation.Pending.ClientTransactionID)
		}
	})

	t.Run("redirect in flight is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		s := readySession(entities.CountryEC)
		s.State = entities.CheckoutStateAwaitingProviderRedirect
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		if _, err := uc.InitiatePayment(ctx, "sess-1", entities.RailCardEC); !errors.Is(err, ErrPaymentInFlight) {
			t.Fatalf("expected ErrPaymentInFlight, got %v", err)
		}
	})

	t.Run("manual rail finalizes pending-but-chargeable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(readySession(entities.CountryCO), nil)
		m.notifier.EXPECT().NotifyTransferRequest(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(nil)
		m.orders.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, bool, error) {
				if o.Payment.Status != entities.OrderPaymentPending {
					t.Fatalf("manual rail order must be pending_payment, got %s", o.Payment.Status)
				}
				if o.Payment.AmountCharged.Amount != 94900 {
					t.Fatalf("expected total 94900 COP, got %d", o.Payment.AmountCharged.Amount)
				}
				return o, true, nil
			})
		m.notifier.EXPECT().NotifyOrder(gomock.Any(), gomock.Any(), "").Return(nil)
		m.store.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)

		initiation, err := uc.InitiatePayment(ctx, "sess-1", entities.RailBankTransfer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if initiation.Order == nil {
			t.Fatalf("manual rail must finalize immediately")
		}
		if initiation.Session.State != entities.CheckoutStateCompleted {
			t.Fatalf("expected completed session, got %s", initiation.Session.State)
		}
	})

	t.Run("transfer notification failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(readySession(entities.CountryCO), nil)
		m.notifier.EXPECT().NotifyTransferRequest(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(errors.New("telegram down"))
		m.orders.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, bool, error) { return o, true, nil })
		m.notifier.EXPECT().NotifyOrder(gomock.Any(), gomock.Any(), "").Return(errors.New("telegram still down"))
		m.store.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.InitiatePayment(ctx, "sess-1", entities.RailNequi); err != nil {
			t.Fatalf("notification failures must not fail the order: %v", err)
		}
	})

	t.Run("provider not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)
		delete(uc.providers, entities.RailCardEC)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(readySession(entities.CountryEC), nil)

		if _, err := uc.InitiatePayment(ctx, "sess-1", entities.RailCardEC); !errors.Is(err, ErrProviderNotConfigured) {
			t.Fatalf("expected ErrProviderNotConfigured, got %v", err)
		}
	})

	t.Run("completed session rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		s := readySession(entities.CountryCO)
		s.State = entities.CheckoutStateCompleted
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		if _, err := uc.InitiatePayment(ctx, "sess-1", entities.RailCardCO); !errors.Is(err, ErrSessionCompleted) {
			t.Fatalf("expected ErrSessionCompleted, got %v", err)
		}
	})
}

func TestCheckoutUseCase_HandleRedirectReturn(t *testing.T) {
	ctx := context.Background()

	pendingEC := func() entities.PendingPayment {
		return entities.PendingPayment{
			ClientTransactionID: "PAWSTXN0000000001",
			SessionID:           "sess-1",
			Rail:                entities.RailCardEC,
			Mode:                entities.PaymentModeRedirect,
			Breakdown: entities.PriceBreakdown{
				Subtotal:   entities.NewMoney(2749, entities.CurrencyUSD),
				Commission: entities.NewMoney(137, entities.CurrencyUSD),
				Tax:        entities.NewMoney(0, entities.CurrencyUSD),
				Total:      entities.NewMoney(2886, entities.CurrencyUSD),
				Rail:       entities.RailCardEC,
			},
			Customer:   completeCustomer(),
			ArtworkRef: "Pop Art Retro",
		}
	}

	t.Run("missing parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCheckoutForTest(t, ctrl)

		if _, err := uc.HandleRedirectReturn(ctx, "", "PAWSTXN0000000001"); !errors.Is(err, ErrInvalidTransactionRef) {
			t.Fatalf("expected ErrInvalidTransactionRef, got %v", err)
		}
		if _, err := uc.HandleRedirectReturn(ctx, "12345", "  "); !errors.Is(err, ErrInvalidTransactionRef) {
			t.Fatalf("expected ErrInvalidTransactionRef, got %v", err)
		}
	})

	t.Run("duplicate return short-circuits without confirming again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		existing := entities.Order{ID: "order-1", TransactionRef: "PAWSTXN0000000001"}
		m.orders.EXPECT().GetByTransactionRef(gomock.Any(), "PAWSTXN0000000001").Return(existing, nil)
		// No provider.Confirm, no store access.

		order, err := uc.HandleRedirectReturn(ctx, "12345", "PAWSTXN0000000001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID != "order-1" {
			t.Fatalf("expected the existing order, got %+v", order)
		}
	})

	t.Run("approved payment finalizes exactly once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.orders.EXPECT().GetByTransactionRef(gomock.Any(), "PAWSTXN0000000001").Return(entities.Order{}, nil)
		m.store.EXPECT().Get(gomock.Any(), "PAWSTXN0000000001").Return(pendingEC(), nil)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(readySession(entities.CountryEC), nil)
		m.provider.EXPECT().Confirm(gomock.Any(), "12345", "PAWSTXN0000000001").Return(entities.PaymentResult{
			Status:                entities.PaymentResultApproved,
			ProviderTransactionID: "12345",
			RawStatus:             "Approved",
			Amount:                entities.NewMoney(2886, entities.CurrencyUSD),
		}, nil)
		m.orders.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, bool, error) {
				if o.Payment.Status != entities.OrderPaymentPaid {
					t.Fatalf("expected paid order, got %s", o.Payment.Status)
				}
				if o.TransactionRef != "PAWSTXN0000000001" {
					t.Fatalf("order must be keyed by the client transaction ref")
				}
				return o, true, nil
			})
		m.notifier.EXPECT().NotifyOrder(gomock.Any(), gomock.Any(), "").Return(nil)
		m.store.EXPECT().Clear(gomock.Any(), "PAWSTXN0000000001").Return(nil)

		order, err := uc.HandleRedirectReturn(ctx, "12345", "PAWSTXN0000000001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Payment.ProviderRef != "12345" {
			t.Fatalf("expected provider ref captured, got %q", order.Payment.ProviderRef)
		}
		if m.lastUpdated == nil || m.lastUpdated.State != entities.CheckoutStateCompleted {
			t.Fatalf("session should end completed, got %+v", m.lastUpdated)
		}
	})

	t.Run("lost snapshot degrades to placeholder customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.orders.EXPECT().GetByTransactionRef(gomock.Any(), "PAWSTXN0000000001").Return(entities.Order{}, nil)
		m.store.EXPECT().Get(gomock.Any(), "PAWSTXN0000000001").Return(entities.PendingPayment{}, nil)
		m.provider.EXPECT().Confirm(gomock.Any(), "12345", "PAWSTXN0000000001").Return(entities.PaymentResult{
			Status: entities.PaymentResultApproved,
			Amount: entities.NewMoney(2886, entities.CurrencyUSD),
		}, nil)
		m.orders.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, bool, error) {
				if o.Customer != entities.UnknownCustomer() {
					t.Fatalf("expected placeholder customer, got %+v", o.Customer)
				}
				return o, true, nil
			})
		m.notifier.EXPECT().NotifyOrder(gomock.Any(), gomock.Any(), "").Return(nil)
		m.store.EXPECT().Clear(gomock.Any(), "PAWSTXN0000000001").Return(nil)

		if _, err := uc.HandleRedirectReturn(ctx, "12345", "PAWSTXN0000000001"); err != nil {
			t.Fatalf("the money already moved; order must persist: %v", err)
		}
	})

	t.Run("declined payment fails the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.orders.EXPECT().GetByTransactionRef(gomock.Any(), "PAWSTXN0000000001").Return(entities.Order{}, nil)
		m.store.EXPECT().Get(gomock.Any(), "PAWSTXN0000000001").Return(pendingEC(), nil)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(readySession(entities.CountryEC), nil)
		m.provider.EXPECT().Confirm(gomock.Any(), "12345", "PAWSTXN0000000001").Return(entities.PaymentResult{
			Status:    entities.PaymentResultDeclined,
			RawStatus: "Rejected",
		}, nil)

		if _, err := uc.HandleRedirectReturn(ctx, "12345", "PAWSTXN0000000001"); !errors.Is(err, ErrPaymentDeclined) {
			t.Fatalf("expected ErrPaymentDeclined, got %v", err)
		}
		if m.lastUpdated == nil || m.lastUpdated.State != entities.CheckoutStateFailed {
			t.Fatalf("session should be failed, got %+v", m.lastUpdated)
		}
	})

	t.Run("confirm transport failure is status-unknown, not declined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.orders.EXPECT().GetByTransactionRef(gomock.Any(), "PAWSTXN0000000001").Return(entities.Order{}, nil)
		m.store.EXPECT().Get(gomock.Any(), "PAWSTXN0000000001").Return(pendingEC(), nil)
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(readySession(entities.CountryEC), nil)
		m.provider.EXPECT().Confirm(gomock.Any(), "12345", "PAWSTXN0000000001").Return(entities.PaymentResult{}, errors.New("timeout"))

		_, err := uc.HandleRedirectReturn(ctx, "12345", "PAWSTXN0000000001")
		if !errors.Is(err, ErrPaymentStatusUnknown) {
			t.Fatalf("expected ErrPaymentStatusUnknown, got %v", err)
		}
		if errors.Is(err, ErrPaymentDeclined) {
			t.Fatalf("status-unknown must not look like a decline")
		}
		if m.lastUpdated == nil || m.lastUpdated.FailureReason != "payment status unknown" {
			t.Fatalf("expected explicit failure reason, got %+v", m.lastUpdated)
		}
	})
}

func TestCheckoutUseCase_HandleWidgetCallback(t *testing.T) {
	ctx := context.Background()

	awaiting := func() entities.CheckoutSession {
		s := readySession(entities.CountryCO)
		s.State = entities.CheckoutStateAwaitingProviderCallback
		s.Rail = entities.RailCardCO
		s.ProviderTransactionRef = "PAWSTXN0000000002"
		return s
	}

	pendingCO := func() entities.PendingPayment {
		return entities.PendingPayment{
			ClientTransactionID: "PAWSTXN0000000002",
			SessionID:           "sess-1",
			Rail:                entities.RailCardCO,
			Mode:                entities.PaymentModeWidget,
			Breakdown: entities.PriceBreakdown{
				Subtotal:   entities.NewMoney(94900, entities.CurrencyCOP),
				Commission: entities.NewMoney(3215, entities.CurrencyCOP),
				Tax:        entities.NewMoney(611, entities.CurrencyCOP),
				Total:      entities.NewMoney(98726, entities.CurrencyCOP),
				Rail:       entities.RailCardCO,
			},
			Customer: completeCustomer(),
		}
	}

	t.Run("approved transaction finalizes the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(awaiting(), nil)
		m.store.EXPECT().Get(gomock.Any(), "PAWSTXN0000000002").Return(pendingCO(), nil)
		m.orders.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, bool, error) {
				if o.Payment.AmountCharged.Amount != 98726 {
					t.Fatalf("expected the bound total, got %d", o.Payment.AmountCharged.Amount)
				}
				return o, true, nil
			})
		m.notifier.EXPECT().NotifyOrder(gomock.Any(), gomock.Any(), "").Return(nil)
		m.store.EXPECT().Clear(gomock.Any(), "PAWSTXN0000000002").Return(nil)

		order, err := uc.HandleWidgetCallback(ctx, "sess-1", WidgetCallbackResult{
			Transaction: &WidgetTransaction{ID: "wompi-9", Status: "APPROVED"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Payment.ProviderRef != "wompi-9" {
			t.Fatalf("expected provider ref, got %q", order.Payment.ProviderRef)
		}
	})

	t.Run("widget closed without a transaction fails the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(awaiting(), nil)

		if _, err := uc.HandleWidgetCallback(ctx, "sess-1", WidgetCallbackResult{}); !errors.Is(err, ErrPaymentDeclined) {
			t.Fatalf("expected ErrPaymentDeclined, got %v", err)
		}
		if m.lastUpdated == nil || m.lastUpdated.State != entities.CheckoutStateFailed {
			t.Fatalf("session should be failed")
		}
	})

	t.Run("declined status fails the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(awaiting(), nil)

		if _, err := uc.HandleWidgetCallback(ctx, "sess-1", WidgetCallbackResult{
			Transaction: &WidgetTransaction{ID: "wompi-9", Status: "DECLINED"},
		}); !errors.Is(err, ErrPaymentDeclined) {
			t.Fatalf("expected ErrPaymentDeclined, got %v", err)
		}
	})

	t.Run("spurious resolution after completion returns the existing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		s := awaiting()
		s.State = entities.CheckoutStateCompleted
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		m.orders.EXPECT().GetByTransactionRef(gomock.Any(), "PAWSTXN0000000002").Return(entities.Order{ID: "order-9", TransactionRef: "PAWSTXN0000000002"}, nil)

		order, err := uc.HandleWidgetCallback(ctx, "sess-1", WidgetCallbackResult{
			Transaction: &WidgetTransaction{ID: "wompi-9", Status: "APPROVED"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID != "order-9" {
			t.Fatalf("expected existing order, got %+v", order)
		}
	})

	t.Run("no payment pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(readySession(entities.CountryCO), nil)

		if _, err := uc.HandleWidgetCallback(ctx, "sess-1", WidgetCallbackResult{
			Transaction: &WidgetTransaction{ID: "wompi-9", Status: "APPROVED"},
		}); !errors.Is(err, ErrNoPaymentPending) {
			t.Fatalf("expected ErrNoPaymentPending, got %v", err)
		}
	})

	t.Run("lost pending record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(awaiting(), nil)
		m.store.EXPECT().Get(gomock.Any(), "PAWSTXN0000000002").Return(entities.PendingPayment{}, nil)

		if _, err := uc.HandleWidgetCallback(ctx, "sess-1", WidgetCallbackResult{
			Transaction: &WidgetTransaction{ID: "wompi-9", Status: "APPROVED"},
		}); !errors.Is(err, ErrPendingPaymentLost) {
			t.Fatalf("expected ErrPendingPaymentLost, got %v", err)
		}
	})
}

func TestCheckoutUseCase_AcknowledgeFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("failed session returns to ready with fields retained", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		s := readySession(entities.CountryCO)
		s.State = entities.CheckoutStateFailed
		s.FailureReason = "declined"
		s.Rail = entities.RailCardCO
		s.ProviderTransactionRef = "PAWSTXN0000000003"
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		m.store.EXPECT().Clear(gomock.Any(), "PAWSTXN0000000003").Return(nil)

		got, err := uc.AcknowledgeFailure(ctx, "sess-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.State != entities.CheckoutStateReadyToPay {
			t.Fatalf("expected ready to pay, got %s", got.State)
		}
		if got.FailureReason != "" || got.ProviderTransactionRef != "" || got.Rail != "" {
			t.Fatalf("attempt fields should be cleared: %+v", got)
		}
		if got.Customer != completeCustomer() || got.ShippingQuote == nil {
			t.Fatalf("customer and shipping must be retained for retry")
		}
	})

	t.Run("only failed sessions can acknowledge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutForTest(t, ctrl)

		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(readySession(entities.CountryCO), nil)

		if _, err := uc.AcknowledgeFailure(ctx, "sess-1"); !errors.Is(err, ErrSessionNotFailed) {
			t.Fatalf("expected ErrSessionNotFailed, got %v", err)
		}
	})
}

func TestCheckoutUseCase_GetOrder(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newCheckoutForTest(t, ctrl)

	if _, err := uc.GetOrder(ctx, "   "); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for blank id, got %v", err)
	}

	m.orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{}, nil)
	if _, err := uc.GetOrder(ctx, "order-1"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for missing order, got %v", err)
	}

	m.orders.EXPECT().GetByID(gomock.Any(), "order-2").Return(entities.Order{ID: "order-2"}, nil)
	o, err := uc.GetOrder(ctx, "order-2")
	if err != nil || o.ID != "order-2" {
		t.Fatalf("unexpected result: %+v err=%v", o, err)
	}
}

func TestNewClientTransactionID(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := newClientTransactionID(now.Add(time.Duration(i) * time.Millisecond))
		if !strings.HasPrefix(id, "PAWS") {
			t.Fatalf("missing prefix: %q", id)
		}
		if len(id) > 20 {
			t.Fatalf("id exceeds 20 characters: %q (%d)", id, len(id))
		}
		for _, r := range id {
			if !strings.ContainsRune(txnAlphabet, r) {
				t.Fatalf("non-alphanumeric character %q in %q", r, id)
			}
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}

func TestNormalizeWidgetStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want entities.PaymentResultStatus
	}{
		{"APPROVED", entities.PaymentResultApproved},
		{"approved", entities.PaymentResultApproved},
		{" pending ", entities.PaymentResultPending},
		{"DECLINED", entities.PaymentResultDeclined},
		{"VOIDED", entities.PaymentResultVoided},
		{"whatever", entities.PaymentResultError},
		{"", entities.PaymentResultError},
	}
	for _, tc := range cases {
		if got := normalizeWidgetStatus(tc.raw); got != tc.want {
			t.Fatalf("normalizeWidgetStatus(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}
