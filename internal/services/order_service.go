package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"sudsshop/internal/domain"
	"sudsshop/internal/store"
	"sudsshop/internal/telegram"
)

var (
	ErrCartEmpty      = errors.New("order: cart is empty")
	ErrSubmitInFlight = errors.New("order: a submission is already in flight")
	ErrMissingContact = errors.New("order: phone and address are required")

	errRelayNotFound = errors.New("order: relay endpoint not found")
)

// Outcome tells the handler what happened to a submission. FallbackURL is
// set when the relay was unavailable and the order was handed off to the
// Telegram compose deep link instead.
type Outcome struct {
	Status      store.OrderStatus
	FallbackURL string
}

// OrderService drives the checkout submission flow: one POST to the relay,
// with an automatic deep-link fallback when the relay is absent or the
// deployment is not flagged production.
type OrderService struct {
	RelayURL    string
	BotUsername string
	Production  bool

	// SuccessDelay is how long the success banner shows before the view
	// resets home. Shortened in tests.
	SuccessDelay time.Duration

	httpc *http.Client
}

func NewOrderService(relayURL, botUsername string, production bool) *OrderService {
	return &OrderService{
		RelayURL:     relayURL,
		BotUsername:  botUsername,
		Production:   production,
		SuccessDelay: 3 * time.Second,
		// Bounded wait; a hung relay must not pin the in-flight flag forever.
		httpc: &http.Client{Timeout: 15 * time.Second},
	}
}

type relayItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type relayPayload struct {
	Phone   string      `json:"phone"`
	Address string      `json:"address"`
	Items   []relayItem `json:"items"`
	Total   float64     `json:"total"`
	// Nonce lets a relay deduplicate a user-retried order; ours doesn't,
	// matching the original behavior.
	Nonce string `json:"nonce,omitempty"`
}

// Submit runs the whole flow against the given session. The returned error
// reports why a submission failed or was refused; the Outcome carries the
// user-visible result.
func (s *OrderService) Submit(ctx context.Context, sess *store.Session, cd domain.CustomerDetails) (Outcome, error) {
	if cd.Phone == "" || cd.Address == "" {
		return Outcome{Status: sess.OrderStatus()}, ErrMissingContact
	}
	if !sess.BeginSubmit() {
		return Outcome{Status: sess.OrderStatus()}, ErrSubmitInFlight
	}
	defer sess.EndSubmit()

	sess.SetCustomer(cd)
	items := sess.CartItems()
	if len(items) == 0 {
		return Outcome{Status: store.OrderIdle}, ErrCartEmpty
	}

	order := domain.Order{
		Nonce:    uuid.NewString(),
		Items:    items,
		Customer: cd,
		Total:    domain.Total(items),
	}

	err := s.postRelay(ctx, order)
	if err == nil {
		sess.SetOrderStatus(store.OrderSuccess)
		sess.ClearCart()
		time.AfterFunc(s.SuccessDelay, sess.ResetAfterSuccess)
		return Outcome{Status: store.OrderSuccess}, nil
	}

	// A missing relay signals a deployment without the backend; outside
	// production any failure degrades to the deep-link hand-off as well.
	if errors.Is(err, errRelayNotFound) || !s.Production {
		link := telegram.DeepLink(s.BotUsername, OrderMessage(order))
		sess.ClearCart()
		sess.ResetCustomer()
		sess.SetOrderStatus(store.OrderIdle)
		sess.ReturnHome()
		return Outcome{Status: store.OrderIdle, FallbackURL: link}, nil
	}

	sess.SetOrderStatus(store.OrderError)
	return Outcome{Status: store.OrderError}, err
}

func (s *OrderService) postRelay(ctx context.Context, o domain.Order) error {
	payload := relayPayload{
		Phone:   o.Customer.Phone,
		Address: o.Customer.Address,
		Total:   o.Total,
		Nonce:   o.Nonce,
	}
	for _, it := range o.Items {
		payload.Items = append(payload.Items, relayItem{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.RelayURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("order: relay request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return errRelayNotFound
	default:
		return fmt.Errorf("order: relay responded %d", resp.StatusCode)
	}
}

// OrderMessage renders the human-readable summary carried by the fallback
// deep link: per-line subtotals, grand total, then contact details.
func OrderMessage(o domain.Order) string {
	var b strings.Builder
	b.WriteString("🛍️ *New Items Order!* 🧼\n\n*Items:*\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "- %s x %d (%s)\n", it.Name, it.Quantity, it.SubtotalUSD())
	}
	fmt.Fprintf(&b, "\n*Total:* $%s\n\n", decimal.NewFromFloat(o.Total).StringFixed(2))
	fmt.Fprintf(&b, "*Customer Details:*\n📞 Phone: %s\n📍 Address: %s", o.Customer.Phone, o.Customer.Address)
	return b.String()
}
