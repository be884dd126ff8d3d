package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"sudsshop/internal/domain"
	"sudsshop/internal/services"
	"sudsshop/internal/store"
	"sudsshop/internal/view"
)

// checkoutSession returns a session holding Dish Soap x 2 with the checkout
// screen open, the state a real submission starts from.
func checkoutSession(t *testing.T, id string) *store.Session {
	t.Helper()
	sess := store.NewSessions().Get(id)
	p := domain.Product{ID: "1", Name: "Dish Soap", Price: 0.4}
	sess.AddToCart(p)
	sess.UpdateQuantity("1", 1)
	sess.BeginCheckout()
	return sess
}

func contact() domain.CustomerDetails {
	return domain.CustomerDetails{Phone: "+855 12 345 678", Address: "Phnom Penh, Street 123"}
}

func relayServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestSubmitSuccessThenTimedReset(t *testing.T) {
	var payload struct {
		Phone   string `json:"phone"`
		Address string `json:"address"`
		Items   []struct {
			Name     string  `json:"name"`
			Quantity int     `json:"quantity"`
			Price    float64 `json:"price"`
		} `json:"items"`
		Total float64 `json:"total"`
		Nonce string  `json:"nonce"`
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode relay payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	svc := services.NewOrderService(ts.URL, "LoukNisLoukNosBot", true)
	svc.SuccessDelay = 30 * time.Millisecond
	sess := checkoutSession(t, "ok")

	out, err := svc.Submit(context.Background(), sess, contact())
	if err != nil {
		t.Fatal(err)
	}
	if out.Status != store.OrderSuccess || out.FallbackURL != "" {
		t.Fatalf("got %+v", out)
	}
	if payload.Phone != "+855 12 345 678" || payload.Total != 0.8 {
		t.Fatalf("relay payload wrong: %+v", payload)
	}
	if len(payload.Items) != 1 || payload.Items[0].Quantity != 2 || payload.Items[0].Name != "Dish Soap" {
		t.Fatalf("relay items wrong: %+v", payload.Items)
	}
	if payload.Nonce == "" {
		t.Fatal("order nonce missing")
	}
	if len(sess.CartItems()) != 0 {
		t.Fatal("cart not cleared on success")
	}
	if sess.OrderStatus() != store.OrderSuccess {
		t.Fatalf("banner is %s", sess.OrderStatus())
	}

	// the success banner decays to idle and the view returns home
	time.Sleep(150 * time.Millisecond)
	if sess.OrderStatus() != store.OrderIdle {
		t.Fatalf("banner did not reset: %s", sess.OrderStatus())
	}
	if got := sess.View().Screen; got != view.Home {
		t.Fatalf("view did not return home: %s", got)
	}
}

func TestSubmitFallsBackWhenRelayMissing(t *testing.T) {
	ts := relayServer(t, http.StatusNotFound)

	svc := services.NewOrderService(ts.URL, "LoukNisLoukNosBot", true)
	sess := checkoutSession(t, "fb404")

	out, err := svc.Submit(context.Background(), sess, contact())
	if err != nil {
		t.Fatal(err)
	}
	if out.FallbackURL == "" {
		t.Fatal("no fallback link")
	}

	u, err := url.Parse(out.FallbackURL)
	if err != nil {
		t.Fatal(err)
	}
	if u.Host != "t.me" || u.Path != "/LoukNisLoukNosBot" {
		t.Fatalf("deep link points at %s%s", u.Host, u.Path)
	}
	text := u.Query().Get("text")
	for _, want := range []string{
		"*New Items Order!*",
		"- Dish Soap x 2 ($0.80)",
		"*Total:* $0.80",
		"Phone: +855 12 345 678",
		"Address: Phnom Penh, Street 123",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("deep link text missing %q:\n%s", want, text)
		}
	}

	// the hand-off clears everything and returns to the store
	if len(sess.CartItems()) != 0 {
		t.Fatal("cart survived the fallback")
	}
	if sess.OrderStatus() != store.OrderIdle {
		t.Fatalf("banner is %s", sess.OrderStatus())
	}
	if got := sess.Customer(); got.Phone != "" {
		t.Fatalf("contact form survived the fallback: %+v", got)
	}
	if got := sess.View().Screen; got != view.Home {
		t.Fatalf("view is %s", got)
	}
}

func TestSubmitFallsBackOutsideProduction(t *testing.T) {
	ts := relayServer(t, http.StatusInternalServerError)

	svc := services.NewOrderService(ts.URL, "LoukNisLoukNosBot", false)
	sess := checkoutSession(t, "fbdev")

	out, err := svc.Submit(context.Background(), sess, contact())
	if err != nil {
		t.Fatal(err)
	}
	if out.FallbackURL == "" {
		t.Fatal("non-production failure should degrade to the deep link")
	}
}

func TestSubmitErrorKeepsCartAndForm(t *testing.T) {
	ts := relayServer(t, http.StatusInternalServerError)

	svc := services.NewOrderService(ts.URL, "LoukNisLoukNosBot", true)
	sess := checkoutSession(t, "err")

	out, err := svc.Submit(context.Background(), sess, contact())
	if err == nil {
		t.Fatal("want an error from a production relay failure")
	}
	if out.Status != store.OrderError || sess.OrderStatus() != store.OrderError {
		t.Fatalf("banner is %s / %s", out.Status, sess.OrderStatus())
	}
	// the user can retry without retyping anything
	if len(sess.CartItems()) != 1 || sess.CartItems()[0].Quantity != 2 {
		t.Fatalf("cart lost on error: %+v", sess.CartItems())
	}
	if sess.Customer().Phone == "" {
		t.Fatal("contact form lost on error")
	}
}

func TestSubmitRequiresContactAndItems(t *testing.T) {
	svc := services.NewOrderService("http://127.0.0.1:0", "LoukNisLoukNosBot", true)

	sess := checkoutSession(t, "nocontact")
	if _, err := svc.Submit(context.Background(), sess, domain.CustomerDetails{Phone: "012"}); err != services.ErrMissingContact {
		t.Fatalf("missing address accepted: %v", err)
	}
	if len(sess.CartItems()) != 1 {
		t.Fatal("refused submission touched the cart")
	}

	empty := store.NewSessions().Get("empty")
	if _, err := svc.Submit(context.Background(), empty, contact()); err != services.ErrCartEmpty {
		t.Fatalf("empty cart accepted: %v", err)
	}
}

func TestSubmitRefusedWhileSuccessShowing(t *testing.T) {
	ts := relayServer(t, http.StatusOK)

	svc := services.NewOrderService(ts.URL, "LoukNisLoukNosBot", true)
	svc.SuccessDelay = time.Hour
	sess := checkoutSession(t, "double")

	if _, err := svc.Submit(context.Background(), sess, contact()); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Submit(context.Background(), sess, contact()); err != services.ErrSubmitInFlight {
		t.Fatalf("second submission accepted: %v", err)
	}
}
