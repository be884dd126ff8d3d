package store_test

import (
	"testing"

	"sudsshop/internal/store"
	"sudsshop/internal/view"
)

func TestAddToCartOpensOverlayFromDetailScreen(t *testing.T) {
	sess := store.NewSessions().Get("detail-add")
	if err := sess.SelectProduct("1"); err != nil {
		t.Fatal(err)
	}

	sess.AddToCart(soap())
	if !sess.View().CartOpen {
		t.Fatal("adding from the detail screen left the overlay closed")
	}
	if sess.CartCount() != 1 {
		t.Fatalf("want one item, got %d", sess.CartCount())
	}

	// navigating home keeps the drawer up so the visitor sees the new line
	sess.ReturnHome()
	if !sess.View().CartOpen {
		t.Fatal("the overlay flag did not survive the redirect home")
	}
}

func TestSessionsReturnSameStatePerID(t *testing.T) {
	reg := store.NewSessions()
	a := reg.Get("sid-a")
	a.AddToCart(soap())

	if got := reg.Get("sid-a"); got.CartCount() != 1 {
		t.Fatal("same sid did not see the same cart")
	}
	if got := reg.Get("sid-b"); got.CartCount() != 0 {
		t.Fatal("a fresh sid shared another session's cart")
	}
	if got := reg.Get("sid-b").View().Screen; got != view.Home {
		t.Fatalf("fresh session starts on %s", got)
	}
}
