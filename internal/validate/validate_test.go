package validate_test

import (
	"strings"
	"testing"

	"sudsshop/internal/validate"
)

func TestPhoneIsPresenceOnly(t *testing.T) {
	// anything non-empty goes through; the owner dials it by hand
	for _, ok := range []string{"+855 12 345 678", "1234", "012b345678", "phone at the shop"} {
		if _, good := validate.Phone(" " + ok + " "); !good {
			t.Fatalf("rejected %q", ok)
		}
	}
	if _, good := validate.Phone("   "); good {
		t.Fatal("accepted a blank phone")
	}
	if _, good := validate.Phone(strings.Repeat("1", 51)); good {
		t.Fatal("accepted an absurdly long phone")
	}
}

func TestID(t *testing.T) {
	if _, ok := validate.ID("1"); !ok {
		t.Fatal("rejected a seed id")
	}
	if _, ok := validate.ID("9b2d5bcd-5b11-4f58-98d8-8a9a6f04a1e2"); !ok {
		t.Fatal("rejected a uuid")
	}
	for _, bad := range []string{"", "a b", "x/../y", "<script>"} {
		if _, ok := validate.ID(bad); ok {
			t.Fatalf("accepted %q", bad)
		}
	}
}

func TestPriceAndDelta(t *testing.T) {
	if v, ok := validate.Price(" 1.75 "); !ok || v != 1.75 {
		t.Fatalf("got %v %v", v, ok)
	}
	if _, ok := validate.Price("-1"); ok {
		t.Fatal("accepted a negative price")
	}
	if _, ok := validate.Price("free"); ok {
		t.Fatal("accepted a non-number")
	}

	if got := validate.Delta("-1"); got != -1 {
		t.Fatalf("got %d", got)
	}
	if got := validate.Delta("9999"); got != 50 {
		t.Fatalf("delta not clamped: %d", got)
	}
	if got := validate.Delta("x"); got != 0 {
		t.Fatalf("got %d", got)
	}
}
