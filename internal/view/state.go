// Package view models the storefront's screen navigation as an explicit
// state machine so the allowed transitions are enforceable instead of being
// scattered across handlers.
package view

import "errors"

type Screen string

const (
	Home          Screen = "HOME"
	ProductDetail Screen = "PRODUCT_DETAIL"
	AdminLogin    Screen = "ADMIN_LOGIN"
	Admin         Screen = "ADMIN"
	Checkout      Screen = "CHECKOUT"
)

var ErrNoSelection = errors.New("view: product detail requires a selected product")

// State is the per-session navigation state. CartOpen is an overlay flag, not
// a screen; it may be set in any state but is only surfaced from Home.
type State struct {
	Screen     Screen
	SelectedID string
	CartOpen   bool
}

func NewState() State { return State{Screen: Home} }

// OnAdminScreen reports whether the current screen belongs to the admin family.
func (s *State) OnAdminScreen() bool {
	return s.Screen == Admin || s.Screen == AdminLogin
}

// SelectProduct opens the detail screen. A detail screen without a selection
// is invalid, so an empty id is rejected.
func (s *State) SelectProduct(id string) error {
	if id == "" {
		return ErrNoSelection
	}
	s.SelectedID = id
	s.Screen = ProductDetail
	return nil
}

// Back returns from the detail screen to Home and drops the selection.
func (s *State) Back() {
	s.SelectedID = ""
	s.Screen = Home
}

// ToggleAdmin implements the single header toggle: leaving an admin-family
// screen navigates Home and reports that the guard must be cleared; otherwise
// it routes to Admin when already authenticated, AdminLogin when not.
func (s *State) ToggleAdmin(authed bool) (loggedOut bool) {
	if s.OnAdminScreen() {
		s.Screen = Home
		return true
	}
	if authed {
		s.Screen = Admin
	} else {
		s.Screen = AdminLogin
	}
	return false
}

// LoginSucceeded moves from the login screen to the admin panel.
func (s *State) LoginSucceeded() {
	s.Screen = Admin
}

// OpenCart raises the cart overlay flag. The flag may be set from any screen;
// only the home template surfaces the drawer.
func (s *State) OpenCart() {
	s.CartOpen = true
}

func (s *State) CloseCart() { s.CartOpen = false }

// BeginCheckout is triggered from the cart overlay; it closes the overlay and
// moves to the checkout screen.
func (s *State) BeginCheckout() {
	s.CartOpen = false
	s.Screen = Checkout
}

// ReturnHome is the universal "back to store" transition.
func (s *State) ReturnHome() {
	s.SelectedID = ""
	s.Screen = Home
}
