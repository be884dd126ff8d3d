package store

import (
	"sync"

	"sudsshop/internal/domain"
	"sudsshop/internal/i18n"
	"sudsshop/internal/view"
)

// OrderStatus is the checkout banner state machine: IDLE -> SUCCESS | ERROR,
// with SUCCESS decaying back to IDLE on a timer.
type OrderStatus string

const (
	OrderIdle    OrderStatus = "IDLE"
	OrderSuccess OrderStatus = "SUCCESS"
	OrderError   OrderStatus = "ERROR"
)

// Session is the server-side home of what the original storefront kept as
// browser view state: navigation, cart, language, the admin guard flag, the
// checkout form, and the order banner. Everything here is transient.
type Session struct {
	ID string

	mu          sync.Mutex
	view        view.State
	lang        i18n.Lang
	admin       bool
	loginError  bool
	cart        Cart
	customer    domain.CustomerDetails
	orderStatus OrderStatus
	submitting  bool
}

func newSession(id string) *Session {
	return &Session{ID: id, view: view.NewState(), lang: i18n.EN, orderStatus: OrderIdle}
}

// --- navigation ---

func (s *Session) View() view.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Session) SelectProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.SelectProduct(id)
}

func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Back()
}

func (s *Session) ReturnHome() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaveAdminScreens()
	s.view.ReturnHome()
}

func (s *Session) OpenCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.OpenCart()
}

func (s *Session) CloseCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.CloseCart()
}

func (s *Session) BeginCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.BeginCheckout()
}

// ToggleAdmin is the single header button: it either leaves the admin screens
// (clearing the guard) or routes to the panel / login screen.
func (s *Session) ToggleAdmin() view.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view.ToggleAdmin(s.admin) {
		s.admin = false
		s.loginError = false
	}
	return s.view.Screen
}

// --- admin guard ---

func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin
}

func (s *Session) LoginError() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginError
}

func (s *Session) GrantAdmin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = true
	s.loginError = false
	s.view.LoginSucceeded()
}

func (s *Session) RejectLogin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loginError = true
}

// ShowLogin routes direct visits to the login screen without disturbing an
// admin session already on an admin screen.
func (s *Session) ShowLogin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.view.OnAdminScreen() {
		s.view.ToggleAdmin(s.admin)
	}
}

// EnterAdminScreen pins the view to the admin panel for authenticated
// sessions landing on it directly.
func (s *Session) EnterAdminScreen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.admin {
		s.view.LoginSucceeded()
	}
}

// leaveAdminScreens clears the guard whenever navigation exits the admin
// family. Callers hold the lock.
func (s *Session) leaveAdminScreens() {
	if s.view.OnAdminScreen() {
		s.admin = false
		s.loginError = false
	}
}

// --- cart ---

func (s *Session) AddToCart(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(p)
	s.view.OpenCart()
}

func (s *Session) RemoveFromCart(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(id)
}

func (s *Session) UpdateQuantity(id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(id, delta)
}

func (s *Session) CartItems() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

func (s *Session) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *Session) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// --- language ---

func (s *Session) Lang() i18n.Lang {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

func (s *Session) ToggleLang() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = s.lang.Toggle()
}

// --- checkout form & order banner ---

func (s *Session) Customer() domain.CustomerDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer
}

func (s *Session) SetCustomer(cd domain.CustomerDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = cd
}

func (s *Session) ResetCustomer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = domain.CustomerDetails{}
}

func (s *Session) OrderStatus() OrderStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderStatus
}

func (s *Session) SetOrderStatus(st OrderStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderStatus = st
}

// ResetAfterSuccess is the timed SUCCESS -> IDLE decay. It only fires if the
// status is still SUCCESS so a stale timer cannot clobber later navigation.
func (s *Session) ResetAfterSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.orderStatus != OrderSuccess {
		return
	}
	s.orderStatus = OrderIdle
	s.customer = domain.CustomerDetails{}
	s.view.ReturnHome()
}

// BeginSubmit flips the in-flight flag; a second submission while one is in
// flight is refused. A fresh attempt also resets an ERROR banner to IDLE.
func (s *Session) BeginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting || s.orderStatus == OrderSuccess {
		return false
	}
	s.submitting = true
	s.orderStatus = OrderIdle
	return true
}

func (s *Session) EndSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
}

// Sessions hands out per-sid session state, creating it on first sight.
type Sessions struct {
	mu sync.RWMutex
	m  map[string]*Session
}

func NewSessions() *Sessions { return &Sessions{m: make(map[string]*Session)} }

func (s *Sessions) Get(id string) *Session {
	s.mu.RLock()
	sess, ok := s.m[id]
	s.mu.RUnlock()
	if ok {
		return sess
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.m[id]; ok {
		return sess
	}
	sess = newSession(id)
	s.m[id] = sess
	return sess
}
