// Package session owns the account directory, the single session
// pointer, and per-account order histories. It is the Go rendition of
// the demo's auth hook: every mutation rewrites the affected collection
// back to the key-value store in full, and interested parties subscribe
// to session changes instead of listening for an ambient event.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"campus-eats-api/models"
	"campus-eats-api/storage"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDomainMismatch     = errors.New("email domain does not match account type")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrNoSession          = errors.New("no account is logged in")
)

const (
	studentDomain = "@siswa.um.edu.my"
	staffDomain   = "@um.edu.my"

	// Fixed demo sentinel — the verification email is simulated.
	verificationCode = "123456"

	defaultLocation = "Kolej Kediaman 12"
)

// Store is the session/account store. A single instance is shared by
// everything that needs the active account.
type Store struct {
	mu  sync.RWMutex
	kv  storage.KV
	log *zap.Logger

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

func NewStore(kv storage.KV, log *zap.Logger) *Store {
	return &Store{
		kv:   kv,
		log:  log,
		subs: make(map[int]func()),
	}
}

// Subscribe registers a callback invoked after every session change
// (login, logout, profile edit, verification). The returned function
// unsubscribes.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) broadcast() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// RegisterInput carries the signup form fields.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Type     models.AccountType
}

// Register creates an unverified account. Guest accounts are verified in
// effect since verification gating only applies to non-guests; the
// returned flag reports whether verification is still pending.
func (s *Store) Register(in RegisterInput) (models.Account, bool, error) {
	if err := validateDomain(in.Email, in.Type); err != nil {
		return models.Account{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts()
	if err != nil {
		return models.Account{}, false, err
	}
	for _, a := range accounts {
		if strings.EqualFold(a.Email, in.Email) {
			return models.Account{}, false, ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, false, fmt.Errorf("hash password: %w", err)
	}

	account := models.Account{
		ID:              "user_" + uuid.NewString(),
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		PasswordHash:    string(hash),
		Type:            in.Type,
		IsVerified:      false,
		DefaultLocation: defaultLocation,
		CreatedAt:       time.Now(),
	}
	accounts = append(accounts, account)
	if err := s.saveAccounts(accounts); err != nil {
		return models.Account{}, false, err
	}

	needsVerification := in.Type != models.TypeGuest
	if needsVerification {
		// Simulated — no mail leaves the process.
		s.log.Info("verification email sent", zap.String("email", account.Email))
	}
	return account, needsVerification, nil
}

// Authenticate checks credentials, sets the session pointer and notifies
// subscribers.
func (s *Store) Authenticate(email, password string) (models.Account, error) {
	s.mu.Lock()
	accounts, err := s.loadAccounts()
	if err != nil {
		s.mu.Unlock()
		return models.Account{}, err
	}

	var match *models.Account
	for i := range accounts {
		if strings.EqualFold(accounts[i].Email, email) {
			match = &accounts[i]
			break
		}
	}
	if match == nil || bcrypt.CompareHashAndPassword([]byte(match.PasswordHash), []byte(password)) != nil {
		s.mu.Unlock()
		return models.Account{}, ErrInvalidCredentials
	}

	if err := storage.SetJSON(s.kv, storage.SessionKey(), match.ID); err != nil {
		s.mu.Unlock()
		return models.Account{}, err
	}
	account := *match
	s.mu.Unlock()

	s.broadcast()
	return account, nil
}

// Current resolves the session pointer against the directory. Absence of
// the pointer means logged out.
func (s *Store) Current() (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current()
}

func (s *Store) current() (models.Account, bool) {
	var id string
	ok, err := storage.GetJSON(s.kv, storage.SessionKey(), &id)
	if err != nil {
		s.log.Warn("read session pointer", zap.Error(err))
		return models.Account{}, false
	}
	if !ok {
		return models.Account{}, false
	}
	accounts, err := s.loadAccounts()
	if err != nil {
		return models.Account{}, false
	}
	for _, a := range accounts {
		if a.ID == id {
			return a, true
		}
	}
	return models.Account{}, false
}

// EndSession clears the session pointer. The account record itself is
// never removed — "delete account" in the demo is exactly this.
func (s *Store) EndSession() error {
	s.mu.Lock()
	err := s.kv.Delete(storage.SessionKey())
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.broadcast()
	return nil
}

// ProfileEdit carries optional field updates; nil fields are untouched.
type ProfileEdit struct {
	Name            *string
	Phone           *string
	DefaultLocation *string
	Avatar          *string
	Allergies       *[]string
}

// ApplyProfileEdit merges the edit into the active account's directory
// entry. No-ops when nobody is logged in.
func (s *Store) ApplyProfileEdit(edit ProfileEdit) error {
	s.mu.Lock()
	account, ok := s.current()
	if !ok {
		s.mu.Unlock()
		s.log.Debug("profile edit ignored: no active session")
		return nil
	}

	err := s.mutateAccount(account.ID, func(a *models.Account) {
		if edit.Name != nil {
			a.Name = *edit.Name
		}
		if edit.Phone != nil {
			a.Phone = *edit.Phone
		}
		if edit.DefaultLocation != nil {
			a.DefaultLocation = *edit.DefaultLocation
		}
		if edit.Avatar != nil {
			a.Avatar = *edit.Avatar
		}
		if edit.Allergies != nil {
			a.Allergies = *edit.Allergies
		}
	})
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.broadcast()
	return nil
}

// ChangePassword re-verifies the current password before overwriting.
func (s *Store) ChangePassword(currentPassword, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.current()
	if !ok {
		return ErrNoSession
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(currentPassword)) != nil {
		return ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.mutateAccount(account.ID, func(a *models.Account) {
		a.PasswordHash = string(hash)
	})
}

// VerifyEmail flips the verified flag when the demo code matches.
func (s *Store) VerifyEmail(code string) error {
	s.mu.Lock()
	account, ok := s.current()
	if !ok {
		s.mu.Unlock()
		return ErrNoSession
	}
	if code != verificationCode {
		s.mu.Unlock()
		return ErrInvalidCode
	}
	err := s.mutateAccount(account.ID, func(a *models.Account) {
		a.IsVerified = true
	})
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.broadcast()
	return nil
}

// RecordOrder prepends the snapshot to the active account's history,
// creating the list if absent. Logs and returns when nobody is logged
// in — the order is simply dropped.
func (s *Store) RecordOrder(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.current()
	if !ok {
		s.log.Warn("cannot record order: no active session", zap.String("order", order.ID))
		return
	}

	var orders []models.Order
	if _, err := storage.GetJSON(s.kv, storage.OrdersKey(account.ID), &orders); err != nil {
		s.log.Warn("read order history", zap.Error(err))
		orders = nil
	}
	orders = append([]models.Order{order}, orders...)
	if err := storage.SetJSON(s.kv, storage.OrdersKey(account.ID), orders); err != nil {
		s.log.Error("save order history", zap.Error(err))
	}
}

// ListOrders returns the active account's history, newest first, or nil
// when nobody is logged in.
func (s *Store) ListOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.current()
	if !ok {
		return nil
	}
	var orders []models.Order
	if _, err := storage.GetJSON(s.kv, storage.OrdersKey(account.ID), &orders); err != nil {
		s.log.Warn("read order history", zap.Error(err))
		return nil
	}
	return orders
}

func validateDomain(email string, t models.AccountType) error {
	lower := strings.ToLower(email)
	switch t {
	case models.TypeStudent:
		if !strings.HasSuffix(lower, studentDomain) {
			return fmt.Errorf("%w: students must use a %s email", ErrDomainMismatch, studentDomain)
		}
	case models.TypeStaff:
		if !strings.HasSuffix(lower, staffDomain) {
			return fmt.Errorf("%w: staff must use a %s email", ErrDomainMismatch, staffDomain)
		}
	}
	return nil
}

func (s *Store) loadAccounts() ([]models.Account, error) {
	var accounts []models.Account
	if _, err := storage.GetJSON(s.kv, storage.AccountsKey(), &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *Store) saveAccounts(accounts []models.Account) error {
	return storage.SetJSON(s.kv, storage.AccountsKey(), accounts)
}

// mutateAccount rewrites the full directory with fn applied to the
// matching entry. Callers hold s.mu.
func (s *Store) mutateAccount(id string, fn func(*models.Account)) error {
	accounts, err := s.loadAccounts()
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].ID == id {
			fn(&accounts[i])
			return s.saveAccounts(accounts)
		}
	}
	return fmt.Errorf("account %s not found", id)
}
