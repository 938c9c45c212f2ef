package users

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Credential is a signup record held in process memory. Passwords are kept
// as entered; the persisted User row never stores them.
type Credential struct {
	Email    string
	Password string
	Name     string
}

// Store is the process-wide credential map behind signup and signin. The
// database can come and go underneath it; the map is what makes the demo
// usable either way.
type Store struct {
	mu      sync.RWMutex
	byEmail map[string]Credential
}

func NewStore() *Store {
	return &Store{byEmail: make(map[string]Credential)}
}

func (s *Store) Get(email string) (Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cred, ok := s.byEmail[email]
	return cred, ok
}

func (s *Store) Has(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byEmail[email]
	return ok
}

// PutIfAbsent records a credential unless the email is already taken.
// The presence check and the write happen under one lock, so of two
// concurrent signups with the same email exactly one wins.
func (s *Store) PutIfAbsent(cred Credential) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[cred.Email]; ok {
		return false
	}
	s.byEmail[cred.Email] = cred
	return true
}

func (s *Store) Remove(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byEmail, email)
}

// Signups is the process-wide store shared by the signup and signin handlers.
var Signups = NewStore()

// DemoAccounts are always available, even with an empty database.
var DemoAccounts = []Credential{
	{Email: "demo@example.com", Password: "demo123", Name: "Demo User"},
	{Email: "test@example.com", Password: "test123", Name: "Test User"},
}

func FindDemoAccount(email, password string) (Credential, bool) {
	for _, acc := range DemoAccounts {
		if acc.Email == email && acc.Password == password {
			return acc, true
		}
	}
	return Credential{}, false
}

func IsDemoEmail(email string) bool {
	for _, acc := range DemoAccounts {
		if acc.Email == email {
			return true
		}
	}
	return false
}

// SyntheticID builds a session-only user id for logins that could not be
// persisted. Such ids never match a database row.
func SyntheticID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
}

// IsSyntheticID reports whether the id was minted by SyntheticID rather
// than stored in the users table.
func IsSyntheticID(id string) bool {
	return strings.HasPrefix(id, "user-") || strings.HasPrefix(id, "demo-")
}
