// Package session owns the client's authentication state. It is the single
// writer of the persisted credential: the store is a write-through durability
// backend, and every other component observes the session through snapshots
// or subscriptions instead of reading storage on its own.
package session

import (
	"context"
	"sync"

	"github.com/luga-ai/luga-cli/internal/logging"
	"github.com/luga-ai/luga-cli/internal/store"
	"github.com/luga-ai/luga-cli/internal/token"
)

// State is the session's authentication state. There is no intermediate
// loading state: transitions complete synchronously with the storage write.
type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// Snapshot is an immutable view of the session at one point in time.
type Snapshot struct {
	State State
	Token string
	Email string
}

// CredentialStore is the slice of the persistence layer the session needs.
// *store.Store satisfies it.
type CredentialStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Manager holds the in-memory session and keeps the credential store in
// sync. Safe for concurrent use.
type Manager struct {
	store CredentialStore
	log   logging.Logger

	mu    sync.RWMutex
	token string
	email string
	subs  []chan Snapshot
}

func NewManager(cs CredentialStore, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	return &Manager{store: cs, log: log}
}

// Restore loads any persisted credential into memory. Called once at
// startup; a missing credential simply leaves the session anonymous.
func (m *Manager) Restore(ctx context.Context) error {
	tok, err := m.store.Get(ctx, store.KeyAccessToken)
	if err != nil {
		return err
	}
	email, err := m.store.Get(ctx, store.KeyUserEmail)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.token = tok
	m.email = m.deriveEmail(ctx, tok, email)
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
	return nil
}

// Login persists the new token (and email, when the server provided one)
// and transitions the session to Authenticated. The write happens before
// the in-memory flip so a crash can never leave memory ahead of storage.
func (m *Manager) Login(ctx context.Context, tok, email string) error {
	if err := m.store.Set(ctx, store.KeyAccessToken, tok); err != nil {
		return err
	}
	if email != "" {
		if err := m.store.Set(ctx, store.KeyUserEmail, email); err != nil {
			return err
		}
	}

	m.mu.Lock()
	m.token = tok
	m.email = m.deriveEmail(ctx, tok, email)
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
	return nil
}

// Logout removes the persisted credential and transitions to Anonymous.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Delete(ctx, store.KeyAccessToken); err != nil {
		return err
	}
	if err := m.store.Delete(ctx, store.KeyUserEmail); err != nil {
		return err
	}

	m.mu.Lock()
	m.token = ""
	m.email = ""
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
	return nil
}

// Current returns the session as of now.
func (m *Manager) Current() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

// Email returns the identity email, empty when anonymous.
func (m *Manager) Email() string {
	return m.Current().Email
}

// Token implements the api token source: a single synchronous read of the
// in-memory credential. Never blocks, never fails.
func (m *Manager) Token(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

// Subscribe returns a channel that receives a snapshot after every state
// transition. Delivery is best-effort: a consumer that is not draining its
// channel misses intermediate snapshots rather than blocking the writer.
func (m *Manager) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, 1)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

func (m *Manager) snapshotLocked() Snapshot {
	s := Snapshot{Token: m.token, Email: m.email, State: StateAnonymous}
	if m.token != "" {
		s.State = StateAuthenticated
	}
	return s
}

func (m *Manager) notify(snap Snapshot) {
	m.mu.RLock()
	subs := m.subs
	m.mu.RUnlock()

	for _, ch := range subs {
		select {
		case ch <- snap:
		default:
			// drop the stale snapshot so the newest one can go in
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

// deriveEmail prefers the email the server reported; otherwise it falls
// back to the token's sub claim. A token that does not decode leaves the
// identity empty — the UI treats that the same as not logged in.
func (m *Manager) deriveEmail(ctx context.Context, tok, email string) string {
	if email != "" {
		return email
	}
	if tok == "" {
		return ""
	}
	sub, err := token.Subject(tok)
	if err != nil {
		m.log.Warn(ctx, "stored token does not decode, treating identity as unknown", "error", err)
		return ""
	}
	return sub
}
