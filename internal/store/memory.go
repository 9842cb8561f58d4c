// internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// This is a lightweight registry for ephemeral game sessions served
// over the HTTP play mode; everything lives and dies with the process.
//
// Characteristics:
//   - Stores *Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - ErrNotFound is returned for missing session IDs on Get().

package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/olivegray/minesweeper/internal/game"
)

// ErrNotFound reports a session ID with no live game behind it.
var ErrNotFound = errors.New("store: session not found")

// Session wraps one board with the identity the HTTP layer hands out.
type Session struct {
	ID        string
	Board     *game.Board
	CreatedAt time.Time

	// Mu serializes moves on the board; the engine itself is
	// single-threaded by contract.
	Mu sync.Mutex
}

// NewSession wraps a board in a freshly identified session.
func NewSession(b *game.Board) *Session {
	return &Session{ID: randomID(), Board: b, CreatedAt: time.Now().UTC()}
}

// Store defines the registry interface for game sessions.
// Implementations may be backed by memory (this package) or anything
// else that can hold a live *game.Board.
type Store interface {
	// Save registers or updates a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID.
	// Returns ErrNotFound if the session does not exist.
	Get(ctx context.Context, id string) (*Session, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex        // guards sessions map
	sessions map[string]*Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

// Save adds or updates the session in the map.
func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
