package state

import (
	"context"
	"log/slog"
	"sync"

	"github.com/m3rciful/prayerbot/core/logger"
)

// Store maps Telegram user ids to records. Unknown users read as an empty record.
type Store struct {
	mu    sync.RWMutex
	users map[int64]*Record
}

// NewStore constructs an empty in-memory store.
func NewStore() *Store {
	return &Store{users: make(map[int64]*Record)}
}

// GetOrCreate returns the record for userID, creating an empty one on first use.
func (s *Store) GetOrCreate(userID int64) Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.ensure(userID)
}

// SetNickname replaces the user's nickname, creating the record if needed.
func (s *Store) SetNickname(userID int64, nick Nickname) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(userID).Nickname = nick
}

// Nickname returns the user's nickname without creating a record.
func (s *Store) Nickname(userID int64) Nickname {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.users[userID]; ok {
		return rec.Nickname
	}
	return NoNickname()
}

// Len reports how many users have a record.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func (s *Store) ensure(userID int64) *Record {
	rec, ok := s.users[userID]
	if !ok {
		rec = &Record{UserID: userID}
		s.users[userID] = rec
		logger.Debug(context.Background(), logger.CompState, "user.created",
			slog.Int64("user_id", userID),
			slog.Int("users", len(s.users)),
		)
	}
	return rec
}
