// README: History service; append-only access to per-user itinerary histories.
package history

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Service orchestrates history reads and appends on top of a Store.
type Service struct {
	store    Store
	validate *validator.Validate

	mu    sync.Mutex
	locks map[string]*userLock
}

// userLock is dropped from Service.locks once no caller holds or waits on it.
type userLock struct {
	sync.Mutex
	refs int
}

// NewService creates a Service backed by the given Store.
func NewService(store Store) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
		locks:    make(map[string]*userLock),
	}
}

// Append validates r and adds it to the end of user's history.
// It returns the history length after the append.
// Appends for the same user are serialized within the process only.
func (s *Service) Append(ctx context.Context, user string, r Record) (int, error) {
	if err := s.CheckUser(user); err != nil {
		return 0, err
	}
	if err := s.validate.Struct(r); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	unlock := s.lock(user)
	defer unlock()

	records, err := s.store.Load(ctx, user)
	if err != nil {
		return 0, err
	}
	records = append(records, r)
	if err := s.store.Save(ctx, user, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// List returns user's full history in insertion order.
func (s *Service) List(ctx context.Context, user string) ([]Record, error) {
	if err := s.CheckUser(user); err != nil {
		return nil, err
	}
	return s.store.Load(ctx, user)
}

// Recent returns at most n entries, newest first. n <= 0 means DefaultRecent.
func (s *Service) Recent(ctx context.Context, user string, n int) ([]Entry, error) {
	records, err := s.List(ctx, user)
	if err != nil {
		return nil, err
	}
	window := Latest(records, n)
	entries := make([]Entry, len(window))
	for i, r := range window {
		entries[i] = Entry{Index: len(records) - i, Record: r}
	}
	return entries, nil
}

// Get returns the record at 1-based insertion position index.
func (s *Service) Get(ctx context.Context, user string, index int) (Record, error) {
	records, err := s.List(ctx, user)
	if err != nil {
		return Record{}, err
	}
	if index < 1 || index > len(records) {
		return Record{}, ErrNotFound
	}
	return records[index-1], nil
}

// CheckUser reports whether user can be stored by the underlying backend.
// Callers use it to reject a name before doing expensive work for it.
func (s *Service) CheckUser(user string) error {
	if strings.TrimSpace(user) == "" {
		return ErrInvalidUser
	}
	if kc, ok := s.store.(KeyChecker); ok {
		return kc.CheckKey(user)
	}
	return nil
}

func (s *Service) lock(user string) func() {
	s.mu.Lock()
	l, ok := s.locks[user]
	if !ok {
		l = &userLock{}
		s.locks[user] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, user)
		}
		s.mu.Unlock()
	}
}
