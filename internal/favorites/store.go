// Package favorites persists the set of liked image URLs.
package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Key is the storage key holding the liked URLs.
const Key = "likedBreeds"

// ErrCorrupt reports a persisted value that is not a JSON array of strings.
var ErrCorrupt = errors.New("favorites: persisted value is not valid JSON")

// Store is the in-memory liked list, written through to Storage on every change.
type Store struct {
	mu        sync.RWMutex
	storage   Storage
	liked     []string
	listeners []func()
	logger    *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence events.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New loads the liked list from storage. A missing value yields an empty list;
// an unparseable value returns an error wrapping ErrCorrupt.
func New(storage Storage, opts ...Option) (*Store, error) {
	s := &Store{storage: storage, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	liked, err := load(storage)
	if err != nil {
		return nil, err
	}
	s.liked = liked
	return s, nil
}

// NewEmpty returns a store that starts empty regardless of what storage holds.
// The persisted value is only replaced on the next mutation.
func NewEmpty(storage Storage, opts ...Option) *Store {
	s := &Store{storage: storage, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func load(storage Storage) ([]string, error) {
	raw, ok, err := storage.Get(Key)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var liked []string
	if err := json.Unmarshal(raw, &liked); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return liked, nil
}

// Reload replaces the in-memory list with the persisted one.
func (s *Store) Reload() error {
	liked, err := load(s.storage)
	if err != nil {
		return err
	}
	s.mu.Lock()
	changed := !slices.Equal(s.liked, liked)
	s.liked = liked
	s.mu.Unlock()
	if changed {
		s.notify()
	}
	return nil
}

// List returns a copy of the liked URLs in insertion order.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.liked)
}

// Len returns the number of liked URLs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.liked)
}

// IsLiked reports whether src is in the list. Membership is exact equality.
func (s *Store) IsLiked(src string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.liked, src)
}

// Add appends src and persists the list. Adding a URL that is already liked
// is a no-op.
func (s *Store) Add(src string) error {
	s.mu.Lock()
	if slices.Contains(s.liked, src) {
		s.mu.Unlock()
		return nil
	}
	next := append(slices.Clone(s.liked), src)
	if err := s.persist(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.liked = next
	s.mu.Unlock()

	s.logger.Debug("liked image", zap.String("src", src))
	s.notify()
	return nil
}

// Remove drops every entry equal to src and persists the list.
func (s *Store) Remove(src string) error {
	s.mu.Lock()
	if !slices.Contains(s.liked, src) {
		s.mu.Unlock()
		return nil
	}
	next := slices.DeleteFunc(slices.Clone(s.liked), func(v string) bool { return v == src })
	if err := s.persist(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.liked = next
	s.mu.Unlock()

	s.logger.Debug("unliked image", zap.String("src", src))
	s.notify()
	return nil
}

// Toggle flips the liked state of src and returns the new state.
func (s *Store) Toggle(src string) (bool, error) {
	if s.IsLiked(src) {
		return false, s.Remove(src)
	}
	return true, s.Add(src)
}

// Subscribe registers fn to run after every change to the list.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// persist writes the full list. Callers hold s.mu.
func (s *Store) persist(liked []string) error {
	if liked == nil {
		liked = []string{}
	}
	raw, err := json.Marshal(liked)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := s.storage.Set(Key, raw); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

func (s *Store) notify() {
	s.mu.RLock()
	listeners := slices.Clone(s.listeners)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn()
	}
}
