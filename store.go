package session

import (
	"sync"
)

// MemoryStore is an in-process CredentialStore. The portal shells that embed
// the SDK may run store reads from concurrent goroutines, so the token and
// profile pair is guarded by a mutex: no reader ever observes a token
// without its profile or the reverse.
type MemoryStore struct {
	mu      sync.Mutex
	token   string
	profile []byte
}

var _ CredentialStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Token returns the stored raw token, empty when absent.
func (s *MemoryStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Profile returns the cached serialized user profile, nil when absent.
func (s *MemoryStore) Profile() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	out := make([]byte, len(s.profile))
	copy(out, s.profile)
	return out
}

// Put writes the token and profile as one unit.
func (s *MemoryStore) Put(token string, profile []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if profile == nil {
		s.profile = nil
	} else {
		s.profile = make([]byte, len(profile))
		copy(s.profile, profile)
	}
	return nil
}

// Clear removes both slots. Clearing an empty store is a no-op.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.profile = nil
	return nil
}
