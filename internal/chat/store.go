package chat

import (
	"sync"

	apierrors "github.com/diogo/openchat/internal/errors"
)

// MaxConversations is the size of the recent-conversations shelf. Inserting
// beyond it evicts the oldest conversation unconditionally.
const MaxConversations = 5

// Store holds at most MaxConversations conversations, most-recent-first,
// plus a weak reference to the current one. All mutations are serialized;
// the bounded-size and history-window invariants hold after every call.
type Store struct {
	mu            sync.RWMutex
	conversations []*Conversation
	currentID     string

	// historyLength reads the current window size from settings
	historyLength func() int
	// onChange is invoked after every mutation (used to persist)
	onChange func()
}

// NewStore creates a conversation store. historyLength must not be nil; it
// is read on every append so settings changes take effect immediately.
// onChange may be nil.
func NewStore(initial []*Conversation, currentID string, historyLength func() int, onChange func()) *Store {
	s := &Store{
		historyLength: historyLength,
		onChange:      onChange,
	}

	// Re-apply the invariants to loaded state: the blob may predate a
	// smaller cap or carry a dangling current reference.
	for i, c := range initial {
		if i >= MaxConversations || c == nil {
			break
		}
		s.conversations = append(s.conversations, c.Clone())
	}
	s.currentID = currentID
	s.reconcileCurrentLocked()

	return s
}

// Add inserts a conversation at the front of the shelf, evicts beyond the
// cap, and makes it current.
func (s *Store) Add(conv *Conversation) {
	s.mu.Lock()
	s.insertLocked(conv.Clone())
	s.mu.Unlock()

	s.notify()
}

// StartNew creates a fresh empty conversation, inserts it with the same
// front-insert/evict rule as Add, and makes it current.
func (s *Store) StartNew() *Conversation {
	conv := NewConversation()

	s.mu.Lock()
	s.insertLocked(conv)
	s.mu.Unlock()

	s.notify()
	return conv.Clone()
}

// SetCurrent sets the current conversation reference unconditionally. It
// does not check that the id exists; Current validates on read.
func (s *Store) SetCurrent(id string) {
	s.mu.Lock()
	s.currentID = id
	// A selected conversation moves to the front of the shelf.
	for i, c := range s.conversations {
		if c.ID == id && i > 0 {
			s.conversations = append(s.conversations[:i], s.conversations[i+1:]...)
			s.conversations = append([]*Conversation{c}, s.conversations...)
			break
		}
	}
	s.mu.Unlock()

	s.notify()
}

// Current returns a copy of the current conversation, or nil when the
// reference is unset or dangling.
func (s *Store) Current() *Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c := s.findLocked(s.currentID); c != nil {
		return c.Clone()
	}
	return nil
}

// CurrentID returns the raw current reference (may be empty or dangling)
func (s *Store) CurrentID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentID
}

// Get returns a copy of the conversation with the given id
func (s *Store) Get(id string) (*Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c := s.findLocked(id); c != nil {
		return c.Clone(), true
	}
	return nil, false
}

// List returns copies of all conversations, most-recent-first
func (s *Store) List() []*Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Conversation, len(s.conversations))
	for i, c := range s.conversations {
		out[i] = c.Clone()
	}
	return out
}

// Len returns the number of conversations on the shelf
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations)
}

// AddMessage appends a message to the conversation with the given id, then
// drops the oldest messages until the history window is satisfied. A missing
// id returns ErrUnknownConversation and leaves the store unchanged.
func (s *Store) AddMessage(id string, msg Message) error {
	s.mu.Lock()

	conv := s.findLocked(id)
	if conv == nil {
		s.mu.Unlock()
		return apierrors.ErrUnknownConversation
	}

	conv.Messages = append(conv.Messages, msg)

	// FIFO truncation: evict the oldest, keep the newest.
	if limit := s.historyLength(); len(conv.Messages) > limit {
		conv.Messages = conv.Messages[len(conv.Messages)-limit:]
	}

	if msg.Role == RoleUser && conv.Title == DefaultTitle {
		conv.Title = DeriveTitle(msg.Content)
	}

	s.mu.Unlock()

	s.notify()
	return nil
}

// insertLocked applies the front-insert/evict/set-current rule
func (s *Store) insertLocked(conv *Conversation) {
	s.conversations = append([]*Conversation{conv}, s.conversations...)
	if len(s.conversations) > MaxConversations {
		s.conversations = s.conversations[:MaxConversations]
	}
	s.currentID = conv.ID
	s.reconcileCurrentLocked()
}

// reconcileCurrentLocked repairs a dangling current reference: after an
// eviction the current conversation falls back to the front entry, or to
// none when the shelf is empty.
func (s *Store) reconcileCurrentLocked() {
	if s.currentID == "" {
		return
	}
	if s.findLocked(s.currentID) != nil {
		return
	}
	if len(s.conversations) > 0 {
		s.currentID = s.conversations[0].ID
	} else {
		s.currentID = ""
	}
}

func (s *Store) findLocked(id string) *Conversation {
	if id == "" {
		return nil
	}
	for _, c := range s.conversations {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
