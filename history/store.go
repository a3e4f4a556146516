package history

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// MaxItems bounds the history list; the oldest entry is evicted past this.
const MaxItems = 15

// Item records one successful generation. Immutable once recorded.
type Item struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	Title      string    `json:"title"`
	LeadText   string    `json:"leadText"`
	OutputText string    `json:"outputText"`
	Model      string    `json:"model"`
	Tone       string    `json:"tone"`
}

// Store keeps the recent-generations list, newest first, persisted as a
// single JSON array. History is best-effort: a missing or corrupt file loads
// as empty, and save failures are logged and swallowed.
type Store struct {
	mu     sync.Mutex
	path   string
	items  []Item
	logger *log.Logger
}

func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{path: path, logger: logger}
	s.load()
	return s
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Printf("[history] discarding unreadable history file %s: %v", s.path, err)
		return
	}
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}
	s.items = items
}

// Record prepends item and persists the whole list.
func (s *Store) Record(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]Item{item}, s.items...)
	if len(s.items) > MaxItems {
		s.items = s.items[:MaxItems]
	}
	s.persist()
}

// Items returns a copy of the list, newest first.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Get looks up a recorded item by ID.
func (s *Store) Get(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// persist writes the list via a temp file + rename. Caller holds the lock.
func (s *Store) persist() {
	raw, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		s.logger.Printf("[history] encode failed: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.logger.Printf("[history] save failed: %v", err)
		return
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		s.logger.Printf("[history] save failed: %v", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.logger.Printf("[history] save failed: %v", err)
	}
}
