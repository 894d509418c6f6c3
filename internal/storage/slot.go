package storage

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// BestScore is a single named integer slot holding the best score.
type BestScore interface {
	LoadBest() (int, error)
	SaveBest(score int) error
	ClearBest() error
}

var (
	_ BestScore = (*SQLiteSlot)(nil)
	_ BestScore = (*GdataSlot)(nil)
	_ BestScore = (*MemorySlot)(nil)

	_ propStore = (*gdata.Manager)(nil)
)

// gdataObject groups score properties in the gdata save directory.
const gdataObject = "scores"

// propStore is the part of *gdata.Manager the slot uses.
type propStore interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// GdataSlot keeps the best score as decimal text in a gdata property,
// the desktop counterpart of a browser local-storage key.
type GdataSlot struct {
	manager propStore
	name    string
}

// OpenGdataSlot opens the per-user data directory for appName.
func OpenGdataSlot(appName, slot string) (*GdataSlot, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata for %s: %w", appName, err)
	}
	return &GdataSlot{manager: m, name: slot}, nil
}

// LoadBest returns the stored best score. A missing or unparsable value
// counts as 0 and is not an error.
func (s *GdataSlot) LoadBest() (int, error) {
	if !s.manager.ObjectPropExists(gdataObject, s.name) {
		return 0, nil
	}
	data, err := s.manager.LoadObjectProp(gdataObject, s.name)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load %s: %w", s.name, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0, nil
	}
	return n, nil
}

// SaveBest stores score unless the slot already holds a higher one.
// Nothing is written when the current value cannot be read.
func (s *GdataSlot) SaveBest(score int) error {
	current, err := s.LoadBest()
	if err != nil {
		return err
	}
	if current >= score {
		return nil
	}
	return s.write(score)
}

// ClearBest resets the slot to 0.
func (s *GdataSlot) ClearBest() error {
	return s.write(0)
}

func (s *GdataSlot) write(score int) error {
	if err := s.manager.SaveObjectProp(gdataObject, s.name, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", s.name, err)
	}
	return nil
}

// MemorySlot is a process-local slot used when nothing can be persisted.
type MemorySlot struct {
	mu   sync.Mutex
	best int
}

// NewMemorySlot creates an empty in-memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// LoadBest returns the best score seen by this process.
func (s *MemorySlot) LoadBest() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best, nil
}

// SaveBest stores score unless a higher one is already held.
func (s *MemorySlot) SaveBest(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if score > s.best {
		s.best = score
	}
	return nil
}

// ClearBest resets the slot to 0.
func (s *MemorySlot) ClearBest() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.best = 0
	return nil
}
