package history

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDSource produces unique IDs for history items.
type IDSource interface {
	NewID() string
}

// NewIDSource probes random-UUID support once and falls back to
// timestamp+pseudo-random IDs when the platform cannot provide one.
func NewIDSource() IDSource {
	if _, err := uuid.NewRandom(); err != nil {
		return newClockIDSource()
	}
	return uuidSource{}
}

type uuidSource struct{}

func (uuidSource) NewID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		// Entropy was available at startup; a later failure still gets an ID.
		return newClockIDSource().NewID()
	}
	return id.String()
}

type clockIDSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newClockIDSource() *clockIDSource {
	return &clockIDSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (c *clockIDSource) NewID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fmt.Sprintf("%d-%06x", time.Now().UnixNano(), c.rng.Intn(1<<24))
}
