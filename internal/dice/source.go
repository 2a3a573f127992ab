package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

//go:generate mockgen -destination=mock/mock_source.go -package=mockdice -source=source.go

// Source provides the randomness dice roll against.
// This allows us to inject seeded or scripted implementations for testing
type Source interface {
	// Uint64n returns a uniformly distributed value in [0, n). n is never 0.
	Uint64n(n uint64) uint64
}

var (
	defaultOnce   sync.Once
	defaultSource Source
)

// DefaultSource returns the process wide source used when no WithSource option is given.
// It is seeded once from crypto/rand and is safe for concurrent use.
func DefaultSource() Source {
	defaultOnce.Do(func() {
		locked := &rand.LockedSource{}
		locked.Seed(newSeed())
		defaultSource = rand.New(locked)
	})
	return defaultSource
}

// NewSource returns a deterministic source. The same seed always produces the
// same sequence of rolls. It is not safe for concurrent use.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

func newSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}
