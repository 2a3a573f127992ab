package mockdice

import (
	"fmt"
	"sync"
)

// SequenceSource implements dice.Source for testing with predetermined faces.
// Faces are 1-based, the way they appear on a die.
type SequenceSource struct {
	mu        sync.Mutex
	faces     []uint64
	faceIndex int
	err       error
}

// NewSequenceSource creates a source that will show the given faces in order
func NewSequenceSource(faces ...uint64) *SequenceSource {
	return &SequenceSource{
		faces: faces,
	}
}

// SetNextFace queues one more face
func (s *SequenceSource) SetNextFace(face uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faces = append(s.faces, face)
}

// SetFaces replaces the queued faces and clears any recorded error
func (s *SequenceSource) SetFaces(faces []uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faces = faces
	s.faceIndex = 0
	s.err = nil
}

// Used returns how many faces have been consumed
func (s *SequenceSource) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.faceIndex
}

// Err returns the first misuse seen: running out of faces or a face too big for the die.
// Uint64n has no error return, so misuse shows up here and the roll falls back to face 1.
func (s *SequenceSource) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Uint64n implements dice.Source.Uint64n
func (s *SequenceSource) Uint64n(n uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.faceIndex >= len(s.faces) {
		s.fail(fmt.Errorf("no more predetermined faces available (used %d of %d)", s.faceIndex, len(s.faces)))
		return 0
	}

	face := s.faces[s.faceIndex]
	s.faceIndex++
	if face < 1 || face > n {
		s.fail(fmt.Errorf("invalid face %d for d%d", face, n))
		return 0
	}

	return face - 1
}

func (s *SequenceSource) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}
