package dice

import (
	"strings"

	"github.com/KirkDiggler/onedsix/internal/errors"
)

// MaxCount is the most dice a single pool may be created with
const MaxCount = 1 << 16

// Pool is an ordered handful of dice sharing one face type. The dice may have
// different face counts, so 2d6 and 1d4 fit in the same pool.
//
// Every constructor rolls its dice, so a pool is always ready to read.
type Pool[F Face] struct {
	dice []Die[F]
}

// NewPool creates count dice with the given faces, each rolled once.
// A count of zero creates an empty pool; counts above MaxCount are rejected.
func NewPool[F Face](count int, faces F, opts ...Option) (*Pool[F], error) {
	if count < 0 {
		return nil, errors.Newf(errors.CodeInvalidCount, "dice count must not be negative, got %d", count).
			WithMeta("count", count)
	}
	if count > MaxCount {
		return nil, errors.Newf(errors.CodeInvalidCount, "dice count must not exceed %d, got %d", MaxCount, count).
			WithMeta("count", count)
	}
	if faces < 1 {
		return nil, zeroFacesError(faces)
	}

	o := newOptions(opts)
	dice := make([]Die[F], count)
	for i := range dice {
		dice[i] = newDie(faces, o.source)
	}

	p := &Pool[F]{dice: dice}
	if e := o.logger.Debug(); e.Enabled() {
		e.Int("count", count).
			Str("faces", formatFace(faces)).
			Str("rolled", p.Verbose()).
			Msg("Created dice pool")
	}

	return p, nil
}

// FromDice builds a pool from dice that already exist, keeping their current faces.
// Nil dice are skipped.
func FromDice[F Face](dice ...*Die[F]) *Pool[F] {
	p := &Pool[F]{dice: make([]Die[F], 0, len(dice))}
	for _, d := range dice {
		if d == nil {
			continue
		}
		p.dice = append(p.dice, *d)
	}
	return p
}

// Len returns the number of dice in the pool
func (p *Pool[F]) Len() int {
	return len(p.dice)
}

// RollAll rolls every die once, in pool order, and returns the pool for chaining
func (p *Pool[F]) RollAll() *Pool[F] {
	for i := range p.dice {
		p.dice[i].Roll()
	}
	return p
}

// CurrentFaces returns the face each die is showing, in pool order
func (p *Pool[F]) CurrentFaces() []F {
	faces := make([]F, len(p.dice))
	for i := range p.dice {
		faces[i] = p.dice[i].current
	}
	return faces
}

// MaxFaces returns the highest face of each die, in pool order
func (p *Pool[F]) MaxFaces() []F {
	faces := make([]F, len(p.dice))
	for i := range p.dice {
		faces[i] = p.dice[i].faces
	}
	return faces
}

// Total sums the current faces, saturating at the limit of F
func (p *Pool[F]) Total() F {
	return Sum(p.CurrentFaces())
}

// CheckedTotal sums the current faces and reports an overflow instead of saturating silently
func (p *Pool[F]) CheckedTotal() (F, error) {
	return CheckedSum(p.CurrentFaces())
}

// Concat returns a new pool holding p's dice followed by other's dice.
// Nothing is re-rolled. Both p and other are consumed and left empty.
func (p *Pool[F]) Concat(other *Pool[F]) *Pool[F] {
	var size int
	if p != nil {
		size += len(p.dice)
	}
	if other != nil {
		size += len(other.dice)
	}

	combined := &Pool[F]{dice: make([]Die[F], 0, size)}
	if p != nil {
		combined.dice = append(combined.dice, p.dice...)
	}
	if other != nil {
		combined.dice = append(combined.dice, other.dice...)
	}

	if p != nil {
		p.dice = nil
	}
	if other != nil {
		other.dice = nil
	}

	return combined
}

// String renders the pool's total
func (p *Pool[F]) String() string {
	return formatFace(p.Total())
}

// Verbose renders every current face separated by a space, in pool order.
// An empty pool renders as an empty string.
func (p *Pool[F]) Verbose() string {
	var sb strings.Builder
	for i := range p.dice {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatFace(p.dice[i].current))
	}
	return sb.String()
}
