package dice

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/onedsix/internal/errors"
)

// Separator splits the dice count from the faces in notation such as "3d6"
const Separator = "d"

// Parse creates a pool from "NdM" notation: N dice with M faces each.
// N must be a positive decimal integer no larger than MaxCount and M a
// literal of the face type.
// No whitespace, sign on N, or second separator is accepted.
//
// Parsing rolls the pool, exactly like NewPool(N, M), so the result can be
// totalled straight away.
//
//	pool, err := dice.Parse[uint32]("3d6")
func Parse[F Face](notation string, opts ...Option) (*Pool[F], error) {
	countText, facesText, found := strings.Cut(notation, Separator)
	if !found {
		return nil, errors.Newf(errors.CodeMissingSeparator, "missing separator %q", Separator).
			WithMeta("notation", notation)
	}

	count, err := strconv.ParseUint(countText, 10, 64)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidCount, "malformed count").
			WithMeta("notation", notation)
	}
	if count == 0 {
		return nil, errors.New(errors.CodeInvalidCount, "malformed count: dice count must be positive").
			WithMeta("notation", notation)
	}
	if count > MaxCount {
		return nil, errors.Newf(errors.CodeInvalidCount, "malformed count: dice count must not exceed %d", MaxCount).
			WithMeta("notation", notation)
	}

	faces, err := parseFace[F](facesText)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidFaceValue, "malformed face value").
			WithMeta("notation", notation)
	}

	pool, err := NewPool(int(count), faces, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid dice").WithMeta("notation", notation)
	}

	return pool, nil
}

// UnmarshalText replaces the pool with one parsed from notation, rolled
// against DefaultSource.
func (p *Pool[F]) UnmarshalText(text []byte) error {
	parsed, err := Parse[F](string(text))
	if err != nil {
		return err
	}

	p.dice = parsed.dice
	return nil
}
