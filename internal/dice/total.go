package dice

import (
	"github.com/KirkDiggler/onedsix/internal/errors"
)

// Sum totals faces. A total past the range of F saturates at its max (or min).
func Sum[F Face](faces []F) F {
	total, _ := CheckedSum(faces)
	return total
}

// CheckedSum totals faces and reports an overflow error when the total does
// not fit F. On overflow the returned total is saturated like Sum.
//
// Only the final total is checked, so mixed signs whose running total leaves
// the range of F on the way, like []int8{100, 100, -100}, still sum exactly.
func CheckedSum[F Face](faces []F) (F, error) {
	var total F
	top, bottom := maxFace[F](), minFace[F]()

	// total wraps around; wraps counts net trips past top (positive) or bottom (negative)
	wraps := 0
	for _, face := range faces {
		switch {
		case face > 0 && total > top-face:
			wraps++
		case face < 0 && total < bottom-face:
			wraps--
		}
		total += face
	}

	switch {
	case wraps > 0:
		return top, overflowError(faces)
	case wraps < 0:
		return bottom, overflowError(faces)
	}
	return total, nil
}

func overflowError[F Face](faces []F) error {
	var zero F
	return errors.Newf(errors.CodeOverflow, "total of %d faces overflows %T", len(faces), zero).
		WithMeta("faces", len(faces))
}
