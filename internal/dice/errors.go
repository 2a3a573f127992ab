package dice

import (
	"github.com/KirkDiggler/onedsix/internal/errors"
)

// IsMissingSeparator reports whether err is a notation without the 'd' separator
func IsMissingSeparator(err error) bool {
	return errors.Is(err, errors.CodeMissingSeparator)
}

// IsInvalidCount reports whether err is a malformed dice count
func IsInvalidCount(err error) bool {
	return errors.Is(err, errors.CodeInvalidCount)
}

// IsInvalidFaceValue reports whether err is a malformed face value
func IsInvalidFaceValue(err error) bool {
	return errors.Is(err, errors.CodeInvalidFaceValue)
}

// IsZeroFaces reports whether err rejected a die with fewer than one face
func IsZeroFaces(err error) bool {
	return errors.Is(err, errors.CodeZeroFaces)
}

// IsOverflow reports whether err is a total that does not fit the face type
func IsOverflow(err error) bool {
	return errors.Is(err, errors.CodeOverflow)
}

func zeroFacesError[F Face](faces F) error {
	return errors.Newf(errors.CodeZeroFaces, "die must have at least one face, got %s", formatFace(faces)).
		WithMeta("faces", faces)
}
