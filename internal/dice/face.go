package dice

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Face is the set of types a die can show. Every integer type qualifies,
// including named integer types such as enumerations.
type Face interface {
	constraints.Integer
}

// Roller lets a face type replace the uniform integer roll.
// Roll is called on the die's maximum face and should return a face in
// [1, faces]; results outside that range are clamped into it.
//
//	type Shape uint8
//
//	func (faces Shape) Roll(src dice.Source) Shape {
//		return Shape(src.Uint64n(uint64(faces))) + 1
//	}
type Roller[F Face] interface {
	Roll(src Source) F
}

func rollFace[F Face](src Source, faces F) F {
	if r, ok := any(faces).(Roller[F]); ok {
		return clampFace(r.Roll(src), faces)
	}
	return F(src.Uint64n(uint64(faces)) + 1)
}

func clampFace[F Face](face, faces F) F {
	switch {
	case face < 1:
		return 1
	case face > faces:
		return faces
	}
	return face
}

// parseFace reads a face literal at the width and signedness of F.
// Types whose pointer implements encoding.TextUnmarshaler parse themselves.
func parseFace[F Face](s string) (F, error) {
	var face F
	if u, ok := any(&face).(encoding.TextUnmarshaler); ok {
		err := u.UnmarshalText([]byte(s))
		return face, err
	}

	bits := faceBits[F]()
	if isSigned[F]() {
		v, err := strconv.ParseInt(s, 10, bits)
		return F(v), err
	}
	v, err := strconv.ParseUint(s, 10, bits)
	return F(v), err
}

func formatFace[F Face](face F) string {
	return fmt.Sprint(face)
}

func faceBits[F Face]() int {
	return reflect.TypeOf((*F)(nil)).Elem().Bits()
}

func isSigned[F Face]() bool {
	var zero F
	return ^zero < 0
}

func maxFace[F Face]() F {
	if isSigned[F]() {
		return F(^uint64(0) >> (65 - faceBits[F]()))
	}
	return F(^uint64(0) >> (64 - faceBits[F]()))
}

func minFace[F Face]() F {
	if isSigned[F]() {
		return -maxFace[F]() - 1
	}
	return 0
}
