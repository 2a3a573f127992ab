package dice

// Die is a single die. A die from NewDie always shows a face in [1, Faces()].
// The zero Die has no faces, shows 0 and never changes when rolled.
type Die[F Face] struct {
	faces   F
	current F
	src     Source
}

// NewDie creates a die with the given number of faces and rolls it once,
// so a new die is never blank.
//
//	d6, err := dice.NewDie(6)
//	coin, err := dice.NewDie[uint8](2)
func NewDie[F Face](faces F, opts ...Option) (*Die[F], error) {
	if faces < 1 {
		return nil, zeroFacesError(faces)
	}

	o := newOptions(opts)
	d := newDie(faces, o.source)
	return &d, nil
}

func newDie[F Face](faces F, src Source) Die[F] {
	return Die[F]{
		faces:   faces,
		current: rollFace(src, faces),
		src:     src,
	}
}

// Roll rolls the die again and returns the new face
func (d *Die[F]) Roll() F {
	if d.faces < 1 {
		return d.current
	}
	if d.src == nil {
		d.src = DefaultSource()
	}
	d.current = rollFace(d.src, d.faces)
	return d.current
}

// Current returns the face the die is showing
func (d *Die[F]) Current() F {
	return d.current
}

// Faces returns the highest face of the die
func (d *Die[F]) Faces() F {
	return d.faces
}

// Add returns the sum of both dice's current faces, saturating at the limit of F.
// A nil other adds nothing.
func (d *Die[F]) Add(other *Die[F]) F {
	if other == nil {
		return d.current
	}
	return Sum([]F{d.current, other.current})
}

func (d *Die[F]) String() string {
	return formatFace(d.current)
}
