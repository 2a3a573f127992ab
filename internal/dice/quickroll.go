package dice

// QuickRoll parses notation such as "1d6" and returns the total of the roll
func QuickRoll[F Face](notation string, opts ...Option) (F, error) {
	pool, err := Parse[F](notation, opts...)
	if err != nil {
		var zero F
		return zero, err
	}
	return pool.Total(), nil
}

// MustQuickRoll is like QuickRoll but panics if notation is malformed.
// Use it only for notation known to be valid, such as constants.
//
//	if dice.MustQuickRoll[uint8]("1d2") == 1 {
//		fmt.Println("Heads!")
//	}
func MustQuickRoll[F Face](notation string, opts ...Option) F {
	total, err := QuickRoll[F](notation, opts...)
	if err != nil {
		panic("dice: MustQuickRoll(" + notation + "): " + err.Error())
	}
	return total
}
