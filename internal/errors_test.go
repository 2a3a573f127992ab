package internal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/onedsix/internal"
)

func TestParamErrors(t *testing.T) {
	err := internal.NewInvalidParamError("ONEDSIX_SEED", "abc", "must be an unsigned integer")
	assert.True(t, errors.Is(err, internal.ErrInvalidParam))
	assert.EqualError(t, err, `invalid parameter: ONEDSIX_SEED="abc" must be an unsigned integer`)

	err = internal.NewMissingParamError("face type")
	assert.True(t, errors.Is(err, internal.ErrMissingParam))
	assert.False(t, errors.Is(err, internal.ErrInvalidParam))
	assert.EqualError(t, err, "missing parameter: face type")
}
