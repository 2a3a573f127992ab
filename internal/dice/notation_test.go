package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/onedsix/internal/dice"
	"github.com/KirkDiggler/onedsix/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		notation  string
		wantCount int
		wantFaces uint32
	}{
		{name: "3d6", notation: "3d6", wantCount: 3, wantFaces: 6},
		{name: "1d20", notation: "1d20", wantCount: 1, wantFaces: 20},
		{name: "coin", notation: "4d2", wantCount: 4, wantFaces: 2},
		{name: "leading zeros", notation: "03d006", wantCount: 3, wantFaces: 6},
		{name: "single face", notation: "2d1", wantCount: 2, wantFaces: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := dice.Parse[uint32](tt.notation)
			require.NoError(t, err)

			require.Equal(t, tt.wantCount, pool.Len())
			for _, faces := range pool.MaxFaces() {
				assert.Equal(t, tt.wantFaces, faces)
			}
			for _, face := range pool.CurrentFaces() {
				assert.True(t, face >= 1 && face <= tt.wantFaces, "face %d out of [1, %d]", face, tt.wantFaces)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		wantCode errors.Code
	}{
		{name: "dash instead of d", notation: "3-6", wantCode: errors.CodeMissingSeparator},
		{name: "empty", notation: "", wantCode: errors.CodeMissingSeparator},
		{name: "uppercase D", notation: "3D6", wantCode: errors.CodeMissingSeparator},
		{name: "bare number", notation: "6", wantCode: errors.CodeMissingSeparator},
		{name: "non numeric count", notation: "xd6", wantCode: errors.CodeInvalidCount},
		{name: "missing count", notation: "d6", wantCode: errors.CodeInvalidCount},
		{name: "zero count", notation: "0d6", wantCode: errors.CodeInvalidCount},
		{name: "negative count", notation: "-1d6", wantCode: errors.CodeInvalidCount},
		{name: "signed count", notation: "+3d6", wantCode: errors.CodeInvalidCount},
		{name: "leading space", notation: " 3d6", wantCode: errors.CodeInvalidCount},
		{name: "one over max count", notation: "65537d6", wantCode: errors.CodeInvalidCount},
		{name: "huge count", notation: "1000000000000000d6", wantCode: errors.CodeInvalidCount},
		{name: "max int count", notation: "9223372036854775807d6", wantCode: errors.CodeInvalidCount},
		{name: "count past uint64", notation: "18446744073709551616d6", wantCode: errors.CodeInvalidCount},
		{name: "non numeric faces", notation: "3dy", wantCode: errors.CodeInvalidFaceValue},
		{name: "missing faces", notation: "3d", wantCode: errors.CodeInvalidFaceValue},
		{name: "trailing space", notation: "3d6 ", wantCode: errors.CodeInvalidFaceValue},
		{name: "second separator", notation: "1d2d3", wantCode: errors.CodeInvalidFaceValue},
		{name: "faces too wide", notation: "1d4294967296", wantCode: errors.CodeInvalidFaceValue},
		{name: "zero faces", notation: "3d0", wantCode: errors.CodeZeroFaces},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := dice.Parse[uint32](tt.notation)
			require.Error(t, err)
			assert.Nil(t, pool)
			assert.Equal(t, tt.wantCode, errors.GetCode(err))
			assert.Equal(t, tt.notation, errors.GetMeta(err)["notation"])
		})
	}
}

func TestParse_MaxCount(t *testing.T) {
	pool, err := dice.Parse[uint8]("65536d1")
	require.NoError(t, err)
	assert.Equal(t, dice.MaxCount, pool.Len())

	_, err = dice.QuickRoll[uint32]("1000000000000000d6")
	assert.True(t, dice.IsInvalidCount(err))
	assert.ErrorContains(t, err, "must not exceed 65536")
}

func TestParse_ErrorPredicates(t *testing.T) {
	_, err := dice.Parse[uint8]("3-6")
	assert.True(t, dice.IsMissingSeparator(err))
	assert.EqualError(t, err, `missing separator "d"`)

	_, err = dice.Parse[uint8]("xd6")
	assert.True(t, dice.IsInvalidCount(err))
	assert.False(t, dice.IsInvalidFaceValue(err))
	assert.ErrorContains(t, err, "malformed count")

	_, err = dice.Parse[uint8]("3dy")
	assert.True(t, dice.IsInvalidFaceValue(err))
	assert.False(t, dice.IsInvalidCount(err))
	assert.ErrorContains(t, err, "malformed face value")
}

func TestParse_SignedFaces(t *testing.T) {
	pool, err := dice.Parse[int8]("2d100")
	require.NoError(t, err)
	assert.Equal(t, []int8{100, 100}, pool.MaxFaces())

	_, err = dice.Parse[int8]("2d-6")
	assert.True(t, dice.IsZeroFaces(err))

	_, err = dice.Parse[int8]("2d200")
	assert.True(t, dice.IsInvalidFaceValue(err))
}

func TestParse_UsesSource(t *testing.T) {
	pool, err := dice.Parse[uint16]("3d6", dice.WithSource(dice.NewSource(7)))
	require.NoError(t, err)

	same, err := dice.NewPool[uint16](3, 6, dice.WithSource(dice.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, same.CurrentFaces(), pool.CurrentFaces())
}

func TestPool_UnmarshalText(t *testing.T) {
	var pool dice.Pool[uint32]

	require.NoError(t, pool.UnmarshalText([]byte("5d10")))
	assert.Equal(t, 5, pool.Len())
	assert.Equal(t, []uint32{10, 10, 10, 10, 10}, pool.MaxFaces())

	err := pool.UnmarshalText([]byte("5x10"))
	assert.True(t, dice.IsMissingSeparator(err))
	assert.Equal(t, 5, pool.Len(), "failed unmarshal must leave the pool untouched")
}
