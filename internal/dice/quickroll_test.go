package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/onedsix/internal/dice"
	mockdice "github.com/KirkDiggler/onedsix/internal/dice/mock"
)

func TestMustQuickRoll_Coin(t *testing.T) {
	for i := 0; i < rollIterations; i++ {
		flip := dice.MustQuickRoll[uint8]("1d2")
		if flip != 1 && flip != 2 {
			t.Fatalf("coin flip %d gave %d", i, flip)
		}
	}
}

func TestQuickRoll(t *testing.T) {
	src := mockdice.NewSequenceSource(6, 1, 4)

	total, err := dice.QuickRoll[uint32]("3d6", dice.WithSource(src))
	require.NoError(t, err)
	assert.Equal(t, uint32(11), total)
	assert.NoError(t, src.Err())
}

func TestQuickRoll_Range(t *testing.T) {
	for i := 0; i < rollIterations; i++ {
		total, err := dice.QuickRoll[int64]("3d6")
		require.NoError(t, err)
		require.True(t, total >= 3 && total <= 18, "3d6 gave %d", total)
	}
}

func TestQuickRoll_Errors(t *testing.T) {
	total, err := dice.QuickRoll[uint32]("3-6")
	assert.True(t, dice.IsMissingSeparator(err))
	assert.Zero(t, total)

	_, err = dice.QuickRoll[uint32]("xd6")
	assert.True(t, dice.IsInvalidCount(err))

	_, err = dice.QuickRoll[uint32]("3dy")
	assert.True(t, dice.IsInvalidFaceValue(err))
}

func TestMustQuickRoll_Panics(t *testing.T) {
	assert.PanicsWithValue(t, `dice: MustQuickRoll(3-6): missing separator "d"`, func() {
		dice.MustQuickRoll[uint32]("3-6")
	})
}
