package uuid_test

import (
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/onedsix/internal/uuid"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()

	first := gen.New()
	parsed, err := googleuuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, googleuuid.Version(4), parsed.Version())
	assert.NotEqual(t, first, gen.New())
}

func TestSequentialGenerator(t *testing.T) {
	var gen uuid.Generator = uuid.NewSequentialGenerator("roll")

	assert.Equal(t, "roll-1", gen.New())
	assert.Equal(t, "roll-2", gen.New())
}
