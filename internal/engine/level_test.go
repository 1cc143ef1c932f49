package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXPForLevel(t *testing.T) {
	assert.Equal(t, 0, XPForLevel(0))
	assert.Equal(t, 0, XPForLevel(1))
	assert.Equal(t, 100, XPForLevel(2))
	assert.Equal(t, 900, XPForLevel(10))
}

func TestLevelForXP(t *testing.T) {
	assert.Equal(t, 1, LevelForXP(0))
	assert.Equal(t, 1, LevelForXP(99))
	assert.Equal(t, 2, LevelForXP(100))
	assert.Equal(t, 3, LevelForXP(250))
}

func TestLevelForXP_Roundtrip(t *testing.T) {
	for level := 1; level <= 200; level++ {
		assert.Equal(t, level, LevelForXP(XPForLevel(level)), "level %d", level)
	}
}

func TestLevelForXP_BoundaryExactness(t *testing.T) {
	// One XP below each threshold lands on the previous level.
	for level := 2; level <= 200; level++ {
		assert.Equal(t, level-1, LevelForXP(XPForLevel(level)-1), "level %d", level)
	}
}
