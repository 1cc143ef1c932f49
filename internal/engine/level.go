package engine

// XPPerLevel is the linear progression step: 100 XP per level, level 1 at 0 XP.
const XPPerLevel = 100

// XPForLevel returns the total XP threshold required to be at the given level.
// Levels at or below 1 require 0 XP.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * XPPerLevel
}

// LevelForXP returns the level reached at the given XP total.
// Satisfies LevelForXP(XPForLevel(L)) == L for all L >= 1, and
// XPForLevel(L)-1 maps to L-1 for L >= 2.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}
