package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		totalXP int
		level   int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{105, 2},
		{250, 3},
		{1000, 11},
		{-5, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, LevelForXP(tc.totalXP), "totalXP=%d", tc.totalXP)
	}
}

func TestXPForNextLevel(t *testing.T) {
	cases := []struct {
		totalXP int
		needed  int
	}{
		{0, 100},
		{95, 5},
		{100, 100},
		{105, 95},
		{250, 50},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.needed, XPForNextLevel(tc.totalXP), "totalXP=%d", tc.totalXP)
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAdvanceStreakFirstActivity(t *testing.T) {
	st := AdvanceStreak(StreakState{}, day(2026, 3, 10).Add(15*time.Hour))

	assert.Equal(t, 1, st.Current)
	assert.Equal(t, 1, st.Longest)
	assert.Equal(t, day(2026, 3, 10), *st.LastActivity)
}

func TestAdvanceStreakSameDayIsNoOp(t *testing.T) {
	last := day(2026, 3, 10)
	st := StreakState{Current: 4, Longest: 6, LastActivity: &last}

	got := AdvanceStreak(st, day(2026, 3, 10).Add(23*time.Hour))

	assert.Equal(t, 4, got.Current)
	assert.Equal(t, 6, got.Longest)
	assert.Equal(t, last, *got.LastActivity)
}

func TestAdvanceStreakConsecutiveDay(t *testing.T) {
	last := day(2026, 3, 10)
	st := StreakState{Current: 4, Longest: 6, LastActivity: &last}

	got := AdvanceStreak(st, day(2026, 3, 11).Add(time.Hour))

	assert.Equal(t, 5, got.Current)
	assert.Equal(t, 6, got.Longest)
	assert.Equal(t, day(2026, 3, 11), *got.LastActivity)
}

func TestAdvanceStreakExtendsLongest(t *testing.T) {
	last := day(2026, 3, 10)
	st := StreakState{Current: 6, Longest: 6, LastActivity: &last}

	got := AdvanceStreak(st, day(2026, 3, 11))

	assert.Equal(t, 7, got.Current)
	assert.Equal(t, 7, got.Longest)
}

func TestAdvanceStreakGapResets(t *testing.T) {
	last := day(2026, 3, 10)
	st := StreakState{Current: 9, Longest: 9, LastActivity: &last}

	got := AdvanceStreak(st, day(2026, 3, 14))

	assert.Equal(t, 1, got.Current)
	assert.Equal(t, 9, got.Longest, "longest streak survives a reset")
	assert.Equal(t, day(2026, 3, 14), *got.LastActivity)
}
