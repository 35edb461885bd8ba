package service

import "time"

// XPPerLevel is the flat amount of XP required to advance one level.
const XPPerLevel = 100

// DefaultDailyGoalXP is the XP target created for a user's first activity
// on a given day.
const DefaultDailyGoalXP = 50

// PassThreshold is the minimum raw percentage for a quiz to count as passed.
const PassThreshold = 70.0

// LevelForXP derives the level from lifetime XP. Levels start at 1.
func LevelForXP(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	return totalXP/XPPerLevel + 1
}

// XPForNextLevel returns how much XP remains until the next level boundary.
func XPForNextLevel(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	return LevelForXP(totalXP)*XPPerLevel - totalXP
}

// StreakState is the streak portion of a user's gamification state.
type StreakState struct {
	Current      int
	Longest      int
	LastActivity *time.Time
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AdvanceStreak applies one qualifying activity at time now and returns the
// updated state. Consecutive calendar days extend the streak, a repeat on
// the same day changes nothing, and any gap resets the current streak to 1
// while the longest streak is kept.
func AdvanceStreak(st StreakState, now time.Time) StreakState {
	today := dateOf(now)

	if st.LastActivity == nil {
		st.Current = 1
		if st.Longest < 1 {
			st.Longest = 1
		}
		st.LastActivity = &today
		return st
	}

	last := dateOf(*st.LastActivity)
	switch {
	case last.Equal(today):
		// Repeat activity on the same day is a no-op.
		return st
	case last.AddDate(0, 0, 1).Equal(today):
		st.Current++
		if st.Current > st.Longest {
			st.Longest = st.Current
		}
	default:
		st.Current = 1
		if st.Longest < 1 {
			st.Longest = 1
		}
	}

	st.LastActivity = &today
	return st
}
