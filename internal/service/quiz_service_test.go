package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"balanceed_backend/internal/model"
	"balanceed_backend/internal/util"
)

func TestSubmitQuizUnknownLesson(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)

	_, err := env.quiz.SubmitQuiz(user.ID, QuizSubmission{
		LessonID: "missing",
		Answers:  map[string]string{},
	})
	assert.ErrorIs(t, err, util.ErrLessonNotFound)
}

func TestSubmitQuizNoQuestions(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)
	course := env.createCourse(t, 100)
	lesson := env.createLesson(t, course.ID, 0, 10)

	_, err := env.quiz.SubmitQuiz(user.ID, QuizSubmission{
		LessonID: lesson.ID,
		Answers:  map[string]string{},
	})
	assert.ErrorIs(t, err, util.ErrNoQuestions)

	attempts, err := env.attempts.FindByUserAndLesson(user.ID, lesson.ID)
	require.NoError(t, err)
	assert.Empty(t, attempts, "no attempt is recorded for an empty quiz")
}

func TestSubmitQuizFailingScore(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)
	course := env.createCourse(t, 100)
	lesson := env.createLesson(t, course.ID, 0, 10)
	q1 := env.createQuestion(t, lesson.ID, "Paris", 10)
	q2 := env.createQuestion(t, lesson.ID, "true", 5)

	result, err := env.quiz.SubmitQuiz(user.ID, QuizSubmission{
		LessonID: lesson.ID,
		Answers: map[string]string{
			q1.ID: "  paris ", // case and whitespace do not matter
			q2.ID: "false",
		},
		TimeTaken: 42,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, result.ScoredPoints)
	assert.Equal(t, 15, result.TotalPoints)
	assert.Equal(t, 66.7, result.Score, "score is rounded to one decimal")
	assert.False(t, result.Passed)
	assert.Equal(t, 0, result.XPEarned)

	// A failing attempt is still recorded.
	attempts, err := env.attempts.FindByUserAndLesson(user.ID, lesson.ID)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, 66.7, attempts[0].Score)
	assert.Equal(t, 42, attempts[0].TimeTaken)
	assert.False(t, attempts[0].Passed)

	assert.Equal(t, 0, env.reloadUser(t, user.ID).TotalXP)
}

func TestSubmitQuizPassGrantsXP(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)
	course := env.createCourse(t, 100)
	lesson := env.createLesson(t, course.ID, 0, 10)
	q1 := env.createQuestion(t, lesson.ID, "Paris", 10)
	q2 := env.createQuestion(t, lesson.ID, "true", 5)

	result, err := env.quiz.SubmitQuiz(user.ID, QuizSubmission{
		LessonID: lesson.ID,
		Answers: map[string]string{
			q1.ID: "Paris",
			q2.ID: "TRUE",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, float64(100), result.Score)
	assert.True(t, result.Passed)
	assert.Equal(t, 15, result.XPEarned, "a passed quiz grants the scored points as XP")

	reloaded := env.reloadUser(t, user.ID)
	assert.Equal(t, 15, reloaded.TotalXP)
	assert.Equal(t, 0, reloaded.CurrentStreak, "quizzes do not advance the streak")
}

func TestSubmitQuizExactThresholdPasses(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)
	course := env.createCourse(t, 100)
	lesson := env.createLesson(t, course.ID, 0, 10)
	q1 := env.createQuestion(t, lesson.ID, "a", 7)
	q2 := env.createQuestion(t, lesson.ID, "b", 3)

	// 7 of 10 points is exactly 70%.
	result, err := env.quiz.SubmitQuiz(user.ID, QuizSubmission{
		LessonID: lesson.ID,
		Answers: map[string]string{
			q1.ID: "a",
			q2.ID: "wrong",
		},
	})
	require.NoError(t, err)

	assert.True(t, result.Passed)
	assert.Equal(t, float64(70), result.Score)
	assert.Equal(t, 7, result.XPEarned)
}

func TestSubmitQuizAttemptsAreImmutableHistory(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)
	course := env.createCourse(t, 100)
	lesson := env.createLesson(t, course.ID, 0, 10)
	q1 := env.createQuestion(t, lesson.ID, "a", 10)

	for _, answer := range []string{"wrong", "a"} {
		_, err := env.quiz.SubmitQuiz(user.ID, QuizSubmission{
			LessonID: lesson.ID,
			Answers:  map[string]string{q1.ID: answer},
		})
		require.NoError(t, err)
	}

	attempts, err := env.quiz.GetAttempts(user.ID, lesson.ID)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
}

func TestSubmitQuizPassCanUnlockXPAchievement(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)
	course := env.createCourse(t, 100)
	lesson := env.createLesson(t, course.ID, 0, 10)
	q1 := env.createQuestion(t, lesson.ID, "a", 50)

	require.NoError(t, env.achievements.Create(&model.Achievement{
		Name:      "XP Hunter",
		Condition: "earn_50_xp",
		XPReward:  25,
	}))

	result, err := env.quiz.SubmitQuiz(user.ID, QuizSubmission{
		LessonID: lesson.ID,
		Answers:  map[string]string{q1.ID: "a"},
	})
	require.NoError(t, err)
	require.Len(t, result.Achievements, 1)
	assert.Equal(t, "XP Hunter", result.Achievements[0].Name)

	reloaded := env.reloadUser(t, user.ID)
	assert.Equal(t, 75, reloaded.TotalXP, "scored points plus achievement reward")
	assert.Contains(t, reloaded.Achievements, "XP Hunter")
}

func TestSubmitQuizPassCanUnlockSeveralAchievements(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)
	course := env.createCourse(t, 100)
	lesson := env.createLesson(t, course.ID, 0, 10)
	q1 := env.createQuestion(t, lesson.ID, "a", 50)

	require.NoError(t, env.achievements.Create(&model.Achievement{
		Name:      "First Steps",
		Condition: "earn_25_xp",
	}))
	require.NoError(t, env.achievements.Create(&model.Achievement{
		Name:      "XP Hunter",
		Condition: "earn_50_xp",
		XPReward:  25,
	}))

	result, err := env.quiz.SubmitQuiz(user.ID, QuizSubmission{
		LessonID: lesson.ID,
		Answers:  map[string]string{q1.ID: "a"},
	})
	require.NoError(t, err)
	require.Len(t, result.Achievements, 2)

	// Both names land in the stored achievements list and the row still
	// reloads cleanly.
	reloaded := env.reloadUser(t, user.ID)
	assert.ElementsMatch(t, []string{"First Steps", "XP Hunter"}, reloaded.Achievements)
	assert.Equal(t, 75, reloaded.TotalXP)
}
