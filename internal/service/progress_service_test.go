package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"balanceed_backend/internal/model"
	"balanceed_backend/internal/util"
)

func TestEnroll(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)
	course := env.createCourse(t, 100)

	progress, err := env.progress.Enroll(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, course.ID, progress.CourseID)
	assert.Empty(t, progress.CompletedLessons)

	reloaded, err := env.courses.FindByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.EnrollmentCount)
}

func TestEnrollTwiceIsRejected(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)
	course := env.createCourse(t, 100)

	_, err := env.progress.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	_, err = env.progress.Enroll(user.ID, course.ID)
	assert.ErrorIs(t, err, util.ErrAlreadyEnrolled)

	reloaded, err := env.courses.FindByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.EnrollmentCount, "failed enrollment must not bump the counter")
}

func TestEnrollUnpublishedCourse(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)

	course := &model.Course{Title: "Draft", IsPublished: false}
	require.NoError(t, env.courses.Create(course))

	_, err := env.progress.Enroll(user.ID, course.ID)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestUpdateProgressUnknownLesson(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)

	_, err := env.progress.UpdateProgress(user.ID, ProgressUpdate{LessonID: "missing"})
	assert.ErrorIs(t, err, util.ErrLessonNotFound)
}

func TestUpdateProgressNotEnrolled(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)
	course := env.createCourse(t, 100)
	lesson := env.createLesson(t, course.ID, 0, 10)

	_, err := env.progress.UpdateProgress(user.ID, ProgressUpdate{
		LessonID: lesson.ID, ProgressPercentage: 100,
	})
	assert.ErrorIs(t, err, util.ErrNotEnrolled)
}

func TestUpdateProgressLessonCompletion(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)
	course := env.createCourse(t, 100)
	l1 := env.createLesson(t, course.ID, 0, 10)
	env.createLesson(t, course.ID, 1, 10)

	_, err := env.progress.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	result, err := env.progress.UpdateProgress(user.ID, ProgressUpdate{
		LessonID:           l1.ID,
		ProgressPercentage: 100,
		TimeSpent:          120,
	})
	require.NoError(t, err)

	assert.True(t, result.LessonCompleted)
	assert.False(t, result.CourseCompleted)
	assert.Equal(t, 10, result.XPEarned)
	assert.Equal(t, float64(50), result.Progress.ProgressPercentage)
	assert.Equal(t, 120, result.Progress.TimeSpent)
	assert.Equal(t, 1, result.CurrentStreak)

	reloaded := env.reloadUser(t, user.ID)
	assert.Equal(t, 10, reloaded.TotalXP)
	assert.Equal(t, 1, reloaded.CurrentStreak)
	assert.Equal(t, 1, reloaded.LongestStreak)
}

func TestUpdateProgressPartialViewGrantsNothing(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)
	course := env.createCourse(t, 100)
	l1 := env.createLesson(t, course.ID, 0, 10)
	env.createLesson(t, course.ID, 1, 10)

	_, err := env.progress.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	result, err := env.progress.UpdateProgress(user.ID, ProgressUpdate{
		LessonID:           l1.ID,
		ProgressPercentage: 40,
		TimeSpent:          30,
	})
	require.NoError(t, err)

	// Any update records the lesson and time, but only a 100% report is a
	// qualifying activity.
	assert.False(t, result.LessonCompleted)
	assert.Equal(t, 0, result.XPEarned)
	assert.Equal(t, []string{l1.ID}, result.Progress.CompletedLessons)
	assert.Equal(t, float64(50), result.Progress.ProgressPercentage)
	assert.Equal(t, 30, result.Progress.TimeSpent)
	assert.Nil(t, result.Progress.CompletedAt)

	reloaded := env.reloadUser(t, user.ID)
	assert.Equal(t, 0, reloaded.TotalXP)
	assert.Equal(t, 0, reloaded.CurrentStreak)
}

func TestUpdateProgressRepeatCompletion(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)
	course := env.createCourse(t, 100)
	l1 := env.createLesson(t, course.ID, 0, 10)
	env.createLesson(t, course.ID, 1, 10)

	_, err := env.progress.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	_, err = env.progress.UpdateProgress(user.ID, ProgressUpdate{
		LessonID: l1.ID, ProgressPercentage: 100, TimeSpent: 60,
	})
	require.NoError(t, err)

	result, err := env.progress.UpdateProgress(user.ID, ProgressUpdate{
		LessonID: l1.ID, ProgressPercentage: 100, TimeSpent: 45,
	})
	require.NoError(t, err)

	// Set membership is idempotent; the time accumulator and the XP grant
	// are not deduplicated across resubmissions.
	require.Len(t, result.Progress.CompletedLessons, 1)
	assert.Equal(t, float64(50), result.Progress.ProgressPercentage)
	assert.Equal(t, 105, result.Progress.TimeSpent)
	assert.Equal(t, 10, result.XPEarned)
	assert.Equal(t, 20, env.reloadUser(t, user.ID).TotalXP)
}

func TestUpdateProgressCourseCompletion(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)
	course := env.createCourse(t, 100)
	l1 := env.createLesson(t, course.ID, 0, 10)
	l2 := env.createLesson(t, course.ID, 1, 10)

	_, err := env.progress.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	_, err = env.progress.UpdateProgress(user.ID, ProgressUpdate{
		LessonID: l1.ID, ProgressPercentage: 100,
	})
	require.NoError(t, err)

	result, err := env.progress.UpdateProgress(user.ID, ProgressUpdate{
		LessonID: l2.ID, ProgressPercentage: 100,
	})
	require.NoError(t, err)

	assert.True(t, result.CourseCompleted)
	assert.Equal(t, 110, result.XPEarned, "last lesson grants lesson and course XP together")
	assert.Equal(t, float64(100), result.Progress.ProgressPercentage)
	require.NotNil(t, result.Progress.CompletedAt)

	reloaded := env.reloadUser(t, user.ID)
	assert.Equal(t, 120, reloaded.TotalXP)
	assert.Contains(t, reloaded.CompletedCourses, course.ID)
	assert.Equal(t, 2, LevelForXP(reloaded.TotalXP))
}

func TestUpdateProgressSecondCourseCompletion(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)

	// Completing a second course appends to the stored completed-courses
	// list; the row must survive a reload with both entries intact.
	var courseIDs []string
	for i := 0; i < 2; i++ {
		course := env.createCourse(t, 100)
		lesson := env.createLesson(t, course.ID, 0, 10)
		courseIDs = append(courseIDs, course.ID)

		_, err := env.progress.Enroll(user.ID, course.ID)
		require.NoError(t, err)

		_, err = env.progress.UpdateProgress(user.ID, ProgressUpdate{
			LessonID: lesson.ID, ProgressPercentage: 100,
		})
		require.NoError(t, err)
	}

	reloaded := env.reloadUser(t, user.ID)
	assert.ElementsMatch(t, courseIDs, reloaded.CompletedCourses)
	assert.Equal(t, 220, reloaded.TotalXP)
}

func TestUpdateProgressStreakAcrossDays(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)
	course := env.createCourse(t, 100)
	env.createLesson(t, course.ID, 0, 10)
	l2 := env.createLesson(t, course.ID, 1, 10)

	_, err := env.progress.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	// Simulate activity that happened yesterday.
	yesterday := time.Now().AddDate(0, 0, -1)
	yesterday = time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, yesterday.Location())
	require.NoError(t, env.db.Model(&model.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"current_streak":     3,
		"longest_streak":     5,
		"last_activity_date": yesterday,
	}).Error)

	result, err := env.progress.UpdateProgress(user.ID, ProgressUpdate{
		LessonID: l2.ID, ProgressPercentage: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, result.CurrentStreak)
	reloaded := env.reloadUser(t, user.ID)
	assert.Equal(t, 4, reloaded.CurrentStreak)
	assert.Equal(t, 5, reloaded.LongestStreak)
}

func TestUpdateProgressStreakAchievement(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)
	course := env.createCourse(t, 100)
	env.createLesson(t, course.ID, 0, 10)
	l2 := env.createLesson(t, course.ID, 1, 10)

	require.NoError(t, env.achievements.Create(&model.Achievement{
		Name:      "Getting Warm",
		Condition: "maintain_3_day_streak",
		XPReward:  30,
	}))

	_, err := env.progress.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	yesterday := time.Now().AddDate(0, 0, -1)
	yesterday = time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, yesterday.Location())
	require.NoError(t, env.db.Model(&model.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"current_streak":     2,
		"longest_streak":     2,
		"last_activity_date": yesterday,
	}).Error)

	result, err := env.progress.UpdateProgress(user.ID, ProgressUpdate{
		LessonID: l2.ID, ProgressPercentage: 100,
	})
	require.NoError(t, err)

	require.Len(t, result.Achievements, 1)
	assert.Equal(t, "Getting Warm", result.Achievements[0].Name)

	reloaded := env.reloadUser(t, user.ID)
	assert.Equal(t, 3, reloaded.CurrentStreak)
	assert.Equal(t, 40, reloaded.TotalXP, "lesson XP plus achievement reward")
	assert.Contains(t, reloaded.Achievements, "Getting Warm")
}

func TestGetCourseProgressRequiresEnrollment(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t)
	course := env.createCourse(t, 100)

	_, err := env.progress.GetCourseProgress(user.ID, course.ID)
	assert.ErrorIs(t, err, util.ErrNotEnrolled)

	_, err = env.progress.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	progress, err := env.progress.GetCourseProgress(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, course.ID, progress.CourseID)
}
