package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrCourseNotFound     = errors.New("course not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrNoQuestions        = errors.New("lesson has no questions")
	ErrAlreadyEnrolled    = errors.New("already enrolled in course")
	ErrNotEnrolled        = errors.New("not enrolled in course")
	ErrPermissionDenied   = errors.New("permission denied")
)
