package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"balanceed_backend/internal/model"
	"balanceed_backend/internal/repository"
	"balanceed_backend/internal/util"
	"balanceed_backend/pkg/logger"
)

const (
	leaderboardCacheKey = "leaderboard:xp:top"
	leaderboardCacheTTL = time.Minute
	leaderboardSize     = 20
)

type UserService struct {
	UserRepo      *repository.UserRepository
	DailyGoalRepo *repository.DailyGoalRepository
	ProgressRepo  *repository.ProgressRepository
	Redis         *redis.Client
}

func NewUserService(
	userRepo *repository.UserRepository,
	dailyGoalRepo *repository.DailyGoalRepository,
	progressRepo *repository.ProgressRepository,
	rdb *redis.Client,
) *UserService {
	return &UserService{
		UserRepo:      userRepo,
		DailyGoalRepo: dailyGoalRepo,
		ProgressRepo:  progressRepo,
		Redis:         rdb,
	}
}

// UserStats is the gamification summary returned to the client. Level and
// XPForNextLevel are derived from TotalXP on every read.
type UserStats struct {
	TotalXP          int              `json:"totalXp"`
	Level            int              `json:"level"`
	XPForNextLevel   int              `json:"xpForNextLevel"`
	CurrentStreak    int              `json:"currentStreak"`
	LongestStreak    int              `json:"longestStreak"`
	CoursesCompleted int              `json:"coursesCompleted"`
	CoursesEnrolled  int              `json:"coursesEnrolled"`
	Achievements     []string         `json:"achievements"`
	DailyGoal        *model.DailyGoal `json:"dailyGoal,omitempty"`
}

// LeaderboardEntry is a public view of a user for ranking, without email or
// other private fields.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	TotalXP  int    `json:"totalXp"`
	Level    int    `json:"level"`
	Streak   int    `json:"streak"`
}

func (s *UserService) GetProfile(userID string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetStats(userID string) (*UserStats, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{
		TotalXP:          user.TotalXP,
		Level:            LevelForXP(user.TotalXP),
		XPForNextLevel:   XPForNextLevel(user.TotalXP),
		CurrentStreak:    user.CurrentStreak,
		LongestStreak:    user.LongestStreak,
		CoursesCompleted: len(user.CompletedCourses),
		CoursesEnrolled:  len(enrolled),
		Achievements:     user.Achievements,
	}

	goal, err := s.DailyGoalRepo.FindByUserAndDate(s.UserRepo.DB, userID, time.Now())
	if err == nil {
		stats.DailyGoal = goal
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return stats, nil
}

// GetLeaderboard ranks the top users by lifetime XP. Results are cached in
// Redis for a minute; cache failures fall through to the database.
func (s *UserService) GetLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Bytes()
		if err == nil {
			var entries []LeaderboardEntry
			if json.Unmarshal(cached, &entries) == nil {
				return entries, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			logger.Log.Warn("leaderboard cache read failed", zap.Error(err))
		}
	}

	users, err := s.UserRepo.FindTopByXP(leaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, LeaderboardEntry{
			Rank:     i + 1,
			Username: u.Username,
			TotalXP:  u.TotalXP,
			Level:    LevelForXP(u.TotalXP),
			Streak:   u.CurrentStreak,
		})
	}

	if s.Redis != nil {
		if data, err := json.Marshal(entries); err == nil {
			if err := s.Redis.Set(ctx, leaderboardCacheKey, data, leaderboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
			}
		}
	}

	return entries, nil
}
