package service

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"balanceed_backend/internal/model"
	"balanceed_backend/internal/repository"
	"balanceed_backend/pkg/logger"
	"balanceed_backend/pkg/monitoring"
)

// GamificationService owns XP accounting, daily goals and achievement
// awards. All of its writes go through the caller's transaction so that XP
// never lands without the event that earned it.
type GamificationService struct {
	UserRepo        *repository.UserRepository
	AchievementRepo *repository.AchievementRepository
	DailyGoalRepo   *repository.DailyGoalRepository
}

func NewGamificationService(
	userRepo *repository.UserRepository,
	achievementRepo *repository.AchievementRepository,
	dailyGoalRepo *repository.DailyGoalRepository,
) *GamificationService {
	return &GamificationService{
		UserRepo:        userRepo,
		AchievementRepo: achievementRepo,
		DailyGoalRepo:   dailyGoalRepo,
	}
}

// GrantXP credits amount to the user, rolls it into the day's goal and
// awards any achievements the new state unlocks. Achievement rewards grant
// further XP which may in turn unlock more achievements, so the check loops
// until a pass awards nothing. The user struct is mutated in place; streak
// fields are untouched and remain the caller's to persist.
func (s *GamificationService) GrantXP(tx *gorm.DB, user *model.User, amount int, now time.Time) ([]model.Achievement, error) {
	if amount > 0 {
		if err := s.credit(tx, user, amount, now); err != nil {
			return nil, err
		}
	}

	awarded, err := s.checkAchievements(tx, user, now)
	if err != nil {
		return nil, err
	}

	if len(awarded) > 0 {
		// Struct-based update so the json serializer runs on the
		// achievements column; a map assignment would write the raw slice.
		if err := tx.Model(user).Select("achievements").Updates(user).Error; err != nil {
			return nil, err
		}
		for _, a := range awarded {
			logger.Log.Info("achievement awarded",
				zap.String("userId", user.ID),
				zap.String("achievement", a.Name),
			)
		}
	}

	return awarded, nil
}

func (s *GamificationService) credit(tx *gorm.DB, user *model.User, amount int, now time.Time) error {
	user.TotalXP += amount
	if err := s.UserRepo.AddXP(tx, user.ID, amount); err != nil {
		return err
	}
	monitoring.XPGranted.Add(float64(amount))
	return s.updateDailyGoal(tx, user.ID, amount, now)
}

func (s *GamificationService) updateDailyGoal(tx *gorm.DB, userID string, amount int, now time.Time) error {
	goal, err := s.DailyGoalRepo.FindByUserAndDate(tx, userID, now)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = &model.DailyGoal{
			UserID:   userID,
			Date:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
			TargetXP: DefaultDailyGoalXP,
		}
		if err := s.DailyGoalRepo.Create(tx, goal); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	goal.AchievedXP += amount
	if goal.AchievedXP >= goal.TargetXP {
		goal.Completed = true
	}
	return s.DailyGoalRepo.Save(tx, goal)
}

func (s *GamificationService) checkAchievements(tx *gorm.DB, user *model.User, now time.Time) ([]model.Achievement, error) {
	all, err := s.AchievementRepo.FindAll(tx)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]bool, len(user.Achievements))
	for _, name := range user.Achievements {
		owned[name] = true
	}

	var awarded []model.Achievement
	for progressed := true; progressed; {
		progressed = false
		for _, a := range all {
			if owned[a.Name] || !conditionMet(user, a.Condition) {
				continue
			}
			owned[a.Name] = true
			user.Achievements = append(user.Achievements, a.Name)
			awarded = append(awarded, a)
			progressed = true

			if a.XPReward > 0 {
				if err := s.credit(tx, user, a.XPReward, now); err != nil {
					return nil, err
				}
			}
		}
	}
	return awarded, nil
}

// conditionMet evaluates the encoded condition strings stored on
// achievements. Unknown formats never match.
func conditionMet(user *model.User, condition string) bool {
	var n int
	if _, err := fmt.Sscanf(condition, "complete_%d_courses", &n); err == nil {
		return len(user.CompletedCourses) >= n
	}
	if _, err := fmt.Sscanf(condition, "maintain_%d_day_streak", &n); err == nil {
		return user.LongestStreak >= n
	}
	if _, err := fmt.Sscanf(condition, "earn_%d_xp", &n); err == nil {
		return user.TotalXP >= n
	}
	return false
}
