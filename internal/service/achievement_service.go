package service

import (
	"balanceed_backend/internal/model"
	"balanceed_backend/internal/repository"
)

type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
	UserRepo        *repository.UserRepository
}

func NewAchievementService(achievementRepo *repository.AchievementRepository, userRepo *repository.UserRepository) *AchievementService {
	return &AchievementService{AchievementRepo: achievementRepo, UserRepo: userRepo}
}

// UserAchievement is an achievement annotated with whether the user has
// earned it.
type UserAchievement struct {
	model.Achievement
	Earned bool `json:"earned"`
}

// ListAll returns the full achievement catalog.
func (s *AchievementService) ListAll() ([]model.Achievement, error) {
	return s.AchievementRepo.FindAll(s.AchievementRepo.DB)
}

// ListForUser returns the catalog with the user's earned flags filled in.
func (s *AchievementService) ListForUser(userID string) ([]UserAchievement, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	all, err := s.AchievementRepo.FindAll(s.AchievementRepo.DB)
	if err != nil {
		return nil, err
	}

	earned := make(map[string]bool, len(user.Achievements))
	for _, name := range user.Achievements {
		earned[name] = true
	}

	result := make([]UserAchievement, 0, len(all))
	for _, a := range all {
		result = append(result, UserAchievement{
			Achievement: a,
			Earned:      earned[a.Name],
		})
	}
	return result, nil
}
