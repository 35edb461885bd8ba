package database

import (
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"balanceed_backend/internal/config"
	"balanceed_backend/internal/model"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	logMode := gormlogger.Warn
	if cfg.Server.Mode == "debug" {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// Schema migration is skipped in release mode unless explicitly forced.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
		seedAchievements(db)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Lesson{},
		&model.Question{},
		&model.QuizAttempt{},
		&model.UserProgress{},
		&model.Achievement{},
		&model.DailyGoal{},
	)
}

// seedAchievements inserts the default achievement set on first run.
func seedAchievements(db *gorm.DB) {
	var count int64
	db.Model(&model.Achievement{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.Achievement{
		{Name: "First Steps", Description: "Complete your first course", Icon: "footsteps", Condition: "complete_1_courses", XPReward: 50, BadgeColor: "bronze"},
		{Name: "Course Collector", Description: "Complete 5 courses", Icon: "stack", Condition: "complete_5_courses", XPReward: 200, BadgeColor: "silver"},
		{Name: "Scholar", Description: "Complete 10 courses", Icon: "graduation-cap", Condition: "complete_10_courses", XPReward: 500, BadgeColor: "gold"},
		{Name: "Getting Warm", Description: "Maintain a 3 day streak", Icon: "flame", Condition: "maintain_3_day_streak", XPReward: 30, BadgeColor: "bronze"},
		{Name: "On Fire", Description: "Maintain a 7 day streak", Icon: "fire", Condition: "maintain_7_day_streak", XPReward: 100, BadgeColor: "silver"},
		{Name: "Unstoppable", Description: "Maintain a 30 day streak", Icon: "rocket", Condition: "maintain_30_day_streak", XPReward: 500, BadgeColor: "gold"},
		{Name: "XP Hunter", Description: "Earn 500 XP", Icon: "star", Condition: "earn_500_xp", XPReward: 50, BadgeColor: "bronze"},
		{Name: "XP Master", Description: "Earn 2000 XP", Icon: "trophy", Condition: "earn_2000_xp", XPReward: 200, BadgeColor: "gold"},
	}
	for _, a := range defaults {
		db.Create(&a)
	}
}
