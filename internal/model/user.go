package model

import (
	"time"
)

type UserRole string

const (
	Student    UserRole = "student"
	Instructor UserRole = "instructor"
	Admin      UserRole = "admin"
)

// swagger:model User
type User struct {
	UUIDBase
	Email     string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Username  string   `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password  string   `gorm:"size:100;not null" json:"-"`
	FirstName string   `gorm:"size:100" json:"firstName"`
	LastName  string   `gorm:"size:100" json:"lastName"`
	Role      UserRole `gorm:"size:20;default:'student'" json:"role"`
	IsActive  bool     `gorm:"default:true" json:"isActive"`

	// Gamification state. The level is derived from TotalXP, never stored.
	TotalXP          int        `gorm:"default:0" json:"totalXp"`
	CurrentStreak    int        `gorm:"default:0" json:"currentStreak"`
	LongestStreak    int        `gorm:"default:0" json:"longestStreak"`
	LastActivityDate *time.Time `json:"lastActivityDate"`

	CompletedCourses []string   `gorm:"serializer:json" json:"completedCourses"`
	Achievements     []string   `gorm:"serializer:json" json:"achievements"`
	LastLogin        *time.Time `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
