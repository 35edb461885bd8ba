package model

// Achievement conditions are simple encoded strings, e.g.
// "complete_5_courses", "maintain_7_day_streak", "earn_500_xp".
// swagger:model Achievement
type Achievement struct {
	UUIDBase
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"size:100" json:"icon"`
	Condition   string `gorm:"size:100;not null" json:"condition"`
	XPReward    int    `gorm:"default:0" json:"xpReward"`
	BadgeColor  string `gorm:"size:20" json:"badgeColor"`
}

func (Achievement) TableName() string {
	return "achievements"
}
