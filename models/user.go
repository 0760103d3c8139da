package models

import "time"

// User is an account. Day planning is single-user per session; users exist
// so data is partitioned and the API can be exercised with test accounts.
type User struct {
	ID         string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username   string     `gorm:"type:varchar(100)" json:"username"`
	Email      string     `gorm:"type:varchar(100)" json:"email"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	IsTestUser bool       `gorm:"default:false" json:"isTestUser"`
}

func (u *User) GetDisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
