package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a user account in the Ripple application. Profile data
// lives in a separate row created in the same transaction as the user, so
// the two never exist independently.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Posts   []Post   `gorm:"foreignKey:UserID" json:"posts,omitempty"`

	// FollowersCount is not persisted; computed at query time
	FollowersCount int `gorm:"->" json:"followers_count"`
	// FollowingCount is not persisted; computed at query time
	FollowingCount int `gorm:"->" json:"following_count"`
}

// Profile holds the mutable, user-editable part of an account.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Bio       string    `gorm:"size:500" json:"bio"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
