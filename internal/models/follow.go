package models

import "time"

// Follow represents a directed follow edge: the follower subscribes to the
// followee's posts. Following is asymmetric and edges are deduplicated by
// the unique index. A user never follows itself; that is rejected before a
// row is written.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;index;uniqueIndex:idx_follower_followee" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;index;uniqueIndex:idx_follower_followee" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Follower User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Followee User `gorm:"foreignKey:FolloweeID" json:"followee,omitempty"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
