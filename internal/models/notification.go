package models

import "time"

// Notification verbs. The verb strings are part of the API payload.
const (
	VerbLikedPost        = "liked your post"
	VerbCommentedPost    = "commented on your post"
	VerbStartedFollowing = "started following you"
)

// Notification target types. Together with TargetID they form a tagged
// reference that consumers resolve explicitly; there is no generic
// content-type lookup.
const (
	TargetTypePost    = "post"
	TargetTypeComment = "comment"
	TargetTypeUser    = "user"
)

// Notification is an append-only record of "actor did verb to target for
// recipient". Rows are created only as a side effect of an engagement
// action and never when actor == recipient. Apart from the read flag a
// notification is immutable.
type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RecipientID uint      `gorm:"not null;index" json:"recipient_id"`
	ActorID     uint      `gorm:"not null;index" json:"actor_id"`
	Verb        string    `gorm:"size:64;not null" json:"verb"`
	TargetType  string    `gorm:"size:20;not null" json:"target_type"`
	TargetID    uint      `gorm:"not null" json:"target_id"`
	Read        bool      `gorm:"default:false;index" json:"read"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`

	// Relationships
	Recipient User `gorm:"foreignKey:RecipientID" json:"-"`
	Actor     User `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
}
