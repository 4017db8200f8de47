package models

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge: follower subscribes to followed's posts.
// At most one edge per ordered pair; follower == followed is rejected
// at the service boundary.
type Follow struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FollowerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follows_pair" json:"follower_id"`
	FollowedID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follows_pair;index" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `gorm:"foreignKey:FollowerID" json:"-"`
	Followed User `gorm:"foreignKey:FollowedID" json:"-"`
}

func (Follow) TableName() string {
	return "follows"
}
