package models

import (
	"time"

	"github.com/google/uuid"
)

// Like marks that a user liked a post. The (user, post) pair is unique;
// the database constraint is the source of truth under concurrent requests.
type Like struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}

func (Like) TableName() string {
	return "likes"
}
