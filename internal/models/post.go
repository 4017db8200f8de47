package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is user-authored content. Posts are soft-deleted: Deleted flips to
// true and the row stays so activity records keep resolving; ordinary reads
// must never return a deleted post.
type Post struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Deleted   bool      `gorm:"not null;default:false;index" json:"deleted"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}
