package models

import (
	"time"

	"github.com/google/uuid"
)

// Block is a directed edge stored one way but symmetric in effect: a block
// in either direction between two users suppresses mutual visibility and
// relationship actions. Callers must always check both column orders.
type Block struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BlockerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_blocks_pair" json:"blocker_id"`
	BlockedID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_blocks_pair;index" json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`

	Blocker User `gorm:"foreignKey:BlockerID" json:"-"`
	Blocked User `gorm:"foreignKey:BlockedID" json:"-"`
}

func (Block) TableName() string {
	return "blocks"
}
