package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityVerb is the action an activity entry documents. Only creating
// actions are logged; negations (unfollow, unblock, unlike) never are.
type ActivityVerb string

const (
	VerbPost       ActivityVerb = "post"
	VerbFollow     ActivityVerb = "follow"
	VerbLike       ActivityVerb = "like"
	VerbBlock      ActivityVerb = "block"
	VerbDeleteUser ActivityVerb = "delete_user"
	VerbDeletePost ActivityVerb = "delete_post"
)

// Activity is one immutable entry in the audit log. Actor and target
// references are weak: they null out when the referent is deleted instead
// of cascading, so the log survives account and post removal.
type Activity struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ActorID      *uuid.UUID     `gorm:"type:uuid;index" json:"actor_id"`
	Verb         ActivityVerb   `gorm:"size:20;not null;index" json:"verb"`
	TargetUserID *uuid.UUID     `gorm:"type:uuid" json:"target_user_id"`
	TargetPostID *uuid.UUID     `gorm:"type:uuid" json:"target_post_id"`
	Extra        datatypes.JSON `json:"extra,omitempty"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
}

func (Activity) TableName() string {
	return "activities"
}
