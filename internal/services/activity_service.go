package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inkleapp/inkle-backend/internal/cache"
	"github.com/inkleapp/inkle-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// globalFeedTTL bounds how stale the cached audit stream may be. There is
// no write invalidation; the feed is an operator view and short staleness
// is acceptable.
const globalFeedTTL = 15 * time.Second

// ActivityService appends to and reads the immutable activity log.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Record appends one log entry on the caller's transaction. Running on tx
// is what pairs the entry with the mutation it documents: if either write
// fails the whole unit rolls back and neither is observable.
func (s *ActivityService) Record(tx *gorm.DB, actor *uuid.UUID, verb models.ActivityVerb, targetUser, targetPost *uuid.UUID, extra map[string]any) error {
	entry := models.Activity{
		ID:           uuid.New(),
		ActorID:      actor,
		Verb:         verb,
		TargetUserID: targetUser,
		TargetPostID: targetPost,
	}
	if len(extra) > 0 {
		b, err := json.Marshal(extra)
		if err != nil {
			return fmt.Errorf("failed to encode activity payload: %w", err)
		}
		entry.Extra = datatypes.JSON(b)
	}

	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// GlobalFeed returns the most recent entries, newest first. The stream is
// deliberately unfiltered by blocking or visibility rules: it is the audit
// view, unlike the per-user post feed.
func (s *ActivityService) GlobalFeed(ctx context.Context, limit int) ([]models.Activity, error) {
	var entries []models.Activity
	key := fmt.Sprintf("activities:global:%d", limit)
	err := cache.CacheAside(ctx, key, &entries, globalFeedTTL, func() error {
		return s.db.Order("created_at DESC").Limit(limit).Find(&entries).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load global activity: %w", err)
	}
	return entries, nil
}
